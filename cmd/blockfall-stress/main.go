package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/session"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	frameStep := flag.Duration("frame", 16*time.Millisecond, "Simulated time per frame.")
	persist := flag.Bool("persist", false, "Use the configured highscore backend instead of memory.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	log.Println("[STRESS] Starting blockfall stress test...")

	cfg := config.Load()
	if !*persist {
		cfg.Highscore.Backend = highscore.BackendMemory
	}

	bot := &BotSystem{}
	s := session.New(context.Background(), cfg, log.Default(), bot)
	defer s.Close()
	bot.Sweep = s.Sweep

	report := &Report{
		Duration:       *duration,
		FrameStep:      *frameStep,
		Rows:           cfg.Rows,
		Cols:           cfg.Cols,
		Randomizer:     cfg.Randomizer,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("[STRESS] Running bot for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	dt := frameStep.Seconds()
	startTime := time.Now()
	var totalFrames int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			s.Frame(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.Placed = bot.Placed()
	report.UpdateTime.Finalize()
	report.AddResults(bot.Results())
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := s.Scheduler.GetStats()
	for _, sys := range stats.Systems {
		log.Printf("[STRESS] %s: %d runs, avg %v, max %v", sys.Name, sys.ExecutionCount, sys.AvgDuration, sys.MaxDuration)
	}

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("[STRESS] Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
