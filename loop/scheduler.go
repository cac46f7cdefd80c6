package loop

import (
	"context"
	"log"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	CommandsApplied int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *systemTimings) record(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

// Scheduler runs registered systems in order against one engine, then applies
// the commands they queued. All engine mutation happens inside Once, on the
// goroutine that calls it.
type Scheduler struct {
	engine  Controller
	mailbox *Mailbox
	log     *log.Logger

	systems  []System
	timings  []*systemTimings
	frames   int64
	commands int64
}

// NewScheduler creates a scheduler driving engine.
func NewScheduler(engine Controller) *Scheduler {
	return &Scheduler{
		engine:  engine,
		mailbox: &Mailbox{},
		log:     log.Default(),
	}
}

// SetLogger replaces the logger used for command errors.
func (s *Scheduler) SetLogger(l *log.Logger) {
	s.log = l
}

// Mailbox returns the queue other goroutines submit commands to.
func (s *Scheduler) Mailbox() *Mailbox {
	return s.mailbox
}

// Register appends a system; systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timings = append(s.timings, &systemTimings{
		name: systemType.Name(),
		min:  time.Duration(1<<63 - 1),
	})
}

// Once runs one frame with the given delta time in seconds. Mailbox commands
// are applied before anything the systems queue during this frame.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.engine)
	s.mailbox.drain(frame.Commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	s.frames++
	s.commands += int64(frame.Commands.Len())
	if err := frame.Commands.Flush(s.engine); err != nil {
		s.log.Printf("[LOOP] command failed: %v", err)
	}
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:     len(s.systems),
		Frames:          s.frames,
		CommandsApplied: s.commands,
		Systems:         make([]SystemStats, len(s.timings)),
	}

	for i, t := range s.timings {
		var avg time.Duration
		if t.count > 0 {
			avg = t.total / time.Duration(t.count)
		}

		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.count,
			MinDuration:    t.min,
			MaxDuration:    t.max,
			AvgDuration:    avg,
			LastDuration:   t.last,
			TotalDuration:  t.total,
		}
		stats.TotalExecutions += t.count
	}

	return stats
}
