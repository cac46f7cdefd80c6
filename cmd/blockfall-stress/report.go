package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	FrameStep  time.Duration
	Rows       int
	Cols       int
	Randomizer string

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Placed         int
	Games          int
	BestScore      int
	AvgScore       int
	TopLevel       int
	LevelRows      []HistogramRow
	ClearRows      []HistogramRow
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// HistogramRow is one bucket of a report histogram.
type HistogramRow struct {
	Label string
	Count int
}

// AddResults folds finished runs into the score summary and the level and
// line clear histograms.
func (r *Report) AddResults(results []GameResult) {
	levels := intmap.New[int, int](8)
	clears := intmap.New[int, int](4)

	total := 0
	for _, res := range results {
		total += res.Score
		r.BestScore = max(r.BestScore, res.Score)
		r.TopLevel = max(r.TopLevel, res.Level)

		n, _ := levels.Get(res.Level)
		levels.Put(res.Level, n+1)

		for lines, count := range res.Stats.Clears {
			n, _ := clears.Get(lines)
			clears.Put(lines, n+count)
		}
	}

	r.Games = len(results)
	if r.Games > 0 {
		r.AvgScore = total / r.Games
	}

	r.LevelRows = r.LevelRows[:0]
	for level := 1; level <= r.TopLevel; level++ {
		if n, ok := levels.Get(level); ok {
			r.LevelRows = append(r.LevelRows, HistogramRow{Label: fmt.Sprintf("level %d", level), Count: n})
		}
	}

	r.ClearRows = r.ClearRows[:0]
	for lines := 1; lines <= 4; lines++ {
		n, _ := clears.Get(lines)
		label := fmt.Sprintf("%d", lines)
		if lines == 4 {
			label = "4+"
		}
		r.ClearRows = append(r.ClearRows, HistogramRow{Label: label, Count: n})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Simulated Frame:** {{.FrameStep}}
- **Board:** {{.Cols}} x {{.Rows}}
- **Randomizer:** {{.Randomizer}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Games
- **Pieces Placed:** {{.Placed}}
- **Finished Games:** {{.Games}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{.AvgScore}}
- **Top Level:** {{.TopLevel}}

### Final Levels
{{range .LevelRows}}- {{.Label}}: {{.Count}} {{bar .Count}}
{{else}}- no finished games
{{end}}
### Line Clears
{{range .ClearRows}}- {{.Label}}: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"bar": func(n int) string {
			bar := make([]byte, min(n, 40))
			for i := range bar {
				bar[i] = '#'
			}
			return string(bar)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
