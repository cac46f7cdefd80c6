package main

import (
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReport(t *testing.T) {
	results := []GameResult{
		{Score: 300, Level: 1, Stats: tetris.StatsView{Clears: map[int]int{1: 2, 2: 1}}},
		{Score: 900, Level: 2, Stats: tetris.StatsView{Clears: map[int]int{1: 1, 4: 1}}},
		{Score: 600, Level: 2},
	}

	r := &Report{Rows: 24, Cols: 10, Randomizer: "bag"}
	r.AddResults(results)

	assert.Equal(t, 3, r.Games)
	assert.Equal(t, 900, r.BestScore)
	assert.Equal(t, 600, r.AvgScore)
	assert.Equal(t, 2, r.TopLevel)
	assert.Equal(t, []HistogramRow{{"level 1", 1}, {"level 2", 2}}, r.LevelRows)
	assert.Equal(t, []HistogramRow{{"1", 3}, {"2", 1}, {"3", 0}, {"4+", 1}}, r.ClearRows)

	var out strings.Builder
	require.NoError(t, r.Generate(&out))
	text := out.String()
	assert.Contains(t, text, "- **Board:** 10 x 24")
	assert.Contains(t, text, "- **Finished Games:** 3")
	assert.Contains(t, text, "- level 2: 2 ##")
	assert.Contains(t, text, "- 4+: 1")
	assert.NotContains(t, text, "GC Pause")
}

func TestReportWithoutGames(t *testing.T) {
	r := &Report{}
	r.AddResults(nil)

	var out strings.Builder
	require.NoError(t, r.Generate(&out))
	assert.Contains(t, out.String(), "- no finished games")
	assert.Zero(t, r.AvgScore)
}
