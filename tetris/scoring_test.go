package tetris_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestLineScore(t *testing.T) {
	tests := []struct {
		level, lines int
		want         int
	}{
		{0, 1, 100},
		{0, 2, 250},
		{0, 3, 500},
		{0, 4, 1500},
		{0, 7, 1500},
		{2, 2, 750},
		{1, 1, 200},
		{9, 4, 15000},
		{-1, 1, 0},
		{0, 0, 0},
		{3, -2, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level=%d,lines=%d", tt.level, tt.lines), func(t *testing.T) {
			assert.Equal(t, tt.want, tetris.LineScore(tt.level, tt.lines))
		})
	}
}

func TestScoreboard(t *testing.T) {
	board := tetris.NewScoreboard(300)
	assert.Equal(t, 0, board.Score())
	assert.Equal(t, 300, board.Highscore())

	board.Add(250)
	assert.Equal(t, 250, board.Score())
	assert.Equal(t, 300, board.Highscore())

	board.Add(100)
	assert.Equal(t, 350, board.Score())
	assert.Equal(t, 350, board.Highscore())

	board.Reset()
	assert.Equal(t, 0, board.Score())
	assert.Equal(t, 350, board.Highscore())

	negative := tetris.NewScoreboard(-5)
	assert.Equal(t, 0, negative.Highscore())
}

func TestNextTickInterval(t *testing.T) {
	t.Run("first level up", func(t *testing.T) {
		assert.Equal(t, 461*time.Millisecond, tetris.NextTickInterval(tetris.BaseTickInterval, 2))
	})

	t.Run("minimum step", func(t *testing.T) {
		assert.Equal(t, 198*time.Millisecond, tetris.NextTickInterval(200*time.Millisecond, 20))
	})

	t.Run("floor", func(t *testing.T) {
		assert.Equal(t, tetris.MinTickInterval, tetris.NextTickInterval(60*time.Millisecond, 3))
		assert.Equal(t, tetris.MinTickInterval, tetris.NextTickInterval(tetris.MinTickInterval, 30))
	})

	t.Run("monotonic", func(t *testing.T) {
		interval := tetris.BaseTickInterval
		for level := 2; level <= 200; level++ {
			next := tetris.NextTickInterval(interval, level)
			if interval > tetris.MinTickInterval {
				assert.Less(t, next, interval, "level %d", level)
			} else {
				assert.Equal(t, tetris.MinTickInterval, next, "level %d", level)
			}
			assert.GreaterOrEqual(t, next, tetris.MinTickInterval)
			interval = next
		}
		assert.Equal(t, tetris.MinTickInterval, interval)
	})
}

func TestLevelThreshold(t *testing.T) {
	assert.Equal(t, 20, tetris.LevelThreshold(1))
	assert.Equal(t, 30, tetris.LevelThreshold(2))
}
