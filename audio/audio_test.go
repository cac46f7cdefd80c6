package audio

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamLength(t *testing.T, tones []tone) int {
	t.Helper()
	streamer, err := sequence(tones)
	require.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := streamer.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTonesFor(t *testing.T) {
	tests := []struct {
		name string
		ev   tetris.Event
		want int
	}{
		{"single", tetris.Event{Kind: tetris.EventLinesCleared, Lines: 1}, 1},
		{"double", tetris.Event{Kind: tetris.EventLinesCleared, Lines: 2}, 2},
		{"four", tetris.Event{Kind: tetris.EventLinesCleared, Lines: 4}, 4},
		{"more than four", tetris.Event{Kind: tetris.EventLinesCleared, Lines: 6}, 4},
		{"level up", tetris.Event{Kind: tetris.EventLevelUp, Level: 3}, 3},
		{"run ended", tetris.Event{Kind: tetris.EventRunEnded}, 3},
		{"board change is silent", tetris.Event{Kind: tetris.EventBoardChanged}, 0},
		{"score change is silent", tetris.Event{Kind: tetris.EventScoreChanged}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tonesFor(tt.ev), tt.want)
		})
	}
}

func TestSequenceLength(t *testing.T) {
	tones := []tone{
		{freq: 440, duration: 100 * time.Millisecond},
		{freq: 660, duration: 50 * time.Millisecond, volume: -1},
	}

	want := sampleRate.N(100*time.Millisecond) + sampleRate.N(toneGap) + sampleRate.N(50*time.Millisecond)
	assert.Equal(t, want, streamLength(t, tones))
}

func TestSequenceRejectsInaudibleTone(t *testing.T) {
	_, err := sequence([]tone{{freq: float64(sampleRate), duration: time.Millisecond}})
	assert.Error(t, err)
}

func TestPlayerLogsUnplayableTones(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlayer()
	p.SetLogger(log.New(&buf, "", 0))

	streamer, ok := p.streamFor(tetris.Event{Kind: tetris.EventLevelUp}, []tone{{freq: float64(sampleRate), duration: time.Millisecond}})
	assert.False(t, ok)
	assert.Nil(t, streamer)
	assert.Contains(t, buf.String(), "[AUDIO] skipping tones")

	buf.Reset()
	streamer, ok = p.streamFor(tetris.Event{Kind: tetris.EventLevelUp}, tonesFor(tetris.Event{Kind: tetris.EventLevelUp}))
	assert.True(t, ok)
	assert.NotNil(t, streamer)
	assert.Empty(t, buf.String())
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer()
	assert.NotPanics(t, func() {
		p.OnEvent(tetris.Event{Kind: tetris.EventLinesCleared, Lines: 4})
		p.Close()
	})
}
