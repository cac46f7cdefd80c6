// Package audio plays short synthesized tones for engine events.
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneGap    = 10 * time.Millisecond
)

type tone struct {
	freq     float64
	duration time.Duration
	// volume is a beep effects.Volume level: 0 is unchanged, negative is quieter.
	volume float64
}

// tonesFor returns the tone sequence for an engine event, or nil when the event
// is silent.
func tonesFor(ev tetris.Event) []tone {
	switch ev.Kind {
	case tetris.EventLinesCleared:
		scale := []float64{440, 554, 660, 880}
		lines := min(max(ev.Lines, 1), len(scale))
		seq := make([]tone, 0, lines)
		for _, freq := range scale[:lines] {
			seq = append(seq, tone{freq: freq, duration: 80 * time.Millisecond, volume: -1})
		}
		return seq
	case tetris.EventLevelUp:
		return []tone{
			{freq: 523, duration: 70 * time.Millisecond, volume: -1},
			{freq: 784, duration: 70 * time.Millisecond, volume: -1},
			{freq: 1047, duration: 120 * time.Millisecond, volume: -1},
		}
	case tetris.EventRunEnded:
		return []tone{
			{freq: 330, duration: 120 * time.Millisecond, volume: -1.5},
			{freq: 220, duration: 120 * time.Millisecond, volume: -1.5},
			{freq: 165, duration: 240 * time.Millisecond, volume: -1.5},
		}
	default:
		return nil
	}
}

// sequence renders tones into one finite streamer with short gaps between tones.
func sequence(tones []tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, 2*len(tones))
	for i, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(toneGap)))
		}
		parts = append(parts, beep.Take(sampleRate.N(t.duration), &effects.Volume{
			Streamer: sine,
			Base:     2,
			Volume:   t.volume,
		}))
	}
	return beep.Seq(parts...), nil
}

// Player mixes event tones onto the speaker. A Player that failed to
// initialize stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	log         *log.Logger
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}, log: log.Default()}
}

// SetLogger replaces the logger used for tone failures.
func (p *Player) SetLogger(logger *log.Logger) {
	p.mu.Lock()
	p.log = logger
	p.mu.Unlock()
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted silences or restores event tones.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// OnEvent plays the tones for ev. It matches the engine's Subscribe callback.
func (p *Player) OnEvent(ev tetris.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	tones := tonesFor(ev)
	if len(tones) == 0 {
		return
	}

	streamer, ok := p.streamFor(ev, tones)
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// streamFor renders tones, logging and skipping a sequence that cannot play.
func (p *Player) streamFor(ev tetris.Event, tones []tone) (beep.Streamer, bool) {
	streamer, err := sequence(tones)
	if err != nil {
		p.log.Printf("[AUDIO] skipping tones for event %d: %v", ev.Kind, err)
		return nil, false
	}
	return streamer, true
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
