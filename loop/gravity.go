package loop

import "time"

// GravitySystem queues ticks at the engine's current tick interval. The
// interval is read every frame, so a level up takes effect on the next tick.
type GravitySystem struct {
	// MaxTicksPerFrame bounds catch-up after a stall; zero means 1.
	MaxTicksPerFrame int

	elapsed time.Duration
}

func (g *GravitySystem) Execute(frame *Frame) {
	if !frame.Engine.Ticking() {
		g.elapsed = 0
		return
	}

	interval := frame.Engine.TickInterval()
	if interval <= 0 {
		return
	}

	limit := max(g.MaxTicksPerFrame, 1)
	g.elapsed += frame.Elapsed()
	for ticks := 0; g.elapsed >= interval; ticks++ {
		if ticks == limit {
			g.elapsed = 0
			break
		}
		g.elapsed -= interval
		frame.Commands.Tick()
	}
}

// Pending returns the time accumulated toward the next tick.
func (g *GravitySystem) Pending() time.Duration {
	return g.elapsed
}
