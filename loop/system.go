// Package loop drives a tetris engine frame by frame: it serializes input from
// any goroutine, queues gravity ticks at the engine's interval and plays the
// end-of-run sweep.
package loop

import "time"

// System is a unit of per-frame behavior: input polling, gravity, rendering,
// the end-of-run sweep. Systems read engine state through the frame and queue
// changes on frame.Commands; they keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is passed to every system during one scheduler pass.
type Frame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	Commands  *Commands
	Engine    Controller
}

func newFrame(dt float64, engine Controller) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Engine:    engine,
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *Frame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second)).Round(time.Microsecond)
}
