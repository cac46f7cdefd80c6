package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Controller is the command and query surface the loop drives. *tetris.Engine
// implements it.
type Controller interface {
	Start()
	End() error
	Pause()
	Resume()
	TogglePause()
	Move(dir tetris.Direction)
	Rotate(counterClockwise bool)
	HardDrop()
	Tick()

	State() tetris.RunState
	Ticking() bool
	TickInterval() time.Duration
	Snapshot() tetris.Snapshot
}

// Op names an engine command.
type Op uint8

const (
	OpStart Op = iota
	OpEnd
	OpPause
	OpResume
	OpTogglePause
	OpMove
	OpRotate
	OpHardDrop
	OpTick
)

var opNames = [...]string{
	OpStart:       "Start",
	OpEnd:         "End",
	OpPause:       "Pause",
	OpResume:      "Resume",
	OpTogglePause: "TogglePause",
	OpMove:        "Move",
	OpRotate:      "Rotate",
	OpHardDrop:    "HardDrop",
	OpTick:        "Tick",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

// Command is one queued engine call. Dir is used by OpMove and
// CounterClockwise by OpRotate.
type Command struct {
	Op               Op
	Dir              tetris.Direction
	CounterClockwise bool
}

func (c Command) String() string {
	switch c.Op {
	case OpMove:
		return "Move(" + c.Dir.String() + ")"
	case OpRotate:
		if c.CounterClockwise {
			return "Rotate(ccw)"
		}
		return "Rotate(cw)"
	default:
		return c.Op.String()
	}
}

func (c Command) apply(ctrl Controller) error {
	switch c.Op {
	case OpStart:
		ctrl.Start()
	case OpEnd:
		return ctrl.End()
	case OpPause:
		ctrl.Pause()
	case OpResume:
		ctrl.Resume()
	case OpTogglePause:
		ctrl.TogglePause()
	case OpMove:
		ctrl.Move(c.Dir)
	case OpRotate:
		ctrl.Rotate(c.CounterClockwise)
	case OpHardDrop:
		ctrl.HardDrop()
	case OpTick:
		ctrl.Tick()
	default:
		return fmt.Errorf("unknown command %v", c.Op)
	}
	return nil
}

// Commands buffers engine calls made during a frame. They are applied in
// submission order once every system has run, so systems all observe the same
// engine state.
type Commands struct {
	queue  []Command
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues cmd.
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Tick queues a gravity tick.
func (c *Commands) Tick() {
	c.Push(Command{Op: OpTick})
}

// Defer queues fn to run after every queued command was applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies all queued commands to ctrl in order, then runs deferred
// functions, resetting the buffer. Errors returned by commands are joined.
func (c *Commands) Flush(ctrl Controller) error {
	var errs []error
	for _, cmd := range c.queue {
		if err := cmd.apply(ctrl); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", cmd, err))
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.queue = c.queue[:0]
	c.defers = c.defers[:0]
	return errors.Join(errs...)
}
