package session

import (
	"fmt"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Action is a player intent, independent of the key that produced it.
type Action uint8

const (
	None Action = iota
	MoveLeft
	MoveRight
	SoftDrop
	RotateCW
	RotateCCW
	HardDrop
	TogglePause
	Start
	End
)

var actionNames = [...]string{
	None:        "None",
	MoveLeft:    "MoveLeft",
	MoveRight:   "MoveRight",
	SoftDrop:    "SoftDrop",
	RotateCW:    "RotateCW",
	RotateCCW:   "RotateCCW",
	HardDrop:    "HardDrop",
	TogglePause: "TogglePause",
	Start:       "Start",
	End:         "End",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Command returns the loop command for a. It reports false for None and
// unknown actions.
func (a Action) Command() (loop.Command, bool) {
	switch a {
	case MoveLeft:
		return loop.Command{Op: loop.OpMove, Dir: tetris.Left}, true
	case MoveRight:
		return loop.Command{Op: loop.OpMove, Dir: tetris.Right}, true
	case SoftDrop:
		return loop.Command{Op: loop.OpMove, Dir: tetris.Down}, true
	case RotateCW:
		return loop.Command{Op: loop.OpRotate}, true
	case RotateCCW:
		return loop.Command{Op: loop.OpRotate, CounterClockwise: true}, true
	case HardDrop:
		return loop.Command{Op: loop.OpHardDrop}, true
	case TogglePause:
		return loop.Command{Op: loop.OpTogglePause}, true
	case Start:
		return loop.Command{Op: loop.OpStart}, true
	case End:
		return loop.Command{Op: loop.OpEnd}, true
	default:
		return loop.Command{}, false
	}
}
