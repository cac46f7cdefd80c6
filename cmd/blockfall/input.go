package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/session"
)

// Held movement keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 4
)

type binding struct {
	key     ebiten.Key
	action  session.Action
	repeats bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, session.MoveLeft, true},
	{ebiten.KeyArrowRight, session.MoveRight, true},
	{ebiten.KeyArrowDown, session.SoftDrop, true},
	{ebiten.KeyArrowUp, session.RotateCW, false},
	{ebiten.KeyX, session.RotateCW, false},
	{ebiten.KeyZ, session.RotateCCW, false},
	{ebiten.KeySpace, session.HardDrop, false},
	{ebiten.KeyP, session.TogglePause, false},
	{ebiten.KeyEnter, session.Start, false},
	{ebiten.KeyEscape, session.End, false},
}

// repeatFires reports whether a key held for duration ticks triggers this tick.
func repeatFires(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

// InputSystem turns key presses into engine commands for the current frame.
type InputSystem struct {
	// Capture, when set, suppresses keys while an inspector window has focus.
	Capture *debugui.ImguiInputState
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	if s.Capture != nil && s.Capture.WantCaptureKeyboard {
		return
	}

	for _, b := range bindings {
		pressed := inpututil.IsKeyJustPressed(b.key)
		if b.repeats {
			pressed = repeatFires(inpututil.KeyPressDuration(b.key))
		}
		if !pressed {
			continue
		}
		if cmd, ok := b.action.Command(); ok {
			frame.Commands.Push(cmd)
		}
	}
}
