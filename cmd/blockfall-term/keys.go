package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/session"
)

// keyAction maps a key press to a player action.
func keyAction(ev *tcell.EventKey) session.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return session.MoveLeft
	case tcell.KeyRight:
		return session.MoveRight
	case tcell.KeyDown:
		return session.SoftDrop
	case tcell.KeyUp:
		return session.RotateCW
	case tcell.KeyEnter:
		return session.Start
	case tcell.KeyEscape:
		return session.End
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'x', 'X':
			return session.RotateCW
		case 'z', 'Z':
			return session.RotateCCW
		case ' ':
			return session.HardDrop
		case 'p', 'P':
			return session.TogglePause
		}
	}
	return session.None
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func isMuteToggle(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M')
}
