package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardLeft = 2
	boardTop  = 1
	// Each board cell is two terminal columns wide so cells look square.
	cellWidth = 2
)

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.O: tcell.ColorYellow,
	tetris.L: tcell.ColorOrange,
	tetris.J: tcell.ColorBlue,
	tetris.I: tcell.ColorAqua,
	tetris.S: tcell.ColorGreen,
	tetris.Z: tcell.ColorRed,
	tetris.T: tcell.ColorPurple,
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	sweepStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 90))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

func kindStyle(kind tetris.Kind) tcell.Style {
	return tcell.StyleDefault.Foreground(kindColors[kind])
}

type renderer struct {
	screen tcell.Screen
	sweep  *loop.SweepSystem
	muted  bool
}

func (r *renderer) draw(snap tetris.Snapshot) {
	r.screen.Clear()

	rows := len(snap.Grid)
	cols := 0
	if rows > 0 {
		cols = len(snap.Grid[0])
	}

	r.drawBorder(rows, cols)

	ghost := make(map[tetris.Position]bool, len(snap.Ghost))
	for _, pos := range snap.Ghost {
		ghost[pos] = true
	}

	ended := snap.State == tetris.Ended
	for y, line := range snap.Grid {
		for x, kind := range line {
			pos := tetris.Position{X: x, Y: y}
			switch {
			case ended && r.sweep.Covered(pos):
				r.cell(pos, '▓', sweepStyle)
			case kind != tetris.Empty:
				r.cell(pos, '█', kindStyle(kind))
			case ghost[pos]:
				r.cell(pos, '░', ghostStyle)
			}
		}
	}

	r.drawSidebar(snap, boardLeft+cols*cellWidth+3)

	switch snap.State {
	case tetris.Idle:
		r.banner(rows, cols, " ENTER to start ")
	case tetris.Paused:
		r.banner(rows, cols, " PAUSED ")
	case tetris.Ended:
		if !r.sweep.Busy() {
			r.banner(rows, cols, " GAME OVER ")
		}
	}

	r.screen.Show()
}

func (r *renderer) cell(pos tetris.Position, ch rune, style tcell.Style) {
	x := boardLeft + 1 + pos.X*cellWidth
	y := boardTop + 1 + pos.Y
	for i := range cellWidth {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *renderer) drawBorder(rows, cols int) {
	right := boardLeft + 1 + cols*cellWidth
	bottom := boardTop + 1 + rows

	for x := boardLeft + 1; x < right; x++ {
		r.screen.SetContent(x, boardTop, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := boardTop + 1; y < bottom; y++ {
		r.screen.SetContent(boardLeft, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(boardLeft, boardTop, '┌', nil, borderStyle)
	r.screen.SetContent(right, boardTop, '┐', nil, borderStyle)
	r.screen.SetContent(boardLeft, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *renderer) drawSidebar(snap tetris.Snapshot, left int) {
	y := boardTop + 1
	line := func(label, value string) {
		r.text(left, y, label, labelStyle)
		r.text(left+11, y, value, textStyle)
		y++
	}

	line("Score", fmt.Sprintf("%d", snap.Score))
	line("Highscore", fmt.Sprintf("%d", snap.Highscore))
	line("Level", fmt.Sprintf("%d", snap.Level))
	line("Lines", fmt.Sprintf("%d", snap.Lines))
	line("Pieces", fmt.Sprintf("%d", snap.Pieces))
	line("Interval", snap.Interval.String())
	line("State", snap.State.String())
	if r.muted {
		line("Sound", "off")
	}

	y++
	r.text(left, y, "Next", labelStyle)
	y++
	if snap.Next.Kind != tetris.Empty {
		style := kindStyle(snap.Next.Kind)
		for row, cells := range snap.Next.Mask {
			for col, set := range cells {
				if set {
					r.screen.SetContent(left+col*cellWidth, y+row, '█', nil, style)
					r.screen.SetContent(left+col*cellWidth+1, y+row, '█', nil, style)
				}
			}
		}
		y += snap.Next.Mask.Rows()
	}

	y++
	for _, help := range []string{
		"←/→    move",
		"↓      soft drop",
		"↑ x z  rotate",
		"space  hard drop",
		"p      pause",
		"enter  start",
		"esc    end run",
		"m      mute",
		"q      quit",
	} {
		r.text(left, y, help, labelStyle)
		y++
	}
}

func (r *renderer) banner(rows, cols int, msg string) {
	width := cols*cellWidth + 2
	x := boardLeft + max((width-len([]rune(msg)))/2, 0)
	r.text(x, boardTop+1+rows/2, msg, alertStyle)
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
