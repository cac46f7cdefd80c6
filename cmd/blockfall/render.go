package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize    = 24
	BoardLeft   = 40
	BoardTop    = 40
	SidebarGap  = 40
	PreviewCell = 16
)

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.O: {255, 223, 128, 255},
	tetris.L: {255, 179, 102, 255},
	tetris.J: {128, 160, 255, 255},
	tetris.I: {128, 229, 252, 255},
	tetris.S: {160, 235, 160, 255},
	tetris.Z: {255, 140, 150, 255},
	tetris.T: {210, 160, 255, 255},
}

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{12, 12, 18, 255}
	gridLineColor   = color.RGBA{40, 40, 52, 255}
	ghostColor      = color.RGBA{140, 140, 160, 255}
	sweepColor      = color.RGBA{70, 70, 80, 255}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

// BoardRenderer draws snapshots onto the ebiten screen.
type BoardRenderer struct {
	sweep *loop.SweepSystem
	muted bool
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, snap tetris.Snapshot) {
	screen.Fill(backgroundColor)

	rows := len(snap.Grid)
	cols := 0
	if rows > 0 {
		cols = len(snap.Grid[0])
	}

	width := float32(cols * CellSize)
	height := float32(rows * CellSize)
	vector.DrawFilledRect(screen, BoardLeft, BoardTop, width, height, wellColor, false)
	vector.StrokeRect(screen, BoardLeft-1, BoardTop-1, width+2, height+2, 2, gridLineColor, false)

	for _, pos := range snap.Ghost {
		x, y := cellOrigin(pos)
		vector.StrokeRect(screen, x+2, y+2, CellSize-4, CellSize-4, 1, ghostColor, false)
	}

	ended := snap.State == tetris.Ended
	for y, line := range snap.Grid {
		for x, kind := range line {
			pos := tetris.Position{X: x, Y: y}
			px, py := cellOrigin(pos)
			switch {
			case ended && r.sweep.Covered(pos):
				vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, sweepColor, false)
			case kind != tetris.Empty:
				vector.DrawFilledRect(screen, px+1, py+1, CellSize-2, CellSize-2, kindColors[kind], false)
			}
		}
	}

	r.drawSidebar(screen, snap, BoardLeft+int(width)+SidebarGap)

	switch snap.State {
	case tetris.Idle:
		r.drawBanner(screen, width, height, "ENTER to start")
	case tetris.Paused:
		r.drawBanner(screen, width, height, "PAUSED")
	case tetris.Ended:
		if !r.sweep.Busy() {
			r.drawBanner(screen, width, height, "GAME OVER")
		}
	}
}

func cellOrigin(pos tetris.Position) (float32, float32) {
	return float32(BoardLeft + pos.X*CellSize), float32(BoardTop + pos.Y*CellSize)
}

func (r *BoardRenderer) drawSidebar(screen *ebiten.Image, snap tetris.Snapshot, left int) {
	y := BoardTop
	line := func(format string, args ...any) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, args...), left, y)
		y += 18
	}

	line("Score      %d", snap.Score)
	line("Highscore  %d", snap.Highscore)
	line("Level      %d", snap.Level)
	line("Lines      %d", snap.Lines)
	line("Pieces     %d", snap.Pieces)
	line("Interval   %v", snap.Interval)
	line("State      %v", snap.State)
	if r.muted {
		line("Sound      off")
	}

	y += 12
	line("Next")
	if snap.Next.Kind != tetris.Empty {
		clr := kindColors[snap.Next.Kind]
		for row, cells := range snap.Next.Mask {
			for col, set := range cells {
				if !set {
					continue
				}
				x := float32(left + col*PreviewCell)
				top := float32(y + row*PreviewCell)
				vector.DrawFilledRect(screen, x+1, top+1, PreviewCell-2, PreviewCell-2, clr, false)
			}
		}
		y += snap.Next.Mask.Rows() * PreviewCell
	}

	y += 24
	for _, help := range []string{
		"Arrows  move",
		"Up X Z  rotate",
		"Space   hard drop",
		"P       pause",
		"Enter   start",
		"Esc     end run",
		"M       mute",
		"Q       quit",
	} {
		line("%s", help)
	}
}

func (r *BoardRenderer) drawBanner(screen *ebiten.Image, width, height float32, msg string) {
	top := BoardTop + height/2 - 16
	vector.DrawFilledRect(screen, BoardLeft, top, width, 32, overlayColor, false)
	// The debug font is 6 pixels per glyph.
	x := BoardLeft + int(width)/2 - len(msg)*3
	ebitenutil.DebugPrintAt(screen, msg, x, int(top)+8)
}
