package main

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Placement weights, applied to the board after the piece locked and full
// rows cleared.
const (
	heightWeight    = -0.51
	linesWeight     = 0.76
	holesWeight     = -0.36
	bumpinessWeight = -0.18
)

// GameResult is the outcome of one finished run.
type GameResult struct {
	Score  int
	Level  int
	Lines  int
	Pieces int
	Stats  tetris.StatsView
}

// BotSystem plays the engine: for each new piece it picks the best reachable
// resting place and queues the rotations, moves and hard drop that reach it.
// Finished runs are recorded and a new one is started once the sweep is done.
type BotSystem struct {
	Sweep *loop.SweepSystem

	lastPieces int
	recorded   bool
	placed     int
	results    []GameResult
}

func (b *BotSystem) Execute(frame *loop.Frame) {
	snap := frame.Engine.Snapshot()

	switch snap.State {
	case tetris.Idle:
		frame.Commands.Push(loop.Command{Op: loop.OpStart})
		return
	case tetris.Ended:
		if !b.recorded {
			b.results = append(b.results, GameResult{
				Score:  snap.Score,
				Level:  snap.Level,
				Lines:  snap.Lines,
				Pieces: snap.Pieces,
				Stats:  snap.Stats,
			})
			b.recorded = true
			b.lastPieces = 0
		}
		if b.Sweep == nil || !b.Sweep.Busy() {
			frame.Commands.Push(loop.Command{Op: loop.OpStart})
		}
		return
	case tetris.Paused:
		frame.Commands.Push(loop.Command{Op: loop.OpResume})
		return
	}

	b.recorded = false
	if !snap.HasCurrent() || snap.Pieces == b.lastPieces {
		return
	}
	b.lastPieces = snap.Pieces

	target, ok := bestPlacement(snap.Grid, snap.Current)
	if ok {
		for range target.rotations {
			frame.Commands.Push(loop.Command{Op: loop.OpRotate})
		}
		dir := tetris.Right
		dx := target.anchorX - snap.Current.Anchor.X
		if dx < 0 {
			dir, dx = tetris.Left, -dx
		}
		for range dx {
			frame.Commands.Push(loop.Command{Op: loop.OpMove, Dir: dir})
		}
	}
	frame.Commands.Push(loop.Command{Op: loop.OpHardDrop})
	b.placed++
}

// Results returns the finished runs in order.
func (b *BotSystem) Results() []GameResult {
	return b.results
}

// Placed returns how many pieces the bot dropped.
func (b *BotSystem) Placed() int {
	return b.placed
}

type placement struct {
	rotations int
	anchorX   int
	cells     []tetris.Position
	lines     int
	score     float64
}

// board is an occupancy copy of the grid without the falling piece.
type board [][]bool

func newBoard(grid [][]tetris.Kind, piece tetris.PieceView) board {
	b := make(board, len(grid))
	for y, line := range grid {
		b[y] = make([]bool, len(line))
		for x, kind := range line {
			b[y][x] = kind != tetris.Empty
		}
	}
	for _, pos := range piece.Cells {
		if b.inBounds(pos) {
			b[pos.Y][pos.X] = false
		}
	}
	return b
}

func (b board) rows() int { return len(b) }

func (b board) cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func (b board) inBounds(pos tetris.Position) bool {
	return pos.X >= 0 && pos.X < b.cols() && pos.Y >= 0 && pos.Y < b.rows()
}

func (b board) blocked(cells []tetris.Position) bool {
	for _, pos := range cells {
		if !b.inBounds(pos) || b[pos.Y][pos.X] {
			return true
		}
	}
	return false
}

// bestPlacement searches every rotation and column reachable from the piece's
// current position by rotating in place, then sliding sideways, then dropping.
func bestPlacement(grid [][]tetris.Kind, piece tetris.PieceView) (placement, bool) {
	b := newBoard(grid, piece)

	turns := 4
	if piece.Kind == tetris.O {
		turns = 1
	}

	var best placement
	found := false
	mask := piece.Mask
	start := piece.Anchor

	for r := range turns {
		if r > 0 {
			mask = mask.Rotate(false)
			if b.blocked(mask.Cells(start)) {
				break
			}
		}

		for _, dir := range []int{-1, 1} {
			for x := start.X; ; x += dir {
				anchor := tetris.Position{X: x, Y: start.Y}
				if b.blocked(mask.Cells(anchor)) {
					break
				}
				if dir == 1 && x == start.X {
					continue
				}

				for !b.blocked(mask.Cells(anchor.Add(0, 1))) {
					anchor = anchor.Add(0, 1)
				}

				cells := mask.Cells(anchor)
				lines, score := evaluate(b, cells)
				if !found || score > best.score {
					best = placement{rotations: r, anchorX: x, cells: cells, lines: lines, score: score}
					found = true
				}
			}
		}
	}

	return best, found
}

// evaluate scores the board after cells lock and full rows clear.
func evaluate(b board, cells []tetris.Position) (int, float64) {
	rows, cols := b.rows(), b.cols()

	next := make(board, 0, rows)
	for y := range rows {
		line := make([]bool, cols)
		copy(line, b[y])
		next = append(next, line)
	}
	for _, pos := range cells {
		next[pos.Y][pos.X] = true
	}

	kept := next[:0]
	lines := 0
	for _, line := range next {
		full := true
		for _, set := range line {
			full = full && set
		}
		if full {
			lines++
			continue
		}
		kept = append(kept, line)
	}

	// Cleared rows leave empty rows on top; they add no height.
	heights := make([]int, cols)
	holes := 0
	for x := range cols {
		seen := false
		for y, line := range kept {
			if line[x] {
				if !seen {
					heights[x] = len(kept) - y
					seen = true
				}
			} else if seen {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	score := heightWeight*float64(aggregate) +
		linesWeight*float64(lines) +
		holesWeight*float64(holes) +
		bumpinessWeight*float64(bumpiness)
	return lines, score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
