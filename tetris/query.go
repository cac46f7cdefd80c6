package tetris

import "time"

func (e *Engine) State() RunState { return e.state }
func (e *Engine) Score() int      { return e.board.Score() }
func (e *Engine) Highscore() int  { return e.board.Highscore() }
func (e *Engine) Level() int      { return e.level }
func (e *Engine) Lines() int      { return e.lines }
func (e *Engine) Pieces() int     { return e.pieces }
func (e *Engine) Rows() int       { return e.grid.Rows() }
func (e *Engine) Cols() int       { return e.grid.Cols() }

// Version increases whenever observable state changes.
func (e *Engine) Version() uint64 { return e.version }

// TickInterval returns the gravity interval the scheduler should use.
func (e *Engine) TickInterval() time.Duration { return e.interval }

// CurrentTickIntervalMillis returns TickInterval in whole milliseconds.
func (e *Engine) CurrentTickIntervalMillis() int {
	return int(e.interval / time.Millisecond)
}

// Ticking reports whether the scheduler should deliver ticks.
func (e *Engine) Ticking() bool { return e.state == Running }

// Cell returns the kind at pos, or Empty outside the grid.
func (e *Engine) Cell(pos Position) Kind {
	if !e.grid.InBounds(pos) {
		return Empty
	}
	return e.grid.At(pos)
}

// Current returns a copy of the falling piece; Kind is Empty when there is none.
func (e *Engine) Current() PieceView { return e.current.view() }

// Next returns a copy of the piece that spawns next.
func (e *Engine) Next() PieceView { return e.next.view() }

// Stats returns a copy of this run's spawn and clear counters.
func (e *Engine) Stats() StatsView { return e.stats.view() }

// GhostCells returns where the current piece would come to rest if dropped now.
func (e *Engine) GhostCells() []Position {
	if e.current == nil {
		return nil
	}

	anchor := e.current.anchor
	for {
		below := anchor.Add(0, 1)
		if Collides(e.grid, e.current.cells, e.current.mask.Cells(below)) {
			break
		}
		anchor = below
	}
	return e.current.mask.Cells(anchor)
}

// Snapshot copies the observable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:     e.state,
		Grid:      e.grid.Cells(),
		Current:   e.current.view(),
		Next:      e.next.view(),
		Ghost:     e.GhostCells(),
		Score:     e.board.Score(),
		Highscore: e.board.Highscore(),
		Level:     e.level,
		Lines:     e.lines,
		Pieces:    e.pieces,
		Interval:  e.interval,
		Stats:     e.stats.view(),
		Version:   e.version,
	}
}
