package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SweepCellInterval is how long the end-of-run sweep spends on each cell.
const SweepCellInterval = 15 * time.Millisecond

// SweepSystem plays the end-of-run sweep: after a run ends it covers the
// board one cell at a time, bottom row first and left to right within a row.
// It is both the engine's RunEndHandler and a System advanced by frame time,
// and it never touches the grid. Start is refused while Busy.
type SweepSystem struct {
	rows, cols int
	covered    int
	elapsed    time.Duration
	active     bool
	final      tetris.Snapshot
}

// RunEnded begins a sweep over the board described by snapshot.
func (s *SweepSystem) RunEnded(snapshot tetris.Snapshot) {
	s.final = snapshot
	s.rows = len(snapshot.Grid)
	s.cols = 0
	if s.rows > 0 {
		s.cols = len(snapshot.Grid[0])
	}
	s.covered = 0
	s.elapsed = 0
	s.active = s.rows*s.cols > 0
}

// Busy reports whether a sweep is still in progress.
func (s *SweepSystem) Busy() bool {
	return s.active
}

func (s *SweepSystem) Execute(frame *Frame) {
	if !s.active {
		return
	}

	s.elapsed += frame.Elapsed()
	total := s.rows * s.cols
	s.covered = min(int(s.elapsed/SweepCellInterval), total)
	if s.covered == total {
		s.active = false
	}
}

// Covered reports whether the sweep has reached pos.
func (s *SweepSystem) Covered(pos tetris.Position) bool {
	if pos.X < 0 || pos.X >= s.cols || pos.Y < 0 || pos.Y >= s.rows {
		return false
	}
	index := (s.rows-1-pos.Y)*s.cols + pos.X
	return index < s.covered
}

// Progress returns the number of covered cells and the board size.
func (s *SweepSystem) Progress() (covered, total int) {
	return s.covered, s.rows * s.cols
}

// Final returns the snapshot taken when the run ended.
func (s *SweepSystem) Final() tetris.Snapshot {
	return s.final
}
