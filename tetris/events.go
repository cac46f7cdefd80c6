package tetris

import (
	"context"
	"time"
)

// RunState is the state of the run state machine.
type RunState uint8

const (
	Idle RunState = iota
	Running
	Paused
	Ended
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	default:
		return "RunState(?)"
	}
}

// EventKind identifies an engine notification.
type EventKind uint8

const (
	// EventStateChanged fires on every run state transition.
	EventStateChanged EventKind = iota
	// EventBoardChanged fires when the grid or the current/next pieces change.
	EventBoardChanged
	// EventScoreChanged fires when score, lines or piece count change.
	EventScoreChanged
	// EventLinesCleared fires when line resolution removed at least one row.
	EventLinesCleared
	// EventLevelUp fires when the level advances.
	EventLevelUp
	// EventIntervalChanged fires when the tick interval changes.
	EventIntervalChanged
	// EventRunEnded fires once per run, after the highscore was saved.
	EventRunEnded
)

// Event is a change notification emitted by the Engine.
type Event struct {
	Kind     EventKind
	State    RunState
	Lines    int
	Level    int
	Interval time.Duration
	// Err carries a highscore save failure on EventRunEnded.
	Err error
}

// HighscoreStore persists the highscore.
type HighscoreStore interface {
	LoadHighscore(ctx context.Context) (int, error)
	SaveHighscore(ctx context.Context, score int) error
}

// RunEndHandler is notified when a run ends, typically to play an end-of-run
// sweep. Busy reports whether that aftermath is still in progress; Start is a
// no-op while it is.
type RunEndHandler interface {
	RunEnded(snapshot Snapshot)
	Busy() bool
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State     RunState
	Grid      [][]Kind
	Current   PieceView
	Next      PieceView
	Ghost     []Position
	Score     int
	Highscore int
	Level     int
	Lines     int
	Pieces    int
	Interval  time.Duration
	Stats     StatsView
	Version   uint64
}

// HasCurrent reports whether the snapshot holds a falling piece.
func (s Snapshot) HasCurrent() bool {
	return s.Current.Kind != Empty
}
