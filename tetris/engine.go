package tetris

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Engine is the run state machine. It owns the grid and the current and next
// pieces, and exposes the command API used by input layers and schedulers.
//
// Engine is not safe for concurrent use. Every command runs to completion,
// including any line resolution and respawn it triggers, before it returns;
// callers on several goroutines must funnel their commands through one queue
// (see package loop).
type Engine struct {
	cfg    Config
	log    *log.Logger
	grid   *Grid
	shapes ShapeSource
	store  HighscoreStore
	runEnd RunEndHandler

	state    RunState
	current  *Piece
	next     *Piece
	board    Scoreboard
	level    int
	lines    int
	pieces   int
	interval time.Duration
	stats    *Stats

	version   uint64
	listeners []func(Event)
}

// NewEngine creates an idle engine. The highscore is loaded from store once; a
// missing store or a failed load starts from zero.
func NewEngine(cfg Config, shapes ShapeSource, store HighscoreStore) *Engine {
	cfg = cfg.withDefaults()

	e := &Engine{
		cfg:      cfg,
		log:      cfg.Logger,
		grid:     NewGrid(cfg.Rows, cfg.Cols),
		shapes:   shapes,
		store:    store,
		state:    Idle,
		level:    1,
		interval: cfg.BaseInterval,
		stats:    newStats(),
	}
	e.board = NewScoreboard(e.loadHighscore())

	return e
}

// SetRunEndHandler registers the collaborator notified when a run ends.
func (e *Engine) SetRunEndHandler(h RunEndHandler) {
	e.runEnd = h
}

// Subscribe registers fn to receive every change notification. Listeners run
// synchronously inside the command that caused the change and must not call
// back into the engine.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

// Start begins a new run from Idle or Ended. It does nothing while a previous
// run's end handler is still busy.
func (e *Engine) Start() {
	if e.state != Idle && e.state != Ended {
		return
	}
	if e.runEnd != nil && e.runEnd.Busy() {
		return
	}

	e.board.Reset()
	e.level = 1
	e.lines = 0
	e.pieces = 0
	e.stats.reset()
	e.grid.Clear()
	e.current = nil
	e.next = nil
	e.interval = e.cfg.BaseInterval

	e.setState(Running)
	e.emit(Event{Kind: EventIntervalChanged, Interval: e.interval})
	e.emit(Event{Kind: EventScoreChanged})
	e.spawn()
}

// Pause suspends a running run.
func (e *Engine) Pause() {
	if e.state == Running {
		e.setState(Paused)
	}
}

// Resume continues a paused run.
func (e *Engine) Resume() {
	if e.state == Paused {
		e.setState(Running)
	}
}

// TogglePause pauses a running run or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.Pause()
	case Paused:
		e.Resume()
	}
}

// End finishes a running or paused run and saves the highscore. A save failure is
// returned but the run is ended regardless.
func (e *Engine) End() error {
	if e.state != Running && e.state != Paused {
		return nil
	}
	return e.endRun()
}

// Tick advances gravity by one row. It must only be scheduled while the engine is
// ticking; a tick before the first run is an invariant violation.
func (e *Engine) Tick() {
	switch e.state {
	case Idle:
		e.violation("tick before the first run started")
	case Running:
		e.Move(Down)
	}
}

// Move shifts the current piece one cell in dir. A blocked downward move comes to
// rest: full rows are cleared, scored, and the next piece spawns. A blocked
// sideways move is rejected without changes.
func (e *Engine) Move(dir Direction) {
	if e.state != Running {
		return
	}
	e.step(dir)
}

// HardDrop moves the current piece down until it rests, scoring one point per row.
func (e *Engine) HardDrop() {
	if e.state != Running {
		return
	}
	for e.step(Down) {
	}
}

// Rotate turns the current piece a quarter turn. O pieces never rotate, and a
// rotation that would collide is rejected.
func (e *Engine) Rotate(counterClockwise bool) {
	if e.state != Running || e.current == nil || e.current.kind == O {
		return
	}

	candidate := PlanRotation(e.current, counterClockwise)
	if Collides(e.grid, e.current.cells, candidate.Cells) {
		return
	}
	e.applyCandidate(candidate)
}

// step attempts one move of the current piece and reports whether it moved.
func (e *Engine) step(dir Direction) bool {
	if e.current == nil {
		e.violation("running without a current piece")
		return false
	}

	candidate := PlanMove(e.current, dir, 1)
	if !Collides(e.grid, e.current.cells, candidate.Cells) {
		e.applyCandidate(candidate)
		if dir == Down {
			e.board.Add(1)
			e.emit(Event{Kind: EventScoreChanged})
		}
		return true
	}

	if dir == Down {
		e.resolveLines()
	}
	return false
}

// applyCandidate retracts the current footprint, commits the candidate to the
// piece and writes the new footprint, all within one command.
func (e *Engine) applyCandidate(c Candidate) {
	for _, pos := range e.current.cells {
		e.grid.ClearCell(pos)
	}
	e.current.apply(c)
	for _, pos := range e.current.cells {
		e.grid.Set(pos, e.current.kind)
	}
	e.emit(Event{Kind: EventBoardChanged})
}

func (e *Engine) resolveLines() {
	cleared := e.grid.ClearFullRows()
	if cleared > 0 {
		e.lines += cleared
		e.stats.recordClear(cleared)
		e.emit(Event{Kind: EventLinesCleared, Lines: cleared})
	}

	if e.lines >= LevelThreshold(e.level) {
		e.level++
		e.interval = NextTickInterval(e.interval, e.level)
		e.emit(Event{Kind: EventLevelUp, Level: e.level})
		e.emit(Event{Kind: EventIntervalChanged, Interval: e.interval})
	}

	e.board.Add(LineScore(e.level, cleared))
	e.emit(Event{Kind: EventScoreChanged})
	e.spawn()
}

// spawn promotes the next piece and draws a new one. When the promoted piece's
// cells are already taken the run ends without writing it.
func (e *Engine) spawn() {
	current := e.next
	if current == nil {
		p, err := SpawnPiece(e.shapes, e.cfg.Spawn)
		if err != nil {
			e.spawnFailed(err)
			return
		}
		current = p
	}

	next, err := SpawnPiece(e.shapes, e.cfg.Spawn)
	if err != nil {
		e.spawnFailed(err)
		return
	}

	e.next = next
	if Collides(e.grid, nil, PlanMove(current, Down, 0).Cells) {
		e.current = nil
		_ = e.endRun()
		return
	}

	e.current = current
	for _, pos := range current.cells {
		e.grid.Set(pos, current.kind)
	}
	e.pieces++
	e.stats.recordSpawn(current.kind)
	e.emit(Event{Kind: EventBoardChanged})
	e.emit(Event{Kind: EventScoreChanged})
}

func (e *Engine) spawnFailed(err error) {
	e.violation(fmt.Sprintf("spawn failed: %v", err))
	e.current = nil
	_ = e.endRun()
}

func (e *Engine) endRun() error {
	e.setState(Ended)

	err := e.saveHighscore()
	if err != nil {
		e.log.Printf("[ENGINE] highscore save failed: %v", err)
	}

	if e.runEnd != nil {
		e.runEnd.RunEnded(e.Snapshot())
	}
	e.emit(Event{Kind: EventRunEnded, State: Ended, Err: err})
	return err
}

func (e *Engine) loadHighscore() int {
	if e.store == nil {
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.StoreTimeout)
	defer cancel()

	score, err := e.store.LoadHighscore(ctx)
	if err != nil {
		e.log.Printf("[ENGINE] highscore load failed, starting from 0: %v", err)
		return 0
	}
	return score
}

func (e *Engine) saveHighscore() error {
	if e.store == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.StoreTimeout)
	defer cancel()

	if err := e.store.SaveHighscore(ctx, e.board.Highscore()); err != nil {
		return fmt.Errorf("save highscore: %w", err)
	}
	return nil
}

func (e *Engine) setState(state RunState) {
	e.state = state
	e.emit(Event{Kind: EventStateChanged, State: state})
}

func (e *Engine) emit(ev Event) {
	e.version++
	for _, fn := range e.listeners {
		fn(ev)
	}
}

func (e *Engine) violation(msg string) {
	if e.cfg.Strict {
		panic("tetris: invariant violation: " + msg)
	}
	e.log.Printf("[ENGINE] invariant violation: %s", msg)
}
