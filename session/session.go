// Package session wires an engine, its highscore store and a scheduler
// together for a frontend, and translates frontend-neutral actions into loop
// commands.
package session

import (
	"context"
	"log"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Session owns one engine and the loop that drives it.
type Session struct {
	Config    *config.Config
	Engine    *tetris.Engine
	Scheduler *loop.Scheduler
	Gravity   *loop.GravitySystem
	Sweep     *loop.SweepSystem

	store highscore.Store
	log   *log.Logger
}

// New opens the configured highscore store and builds the engine and
// scheduler. A backend that cannot be reached is replaced by the file store,
// so New always returns a playable session.
//
// inputs run first in every frame, ahead of gravity, so their commands apply
// to the piece they observed.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger, inputs ...loop.System) *Session {
	if logger == nil {
		logger = log.Default()
	}

	store := openStore(ctx, cfg.Highscore, logger)

	engineCfg := cfg.EngineConfig()
	engineCfg.Logger = logger
	engine := tetris.NewEngine(engineCfg, cfg.ShapeSource(), store)

	sweep := &loop.SweepSystem{}
	engine.SetRunEndHandler(sweep)

	gravity := &loop.GravitySystem{MaxTicksPerFrame: 4}

	scheduler := loop.NewScheduler(engine)
	scheduler.SetLogger(logger)
	for _, input := range inputs {
		scheduler.Register(input)
	}
	scheduler.Register(gravity)
	scheduler.Register(sweep)

	logger.Printf("[ENGINE] %dx%d board, %s randomizer, highscore %d", cfg.Cols, cfg.Rows, cfg.Randomizer, engine.Highscore())

	return &Session{
		Config:    cfg,
		Engine:    engine,
		Scheduler: scheduler,
		Gravity:   gravity,
		Sweep:     sweep,
		store:     store,
		log:       logger,
	}
}

func openStore(ctx context.Context, opts highscore.Options, logger *log.Logger) highscore.Store {
	store, err := highscore.Open(ctx, opts)
	if err == nil {
		return store
	}

	fallback := highscore.NewFileStore(opts.Path)
	logger.Printf("[HIGHSCORE] %s backend unavailable: %v; using %s", opts.Backend, err, fallback.Path())
	return fallback
}

// Store returns the highscore store in use.
func (s *Session) Store() highscore.Store {
	return s.store
}

// Do submits the command bound to action. It is applied at the start of the
// next frame and is safe to call from any goroutine.
func (s *Session) Do(action Action) {
	cmd, ok := action.Command()
	if !ok {
		return
	}
	s.Scheduler.Mailbox().Submit(cmd)
}

// Frame advances the session by dt seconds.
func (s *Session) Frame(dt float64) {
	s.Scheduler.Once(dt)
}

// Close ends a run in progress, which saves its highscore, and releases the
// store.
func (s *Session) Close() error {
	if state := s.Engine.State(); state == tetris.Running || state == tetris.Paused {
		if err := s.Engine.End(); err != nil {
			s.log.Printf("[HIGHSCORE] save on close failed: %v", err)
		}
	}
	return s.store.Close()
}
