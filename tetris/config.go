package tetris

import (
	"log"
	"time"
)

// Config holds the engine's tunables.
type Config struct {
	Rows         int
	Cols         int
	Spawn        Position
	BaseInterval time.Duration
	// Strict makes invariant violations panic instead of being logged.
	Strict bool
	// StoreTimeout bounds each highscore load and save.
	StoreTimeout time.Duration
	Logger       *log.Logger
}

// DefaultConfig returns the standard 24 x 10 playfield configuration.
func DefaultConfig() Config {
	return Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Spawn:        SpawnAnchor,
		BaseInterval: BaseTickInterval,
		StoreTimeout: 2 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Rows <= 0 {
		c.Rows = d.Rows
	}
	if c.Cols <= 0 {
		c.Cols = d.Cols
	}
	if c.BaseInterval <= 0 {
		c.BaseInterval = d.BaseInterval
	}
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = d.StoreTimeout
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}
