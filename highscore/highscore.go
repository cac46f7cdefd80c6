// Package highscore persists the single best score across runs. Every backend
// stores the score as its decimal text so it stays readable by hand.
package highscore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrCorrupt is returned by LoadHighscore when the stored value is not a
	// non-negative integer. The engine treats it like a missing score.
	ErrCorrupt = errors.New("highscore: stored value is not a score")

	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("highscore: unknown backend")
)

// Store is a tetris.HighscoreStore that holds resources until closed.
type Store interface {
	tetris.HighscoreStore
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend string

	// Path is the file backend's location.
	Path string

	RedisURL      string
	RedisPassword string
	RedisKey      string

	DatabaseURL  string
	MaxOpenConns int
	MaxIdleConns int

	// Timeout bounds connecting and preparing the backend.
	Timeout time.Duration
}

// Open connects the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Path), nil
	case BackendMemory:
		return NewMemoryStore(0), nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisURL,
			Password: opts.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", opts.RedisURL, err)
		}
		return NewRedisStore(client, opts.RedisKey), nil
	case BackendPostgres:
		store, err := OpenPostgres(ctx, opts.DatabaseURL, opts.MaxOpenConns, opts.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// parseScore parses the stored text form of a score.
func parseScore(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	score, err := strconv.Atoi(trimmed)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, trimmed)
	}
	return score, nil
}

func formatScore(score int) string {
	return strconv.Itoa(max(score, 0))
}
