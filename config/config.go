// Package config reads blockfall settings from the environment. Mains call
// godotenv.Load first so a local .env file can supply them.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

// Randomizer names accepted in BLOCKFALL_RANDOMIZER.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

type Config struct {
	Rows         int
	Cols         int
	BaseInterval time.Duration
	Strict       bool
	Randomizer   string
	Seed         uint64

	Highscore highscore.Options
}

// Load builds a Config from the environment. Invalid values are logged and
// replaced by their defaults.
func Load() *Config {
	timeout := GetEnvAsDuration("HIGHSCORE_TIMEOUT_MS", 2000*time.Millisecond)

	cfg := &Config{
		Rows:         GetEnvAsInt("BLOCKFALL_ROWS", tetris.DefaultRows),
		Cols:         GetEnvAsInt("BLOCKFALL_COLS", tetris.DefaultCols),
		BaseInterval: GetEnvAsDuration("BLOCKFALL_BASE_INTERVAL_MS", tetris.BaseTickInterval),
		Strict:       GetEnvAsBool("BLOCKFALL_STRICT", false),
		Randomizer:   strings.ToLower(GetEnv("BLOCKFALL_RANDOMIZER", RandomizerUniform)),
		Seed:         uint64(max(GetEnvAsInt("BLOCKFALL_SEED", 0), 0)),

		Highscore: highscore.Options{
			Backend:       strings.ToLower(GetEnv("HIGHSCORE_BACKEND", highscore.BackendFile)),
			Path:          GetEnv("HIGHSCORE_PATH", highscore.DefaultPath),
			RedisURL:      GetEnv("REDIS_URL", "localhost:6379"),
			RedisPassword: GetEnv("REDIS_PASSWORD", ""),
			RedisKey:      GetEnv("REDIS_KEY", highscore.DefaultRedisKey),
			DatabaseURL:   GetEnv("DATABASE_URL", ""),
			MaxOpenConns:  GetEnvAsInt("DB_MAX_OPEN_CONNS", 4),
			MaxIdleConns:  GetEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			Timeout:       timeout,
		},
	}

	if cfg.Randomizer != RandomizerUniform && cfg.Randomizer != RandomizerBag {
		log.Printf("[CONFIG] Unknown randomizer %q, using %s", cfg.Randomizer, RandomizerUniform)
		cfg.Randomizer = RandomizerUniform
	}

	return cfg
}

// EngineConfig maps the settings onto the engine's configuration.
func (c *Config) EngineConfig() tetris.Config {
	ec := tetris.DefaultConfig()
	ec.Rows = c.Rows
	ec.Cols = c.Cols
	ec.BaseInterval = c.BaseInterval
	ec.Strict = c.Strict
	ec.StoreTimeout = c.Highscore.Timeout
	return ec
}

// ShapeSource returns the configured randomizer.
func (c *Config) ShapeSource() tetris.ShapeSource {
	if c.Randomizer == RandomizerBag {
		return tetris.NewBagSource(c.Seed)
	}
	return tetris.NewUniformSource(c.Seed)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads a whole number of milliseconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	ms, err := strconv.Atoi(valueStr)
	if err != nil || ms <= 0 {
		log.Printf("[CONFIG] Invalid millisecond value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
