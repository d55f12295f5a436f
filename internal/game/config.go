package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed       = "SHINOBIDUEL_SEED"
	EnvMaxEnemies = "SHINOBIDUEL_MAX_ENEMIES"
	EnvLevel      = "SHINOBIDUEL_LEVEL"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible matches.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// MaxEnemies caps how many secondary enemies may be on the stage at once.
	// Zero disables enemy waves: the match is a plain one-on-one duel.
	MaxEnemies int

	// Level is the starting level shown on the HUD; enemies spawn at this level.
	Level int
}

// DefaultConfig returns a one-on-one duel at level 1 with a random seed.
func DefaultConfig() Config {
	return Config{Level: 1}
}

// ConfigFromEnv builds a config from environment variables, starting from the defaults.
// Unset variables keep their default value.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		cfg.Seed = ParseSeed(v)
	}

	if v := strings.TrimSpace(getenv(EnvMaxEnemies)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvMaxEnemies, v, err)
		}
		if n < 0 {
			return cfg, fmt.Errorf("invalid %s %q: must not be negative", EnvMaxEnemies, v)
		}
		cfg.MaxEnemies = n
	}

	if v := strings.TrimSpace(getenv(EnvLevel)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvLevel, v, err)
		}
		if n < 1 {
			return cfg, fmt.Errorf("invalid %s %q: must be at least 1", EnvLevel, v)
		}
		cfg.Level = n
	}

	return cfg, nil
}

// ParseSeed turns a seed string into a seed value. Integers are used as-is;
// anything else (e.g. "kamui") is hashed so memorable phrases replay the same match.
func ParseSeed(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(s))
}
