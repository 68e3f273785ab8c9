package config

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxWorkers caps the perft worker count.
const MaxWorkers = 256

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Workers is the number of goroutines splitting the root moves
	Workers int

	// UseCache enables the shared transposition cache
	UseCache bool

	// CacheCapacity limits the cache entries (0 = unlimited)
	CacheCapacity int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 1,
	}
}

// Validate checks the perft settings.
func (c *PerftConfig) Validate() error {
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d out of range 1-%d", c.Workers, MaxWorkers)
	}
	if c.CacheCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative cache capacity %d", c.CacheCapacity)
	}
	return nil
}
