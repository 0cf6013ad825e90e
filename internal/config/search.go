package config

import (
	"fmt"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/errors"
)

// MaxDepth bounds the search depth accepted from the command line. The
// number of positions grows exponentially with depth.
const MaxDepth = 12

// SearchConfig holds settings for the forced-mate search.
type SearchConfig struct {
	// Depth is the maximum number of half-moves in a mate line
	Depth int

	// ToMove is the side that moves first
	ToMove chess.Colour

	// Workers is the number of goroutines expanding each generation
	Workers int

	// MaxNodes stops the search after this many boards (0 = no limit)
	MaxNodes int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		ToMove:  chess.White,
		Workers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxNodes < 0 {
		return fmt.Errorf("node limit (%d) must not be negative: %w", s.MaxNodes, errors.ErrInvalidConfig)
	}
	return nil
}
