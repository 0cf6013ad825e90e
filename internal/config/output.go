package config

import (
	"fmt"

	"github.com/lgbarn/matesearch-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// MaxLineLength is the maximum line length for text output
	MaxLineLength uint

	// ShowBoards prints the mating position under each line
	ShowBoards bool

	// ShowGenerations adds per-ply statistics to the report
	ShowGenerations bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
