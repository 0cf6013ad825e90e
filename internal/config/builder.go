package config

import (
	"io"

	"github.com/lgbarn/matesearch-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth in half-moves.
func (b *ConfigBuilder) WithDepth(plies int) *ConfigBuilder {
	b.cfg.Search.Depth = plies
	return b
}

// WithToMove sets the side that moves first.
func (b *ConfigBuilder) WithToMove(colour chess.Colour) *ConfigBuilder {
	b.cfg.Search.ToMove = colour
	return b
}

// WithWorkers sets the number of search goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithMaxNodes sets the node limit.
func (b *ConfigBuilder) WithMaxNodes(n int) *ConfigBuilder {
	b.cfg.Search.MaxNodes = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithBoards prints mating positions.
func (b *ConfigBuilder) WithBoards(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoards = enabled
	return b
}

// WithCache enables the result cache in dir.
func (b *ConfigBuilder) WithCache(dir string) *ConfigBuilder {
	b.cfg.Cache.Enabled = true
	b.cfg.Cache.Dir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
