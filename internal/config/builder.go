package config

import "io"

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

// WithOutputFormat sets the move notation.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONSingle writes one JSON object per game.
func (b *ConfigBuilder) WithJSONSingle(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONSingle = enabled
	return b
}

// WithFENOutput adds the final position to the output.
func (b *ConfigBuilder) WithFENOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.OutputFEN = enabled
	return b
}

// WithWorkers sets the perft worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCache enables the perft cache with the given capacity.
func (b *ConfigBuilder) WithCache(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Perft.UseCache = enabled
	b.cfg.Perft.CacheCapacity = capacity
	return b
}

// WithInvariantChecks enables game state checks after every move.
func (b *ConfigBuilder) WithInvariantChecks(enabled bool) *ConfigBuilder {
	b.cfg.InvariantChecks = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithOutputFilename records the name of the output file.
func (b *ConfigBuilder) WithOutputFilename(name string) *ConfigBuilder {
	b.cfg.OutputFilename = name
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

// KeepMoveNumbers controls whether move numbers are kept.
func (b *ConfigBuilder) KeepMoveNumbers(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepMoveNumbers = keep
	return b
}

// KeepResults controls whether the result marker is kept.
func (b *ConfigBuilder) KeepResults(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepResults = keep
	return b
}

// KeepChecks controls whether check symbols are kept.
func (b *ConfigBuilder) KeepChecks(keep bool) *ConfigBuilder {
	b.cfg.Output.KeepChecks = keep
	return b
}
