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

// WithColour enables or disables coloured output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithUnicode enables or disables chess glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithClearScreen controls whether the terminal is cleared before each board.
func (b *ConfigBuilder) WithClearScreen(enabled bool) *ConfigBuilder {
	b.cfg.Output.ClearScreen = enabled
	return b
}

// WithJournal sets the journal directory.
func (b *ConfigBuilder) WithJournal(dir string) *ConfigBuilder {
	b.cfg.Journal.Dir = dir
	return b
}

// WithResume sets the id of the game to resume.
func (b *ConfigBuilder) WithResume(id string) *ConfigBuilder {
	b.cfg.Journal.Resume = id
	return b
}

// WithListGames makes the command list journalled games instead of playing.
func (b *ConfigBuilder) WithListGames(enabled bool) *ConfigBuilder {
	b.cfg.Journal.List = enabled
	return b
}

// WithStartFEN sets the starting position for a new game.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
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
