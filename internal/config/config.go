// Package config provides configuration for the chess command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent     = 0 // nothing
	Session    = 1 // session start, resume and end
	Commentary = 2 // every move and rejection
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// StartFEN is the position a new game starts from; empty means the
	// standard starting position.
	StartFEN string

	Output  OutputConfig
	Journal JournalConfig

	// Streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Session,
		Output:     *NewOutputConfig(),
		Journal:    *NewJournalConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the board and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream log lines are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the options can be used together.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d not in %d..%d: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" && c.Journal.Resume != "" {
		return fmt.Errorf("a start position cannot be combined with resuming a game: %w", errors.ErrInvalidConfig)
	}
	return c.Journal.Validate()
}
