package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// JournalConfig holds settings for the game journal.
type JournalConfig struct {
	// Dir is the journal database directory; empty disables the journal
	Dir string

	// Resume is the id of a journalled game to continue
	Resume string

	// List prints the journalled games and exits
	List bool
}

// NewJournalConfig creates a JournalConfig with default values.
// The journal is disabled by default.
func NewJournalConfig() *JournalConfig {
	return &JournalConfig{}
}

// Enabled reports whether a journal directory is configured.
func (j *JournalConfig) Enabled() bool {
	return j.Dir != ""
}

// Validate checks that the journal configuration is valid.
func (j *JournalConfig) Validate() error {
	if (j.Resume != "" || j.List) && !j.Enabled() {
		return fmt.Errorf("resume and list need a journal directory: %w", errors.ErrInvalidConfig)
	}
	if j.Resume != "" {
		if _, err := uuid.Parse(j.Resume); err != nil {
			return fmt.Errorf("game id %q: %v: %w", j.Resume, err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// ResumeID returns the parsed id of the game to resume.
func (j *JournalConfig) ResumeID() (uuid.UUID, bool) {
	id, err := uuid.Parse(j.Resume)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
