package config

// OutputConfig holds settings related to drawing the board.
type OutputConfig struct {
	// Colour enables ANSI colours for squares and pieces
	Colour bool

	// Unicode draws chess glyphs instead of FEN letters
	Unicode bool

	// ClearScreen clears the terminal before each board
	ClearScreen bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:      true,
		ClearScreen: true,
	}
}
