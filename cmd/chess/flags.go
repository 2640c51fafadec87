// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Display options
	noColour = flag.Bool("nocolour", false, "Draw the board without colours")
	unicode  = flag.Bool("unicode", false, "Draw pieces as chess glyphs")
	noClear  = flag.Bool("noclear", false, "Don't clear the terminal before each board")

	// Game options
	startFEN = flag.String("fen", "", "Start a new game from this FEN position")

	// Journal
	journalDir = flag.String("journal", "", "Record games in this journal directory")
	resumeID   = flag.String("resume", "", "Resume the journalled game with this id")
	listGames  = flag.Bool("list", false, "List journalled games and exit")

	// Logging
	logFile   = flag.String("log", "", "Write diagnostics to log file")
	appendLog = flag.String("appendlog", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Session, "Log verbosity: 0 silent, 1 session events, 2 every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// configFromFlags builds the configuration from the command-line flags.
// Colour is also dropped when stdout is not a terminal.
func configFromFlags() *config.Config {
	return config.NewConfigBuilder().
		WithColour(!*noColour && !color.NoColor).
		WithUnicode(*unicode).
		WithClearScreen(!*noClear).
		WithJournal(*journalDir).
		WithResume(*resumeID).
		WithListGames(*listGames).
		WithStartFEN(*startFEN).
		WithVerbosity(*verbosity).
		Build()
}
