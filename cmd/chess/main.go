// chess is a two-player chess game for the terminal. Moves are entered as
// a pair of squares, for example "e2 e4", and checked against the rules
// before they are played.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/journal"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := configFromFlags()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)

	if err := run(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// run opens the journal if one is configured, then either lists its games
// or plays a game read from in.
func run(cfg *config.Config, in io.Reader) error {
	var j *journal.Journal
	if cfg.Journal.Enabled() {
		var err error
		j, err = journal.Open(cfg.Journal.Dir)
		if err != nil {
			return err
		}
		defer j.Close()
	}

	if cfg.Journal.List {
		return printGames(cfg.OutputFile, j)
	}

	game, id, err := startGame(cfg, j)
	if err != nil {
		return err
	}
	return NewSession(cfg, game, j, id).Run(in)
}

// startGame resumes a journalled game or starts a new one, recording it in
// the journal when there is one.
func startGame(cfg *config.Config, j *journal.Journal) (*engine.Gamestate, uuid.UUID, error) {
	if id, ok := cfg.Journal.ResumeID(); ok {
		game, err := j.Resume(id)
		if err != nil {
			return nil, uuid.Nil, fmt.Errorf("resume %s: %w", id, err)
		}
		logf(cfg, config.Session, "resumed game %s at move %d\n", id, game.MoveNumber())
		return game, id, nil
	}

	game := engine.NewGamestate()
	if cfg.StartFEN != "" {
		var err error
		game, err = engine.NewGamestateFromFEN(cfg.StartFEN)
		if err != nil {
			return nil, uuid.Nil, err
		}
	}

	if j == nil {
		logf(cfg, config.Session, "new game\n")
		return game, uuid.Nil, nil
	}
	id, err := j.NewGameFrom(cfg.StartFEN)
	if err != nil {
		return nil, uuid.Nil, err
	}
	logf(cfg, config.Session, "new game %s\n", id)
	return game, id, nil
}

// printGames lists the journalled games with their move counts.
func printGames(w io.Writer, j *journal.Journal) error {
	games, err := j.Games()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded.")
		return nil
	}

	for _, g := range games {
		moves, err := j.Moves(g.ID)
		if err != nil {
			return err
		}
		start := "standard start"
		if g.StartFEN != "" {
			start = g.StartFEN
		}
		fmt.Fprintf(w, "%s  %s  %3d plies  %s\n", g.ID, g.Created.Local().Format("2006-01-02 15:04"), len(moves), start)
	}
	return nil
}

// logf writes to the log file when the configured verbosity reaches level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring play:\n")
	fmt.Fprintf(os.Stderr, "%s", helpText)
}
