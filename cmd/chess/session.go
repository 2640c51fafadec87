package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/journal"
	"github.com/lgbarn/chessrules-go/internal/render"
)

const helpText = `  e2 e4    move the piece on e2 to e4 (e2e4 also works)
  board    draw the board again
  fen      print the position as FEN
  help     show this help
  quit     leave the game
`

const clearScreen = "\x1b[2J\x1b[1;1H"

// rejections maps each rule error to the text shown to the player.
var rejections = []struct {
	err  error
	text string
}{
	{errors.ErrInvalidMovePattern, "The piece you selected cannot move in the way specified."},
	{errors.ErrMoveCollisionOccurs, "Pieces other than Knights cannot move through other pieces."},
	{errors.ErrCannotCaptureFriendly, "You cannot capture your own pieces."},
	{errors.ErrCannotSelfCheck, "You cannot move into check."},
	{errors.ErrEnemyPieceAtMoveSource, "You cannot move an enemy piece."},
	{errors.ErrNoPieceAtMoveSource, "There is no piece at the selected tile."},
}

// rejectionText returns the player-facing text for a move error.
func rejectionText(err error) string {
	if errors.IsRuleViolation(err) {
		for _, r := range rejections {
			if stderrors.Is(err, r.err) {
				return r.text
			}
		}
	}
	var parseErr *errors.ParseError
	if stderrors.As(err, &parseErr) {
		return fmt.Sprintf("That is not a move (%v). Enter two squares, for example e2 e4.", parseErr)
	}
	return err.Error()
}

// outcome is what a line of input did to the session.
type outcome int

const (
	stay  outcome = iota // prompt again
	moved                // redraw the board
	quit
)

// Session plays one game over a line-oriented terminal.
type Session struct {
	cfg      *config.Config
	game     *engine.Gamestate
	renderer *render.Renderer

	journal *journal.Journal // nil when not journalling
	gameID  uuid.UUID
}

// NewSession creates a session for game. j may be nil.
func NewSession(cfg *config.Config, game *engine.Gamestate, j *journal.Journal, id uuid.UUID) *Session {
	return &Session{
		cfg:  cfg,
		game: game,
		renderer: render.New(render.Options{
			Colour:  cfg.Output.Colour,
			Unicode: cfg.Output.Unicode,
		}),
		journal: j,
		gameID:  id,
	}
}

// Run reads commands and moves from in until quit or end of input.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	out := s.cfg.OutputFile

	for {
		if s.cfg.Output.ClearScreen {
			fmt.Fprint(out, clearScreen)
		}
		if err := s.renderer.Game(out, s.game); err != nil {
			return err
		}

		for result := stay; result == stay; {
			fmt.Fprint(out, "Enter a move: ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				logf(s.cfg, config.Session, "input closed after %d plies\n", s.game.FullmoveClock())
				return scanner.Err()
			}

			var err error
			result, err = s.handle(scanner.Text())
			if err != nil {
				return err
			}
			if result == quit {
				logf(s.cfg, config.Session, "quit at move %d\n", s.game.MoveNumber())
				return nil
			}
		}
	}
}

// handle acts on one line of input.
func (s *Session) handle(line string) (outcome, error) {
	out := s.cfg.OutputFile
	line = strings.TrimSpace(line)

	switch strings.ToLower(line) {
	case "":
		return stay, nil
	case "quit", "exit":
		return quit, nil
	case "help":
		fmt.Fprint(out, helpText)
		return stay, nil
	case "fen":
		fmt.Fprintln(out, s.game.FEN())
		return stay, nil
	case "board":
		return moved, nil
	}

	m, err := chess.ParseMove(line)
	if err != nil {
		fmt.Fprintf(out, "%s\n\n", rejectionText(err))
		logf(s.cfg, config.Commentary, "unreadable input %q: %v\n", line, err)
		return stay, nil
	}

	if err := s.game.PerformMove(m); err != nil {
		fmt.Fprintf(out, "%s\n\n", rejectionText(err))
		logf(s.cfg, config.Commentary, "%s rejected %s: %v\n", s.game.Turn(), m, err)
		return stay, nil
	}

	ply := int(s.game.FullmoveClock())
	logf(s.cfg, config.Commentary, "ply %d: %s\n", ply, m)
	if s.journal != nil {
		if err := s.journal.Append(s.gameID, ply, m); err != nil {
			return stay, errors.Wrapf(err, "journal ply %d", ply)
		}
	}
	return moved, nil
}
