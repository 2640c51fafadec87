package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is an ordered source/destination pair. Source and destination are
// expected to differ, but that is left to the rules engine.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses "<square> <square>", for example "e2 e4".
// The compact form "e2e4" is also accepted.
func ParseMove(text string) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    strings.TrimSpace(text),
			Expected: "two squares",
			Got:      fmt.Sprintf("%d tokens", len(fields)),
		}
	}

	from, err := ParseSquare(fields[0])
	if err != nil {
		return Move{}, errors.Wrap(err, "source")
	}
	to, err := ParseSquare(fields[1])
	if err != nil {
		return Move{}, errors.Wrap(err, "destination")
	}

	return Move{From: from, To: to}, nil
}

// MustParseMove is like ParseMove but panics on malformed text.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the move in "e2 e4" form.
func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// Delta returns the file and rank displacement of the move.
func (m Move) Delta() (dx, dy int) {
	return m.To.File() - m.From.File(), m.To.Rank() - m.From.Rank()
}
