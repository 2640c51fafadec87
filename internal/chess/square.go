package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a bounds-checked board coordinate. File 0 is the a-file and
// rank 0 is White's back rank. The zero value is a1.
type Square struct {
	x, y int8
}

// NewSquare returns the square at file x, rank y (both 0-7).
func NewSquare(x, y int) (Square, error) {
	if !onBoard(x, y) {
		return Square{}, fmt.Errorf("(%d, %d): %w", x, y, errors.ErrSquareOutOfRange)
	}
	return Square{x: int8(x), y: int8(y)}, nil
}

// mustSquare builds a square from coordinates already known to be on the board.
func mustSquare(x, y int) Square {
	sq, err := NewSquare(x, y)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses an algebraic square such as "e2".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Expected: "file and rank",
			Got:      fmt.Sprintf("%d characters", len(text)),
		}
	}

	file, rank := text[0], text[1]
	if file < FileBase || file > LastFile {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < RankBase || rank > LastRank {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    text,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}

	return Square{x: int8(file - FileBase), y: int8(rank - RankBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed text.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the 0-based file (a=0).
func (s Square) File() int { return int(s.x) }

// Rank returns the 0-based rank (1=0).
func (s Square) Rank() int { return int(s.y) }

// String returns the algebraic name of the square.
func (s Square) String() string {
	return string([]byte{byte(FileBase + s.x), byte(RankBase + s.y)})
}

// Between returns the squares strictly between a and b, ordered from a.
// It is empty unless a and b share a rank, file or diagonal.
func Between(a, b Square) []Square {
	adx, ady := abs(b.File()-a.File()), abs(b.Rank()-a.Rank())
	if adx != 0 && ady != 0 && adx != ady {
		return nil
	}
	dx := sign(b.File() - a.File())
	dy := sign(b.Rank() - a.Rank())

	var squares []Square
	x, y := a.File()+dx, a.Rank()+dy
	for x != b.File() || y != b.Rank() {
		squares = append(squares, mustSquare(x, y))
		x += dx
		y += dy
	}
	return squares
}

// AllSquares returns the 64 squares in a1, b1, ..., h8 order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			squares = append(squares, mustSquare(x, y))
		}
	}
	return squares
}

func onBoard(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
