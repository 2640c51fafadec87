package engine

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SquareSet is a set of squares, one bit per square in a1..h8 order.
type SquareSet uint64

func bit(sq chess.Square) SquareSet {
	return 1 << uint(sq.Rank()*chess.BoardSize+sq.File())
}

// Add puts sq in the set.
func (s *SquareSet) Add(sq chess.Square) {
	*s |= bit(sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq chess.Square) bool {
	return s&bit(sq) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares lists the set's squares in a1..h8 order.
func (s SquareSet) Squares() []chess.Square {
	var squares []chess.Square
	for _, sq := range allSquares {
		if s.Has(sq) {
			squares = append(squares, sq)
		}
	}
	return squares
}

var allSquares = chess.AllSquares()

// AttackedSquares returns every square a piece of colour by could capture on,
// whether or not anything stands there. Each piece's capture pattern is used,
// so pawns attack diagonally only, and sliding pieces stop at the first
// occupied square.
func AttackedSquares(board *chess.Board, by chess.Colour) SquareSet {
	var attacked SquareSet
	board.ForEach(func(from chess.Square, p chess.Piece) {
		if p.Colour != by {
			return
		}
		for _, to := range allSquares {
			if to == from || attacked.Has(to) {
				continue
			}
			if checkReach(board, p, chess.NewMove(from, to), true) == nil {
				attacked.Add(to)
			}
		}
	})
	return attacked
}

// IsInCheck returns true if the given colour's king is attacked.
func (g *Gamestate) IsInCheck(colour chess.Colour) bool {
	return AttackedSquares(&g.board, colour.Opposite()).Has(g.KingSquare(colour))
}

// findKing finds the king of the given colour on the board. A missing king
// means the position is corrupt, so it panics.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	kings := board.Find(chess.King, colour)
	if len(kings) == 0 {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	return kings[0]
}
