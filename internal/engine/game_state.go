// Package engine validates chess moves and advances the game state.
//
// A Gamestate changes only through PerformMove. A move is checked in full
// against a read-only view of the position before any field is written, so a
// rejected move leaves the state exactly as it was.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Gamestate is the complete state of one game.
//
// The fullmove clock counts every half-move, starting from zero; FEN export
// converts it to the standard move number.
type Gamestate struct {
	board chess.Board
	turn  chess.Colour

	// Always equal to the kings' board squares after a completed move.
	whiteKing chess.Square
	blackKing chess.Square

	castling CastlingRights

	// Valid only for the move directly after the double step that set it.
	enPassant    chess.Square
	hasEnPassant bool

	halfmoveClock uint
	fullmoveClock uint
}

// NewGamestate creates a game at the standard starting position, White to move.
func NewGamestate() *Gamestate {
	g := &Gamestate{
		board:    *chess.NewStandardBoard(),
		turn:     chess.White,
		castling: AllCastlingRights(),
	}
	g.refreshKings()
	return g
}

// Board returns a copy of the board for rendering or inspection.
func (g *Gamestate) Board() chess.Board {
	return g.board
}

// Turn returns the colour to move.
func (g *Gamestate) Turn() chess.Colour {
	return g.turn
}

// KingSquare returns the cached square of the given colour's king.
func (g *Gamestate) KingSquare(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return g.whiteKing
	}
	return g.blackKing
}

// CastlingRights returns the remaining castling rights.
func (g *Gamestate) CastlingRights() CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square a pawn may capture onto en passant, if any.
func (g *Gamestate) EnPassantTarget() (chess.Square, bool) {
	return g.enPassant, g.hasEnPassant
}

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (g *Gamestate) HalfmoveClock() uint {
	return g.halfmoveClock
}

// FullmoveClock returns the number of half-moves played.
func (g *Gamestate) FullmoveClock() uint {
	return g.fullmoveClock
}

// PerformMove validates m and, if it is legal, plays it. On error the
// state is unchanged.
func (g *Gamestate) PerformMove(m chess.Move) error {
	if err := g.ValidateMove(m); err != nil {
		return err
	}
	wasCapture := g.movePiece(m)
	g.updateGamestate(m, wasCapture)
	return nil
}

// Clone returns an independent copy of the game.
func (g *Gamestate) Clone() *Gamestate {
	c := *g
	return &c
}

// movePiece copies the source square's contents to the destination and clears
// the source, removing a pawn captured en passant. It reports whether anything
// was captured. It does no legality checking.
func (g *Gamestate) movePiece(m chess.Move) bool {
	mover, _ := g.board.PieceAt(m.From)
	wasCapture := g.board.IsOccupied(m.To)

	if victim, ok := g.enPassantVictim(mover, m); ok {
		g.board.Clear(victim)
		wasCapture = true
	}

	g.board.Set(m.To, mover)
	g.board.Clear(m.From)
	return wasCapture
}

// updateGamestate brings the bookkeeping in line with a move movePiece has
// just applied.
func (g *Gamestate) updateGamestate(m chess.Move, wasCapture bool) {
	moved, ok := g.board.PieceAt(m.To)
	if !ok {
		panic(fmt.Sprintf("engine: no piece on %s after moving it there", m.To))
	}
	moved.IncrementMoveCount()
	g.board.Set(m.To, moved)

	if wasCapture || moved.Kind == chess.Pawn {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	g.fullmoveClock++

	g.refreshKings()
	g.castling.revoke(&g.board)
	g.updateEnPassant(m, moved)

	g.turn = g.turn.Opposite()
}

// refreshKings rescans the board for both kings.
func (g *Gamestate) refreshKings() {
	g.whiteKing = findKing(&g.board, chess.White)
	g.blackKing = findKing(&g.board, chess.Black)
}
