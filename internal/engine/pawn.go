package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// enPassantVictim returns the square of the pawn that m would capture en
// passant. It applies only when a pawn lands on the current target square and
// an enemy pawn sits beside the mover's source, on the target's file.
func (g *Gamestate) enPassantVictim(mover chess.Piece, m chess.Move) (chess.Square, bool) {
	if !g.hasEnPassant || mover.Kind != chess.Pawn || m.To != g.enPassant {
		return chess.Square{}, false
	}
	if g.board.IsOccupied(m.To) {
		return chess.Square{}, false
	}

	victim, err := chess.NewSquare(m.To.File(), m.From.Rank())
	if err != nil {
		return chess.Square{}, false
	}
	p, ok := g.board.PieceAt(victim)
	if !ok || p.Kind != chess.Pawn || p.Colour == mover.Colour {
		return chess.Square{}, false
	}
	return victim, true
}

// updateEnPassant sets the target square after a pawn's double step and
// clears it after any other move.
func (g *Gamestate) updateEnPassant(m chess.Move, moved chess.Piece) {
	g.enPassant, g.hasEnPassant = chess.Square{}, false

	_, dy := m.Delta()
	if moved.Kind != chess.Pawn || (dy != 2 && dy != -2) {
		return
	}
	passed, err := chess.NewSquare(m.From.File(), m.From.Rank()+dy/2)
	if err != nil {
		return
	}
	g.enPassant, g.hasEnPassant = passed, true
}
