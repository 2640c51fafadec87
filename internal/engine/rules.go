package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateMove reports whether m is legal for the side to move, without
// changing the game. Checks run in a fixed order and the first failure wins:
//
//  1. a piece stands on the source square
//  2. it belongs to the side to move
//  3. its pattern allows the move (capture pattern when taking)
//  4. nothing stands in the way, unless it is a knight
//  5. it does not take a piece of its own colour
//  6. its own king is not attacked afterwards
func (g *Gamestate) ValidateMove(m chess.Move) error {
	mover, ok := g.board.PieceAt(m.From)
	if !ok {
		return errors.ErrNoPieceAtMoveSource
	}
	if mover.Colour != g.turn {
		return errors.ErrEnemyPieceAtMoveSource
	}

	target, occupied := g.board.PieceAt(m.To)
	_, enPassant := g.enPassantVictim(mover, m)

	if err := checkReach(&g.board, mover, m, occupied || enPassant); err != nil {
		return err
	}
	if occupied && target.Colour == mover.Colour {
		return errors.ErrCannotCaptureFriendly
	}
	if g.leavesKingAttacked(m) {
		return errors.ErrCannotSelfCheck
	}
	return nil
}

// checkReach checks the piece's pattern for m and, for sliding pieces, that
// the path is clear. capture selects the capture pattern.
func checkReach(board *chess.Board, mover chess.Piece, m chess.Move, capture bool) error {
	validity := mover.PatternLegality(m)
	legal := validity.Standard
	if capture {
		legal = validity.Capture
	}
	if !legal {
		return errors.ErrInvalidMovePattern
	}
	if mover.Kind != chess.Knight && !isPathClear(board, m) {
		return errors.ErrMoveCollisionOccurs
	}
	return nil
}

// leavesKingAttacked plays m on a throwaway copy and reports whether the
// mover's king is then attacked.
func (g *Gamestate) leavesKingAttacked(m chess.Move) bool {
	trial := *g
	colour := trial.turn
	trial.movePiece(m)

	king := findKing(&trial.board, colour)
	return AttackedSquares(&trial.board, colour.Opposite()).Has(king)
}
