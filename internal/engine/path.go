package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isPathClear reports whether every square strictly between the move's
// endpoints is empty. The endpoints must already be known to lie on a line.
func isPathClear(board *chess.Board, m chess.Move) bool {
	for _, sq := range chess.Between(m.From, m.To) {
		if board.IsOccupied(sq) {
			return false
		}
	}
	return true
}
