package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply performs moves in order, stopping at the first one that is rejected.
// The error is a *errors.MoveError carrying that move's ply; moves before it
// remain played.
func (g *Gamestate) Apply(moves ...chess.Move) error {
	for _, m := range moves {
		ply := int(g.fullmoveClock) + 1
		if err := g.PerformMove(m); err != nil {
			return &errors.MoveError{Err: err, Ply: ply, MoveText: m.String()}
		}
	}
	return nil
}

// Replay plays moves from the standard starting position. On error it
// returns the game as it stood before the rejected move.
func Replay(moves []chess.Move) (*Gamestate, error) {
	g := NewGamestate()
	err := g.Apply(moves...)
	return g, err
}
