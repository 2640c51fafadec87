package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkNewGamestateFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewGamestateFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g, _ := NewGamestateFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.FEN()
			}
		})
	}
}

func BenchmarkPerformMove(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2 e4"},
		{"PieceMove", benchFENs["Initial"], "g1 f3"},
		{"Capture", benchFENs["Complex"], "e5 f7"},
		{"EnPassant", benchFENs["EnPassant"], "f5 e6"},
		{"Rejected", benchFENs["Midgame"], "c4 g8"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			g, _ := NewGamestateFromFEN(tt.fen)
			m := chess.MustParseMove(tt.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c := g.Clone()
				c.PerformMove(m)
			}
		})
	}
}

func BenchmarkReplay_ItalianOpening(b *testing.B) {
	var moves []chess.Move
	for _, text := range []string{"e2 e4", "e7 e5", "g1 f3", "b8 c6", "f1 c4", "f8 c5"} {
		moves = append(moves, chess.MustParseMove(text))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Replay(moves)
	}
}

func BenchmarkAttackedSquares(b *testing.B) {
	for _, name := range []string{"Initial", "Midgame", "Complex"} {
		b.Run(name, func(b *testing.B) {
			g, _ := NewGamestateFromFEN(benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AttackedSquares(&g.board, chess.White)
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		g, _ := NewGamestateFromFEN(benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.IsInCheck(chess.White)
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		g, _ := NewGamestateFromFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.IsInCheck(chess.White)
		}
	})
}
