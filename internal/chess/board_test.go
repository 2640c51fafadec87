package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for _, sq := range AllSquares() {
			if p, ok := b.PieceAt(sq); ok {
				t.Errorf("PieceAt(%s) = %v; want empty", sq, p)
			}
		}
	})

	t.Run("ForEach visits nothing", func(t *testing.T) {
		count := 0
		b.ForEach(func(Square, Piece) { count++ })
		if count != 0 {
			t.Errorf("ForEach visited %d squares; want 0", count)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewStandardBoard()

	tests := []struct {
		square string
		piece  Piece
	}{
		// White back rank
		{"a1", NewPiece(Rook, White)},
		{"b1", NewPiece(Knight, White)},
		{"c1", NewPiece(Bishop, White)},
		{"d1", NewPiece(Queen, White)},
		{"e1", NewPiece(King, White)},
		{"f1", NewPiece(Bishop, White)},
		{"g1", NewPiece(Knight, White)},
		{"h1", NewPiece(Rook, White)},
		// Pawns
		{"a2", NewPiece(Pawn, White)},
		{"e2", NewPiece(Pawn, White)},
		{"h7", NewPiece(Pawn, Black)},
		{"d7", NewPiece(Pawn, Black)},
		// Black back rank
		{"a8", NewPiece(Rook, Black)},
		{"d8", NewPiece(Queen, Black)},
		{"e8", NewPiece(King, Black)},
		{"g8", NewPiece(Knight, Black)},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, ok := b.PieceAt(MustParseSquare(tt.square))
			if !ok || got != tt.piece {
				t.Errorf("PieceAt(%s) = %v, %v; want %v", tt.square, got, ok, tt.piece)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for _, sq := range AllSquares() {
			if sq.Rank() >= 2 && sq.Rank() <= 5 && b.IsOccupied(sq) {
				t.Errorf("IsOccupied(%s) = true; want false", sq)
			}
		}
	})

	t.Run("piece count", func(t *testing.T) {
		count := 0
		b.ForEach(func(Square, Piece) { count++ })
		if count != 32 {
			t.Errorf("ForEach visited %d squares; want 32", count)
		}
	})
}

func TestBoard_SetAndClear(t *testing.T) {
	b := NewBoard()
	sq := MustParseSquare("d4")
	knight := Piece{Kind: Knight, Colour: Black, MoveCount: 3}

	b.Set(sq, knight)
	if got, ok := b.PieceAt(sq); !ok || got != knight {
		t.Fatalf("after Set, PieceAt(d4) = %v, %v; want %v", got, ok, knight)
	}

	b.Clear(sq)
	if b.IsOccupied(sq) {
		t.Error("after Clear, IsOccupied(d4) = true; want false")
	}

	b.Set(sq, knight)
	b.Set(sq, Piece{})
	if b.IsOccupied(sq) {
		t.Error("after Set(Empty), IsOccupied(d4) = true; want false")
	}
}

func TestBoard_Find(t *testing.T) {
	b := NewStandardBoard()

	kings := b.Find(King, Black)
	if len(kings) != 1 || kings[0] != MustParseSquare("e8") {
		t.Errorf("Find(King, Black) = %v; want [e8]", kings)
	}
	if got := len(b.Find(Pawn, White)); got != 8 {
		t.Errorf("len(Find(Pawn, White)) = %d; want 8", got)
	}
}

func TestBoard_ValueCopyIsIndependent(t *testing.T) {
	b := NewStandardBoard()
	v := *b
	v.Clear(MustParseSquare("d2"))
	v.Set(MustParseSquare("d4"), NewPiece(Queen, Black))

	if !b.IsOccupied(MustParseSquare("d2")) {
		t.Error("clearing a value copy emptied the original board")
	}
	if b.IsOccupied(MustParseSquare("d4")) {
		t.Error("setting a value copy filled the original board")
	}
}

func TestBoard_ForEachOrder(t *testing.T) {
	b := NewBoard()
	b.Set(MustParseSquare("h8"), NewPiece(King, Black))
	b.Set(MustParseSquare("a1"), NewPiece(King, White))
	b.Set(MustParseSquare("c4"), NewPiece(Rook, White))

	var got []string
	b.ForEach(func(sq Square, _ Piece) { got = append(got, sq.String()) })

	want := []string{"a1", "c4", "h8"}
	if len(got) != len(want) {
		t.Fatalf("ForEach visited %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ForEach[%d] = %s; want %s", i, got[i], want[i])
		}
	}
}
