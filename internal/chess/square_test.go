package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewSquare(t *testing.T) {
	tests := []struct {
		x, y    int
		want    string
		wantErr bool
	}{
		{0, 0, "a1", false},
		{7, 7, "h8", false},
		{4, 1, "e2", false},
		{8, 0, "", true},
		{0, 8, "", true},
		{-1, 3, "", true},
		{3, -1, "", true},
	}

	for _, tt := range tests {
		sq, err := NewSquare(tt.x, tt.y)
		if tt.wantErr {
			if !errors.Is(err, chesserrors.ErrSquareOutOfRange) {
				t.Errorf("NewSquare(%d, %d) error = %v; want ErrSquareOutOfRange", tt.x, tt.y, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewSquare(%d, %d) unexpected error: %v", tt.x, tt.y, err)
			continue
		}
		if sq.String() != tt.want {
			t.Errorf("NewSquare(%d, %d) = %s; want %s", tt.x, tt.y, sq, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		text       string
		file, rank int
		wantErr    bool
	}{
		{"a1", 0, 0, false},
		{"e2", 4, 1, false},
		{"h8", 7, 7, false},
		{"d5", 3, 4, false},
		{"", 0, 0, true},
		{"e", 0, 0, true},
		{"e22", 0, 0, true},
		{"i1", 0, 0, true},
		{"a9", 0, 0, true},
		{"a0", 0, 0, true},
		{"E2", 0, 0, true},
		{"2e", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sq, err := ParseSquare(tt.text)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.text, err)
				}
				var perr *chesserrors.ParseError
				if !errors.As(err, &perr) {
					t.Errorf("ParseSquare(%q) error is not a *ParseError", tt.text)
				}
				return
			}
			testutil.AssertNoError(t, err, "ParseSquare(%q)", tt.text)
			if sq.File() != tt.file || sq.Rank() != tt.rank {
				t.Errorf("ParseSquare(%q) = (%d, %d); want (%d, %d)", tt.text, sq.File(), sq.Rank(), tt.file, tt.rank)
			}
			if sq.String() != tt.text {
				t.Errorf("ParseSquare(%q).String() = %q", tt.text, sq.String())
			}
		})
	}
}

func TestParseSquare_ReportsColumn(t *testing.T) {
	_, err := ParseSquare("a9")
	var perr *chesserrors.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseSquare(a9) error = %v; want *ParseError", err)
	}
	if perr.Column != 2 {
		t.Errorf("ParseError.Column = %d; want 2", perr.Column)
	}
}

func squareNames(squares []Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return names
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{"file upward", "a1", "a4", []string{"a2", "a3"}},
		{"file downward", "a4", "a1", []string{"a3", "a2"}},
		{"rank", "b3", "f3", []string{"c3", "d3", "e3"}},
		{"rank leftward", "h5", "e5", []string{"g5", "f5"}},
		{"diagonal", "c1", "h6", []string{"d2", "e3", "f4", "g5"}},
		{"anti-diagonal", "h1", "a8", []string{"g2", "f3", "e4", "d5", "c6", "b7"}},
		{"adjacent file", "e2", "e3", []string{}},
		{"adjacent diagonal", "e2", "f3", []string{}},
		{"knight related", "g1", "f3", []string{}},
		{"knight related wide", "b1", "d2", []string{}},
		{"same square", "d4", "d4", []string{}},
		{"unaligned toward a corner", "h8", "a3", []string{}},
		{"unaligned downward", "d5", "e1", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := squareNames(Between(MustParseSquare(tt.from), MustParseSquare(tt.to)))
			testutil.AssertEqual(t, got, tt.want, "Between(%s, %s)", tt.from, tt.to)
		})
	}
}

func TestAllSquares(t *testing.T) {
	all := AllSquares()
	if len(all) != 64 {
		t.Fatalf("len(AllSquares()) = %d; want 64", len(all))
	}
	if all[0].String() != "a1" || all[7].String() != "h1" || all[63].String() != "h8" {
		t.Errorf("AllSquares order = %s..%s..%s; want a1..h1..h8", all[0], all[7], all[63])
	}
}
