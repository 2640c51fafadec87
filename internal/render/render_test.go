package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestBoard_Plain(t *testing.T) {
	var buf bytes.Buffer
	g := engine.NewGamestate()

	testutil.RequireNoError(t, New(Options{}).Board(&buf, g.Board()))

	want := strings.Join([]string{
		"8 r n b q k b n r ",
		"7 p p p p p p p p ",
		"6 . . . . . . . . ",
		"5 . . . . . . . . ",
		"4 . . . . . . . . ",
		"3 . . . . . . . . ",
		"2 P P P P P P P P ",
		"1 R N B Q K B N R ",
		"  a b c d e f g h ",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestBoard_Unicode(t *testing.T) {
	var buf bytes.Buffer
	g, err := engine.NewGamestateFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	testutil.RequireNoError(t, err)

	testutil.RequireNoError(t, New(Options{Unicode: true}).Board(&buf, g.Board()))

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], "8 . . . . ♚ . . . ")
	testutil.AssertEqual(t, lines[6], "2 . . . . ♙ . . . ")
	testutil.AssertEqual(t, lines[7], "1 . . . . ♔ . . . ")
}

func TestBoard_Colour(t *testing.T) {
	var buf bytes.Buffer
	g := engine.NewGamestate()

	testutil.RequireNoError(t, New(Options{Colour: true}).Board(&buf, g.Board()))

	out := buf.String()
	testutil.AssertContains(t, out, "\x1b[")
	testutil.AssertContains(t, out, " R ")
	if strings.Contains(out, ".") {
		t.Error("coloured board should leave empty squares blank")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		want      string
		wantCheck bool
	}{
		{
			name: "start",
			fen:  engine.InitialFEN,
			want: "It is white's turn. (move 1, halfmove clock 0)",
		},
		{
			name: "black to move",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			want: "It is black's turn. (move 1, halfmove clock 0)",
		},
		{
			name:      "in check",
			fen:       "4k3/8/8/8/8/8/8/4K2r w - - 3 40",
			want:      "It is white's turn. (move 40, halfmove clock 3)",
			wantCheck: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := engine.NewGamestateFromFEN(tt.fen)
			testutil.RequireNoError(t, err)

			got := New(Options{}).Status(g)
			testutil.AssertTrue(t, strings.HasPrefix(got, tt.want), "Status() = %q", got)
			testutil.AssertEqual(t, strings.HasSuffix(got, "Check!"), tt.wantCheck, "check marker in %q", got)
		})
	}
}

func TestGame(t *testing.T) {
	var buf bytes.Buffer
	testutil.RequireNoError(t, New(Options{}).Game(&buf, engine.NewGamestate()))

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "8 r n b q k b n r \n"))
	testutil.AssertTrue(t, strings.HasSuffix(out, "\nIt is white's turn. (move 1, halfmove clock 0)\n"))
}
