// Package render draws the board and game status as terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Options controls how the board is drawn.
type Options struct {
	Colour  bool // ANSI colours for squares and pieces
	Unicode bool // chess glyphs instead of FEN letters
}

// Renderer draws boards with a fixed set of options.
type Renderer struct {
	opts  Options
	label *color.Color
	alert *color.Color
}

const (
	lightSquare = color.BgYellow
	darkSquare  = color.BgGreen
	whitePiece  = color.FgHiWhite
	blackPiece  = color.FgBlack
)

// New creates a renderer. Colour output is forced on or off by opts rather
// than left to terminal detection.
func New(opts Options) *Renderer {
	r := &Renderer{opts: opts}
	r.label = r.paint(color.Faint)
	r.alert = r.paint(color.FgRed, color.Bold)
	return r
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.opts.Colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

var glyphs = map[chess.Colour][7]string{
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// symbol returns the text for a square's contents.
func (r *Renderer) symbol(p chess.Piece, ok bool) string {
	switch {
	case !ok && r.opts.Colour:
		return " "
	case !ok:
		return "."
	case r.opts.Unicode:
		return glyphs[p.Colour][p.Kind]
	}
	return string(p.Letter())
}

// Board draws the board with rank 8 at the top, labelled on the left and
// below.
func (r *Renderer) Board(w io.Writer, board chess.Board) error {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString(r.label.Sprintf("%d ", rank+1))
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			p, ok := board.PieceAt(sq)
			sb.WriteString(r.square(sq, p, ok))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		cell := string(rune(chess.FileBase + file))
		if r.opts.Colour {
			cell = " " + cell + " "
		} else {
			cell += " "
		}
		sb.WriteString(r.label.Sprint(cell))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) square(sq chess.Square, p chess.Piece, ok bool) string {
	text := r.symbol(p, ok)
	if !r.opts.Colour {
		return text + " "
	}

	attrs := []color.Attribute{lightSquare}
	if (sq.File()+sq.Rank())%2 == 0 {
		attrs[0] = darkSquare
	}
	if ok && p.Colour == chess.White {
		attrs = append(attrs, whitePiece)
	} else if ok {
		attrs = append(attrs, blackPiece)
	}
	return r.paint(attrs...).Sprint(" " + text + " ")
}

// Status returns the line describing whose turn it is, whether they are in
// check, and the move clocks.
func (r *Renderer) Status(g *engine.Gamestate) string {
	turn := strings.ToLower(g.Turn().String())
	line := fmt.Sprintf("It is %s's turn. (move %d, halfmove clock %d)", turn, g.MoveNumber(), g.HalfmoveClock())
	if g.IsInCheck(g.Turn()) {
		line += " " + r.alert.Sprint("Check!")
	}
	return line
}

// Game draws the board followed by the status line.
func (r *Renderer) Game(w io.Writer, g *engine.Gamestate) error {
	if err := r.Board(w, g.Board()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", r.Status(g))
	return err
}
