package chess

import "unicode"

// Piece is the contents of a square. A piece has no identity beyond its square;
// MoveCount records how many times the piece on this square has moved.
type Piece struct {
	Kind      Kind
	Colour    Colour
	MoveCount uint
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IncrementMoveCount records one more move of this piece.
func (p *Piece) IncrementMoveCount() {
	p.MoveCount++
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// MoveValidity reports whether a move vector fits a piece's pattern as a
// plain move and as a capture.
type MoveValidity struct {
	Standard bool
	Capture  bool
}

// PatternLegality checks the move vector against the piece's movement shape.
// It does not look at the board: occupancy, collisions and king safety are the
// caller's concern.
func (p Piece) PatternLegality(m Move) MoveValidity {
	dx, dy := m.Delta()
	adx, ady := abs(dx), abs(dy)

	switch p.Kind {
	case Pawn:
		forward := dy * p.Colour.Forward()
		maxStep := 1
		if p.MoveCount == 0 {
			maxStep = 2
		}
		return MoveValidity{
			Standard: dx == 0 && forward >= 1 && forward <= maxStep,
			Capture:  adx == 1 && forward == 1,
		}

	case Knight:
		ok := (adx == 1 && ady == 2) || (adx == 2 && ady == 1)
		return MoveValidity{Standard: ok, Capture: ok}

	case Bishop:
		ok := isDiagonal(adx, ady)
		return MoveValidity{Standard: ok, Capture: ok}

	case Rook:
		ok := isStraight(adx, ady)
		return MoveValidity{Standard: ok, Capture: ok}

	case Queen:
		ok := isStraight(adx, ady) != isDiagonal(adx, ady)
		return MoveValidity{Standard: ok, Capture: ok}

	case King:
		ok := max(adx, ady) == 1
		return MoveValidity{Standard: ok, Capture: ok}
	}

	return MoveValidity{}
}

// isStraight is a pure rank or file line; the null vector is neither.
func isStraight(adx, ady int) bool {
	return (adx == 0) != (ady == 0)
}

func isDiagonal(adx, ady int) bool {
	return adx == ady && adx != 0
}
