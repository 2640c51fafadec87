package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CastlingRights holds the four castling permissions. A right, once lost,
// is never restored.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights at the start of a standard game.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// castlingOrigin is a square whose original occupant must stay put for the
// rights cleared by clear to survive.
type castlingOrigin struct {
	square chess.Square
	piece  chess.Piece
	clear  func(*CastlingRights)
}

var castlingOrigins = []castlingOrigin{
	{chess.MustParseSquare("e1"), chess.NewPiece(chess.King, chess.White), func(r *CastlingRights) {
		r.WhiteKingside, r.WhiteQueenside = false, false
	}},
	{chess.MustParseSquare("h1"), chess.NewPiece(chess.Rook, chess.White), func(r *CastlingRights) { r.WhiteKingside = false }},
	{chess.MustParseSquare("a1"), chess.NewPiece(chess.Rook, chess.White), func(r *CastlingRights) { r.WhiteQueenside = false }},
	{chess.MustParseSquare("e8"), chess.NewPiece(chess.King, chess.Black), func(r *CastlingRights) {
		r.BlackKingside, r.BlackQueenside = false, false
	}},
	{chess.MustParseSquare("h8"), chess.NewPiece(chess.Rook, chess.Black), func(r *CastlingRights) { r.BlackKingside = false }},
	{chess.MustParseSquare("a8"), chess.NewPiece(chess.Rook, chess.Black), func(r *CastlingRights) { r.BlackQueenside = false }},
}

// revoke clears every right whose king or rook square has been vacated or
// taken over by another piece. It only ever clears.
func (r *CastlingRights) revoke(board *chess.Board) {
	for _, origin := range castlingOrigins {
		p, ok := board.PieceAt(origin.square)
		if ok && p.Kind == origin.piece.Kind && p.Colour == origin.piece.Colour {
			continue
		}
		origin.clear(r)
	}
}

// Any reports whether at least one right remains.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// String returns the rights in FEN form, "-" when none remain.
func (r CastlingRights) String() string {
	if !r.Any() {
		return "-"
	}
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	return string(s)
}
