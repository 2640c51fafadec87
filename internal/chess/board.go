package chess

// Board maps each square to an optional piece. It is a plain container:
// Set and Clear do no legality checking. Copying a Board value yields an
// independent board.
type Board struct {
	squares [BoardSize][BoardSize]Piece // [rank][file]
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank is the piece order on each side's first rank, a-file to h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard creates a board set up in the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both armies.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for file := 0; file < BoardSize; file++ {
		b.squares[0][file] = NewPiece(backRank[file], White)
		b.squares[1][file] = NewPiece(Pawn, White)
		b.squares[6][file] = NewPiece(Pawn, Black)
		b.squares[7][file] = NewPiece(backRank[file], Black)
	}
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	p := b.squares[sq.Rank()][sq.File()]
	return p, !p.IsEmpty()
}

// IsOccupied reports whether sq holds a piece.
func (b *Board) IsOccupied(sq Square) bool {
	return !b.squares[sq.Rank()][sq.File()].IsEmpty()
}

// Set overwrites sq with p. Setting an Empty piece clears the square.
func (b *Board) Set(sq Square, p Piece) {
	b.squares[sq.Rank()][sq.File()] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.squares[sq.Rank()][sq.File()] = Piece{}
}

// ForEach calls fn for every occupied square in a1, b1, ..., h8 order.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file]; !p.IsEmpty() {
				fn(mustSquare(file, rank), p)
			}
		}
	}
}

// Find returns every square holding a piece of the given kind and colour.
func (b *Board) Find(kind Kind, colour Colour) []Square {
	var found []Square
	b.ForEach(func(sq Square, p Piece) {
		if p.Kind == kind && p.Colour == colour {
			found = append(found, sq)
		}
	})
	return found
}
