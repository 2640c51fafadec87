package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGamestateFromFEN creates a game from a FEN string. The position must
// have exactly one king of each colour. Missing trailing fields take their
// starting-position defaults.
func NewGamestateFromFEN(fen string) (*Gamestate, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &Gamestate{turn: chess.White}

	if err := parsePiecePositions(&g.board, parts[0]); err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := len(g.board.Find(chess.King, colour)); n != 1 {
			return nil, fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	g.refreshKings()

	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}

	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns away from their starting rank count as having moved.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in piece placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			kind := chess.Empty
			if c <= unicode.MaxASCII {
				kind = chess.KindFromLetter(byte(c))
			}
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq, err := chess.NewSquare(file, rank)
			if err != nil {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			piece := chess.NewPiece(kind, chess.White)
			if unicode.IsLower(c) {
				piece.Colour = chess.Black
			}
			if kind == chess.Pawn && rank != pawnStartRank(piece.Colour) {
				piece.MoveCount = 1
			}
			board.Set(sq, piece)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Gamestate, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.turn = chess.White
	case "b":
		g.turn = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field, then drops any
// right whose king or rook is not on its original square.
func parseCastlingRights(g *Gamestate, parts []string) error {
	g.castling = CastlingRights{}
	if len(parts) < 3 {
		g.castling = AllCastlingRights()
	} else if parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				g.castling.WhiteKingside = true
			case 'Q':
				g.castling.WhiteQueenside = true
			case 'k':
				g.castling.BlackKingside = true
			case 'q':
				g.castling.BlackQueenside = true
			default:
				return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
			}
		}
	}
	g.castling.revoke(&g.board)
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(g *Gamestate, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fmt.Errorf("en passant square %s not on rank 3 or 6: %w", sq, errors.ErrInvalidFEN)
	}
	g.enPassant, g.hasEnPassant = sq, true
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields. The
// fullmove number is converted to a count of half-moves played.
func parseClocks(g *Gamestate, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		g.halfmoveClock = uint(n)
	}

	moveNumber := uint64(1)
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		moveNumber = n
	}
	g.fullmoveClock = uint(2 * (moveNumber - 1))
	if g.turn == chess.Black {
		g.fullmoveClock++
	}
	return nil
}

// FEN converts the game to a FEN string.
func (g *Gamestate) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	if g.hasEnPassant {
		sb.WriteString(g.enPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.MoveNumber())

	return sb.String()
}

// MoveNumber returns the standard chess move number, which advances after
// each Black move.
func (g *Gamestate) MoveNumber() uint {
	return g.fullmoveClock/2 + 1
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p, ok := board.PieceAt(squareAt(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// squareAt is NewSquare for loop indices that are on the board by construction.
func squareAt(file, rank int) chess.Square {
	sq, err := chess.NewSquare(file, rank)
	if err != nil {
		panic(err)
	}
	return sq
}
