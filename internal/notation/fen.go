// Package notation converts boards to and from external text forms: FEN
// strings and JSON piece-triple snapshots.
package notation

import (
	"fmt"
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position. Castling
// and en passant are not supported, so those fields are always "-".
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var toNotnilKind = [chess.NumKinds]notnil.PieceType{
	chess.Pawn:   notnil.Pawn,
	chess.Knight: notnil.Knight,
	chess.Bishop: notnil.Bishop,
	chess.Rook:   notnil.Rook,
	chess.Queen:  notnil.Queen,
	chess.King:   notnil.King,
}

var fromNotnilKind = map[notnil.PieceType]chess.Kind{
	notnil.Pawn:   chess.Pawn,
	notnil.Knight: chess.Knight,
	notnil.Bishop: chess.Bishop,
	notnil.Rook:   chess.Rook,
	notnil.Queen:  chess.Queen,
	notnil.King:   chess.King,
}

// BoardFromFEN parses a FEN string and returns the board and side to move.
// Only the placement and side-to-move fields matter; castling and en passant
// fields are ignored and missing trailing fields are filled in. Pieces are
// added in FEN reading order (rank 8 to rank 1, file a to h); pawns off their
// starting row count as moved.
func BoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	normalized, err := normalizeFEN(fen)
	if err != nil {
		return nil, chess.White, err
	}
	opt, err := notnil.FEN(normalized)
	if err != nil {
		return nil, chess.White, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	pos := notnil.NewGame(opt).Position()
	squares := pos.Board().SquareMap()

	var triples []chess.Triple
	for row := chess.BoardSize - 1; row >= 0; row-- {
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := squares[notnil.NewSquare(notnil.File(col), notnil.Rank(row))]
			if !ok || p == notnil.NoPiece {
				continue
			}
			kind, known := fromNotnilKind[p.Type()]
			if !known {
				return nil, chess.White, fmt.Errorf("piece %v: %w", p, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if p.Color() == notnil.Black {
				colour = chess.Black
			}
			triples = append(triples, chess.Triple{Kind: kind, Colour: colour, Square: chess.Sq(row, col)})
		}
	}

	b, err := chess.NewBoardFromTriples(triples)
	if err != nil {
		return nil, chess.White, errors.Wrap(err, "building board from FEN")
	}
	toMove := chess.White
	if pos.Turn() == notnil.Black {
		toMove = chess.Black
	}
	return b, toMove, nil
}

// BoardToFEN returns the FEN string for b with toMove to play.
func BoardToFEN(b *chess.Board, toMove chess.Colour) string {
	return PlacementFEN(b) + " " + sideLetter(toMove) + " - - 0 1"
}

// PlacementFEN returns only the piece placement field.
func PlacementFEN(b *chess.Board) string {
	m := make(map[notnil.Square]notnil.Piece, b.Len())
	for _, p := range b.Pieces() {
		colour := notnil.White
		if p.Colour == chess.Black {
			colour = notnil.Black
		}
		sq := notnil.NewSquare(notnil.File(p.Square.Col), notnil.Rank(p.Square.Row))
		m[sq] = notnil.NewPiece(toNotnilKind[p.Kind], colour)
	}
	return notnil.NewBoard(m).String()
}

func sideLetter(c chess.Colour) string {
	if c == chess.Black {
		return "b"
	}
	return "w"
}

// normalizeFEN pads a FEN to six fields and blanks castling and en passant.
func normalizeFEN(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(fields) > 6 {
		return "", fmt.Errorf("FEN has %d fields: %w", len(fields), errors.ErrInvalidFEN)
	}
	defaults := []string{"", "w", "-", "-", "0", "1"}
	for len(fields) < 6 {
		fields = append(fields, defaults[len(fields)])
	}
	fields[2] = "-"
	fields[3] = "-"
	return strings.Join(fields, " "), nil
}
