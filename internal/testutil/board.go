package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessai-go/internal/chess"
)

var letterKinds = map[byte]chess.Kind{
	'p': chess.Pawn, 'n': chess.Knight, 'b': chess.Bishop,
	'r': chess.Rook, 'q': chess.Queen, 'k': chess.King,
}

// MustBoard builds a board from an eight-line diagram, rank 8 first, in the
// format Board.String produces: upper case white, lower case black, '.' for
// an empty square. Blank lines and spaces are ignored. Pieces are added
// rank 8 to rank 1, a to h, and pawns off their starting row count as moved.
func MustBoard(t testing.TB, diagram string) *chess.Board {
	t.Helper()
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}

	var triples []chess.Triple
	for i, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d = %q; want %d squares", i+1, line, chess.BoardSize)
		}
		row := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			colour := chess.White
			lower := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			} else {
				lower = c + ('a' - 'A')
			}
			kind, ok := letterKinds[lower]
			if !ok {
				t.Fatalf("diagram row %d: unknown piece %q", i+1, c)
			}
			triples = append(triples, chess.Triple{Kind: kind, Colour: colour, Square: chess.Sq(row, col)})
		}
	}

	b, err := chess.NewBoardFromTriples(triples)
	if err != nil {
		t.Fatalf("NewBoardFromTriples() error: %v", err)
	}
	return b
}

// MustSquare parses algebraic notation or fails the test.
func MustSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return sq
}

// PieceState is a comparable copy of a live piece.
type PieceState struct {
	Kind   chess.Kind
	Colour chess.Colour
	Square chess.Square
	Moved  bool
}

// State returns the board's pieces in enumeration order as plain values, so
// two boards can be compared with cmp.Diff.
func State(b *chess.Board) []PieceState {
	pieces := b.Pieces()
	out := make([]PieceState, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, PieceState{Kind: p.Kind, Colour: p.Colour, Square: p.Square, Moved: p.Moved})
	}
	return out
}

// AssertSameBoard fails if the two boards differ in pieces, order, or the
// square lookup.
func AssertSameBoard(t testing.TB, want, got *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(State(want), State(got)); diff != "" {
		t.Errorf("%sboard mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			p := got.PieceAt(sq)
			if p != nil && p.Square != sq {
				t.Errorf("%ssquare %v indexes piece standing on %v", prefix(msgAndArgs...), sq, p.Square)
			}
			if (p == nil) != (want.PieceAt(sq) == nil) {
				t.Errorf("%ssquare %v occupancy differs", prefix(msgAndArgs...), sq)
			}
		}
	}
}
