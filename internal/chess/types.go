// Package chess provides core chess types: squares, colours, piece kinds and
// the board that owns the live pieces.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of sides.
const NumColours = 2

// String returns the lower-case name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRow returns the row a colour's pieces start on.
func (c Colour) BackRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the row a colour's pawns start on.
func (c Colour) PawnRow() int {
	return c.BackRow() + c.Forward()
}

// PromotionRow returns the row on which a pawn of this colour promotes.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// ParseColour converts "white"/"black" (any case, or "w"/"b") to a Colour.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown colour %q", s)
}

// Kind is the closed set of piece kinds.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case name of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the upper-case letter for a kind ('P', 'N', ...).
func (k Kind) Letter() byte {
	letters := [NumKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && k < NumKinds {
		return letters[k]
	}
	return '?'
}

// Valid reports whether k is one of the six kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

// ParseKind converts a kind name ("queen") to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Pawn, fmt.Errorf("unknown piece kind %q", s)
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Square is a (row, column) coordinate. Row 0 is White's back rank.
type Square struct {
	Row int
	Col int
}

// Sq is a shorthand constructor for a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Index returns the 0-63 index of a valid square.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// Offset returns the square shifted by the given row and column deltas.
// The result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns algebraic notation, with row 0 as rank 1 and col 0 as file a.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('1' + s.Row)})
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("bad square %q", s)
	}
	sq := Square{Row: int(s[1]) - '1', Col: int(s[0]) - 'a'}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("bad square %q", s)
	}
	return sq, nil
}

// Piece is a live piece on the board.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square

	// Moved is only consulted for pawns: it gates the two-square advance.
	Moved bool
}

// String returns e.g. "white knight g1".
func (p Piece) String() string {
	return fmt.Sprintf("%v %v %v", p.Colour, p.Kind, p.Square)
}

// Triple is the (kind, colour, square) shape used to snapshot and rebuild a
// board.
type Triple struct {
	Kind   Kind
	Colour Colour
	Square Square
}
