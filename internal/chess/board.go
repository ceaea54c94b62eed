package chess

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// Board owns the live pieces. The piece list order is the enumeration order
// used by move generation and search; squares is the derived square lookup.
type Board struct {
	pieces  []*Piece
	squares [NumSquares]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both armies. White's
// pieces come first in enumeration order: back rank a-h, then pawns a-h.
// Black follows with pawns a-h, then back rank a-h.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Add(Piece{Kind: backRank[col], Colour: White, Square: Sq(White.BackRow(), col)})
	}
	for col := 0; col < BoardSize; col++ {
		b.Add(Piece{Kind: Pawn, Colour: White, Square: Sq(White.PawnRow(), col)})
	}
	for col := 0; col < BoardSize; col++ {
		b.Add(Piece{Kind: Pawn, Colour: Black, Square: Sq(Black.PawnRow(), col)})
	}
	for col := 0; col < BoardSize; col++ {
		b.Add(Piece{Kind: backRank[col], Colour: Black, Square: Sq(Black.BackRow(), col)})
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.pieces = nil
	b.squares = [NumSquares]*Piece{}
}

// Add places a copy of p on the board and returns the live piece. It returns
// nil if the square is off the board or already occupied.
func (b *Board) Add(p Piece) *Piece {
	if !p.Square.Valid() || b.squares[p.Square.Index()] != nil {
		return nil
	}
	live := &p
	b.pieces = append(b.pieces, live)
	b.squares[p.Square.Index()] = live
	return live
}

// Remove takes the piece on sq off the board and returns it (nil if empty).
func (b *Board) Remove(sq Square) *Piece {
	p := b.PieceAt(sq)
	if p == nil {
		return nil
	}
	if i := slices.Index(b.pieces, p); i >= 0 {
		b.pieces = slices.Delete(b.pieces, i, i+1)
	}
	b.squares[sq.Index()] = nil
	return p
}

// PieceAt returns the piece on sq, or nil for an empty or off-board square.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.Index()]
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.squares[sq.Index()] == nil
}

// IsOpponent reports whether sq holds a piece of the colour opposing c.
func (b *Board) IsOpponent(sq Square, c Colour) bool {
	p := b.PieceAt(sq)
	return p != nil && p.Colour != c
}

// Pieces returns the live pieces in enumeration order. The slice is a copy;
// the pieces are not.
func (b *Board) Pieces() []*Piece {
	return slices.Clone(b.pieces)
}

// PiecesOf returns the live pieces of one colour in enumeration order.
func (b *Board) PiecesOf(c Colour) []*Piece {
	out := make([]*Piece, 0, len(b.pieces)/2+1)
	for _, p := range b.pieces {
		if p.Colour == c {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of live pieces.
func (b *Board) Len() int {
	return len(b.pieces)
}

// King returns the first king of colour c, or nil if there is none.
func (b *Board) King(c Colour) *Piece {
	i := slices.IndexFunc(b.pieces, func(p *Piece) bool {
		return p.Kind == King && p.Colour == c
	})
	if i < 0 {
		return nil
	}
	return b.pieces[i]
}

// CountKind returns how many pieces of kind k and colour c are on the board.
func (b *Board) CountKind(k Kind, c Colour) int {
	n := 0
	for _, p := range b.pieces {
		if p.Kind == k && p.Colour == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy: new pieces, same order, same squares.
func (b *Board) Clone() *Board {
	nb := &Board{pieces: make([]*Piece, 0, len(b.pieces))}
	for _, p := range b.pieces {
		cp := *p
		nb.pieces = append(nb.pieces, &cp)
		nb.squares[cp.Square.Index()] = &cp
	}
	return nb
}

// Undo records everything MakeMove changed so UnmakeMove can reverse it.
type Undo struct {
	piece      *Piece
	from       Square
	kind       Kind
	moved      bool
	captured   *Piece
	capturedAt int
}

// Captured returns the piece removed by the move, or nil.
func (u Undo) Captured() *Piece {
	return u.captured
}

// Promoted reports whether the move turned a pawn into a queen.
func (u Undo) Promoted() bool {
	return u.piece != nil && u.kind != u.piece.Kind
}

// MakeMove moves the piece on from to to: any piece on to is removed first,
// the mover is relocated and marked as moved, and a pawn reaching its
// promotion row becomes a queen. No legality checks are made. If from is
// empty the returned Undo is a no-op.
func (b *Board) MakeMove(from, to Square) Undo {
	p := b.PieceAt(from)
	if p == nil || !to.Valid() {
		return Undo{}
	}
	u := Undo{piece: p, from: from, kind: p.Kind, moved: p.Moved, capturedAt: -1}

	if target := b.squares[to.Index()]; target != nil {
		u.captured = target
		u.capturedAt = slices.Index(b.pieces, target)
		b.pieces = slices.Delete(b.pieces, u.capturedAt, u.capturedAt+1)
		b.squares[to.Index()] = nil
	}

	b.squares[from.Index()] = nil
	p.Square = to
	p.Moved = true
	if p.Kind == Pawn && to.Row == p.Colour.PromotionRow() {
		p.Kind = Queen
	}
	b.squares[to.Index()] = p
	return u
}

// UnmakeMove reverses a MakeMove. The captured piece goes back to its
// original position in the piece list.
func (b *Board) UnmakeMove(u Undo) {
	p := u.piece
	if p == nil {
		return
	}
	b.squares[p.Square.Index()] = nil
	p.Square = u.from
	p.Moved = u.moved
	p.Kind = u.kind
	b.squares[u.from.Index()] = p

	if u.captured != nil {
		b.pieces = slices.Insert(b.pieces, u.capturedAt, u.captured)
		b.squares[u.captured.Square.Index()] = u.captured
	}
}

// Triples returns the (kind, colour, square) snapshot in enumeration order.
func (b *Board) Triples() []Triple {
	out := make([]Triple, len(b.pieces))
	for i, p := range b.pieces {
		out[i] = Triple{Kind: p.Kind, Colour: p.Colour, Square: p.Square}
	}
	return out
}

// NewBoardFromTriples rebuilds a board from a snapshot. Pawns off their
// starting row are marked as moved. A queen triple becomes a queen, so
// promoted pieces survive the round trip.
func NewBoardFromTriples(triples []Triple) (*Board, error) {
	b := NewBoard()
	for i, t := range triples {
		if !t.Kind.Valid() {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Index: i, Field: "kind", Value: fmt.Sprint(int(t.Kind))}
		}
		if t.Colour != White && t.Colour != Black {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Index: i, Field: "color", Value: fmt.Sprint(int(t.Colour))}
		}
		if !t.Square.Valid() {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSquare, Index: i, Field: "square", Value: t.Square.String()}
		}
		if b.PieceAt(t.Square) != nil {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Index: i, Field: "square", Value: t.Square.String() + " occupied twice"}
		}
		b.Add(Piece{
			Kind:   t.Kind,
			Colour: t.Colour,
			Square: t.Square,
			Moved:  t.Kind == Pawn && t.Square.Row != t.Colour.PawnRow(),
		})
	}
	return b, nil
}

// String renders the board as eight lines, rank 8 first. White pieces are
// upper case, black lower case, empty squares '.'.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+2*BoardSize)
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[Sq(row, col).Index()]
			switch {
			case p == nil:
				buf = append(buf, '.')
			case p.Colour == White:
				buf = append(buf, p.Kind.Letter())
			default:
				buf = append(buf, p.Kind.Letter()+('a'-'A'))
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
