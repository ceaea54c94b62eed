package chess

import "fmt"

// Move is a (piece, destination) pair. It carries the piece by value so it
// stays meaningful after the board it came from has been changed.
type Move struct {
	Kind   Kind
	Colour Colour
	From   Square
	To     Square
}

// MoveOf builds a Move for piece p travelling to to.
func MoveOf(p *Piece, to Square) Move {
	return Move{Kind: p.Kind, Colour: p.Colour, From: p.Square, To: to}
}

// String returns long algebraic notation with the piece letter, e.g. "Ng1f3".
func (m Move) String() string {
	return fmt.Sprintf("%c%v%v", m.Kind.Letter(), m.From, m.To)
}

// UCI returns the move in coordinate form, e.g. "g1f3".
func (m Move) UCI() string {
	return m.From.String() + m.To.String()
}
