package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// appendPawnCandidates appends pawn destinations: one step forward onto an
// empty square, two steps from an unmoved pawn when both squares are empty,
// and the forward diagonals only when they hold an opponent. There is no en
// passant.
func appendPawnCandidates(dst []chess.Square, b *chess.Board, p *chess.Piece) []chess.Square {
	dir := p.Colour.Forward()

	one := p.Square.Offset(dir, 0)
	if b.IsEmpty(one) {
		dst = append(dst, one)
		if !p.Moved {
			if two := p.Square.Offset(2*dir, 0); b.IsEmpty(two) {
				dst = append(dst, two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		if sq := p.Square.Offset(dir, dc); b.IsOpponent(sq, p.Colour) {
			dst = append(dst, sq)
		}
	}
	return dst
}

// pawnAttacks reports whether a pawn reaches target, given the deltas from
// the pawn's square. target is known not to hold a friendly piece.
func pawnAttacks(b *chess.Board, p *chess.Piece, target chess.Square, dRow, dCol int) bool {
	dir := p.Colour.Forward()
	switch {
	case dRow == dir && abs(dCol) == 1:
		return b.IsOpponent(target, p.Colour)
	case dRow == dir && dCol == 0:
		return b.IsEmpty(target)
	case dRow == 2*dir && dCol == 0 && !p.Moved:
		return b.IsEmpty(p.Square.Offset(dir, 0)) && b.IsEmpty(target)
	}
	return false
}
