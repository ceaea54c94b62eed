package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check: some
// opposing piece has the king's square among its candidate destinations.
// A board without a king of that colour reports false.
func IsInCheck(b *chess.Board, colour chess.Colour) bool {
	king := b.King(colour)
	if king == nil {
		return false
	}
	return IsSquareAttacked(b, king.Square, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour can move to sq.
func IsSquareAttacked(b *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, p := range b.PiecesOf(byColour) {
		if Attacks(b, p, sq) {
			return true
		}
	}
	return false
}

// Checkers returns the pieces giving check to colour's king, in enumeration
// order. It is empty when the king is not in check or absent.
func Checkers(b *chess.Board, colour chess.Colour) []*chess.Piece {
	king := b.King(colour)
	if king == nil {
		return nil
	}
	var out []*chess.Piece
	for _, p := range b.PiecesOf(colour.Opposite()) {
		if Attacks(b, p, king.Square) {
			out = append(out, p)
		}
	}
	return out
}
