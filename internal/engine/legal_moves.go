package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// IsMoveLegal simulates moving p to to, tests whether p's own king is left in
// check, and undoes the simulation before returning. The board is unchanged
// on return. to is expected to come from Candidates.
func IsMoveLegal(b *chess.Board, p *chess.Piece, to chess.Square) bool {
	colour := p.Colour
	u := b.MakeMove(p.Square, to)
	inCheck := IsInCheck(b, colour)
	b.UnmakeMove(u)
	return !inCheck
}

// LegalMoves returns every legal move for colour in enumeration order:
// board piece order, then each piece's direction order.
func LegalMoves(b *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	var buf []chess.Square
	for _, p := range b.PiecesOf(colour) {
		buf = AppendCandidates(buf[:0], b, p)
		for _, to := range buf {
			if IsMoveLegal(b, p, to) {
				moves = append(moves, chess.MoveOf(p, to))
			}
		}
	}
	return moves
}

// LegalDestinations returns the legal destinations of a single piece.
func LegalDestinations(b *chess.Board, p *chess.Piece) []chess.Square {
	var out []chess.Square
	for _, to := range Candidates(b, p) {
		if IsMoveLegal(b, p, to) {
			out = append(out, to)
		}
	}
	return out
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(b *chess.Board, colour chess.Colour) bool {
	var buf []chess.Square
	for _, p := range b.PiecesOf(colour) {
		buf = AppendCandidates(buf[:0], b, p)
		for _, to := range buf {
			if IsMoveLegal(b, p, to) {
				return true
			}
		}
	}
	return false
}

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(b *chess.Board, colour chess.Colour) bool {
	return IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(b *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(b, colour) && !HasLegalMoves(b, colour)
}
