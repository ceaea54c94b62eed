// Package eval scores positions statically: material plus piece-square
// bonuses, positive when White is better.
package eval

import "github.com/lgbarn/chessai-go/internal/chess"

var pieceValues = [chess.NumKinds]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// table is indexed [row][col] with row 0 the owning side's back rank.
type table [chess.BoardSize][chess.BoardSize]int

var pawnTable = table{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = table{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = table{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = table{
	{0, 0, 0, 5, 5, 0, 0, 0},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenTable = table{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = table{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

var tables = [chess.NumKinds]*table{
	chess.Pawn:   &pawnTable,
	chess.Knight: &knightTable,
	chess.Bishop: &bishopTable,
	chess.Rook:   &rookTable,
	chess.Queen:  &queenTable,
	chess.King:   &kingTable,
}

// PieceValue returns the material value of a kind in centipawns.
func PieceValue(k chess.Kind) int {
	if !k.Valid() {
		return 0
	}
	return pieceValues[k]
}

// Positional returns the piece-square bonus for a piece of kind k and colour
// c standing on sq. Black looks the table up with the row mirrored.
func Positional(k chess.Kind, c chess.Colour, sq chess.Square) int {
	if !k.Valid() || !sq.Valid() {
		return 0
	}
	row := sq.Row
	if c == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	return tables[k][row][sq.Col]
}

// Evaluate returns the static score of b: for every piece its material value
// plus its positional bonus, added for White and subtracted for Black.
func Evaluate(b *chess.Board) int {
	score := 0
	for _, p := range b.Pieces() {
		v := pieceValues[p.Kind] + Positional(p.Kind, p.Colour, p.Square)
		if p.Colour == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// Material returns the material balance alone, White minus Black.
func Material(b *chess.Board) int {
	score := 0
	for _, p := range b.Pieces() {
		if p.Colour == chess.White {
			score += pieceValues[p.Kind]
		} else {
			score -= pieceValues[p.Kind]
		}
	}
	return score
}
