// Package engine implements the move generator and the rules of play: check
// detection, legality filtering, checkmate and stalemate, and the turn state
// machine a front end drives.
package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// direction is a (row, col) step.
type direction [2]int

// Direction tables per kind. Their order fixes the enumeration order of
// candidate moves, which search relies on for its tie-break.
var (
	rookDirections = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	bishopDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	knightOffsets = []direction{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}}

	royalDirections = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {0, 1}, {1, 0}, {-1, 0}, {0, -1}}
)

// movement describes how a kind moves: along rays or by single steps.
type movement struct {
	dirs    []direction
	sliding bool
}

var movements = [chess.NumKinds]movement{
	chess.Knight: {dirs: knightOffsets},
	chess.Bishop: {dirs: bishopDirections, sliding: true},
	chess.Rook:   {dirs: rookDirections, sliding: true},
	chess.Queen:  {dirs: royalDirections, sliding: true},
	chess.King:   {dirs: royalDirections},
}

// Candidates returns the squares p could physically move to on b, ignoring
// whether the move would leave its own king in check.
func Candidates(b *chess.Board, p *chess.Piece) []chess.Square {
	return AppendCandidates(nil, b, p)
}

// AppendCandidates appends p's candidate destinations to dst.
func AppendCandidates(dst []chess.Square, b *chess.Board, p *chess.Piece) []chess.Square {
	if p.Kind == chess.Pawn {
		return appendPawnCandidates(dst, b, p)
	}
	m := movements[p.Kind]
	for _, d := range m.dirs {
		sq := p.Square.Offset(d[0], d[1])
		for sq.Valid() {
			if b.IsEmpty(sq) {
				dst = append(dst, sq)
			} else {
				if b.IsOpponent(sq, p.Colour) {
					dst = append(dst, sq)
				}
				break
			}
			if !m.sliding {
				break
			}
			sq = sq.Offset(d[0], d[1])
		}
	}
	return dst
}

// Attacks reports whether target is among p's candidate destinations. It
// answers the same question as scanning Candidates without building a slice.
func Attacks(b *chess.Board, p *chess.Piece, target chess.Square) bool {
	if !target.Valid() || target == p.Square {
		return false
	}
	if t := b.PieceAt(target); t != nil && t.Colour == p.Colour {
		return false
	}
	dRow := target.Row - p.Square.Row
	dCol := target.Col - p.Square.Col

	if p.Kind == chess.Pawn {
		return pawnAttacks(b, p, target, dRow, dCol)
	}

	m := movements[p.Kind]
	if !m.sliding {
		for _, d := range m.dirs {
			if d[0] == dRow && d[1] == dCol {
				return true
			}
		}
		return false
	}

	step := direction{sign(dRow), sign(dCol)}
	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return false
	}
	if !hasDirection(m.dirs, step) {
		return false
	}
	for sq := p.Square.Offset(step[0], step[1]); sq != target; sq = sq.Offset(step[0], step[1]) {
		if !b.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func hasDirection(dirs []direction, d direction) bool {
	for _, x := range dirs {
		if x == d {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
