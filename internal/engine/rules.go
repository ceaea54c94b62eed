package engine

import (
	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// Rules is the turn state machine over a board: White to move or Black to
// move, plus a latched game-over status. Once the game is over the turn no
// longer changes and further moves are rejected.
type Rules struct {
	board  *chess.Board
	turn   chess.Colour
	status Status
	ply    int
}

// NewRules creates rules over b with White to move.
func NewRules(b *chess.Board) *Rules {
	return NewRulesWithTurn(b, chess.White)
}

// NewRulesWithTurn creates rules over b with the given side to move.
func NewRulesWithTurn(b *chess.Board, turn chess.Colour) *Rules {
	return &Rules{board: b, turn: turn}
}

// Board returns the board the rules operate on.
func (r *Rules) Board() *chess.Board {
	return r.board
}

// Turn returns the colour to move.
func (r *Rules) Turn() chess.Colour {
	return r.turn
}

// Ply returns the number of moves committed through MovePiece.
func (r *Rules) Ply() int {
	return r.ply
}

// IsInCheck reports whether colour's king is in check.
func (r *Rules) IsInCheck(colour chess.Colour) bool {
	return IsInCheck(r.board, colour)
}

// IsMoveLegal reports whether the piece on from may move to to: to must be
// one of its candidate destinations and the move must not leave its own king
// in check. The board is unchanged on return.
func (r *Rules) IsMoveLegal(from, to chess.Square) bool {
	p := r.board.PieceAt(from)
	if p == nil || !to.Valid() {
		return false
	}
	if !isCandidate(r.board, p, to) {
		return false
	}
	return IsMoveLegal(r.board, p, to)
}

// IsCheckmate reports whether colour is checkmated.
func (r *Rules) IsCheckmate(colour chess.Colour) bool {
	return IsCheckmate(r.board, colour)
}

// IsStalemate reports whether colour is stalemated.
func (r *Rules) IsStalemate(colour chess.Colour) bool {
	return IsStalemate(r.board, colour)
}

// IsGameOver classifies the position for the side to move. A checkmate or
// stalemate result is latched.
func (r *Rules) IsGameOver() Status {
	if r.status.Over() {
		return r.status
	}
	r.status = Classify(r.board, r.turn)
	return r.status
}

// Status returns the last classification without recomputing it.
func (r *Rules) Status() Status {
	return r.status
}

// SwitchTurn flips the side to move. It does nothing once the game is over.
func (r *Rules) SwitchTurn() {
	if r.status.Over() {
		return
	}
	r.turn = r.turn.Opposite()
}

// MovePiece validates and commits a move for the side to move: any piece on
// to is captured, the mover is relocated, and a pawn reaching the last rank
// becomes a queen. It does not switch the turn.
func (r *Rules) MovePiece(from, to chess.Square) (chess.Move, error) {
	moveErr := func(err error, p *chess.Piece) error {
		e := &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: r.ply + 1}
		if p != nil {
			e.Piece = p.String()
		}
		return e
	}

	if r.status.Over() {
		return chess.Move{}, moveErr(errors.ErrGameOver, nil)
	}
	if !from.Valid() || !to.Valid() {
		return chess.Move{}, moveErr(errors.ErrInvalidSquare, nil)
	}
	p := r.board.PieceAt(from)
	if p == nil {
		return chess.Move{}, moveErr(errors.ErrNoPiece, nil)
	}
	if p.Colour != r.turn {
		return chess.Move{}, moveErr(errors.ErrWrongTurn, p)
	}
	if !r.IsMoveLegal(from, to) {
		return chess.Move{}, moveErr(errors.ErrIllegalMove, p)
	}

	m := chess.MoveOf(p, to)
	r.board.MakeMove(from, to)
	r.ply++
	return m, nil
}

// isCandidate reports whether to is among p's candidate destinations.
func isCandidate(b *chess.Board, p *chess.Piece, to chess.Square) bool {
	for _, sq := range Candidates(b, p) {
		if sq == to {
			return true
		}
	}
	return false
}
