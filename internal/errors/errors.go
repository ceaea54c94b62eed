// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not a legal destination for the piece.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates there is no piece on the source square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrWrongTurn indicates a move by the side not on turn.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrGameOver indicates a move was attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrMissingKing indicates a board without exactly one king per colour.
	ErrMissingKing = errors.New("board must have exactly one king per colour")

	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidSnapshot indicates malformed piece triples.
	ErrInvalidSnapshot = errors.New("invalid board snapshot")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBoardCorrupted indicates a simulated move was not fully undone.
	ErrBoardCorrupted = errors.New("board not restored after simulated move")
)

// MoveError wraps errors with move context: the squares involved and the
// ply at which the move was attempted.
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Description of the moving piece (if known)
	From  string // Source square in algebraic notation
	To    string // Destination square in algebraic notation
	Ply   int    // 1-based ply number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SnapshotError reports which entry of a snapshot could not be decoded.
type SnapshotError struct {
	Err   error  // The underlying error
	Index int    // 0-based index of the offending entry (-1 if not applicable)
	Field string // Field name ("kind", "color", "square")
	Value string // Offending value as read
}

// Error returns a formatted error message with entry and field context.
func (e *SnapshotError) Error() string {
	var parts []string

	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("entry %d", e.Index))
	}
	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ", "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return "snapshot error"
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
