package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrWrongTurn", ErrWrongTurn, ErrWrongTurn},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrMissingKing", ErrMissingKing, ErrMissingKing},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidSnapshot", ErrInvalidSnapshot, ErrInvalidSnapshot},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrBoardCorrupted", ErrBoardCorrupted, ErrBoardCorrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels compare equal.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrIllegalMove, ErrNoPiece, ErrWrongTurn, ErrGameOver, ErrMissingKing,
		ErrInvalidSquare, ErrInvalidSnapshot, ErrInvalidFEN, ErrInvalidConfig, ErrBoardCorrupted,
	}
	for i := range all {
		for j := range all {
			if i != j && errors.Is(all[i], all[j]) {
				t.Errorf("errors.Is(%v, %v) = true, want false", all[i], all[j])
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				Piece: "white knight g1",
				From:  "g1",
				To:    "g3",
				Ply:   7,
			},
			contains: []string{"ply 7", "white knight g1", "g1-g3", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrWrongTurn, From: "e7", To: "e5", Ply: 1}
	wrapped := fmt.Errorf("play failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.From != "e7" {
		t.Errorf("extracted.From = %q, want %q", extracted.From, "e7")
	}
	if !errors.Is(wrapped, ErrWrongTurn) {
		t.Error("errors.Is(wrapped, ErrWrongTurn) = false, want true")
	}
}

// TestSnapshotError_Error verifies SnapshotError formatting
func TestSnapshotError_Error(t *testing.T) {
	err := &SnapshotError{
		Err:   ErrInvalidSnapshot,
		Index: 4,
		Field: "square",
		Value: "z9",
	}

	msg := err.Error()
	for _, s := range []string{"entry 4", "square", "z9", "invalid board snapshot"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("SnapshotError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidSnapshot) {
		t.Error("errors.Is(err, ErrInvalidSnapshot) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
