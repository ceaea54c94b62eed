package engine

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Outcome classifies a position for the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status is the game-over classification. Loser is only meaningful for
// Checkmate.
type Status struct {
	Outcome Outcome
	Loser   chess.Colour
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.Outcome != Ongoing
}

// String returns the human-readable result.
func (s Status) String() string {
	switch s.Outcome {
	case Checkmate:
		return fmt.Sprintf("Checkmate! %v loses.", s.Loser)
	case Stalemate:
		return "Stalemate! It's a draw."
	}
	return "Game in progress."
}

// Classify evaluates checkmate and stalemate for colour, the side to move.
func Classify(b *chess.Board, colour chess.Colour) Status {
	if HasLegalMoves(b, colour) {
		return Status{Outcome: Ongoing}
	}
	if IsInCheck(b, colour) {
		return Status{Outcome: Checkmate, Loser: colour}
	}
	return Status{Outcome: Stalemate}
}
