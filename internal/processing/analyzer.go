// Package processing replays finished games to validate and analyze them.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/eval"
	"github.com/lgbarn/chessai-go/internal/game"
	"github.com/lgbarn/chessai-go/internal/hashing"
	"github.com/lgbarn/chessai-go/internal/notation"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard *chess.Board
	Positions  []uint64 // position keys, start position first

	Captures   int
	Checks     int
	Promotions int

	// MaxOccurrences is the highest count of any single position
	MaxOccurrences          int
	HasRepetition           bool // some position occurred three times
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool

	// Material is the final material balance, positive when White is ahead
	Material int
	Status   engine.Status
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// replay walks history from startFEN, calling visit after each move is
// committed. It stops at the first move the rules reject.
func replay(startFEN string, history []game.Record, visit func(rec game.Record, captured bool, rules *engine.Rules)) (*engine.Rules, error) {
	b, toMove, err := notation.BoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	rules := engine.NewRulesWithTurn(b, toMove)
	rules.IsGameOver()

	for _, rec := range history {
		m := rec.Move
		if p := b.PieceAt(m.From); p != nil && (p.Kind != m.Kind || p.Colour != m.Colour) {
			return rules, fmt.Errorf("ply %d: record says %v but %v stands on %v", rec.Ply, m, p, m.From)
		}
		captured := b.PieceAt(m.To) != nil
		if _, err := rules.MovePiece(m.From, m.To); err != nil {
			return rules, err
		}
		rules.SwitchTurn()
		rules.IsGameOver()
		if visit != nil {
			visit(rec, captured, rules)
		}
	}
	return rules, nil
}

// AnalyzeGame replays history from startFEN and collects game features.
func AnalyzeGame(startFEN string, history []game.Record) (*GameAnalysis, error) {
	analysis := &GameAnalysis{}
	tracker := hashing.NewTracker()

	record := func(b *chess.Board, toMove chess.Colour) {
		analysis.Positions = append(analysis.Positions, hashing.PositionKey(b, toMove))
		n := tracker.Record(b, toMove)
		if n >= 3 {
			analysis.HasRepetition = true
		}
		if n >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	b, toMove, err := notation.BoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	record(b, toMove)

	rules, err := replay(startFEN, history, func(rec game.Record, captured bool, rules *engine.Rules) {
		if captured {
			analysis.Captures++
		}
		if rules.IsInCheck(rules.Turn()) {
			analysis.Checks++
		}
		if rec.Move.Kind == chess.Pawn && rec.Move.To.Row == rec.Move.Colour.PromotionRow() {
			analysis.Promotions++
		}
		record(rules.Board(), rules.Turn())
	})
	if err != nil {
		return nil, err
	}

	board := rules.Board()
	analysis.FinalBoard = board
	analysis.MaxOccurrences = tracker.MaxOccurrences()
	analysis.HasInsufficientMaterial = HasInsufficientMaterial(board)
	analysis.Material = eval.Material(board)
	analysis.Status = rules.Status()
	return analysis, nil
}

// ValidateGame checks that every move in history is legal when replayed
// from startFEN.
func ValidateGame(startFEN string, history []game.Record) *ValidationResult {
	result := &ValidationResult{Valid: true}
	ply := 0
	rules, err := replay(startFEN, history, func(game.Record, bool, *engine.Rules) { ply++ })
	if err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		if rules != nil {
			result.ErrorPly = ply + 1
		}
	}
	return result
}

// HasInsufficientMaterial reports whether neither side can mate: only kings
// remain, or kings plus a single knight or bishop.
func HasInsufficientMaterial(b *chess.Board) bool {
	minors := 0
	for _, p := range b.Pieces() {
		switch p.Kind {
		case chess.King:
		case chess.Knight, chess.Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
