package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/game"
	"github.com/lgbarn/chessai-go/internal/notation"
)

// JSONGame represents a finished or interrupted game in JSON format.
type JSONGame struct {
	Result      string                 `json:"result"`
	Termination string                 `json:"termination"`
	PlyCount    int                    `json:"plyCount"`
	InitialFEN  string                 `json:"initialFEN,omitempty"`
	FinalFEN    string                 `json:"finalFEN,omitempty"`
	Moves       []JSONMove             `json:"moves,omitempty"`
	Repetitions int                    `json:"repetitions,omitempty"`
	Final       *notation.JSONSnapshot `json:"final,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply   int    `json:"ply"`
	Color string `json:"color"` // "white" or "black"
	Move  string `json:"move"`
	UCI   string `json:"uci"`
	From  string `json:"from"`
	To    string `json:"to"`
	Piece string `json:"piece"`
	Check bool   `json:"check,omitempty"`

	// Search details, AI moves only
	Score     *int  `json:"score,omitempty"`
	Depth     int   `json:"depth,omitempty"`
	Nodes     int   `json:"nodes,omitempty"`
	ElapsedMs int64 `json:"elapsedMs,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// ResultString returns the PGN-style result token for a status: "1-0",
// "0-1", "1/2-1/2" or "*" while the game is still going.
func ResultString(st engine.Status) string {
	switch st.Outcome {
	case engine.Checkmate:
		if st.Loser == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// GameToJSON converts a session to its JSON report.
func GameToJSON(s *game.Session, cfg *config.OutputConfig) *JSONGame {
	st := s.Status()
	history := s.History()
	jg := &JSONGame{
		Result:      ResultString(st),
		Termination: st.Outcome.String(),
		PlyCount:    len(history),
		Moves:       convertHistory(history),
		Repetitions: s.Repetitions(),
	}
	if cfg.ShowFEN {
		jg.InitialFEN = s.StartFEN()
		jg.FinalFEN = s.FEN()
	}
	if cfg.ShowBoard {
		jg.Final = &notation.JSONSnapshot{
			ToMove: s.Turn().String(),
			Pieces: notation.TriplesToJSON(s.Snapshot()),
		}
	}
	return jg
}

// convertHistory converts move records to JSON moves.
func convertHistory(history []game.Record) []JSONMove {
	if len(history) == 0 {
		return nil
	}
	moves := make([]JSONMove, len(history))
	for i, rec := range history {
		m := rec.Move
		jm := JSONMove{
			Ply:   rec.Ply,
			Color: m.Colour.String(),
			Move:  m.String(),
			UCI:   m.UCI(),
			From:  m.From.String(),
			To:    m.To.String(),
			Piece: m.Kind.String(),
			Check: rec.Check,
		}
		if rec.ByAI {
			score := rec.Score
			jm.Score = &score
			jm.Depth = rec.Stats.Depth
			jm.Nodes = rec.Stats.Nodes
			jm.ElapsedMs = rec.Stats.Elapsed.Milliseconds()
		}
		moves[i] = jm
	}
	return moves
}

// OutputGameJSON writes a single game report as indented JSON.
func OutputGameJSON(s *game.Session, cfg *config.OutputConfig, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(s, cfg))
}
