package notation

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// JSONPiece is one piece triple in JSON form.
type JSONPiece struct {
	Kind   string `json:"kind"`
	Color  string `json:"color"`
	Square string `json:"square"`
}

// JSONSnapshot is a board snapshot plus the side to move.
type JSONSnapshot struct {
	ToMove string      `json:"toMove"`
	Pieces []JSONPiece `json:"pieces"`
}

// TriplesToJSON converts triples to their JSON form, preserving order.
func TriplesToJSON(triples []chess.Triple) []JSONPiece {
	out := make([]JSONPiece, len(triples))
	for i, t := range triples {
		out[i] = JSONPiece{Kind: t.Kind.String(), Color: t.Colour.String(), Square: t.Square.String()}
	}
	return out
}

// TriplesFromJSON converts JSON pieces back to triples. The first bad entry
// is reported as a *errors.SnapshotError.
func TriplesFromJSON(pieces []JSONPiece) ([]chess.Triple, error) {
	out := make([]chess.Triple, len(pieces))
	for i, jp := range pieces {
		kind, err := chess.ParseKind(jp.Kind)
		if err != nil {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Index: i, Field: "kind", Value: jp.Kind}
		}
		colour, err := chess.ParseColour(jp.Color)
		if err != nil {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Index: i, Field: "color", Value: jp.Color}
		}
		sq, err := chess.ParseSquare(jp.Square)
		if err != nil {
			return nil, &errors.SnapshotError{Err: errors.ErrInvalidSquare, Index: i, Field: "square", Value: jp.Square}
		}
		out[i] = chess.Triple{Kind: kind, Colour: colour, Square: sq}
	}
	return out, nil
}

// EncodeSnapshot writes b and the side to move as indented JSON.
func EncodeSnapshot(w io.Writer, b *chess.Board, toMove chess.Colour) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONSnapshot{ToMove: toMove.String(), Pieces: TriplesToJSON(b.Triples())})
}

// DecodeSnapshot reads a JSON snapshot and rebuilds the board.
func DecodeSnapshot(r io.Reader) (*chess.Board, chess.Colour, error) {
	var snap JSONSnapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, chess.White, errors.Wrap(errors.ErrInvalidSnapshot, err.Error())
	}
	toMove := chess.White
	if snap.ToMove != "" {
		c, err := chess.ParseColour(snap.ToMove)
		if err != nil {
			return nil, chess.White, &errors.SnapshotError{Err: errors.ErrInvalidSnapshot, Index: -1, Field: "toMove", Value: snap.ToMove}
		}
		toMove = c
	}
	triples, err := TriplesFromJSON(snap.Pieces)
	if err != nil {
		return nil, chess.White, err
	}
	b, err := chess.NewBoardFromTriples(triples)
	if err != nil {
		return nil, chess.White, err
	}
	return b, toMove, nil
}
