package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/game"
)

// DefaultLineLength is the wrap column for move text.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separating it from the previous one with a space or
// a line break when the line would overflow.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a text report of s: the move list with move numbers, the
// result token, then the termination reason, an optional board diagram and
// the final FEN.
func OutputGame(s *game.Session, cfg *config.OutputConfig, w io.Writer) {
	outputMoves(s.History(), ResultString(s.Status()), w)
	fmt.Fprintln(w, s.Status())
	if cfg.ShowBoard {
		fmt.Fprint(w, s.Board())
	}
	if cfg.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", s.FEN())
	}
}

// outputMoves writes "1. Pe2e4 Pe7e5 2. ..." followed by result. A game
// that starts with Black to move opens with "1...".
func outputMoves(history []game.Record, result string, w io.Writer) {
	ow := NewOutputWriter(w, DefaultLineLength)
	moveNum := 1
	for i, rec := range history {
		white := rec.Move.Colour == chess.White
		if white {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(FormatMove(rec))
		if !white {
			moveNum++
		}
	}
	ow.Write(result)
	ow.NewLine()
}

// FormatMove returns the move text of a record, with "+" when it gives check.
func FormatMove(rec game.Record) string {
	if rec.Check {
		return rec.Move.String() + "+"
	}
	return rec.Move.String()
}
