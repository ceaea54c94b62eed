// Package search picks moves with a depth-limited minimax search using
// alpha-beta pruning. White maximizes the evaluation, Black minimizes it.
//
// A Searcher never touches the board it is given: every search runs on a
// private clone, so the caller's board can be read while a search is in
// flight.
package search

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/eval"
	"github.com/lgbarn/chessai-go/internal/hashing"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

// infinity bounds every reachable evaluation.
const infinity = 1 << 30

// Stats are the diagnostics of one search.
type Stats struct {
	Depth   int
	Nodes   int
	Elapsed time.Duration
}

// String formats the stats for display.
func (s Stats) String() string {
	return fmt.Sprintf("depth %d, %d nodes, %v", s.Depth, s.Nodes, s.Elapsed.Round(time.Microsecond))
}

// Result is the move chosen by a search and its minimax score.
type Result struct {
	Move  chess.Move
	Score int
	Stats Stats
}

// Searcher holds search settings and the counters of the last search. A
// Searcher is not safe for concurrent use; give each goroutine its own.
type Searcher struct {
	depth     int
	pruning   bool
	verify    bool
	log       io.Writer
	verbosity int

	nodes int
	err   error
	last  Stats
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithDepth sets the search depth in plies. Values below 1 are ignored.
func WithDepth(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.depth = n
		}
	}
}

// WithPruning turns alpha-beta cutoffs on or off. With pruning off the
// search is plain minimax over the same move order.
func WithPruning(on bool) Option {
	return func(s *Searcher) {
		s.pruning = on
	}
}

// WithVerify makes the search fingerprint the board around every simulated
// move and report any difference after the undo.
func WithVerify(on bool) Option {
	return func(s *Searcher) {
		s.verify = on
	}
}

// WithLogger sends per-search diagnostics to w when verbosity is 2 or more.
func WithLogger(w io.Writer, verbosity int) Option {
	return func(s *Searcher) {
		if w != nil {
			s.log = w
		}
		s.verbosity = verbosity
	}
}

// New creates a Searcher. Defaults: depth 3, pruning on, no verification,
// no logging.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		depth:   DefaultDepth,
		pruning: true,
		log:     io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the configured depth.
func (s *Searcher) Depth() int {
	return s.depth
}

// LastStats returns the stats of the most recent search.
func (s *Searcher) LastStats() Stats {
	return s.last
}

// BestMove searches for colour's best move on b. It returns false when
// colour has no legal move. b is not modified.
func (s *Searcher) BestMove(b *chess.Board, colour chess.Colour) (Result, bool) {
	r, ok, _ := s.BestMoveChecked(b, colour)
	return r, ok
}

// BestMoveChecked is BestMove that also reports ErrBoardCorrupted when
// verification is on and a simulated move was not exactly undone.
func (s *Searcher) BestMoveChecked(b *chess.Board, colour chess.Colour) (Result, bool, error) {
	start := time.Now()
	s.nodes = 0
	s.err = nil

	work := b.Clone()
	maximizing := colour == chess.White
	alpha, beta := -infinity, infinity

	var best Result
	found := false
	for _, m := range engine.LegalMoves(work, colour) {
		score := s.child(work, m, s.depth-1, alpha, beta, !maximizing)

		if !found || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best.Move = m
			best.Score = score
		}
		found = true

		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if s.pruning && beta <= alpha {
			break
		}
	}

	s.last = Stats{Depth: s.depth, Nodes: s.nodes, Elapsed: time.Since(start)}
	best.Stats = s.last

	if s.verbosity >= 2 {
		if found {
			fmt.Fprintf(s.log, "search %v: %v score %d (%v)\n", colour, best.Move, best.Score, s.last)
		} else {
			fmt.Fprintf(s.log, "search %v: no legal move (%v)\n", colour, s.last)
		}
	}
	return best, found, s.err
}

// child makes m, searches the resulting position and undoes m.
func (s *Searcher) child(b *chess.Board, m chess.Move, depth, alpha, beta int, maximizing bool) int {
	var before hashing.Fingerprint
	if s.verify {
		before = hashing.Take(b)
	}

	u := b.MakeMove(m.From, m.To)
	score := s.minimax(b, depth, alpha, beta, maximizing)
	b.UnmakeMove(u)

	if s.verify && s.err == nil {
		if after := hashing.Take(b); after != before {
			s.err = &errors.MoveError{Err: errors.ErrBoardCorrupted, Piece: m.Colour.String() + " " + m.Kind.String(), From: m.From.String(), To: m.To.String()}
		}
	}
	return score
}

// minimax returns the value of the position for the side given by
// maximizing. A node is terminal at depth 0 or when the side to move has no
// legal move; its value is the static evaluation.
func (s *Searcher) minimax(b *chess.Board, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if depth <= 0 {
		return eval.Evaluate(b)
	}

	colour := chess.Black
	if maximizing {
		colour = chess.White
	}
	moves := engine.LegalMoves(b, colour)
	if len(moves) == 0 {
		return eval.Evaluate(b)
	}

	if maximizing {
		value := -infinity
		for _, m := range moves {
			value = max(value, s.child(b, m, depth-1, alpha, beta, false))
			alpha = max(alpha, value)
			if s.pruning && beta <= alpha {
				break
			}
		}
		return value
	}

	value := infinity
	for _, m := range moves {
		value = min(value, s.child(b, m, depth-1, alpha, beta, true))
		beta = min(beta, value)
		if s.pruning && beta <= alpha {
			break
		}
	}
	return value
}
