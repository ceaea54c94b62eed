// Package game ties a board, its rules and one searcher per side into a
// session that front ends drive: user moves, single AI moves and full
// AI-versus-AI games.
package game

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/hashing"
	"github.com/lgbarn/chessai-go/internal/notation"
	"github.com/lgbarn/chessai-go/internal/search"
	"github.com/lgbarn/chessai-go/internal/worker"
)

// Record is one committed move.
type Record struct {
	Ply   int
	Move  chess.Move
	ByAI  bool
	Score int          // search score, AI moves only
	Stats search.Stats // AI moves only
	Check bool         // the move gives check
}

// String formats the record as "12. Ng1f3" with search details for AI moves.
func (r Record) String() string {
	s := fmt.Sprintf("%d. %v", r.Ply, r.Move)
	if r.Check {
		s += "+"
	}
	if r.ByAI {
		s += fmt.Sprintf(" (score %d, %v)", r.Score, r.Stats)
	}
	return s
}

// Session is the explicit game context: board, rules, searchers and
// history. It is not safe for concurrent use.
type Session struct {
	cfg       *config.Config
	rules     *engine.Rules
	searchers [chess.NumColours]*search.Searcher
	history   []Record
	tracker   *hashing.Tracker
	startFEN  string
}

// NewSession starts a session on b with White to move.
func NewSession(cfg *config.Config, b *chess.Board) (*Session, error) {
	return NewSessionWithTurn(cfg, b, chess.White)
}

// NewSessionWithTurn starts a session on b with toMove to play. The board
// must hold exactly one king of each colour.
func NewSessionWithTurn(cfg *config.Config, b *chess.Board, toMove chess.Colour) (*Session, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := b.CountKind(chess.King, c); n != 1 {
			return nil, fmt.Errorf("%v has %d kings: %w", c, n, errors.ErrMissingKing)
		}
	}

	s := &Session{
		cfg:      cfg,
		rules:    engine.NewRulesWithTurn(b, toMove),
		tracker:  hashing.NewTracker(),
		startFEN: notation.BoardToFEN(b, toMove),
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		s.searchers[c] = search.New(
			search.WithDepth(cfg.DepthFor(c)),
			search.WithPruning(cfg.Search.Pruning),
			search.WithVerify(cfg.Search.Verify),
			search.WithLogger(cfg.LogFile, cfg.Verbosity),
		)
	}
	s.tracker.Record(b, toMove)
	s.rules.IsGameOver()
	return s, nil
}

// FromConfig starts a session from cfg.Game.StartFEN, or from the standard
// position when it is empty.
func FromConfig(cfg *config.Config) (*Session, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if cfg.Game.StartFEN == "" {
		return NewSession(cfg, chess.NewInitialBoard())
	}
	b, toMove, err := notation.BoardFromFEN(cfg.Game.StartFEN)
	if err != nil {
		return nil, err
	}
	return NewSessionWithTurn(cfg, b, toMove)
}

// FromSnapshot starts a session from piece triples.
func FromSnapshot(cfg *config.Config, triples []chess.Triple, toMove chess.Colour) (*Session, error) {
	b, err := chess.NewBoardFromTriples(triples)
	if err != nil {
		return nil, err
	}
	return NewSessionWithTurn(cfg, b, toMove)
}

// Board returns the live board. Callers must not modify it.
func (s *Session) Board() *chess.Board {
	return s.rules.Board()
}

// Rules returns the rules state machine.
func (s *Session) Rules() *engine.Rules {
	return s.rules
}

// Turn returns the side to move.
func (s *Session) Turn() chess.Colour {
	return s.rules.Turn()
}

// Status returns the current game classification.
func (s *Session) Status() engine.Status {
	return s.rules.IsGameOver()
}

// History returns a copy of the committed moves.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// Snapshot returns the board's piece triples.
func (s *Session) Snapshot() []chess.Triple {
	return s.Board().Triples()
}

// FEN returns the current position as FEN.
func (s *Session) FEN() string {
	return notation.BoardToFEN(s.Board(), s.Turn())
}

// StartFEN returns the position the session started from.
func (s *Session) StartFEN() string {
	return s.startFEN
}

// Repetitions returns the highest number of times any position has occurred.
func (s *Session) Repetitions() int {
	return s.tracker.MaxOccurrences()
}

// Searcher returns the searcher used for colour.
func (s *Session) Searcher(colour chess.Colour) *search.Searcher {
	return s.searchers[colour]
}

// Play commits a move for the side to move, hands the turn over and
// reclassifies the position.
func (s *Session) Play(from, to chess.Square) (Record, error) {
	return s.commit(from, to, nil)
}

// commit plays from-to and appends its record. r carries search details
// when the move came from a searcher.
func (s *Session) commit(from, to chess.Square, r *search.Result) (Record, error) {
	m, err := s.rules.MovePiece(from, to)
	if err != nil {
		return Record{}, err
	}
	s.rules.SwitchTurn()

	rec := Record{
		Ply:   len(s.history) + 1,
		Move:  m,
		Check: s.rules.IsInCheck(s.rules.Turn()),
	}
	if r != nil {
		rec.ByAI = true
		rec.Score = r.Score
		rec.Stats = r.Stats
	}
	s.history = append(s.history, rec)
	s.tracker.Record(s.Board(), s.Turn())
	s.rules.IsGameOver()
	return rec, nil
}

// ThinkAndPlay searches for the side to move and plays the result. It
// returns false when that side has no legal move.
func (s *Session) ThinkAndPlay() (Record, bool, error) {
	if s.Status().Over() {
		return Record{}, false, errors.ErrGameOver
	}
	turn := s.Turn()
	r, ok, err := s.searchers[turn].BestMoveChecked(s.Board(), turn)
	if err != nil {
		return Record{}, false, err
	}
	if !ok {
		return Record{}, false, nil
	}
	rec, err := s.commit(r.Move.From, r.Move.To, &r)
	return rec, err == nil, err
}

// SelfPlay lets the searchers play each other until the game ends or
// maxPlies moves have been made. Each search runs on the background pool;
// onMove, if not nil, sees every record as it is committed.
func (s *Session) SelfPlay(maxPlies int, onMove func(Record)) ([]Record, error) {
	if maxPlies <= 0 {
		maxPlies = s.cfg.Game.MaxPlies
	}
	pool := worker.NewPool(nil, worker.WithSearchers(s.searchers[chess.White], s.searchers[chess.Black]))
	pool.Start()
	defer pool.Close()

	start := len(s.history)
	for len(s.history)-start < maxPlies && !s.Status().Over() {
		turn := s.Turn()
		if !pool.Dispatch(turn, s.Board(), len(s.history)+1) {
			return s.History()[start:], fmt.Errorf("search already pending for %v", turn)
		}
		out := pool.Wait(turn)
		if out.Err != nil {
			return s.History()[start:], out.Err
		}
		if !out.Found {
			break
		}
		rec, err := s.commit(out.Result.Move.From, out.Result.Move.To, &out.Result)
		if err != nil {
			return s.History()[start:], err
		}
		if onMove != nil {
			onMove(rec)
		}
	}
	return s.History()[start:], nil
}
