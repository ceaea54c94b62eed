// chessai plays chess against itself with a minimax search, or reports the
// best move for a given position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/game"
	"github.com/lgbarn/chessai-go/internal/notation"
	"github.com/lgbarn/chessai-go/internal/output"
	"github.com/lgbarn/chessai-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessai-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	s, err := newSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up position: %v\n", err)
		os.Exit(1)
	}

	if cfg.Game.BestMoveOnly {
		err = reportBestMove(s, cfg)
	} else {
		err = playGame(s, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *saveFile != "" {
		if err := saveSnapshot(s, *saveFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot %s: %v\n", *saveFile, err)
			os.Exit(1)
		}
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// newSession builds the starting session from -snapshot, -fen or the
// standard position, in that order of preference.
func newSession(cfg *config.Config) (*game.Session, error) {
	if *snapshotFile == "" {
		return game.FromConfig(cfg)
	}
	file, err := os.Open(*snapshotFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return loadSnapshot(cfg, file)
}

// loadSnapshot starts a session from a JSON snapshot.
func loadSnapshot(cfg *config.Config, r io.Reader) (*game.Session, error) {
	b, toMove, err := notation.DecodeSnapshot(r)
	if err != nil {
		return nil, err
	}
	return game.NewSessionWithTurn(cfg, b, toMove)
}

// saveSnapshot writes the session's current position as a JSON snapshot.
func saveSnapshot(s *game.Session, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := notation.EncodeSnapshot(file, s.Board(), s.Turn()); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: already failing
		return err
	}
	return file.Close()
}

// playGame runs self-play to the end or the ply limit, logging each move,
// and writes the game report to the output file.
func playGame(s *game.Session, cfg *config.Config) error {
	onMove := func(rec game.Record) {
		if cfg.Verbosity > 0 {
			fmt.Fprintln(cfg.LogFile, rec)
		}
		if cfg.Output.ShowBoard {
			fmt.Fprintln(cfg.LogFile, s.Board())
		}
	}

	records, err := s.SelfPlay(cfg.Game.MaxPlies, onMove)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%v (%d plies, position repeated at most %d times)\n",
			s.Status(), len(records), s.Repetitions())
		if err := logAnalysis(s, cfg); err != nil {
			return err
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(s); err != nil {
		return err
	}
	return w.Close()
}

// logAnalysis replays the finished game independently of the session and
// logs its features. A replay failure means the session history is corrupt.
func logAnalysis(s *game.Session, cfg *config.Config) error {
	if v := processing.ValidateGame(s.StartFEN(), s.History()); !v.Valid {
		return fmt.Errorf("game fails validation at ply %d: %s", v.ErrorPly, v.ErrorMsg)
	}
	analysis, err := processing.AnalyzeGame(s.StartFEN(), s.History())
	if err != nil {
		return fmt.Errorf("replaying game: %w", err)
	}
	fmt.Fprintf(cfg.LogFile, "%d captures, %d checks, %d promotions, material %+d\n",
		analysis.Captures, analysis.Checks, analysis.Promotions, analysis.Material)
	if analysis.HasInsufficientMaterial {
		fmt.Fprintln(cfg.LogFile, "Insufficient mating material")
	}
	return nil
}

// reportBestMove searches once for the side to move and prints the result
// without playing it.
func reportBestMove(s *game.Session, cfg *config.Config) error {
	turn := s.Turn()
	r, ok, err := s.Searcher(turn).BestMoveChecked(s.Board(), turn)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(cfg.OutputFile, "bestmove (none) %v\n", s.Status())
		return nil
	}
	fmt.Fprintf(cfg.OutputFile, "bestmove %s\n", r.Move.UCI())
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%v for %v: score %d (%v)\n", r.Move, turn, r.Score, r.Stats)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessai [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a chess game between two minimax searchers.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCastling, en passant and under-promotion are not played;\n")
	fmt.Fprintf(os.Stderr, "pawns always promote to a queen.\n")
}
