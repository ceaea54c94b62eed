package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/game"
	"github.com/lgbarn/chessai-go/internal/notation"
	"github.com/lgbarn/chessai-go/internal/output"
	"github.com/lgbarn/chessai-go/internal/search"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

// Black king h8 has no move and is not in check.
const stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

// testConfig returns a depth-1 config writing to buffers.
func testConfig(out, log *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithDepth(1).
		WithMaxPlies(4).
		WithOutput(out).
		WithLog(log).
		Build()
}

func TestPlayGame_Text(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	s, err := game.FromConfig(cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, playGame(s, cfg))

	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	testutil.AssertEqual(t, len(lines), 6, "four moves and a two-line summary:\n%s", log.String())
	testutil.AssertTrue(t, strings.HasPrefix(lines[0], "1. "), "first log line %q", lines[0])
	testutil.AssertTrue(t, strings.HasPrefix(lines[4], "Game in progress."), "summary %q", lines[4])
	testutil.AssertTrue(t, strings.Contains(lines[5], "captures"), "analysis %q", lines[5])

	report := out.String()
	testutil.AssertTrue(t, strings.HasPrefix(report, "1. "), "report %q", report)
	testutil.AssertTrue(t, strings.Contains(report, " *\n"), "unfinished result in %q", report)
	testutil.AssertTrue(t, strings.Contains(report, "FEN: "+s.FEN()), "final FEN in %q", report)
}

func TestPlayGame_JSON(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Output.JSONFormat = true
	cfg.Verbosity = 0
	s, err := game.FromConfig(cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, playGame(s, cfg))
	testutil.AssertEqual(t, log.Len(), 0, "silent at verbosity 0")

	var got output.JSONGame
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &got))
	testutil.AssertEqual(t, got.PlyCount, 4)
	testutil.AssertEqual(t, got.Result, "*")
	testutil.AssertEqual(t, got.InitialFEN, notation.InitialFEN)
	testutil.AssertEqual(t, got.Moves[0].Color, "white")
	testutil.AssertEqual(t, got.Moves[1].Color, "black")
}

func TestPlayGame_Stalemate(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Game.StartFEN = stalemateFEN
	cfg.Output.ShowFEN = false
	s, err := game.FromConfig(cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, playGame(s, cfg))
	testutil.AssertEqual(t, out.String(), "1/2-1/2\nStalemate! It's a draw.\n")
}

func TestReportBestMove(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	s, err := game.FromConfig(cfg)
	testutil.AssertNoError(t, err)

	want, ok := search.New(search.WithDepth(1)).BestMove(chess.NewInitialBoard(), chess.White)
	testutil.AssertTrue(t, ok)

	testutil.AssertNoError(t, reportBestMove(s, cfg))
	testutil.AssertEqual(t, out.String(), "bestmove "+want.Move.UCI()+"\n")
	testutil.AssertTrue(t, strings.Contains(log.String(), want.Move.String()), "log %q", log.String())
	testutil.AssertEqual(t, len(s.History()), 0, "best move is not played")
}

func TestReportBestMove_NoMoves(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Game.StartFEN = stalemateFEN
	s, err := game.FromConfig(cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, reportBestMove(s, cfg))
	testutil.AssertEqual(t, out.String(), "bestmove (none) Stalemate! It's a draw.\n")
}

func TestSnapshotFile_RoundTrip(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	cfg.Game.StartFEN = stalemateFEN
	s, err := game.FromConfig(cfg)
	testutil.AssertNoError(t, err)

	path := filepath.Join(t.TempDir(), "position.json")
	testutil.AssertNoError(t, saveSnapshot(s, path))

	defer saveRestoreString(snapshotFile, path)()
	loaded, err := newSession(cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Turn(), chess.Black)
	testutil.AssertEqual(t, loaded.FEN(), s.FEN())
	testutil.AssertSameBoard(t, s.Board(), loaded.Board())
}

func TestLoadSnapshot_Invalid(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log)
	_, err := loadSnapshot(cfg, strings.NewReader(`{"toMove":"white","pieces":[{"kind":"dragon","color":"white","square":"e1"}]}`))
	testutil.AssertTrue(t, err != nil, "unknown piece kind rejected")
}
