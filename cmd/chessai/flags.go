// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessai-go/internal/config"
)

var (
	// Search options
	depth      = flag.Int("depth", config.DefaultDepth, "Search depth in plies for both sides")
	whiteDepth = flag.Int("wdepth", 0, "Search depth for White (0 = use -depth)")
	blackDepth = flag.Int("bdepth", 0, "Search depth for Black (0 = use -depth)")
	noPruning  = flag.Bool("nopruning", false, "Disable alpha-beta pruning (plain minimax)")
	verify     = flag.Bool("verify", false, "Check the board is restored after every simulated move")

	// Game options
	maxPlies     = flag.Int("maxplies", config.DefaultMaxPlies, "Stop self-play after N moves")
	startFEN     = flag.String("fen", "", "Start from this FEN position")
	snapshotFile = flag.String("snapshot", "", "Start from a JSON board snapshot file")
	bestMoveOnly = flag.Bool("bestmove", false, "Print the best move for the side to move and exit")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	saveFile   = flag.String("save", "", "Write the final position as a JSON snapshot to this file")
	jsonOutput = flag.Bool("J", false, "Output the game report in JSON format")
	showBoard  = flag.Bool("board", false, "Print the board after every move and in the report")
	noFEN      = flag.Bool("nofen", false, "Don't output the final FEN")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=moves, 2=search statistics")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyGameFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applySearchFlags configures search depth and pruning.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.WhiteDepth = *whiteDepth
	cfg.Search.BlackDepth = *blackDepth
	cfg.Search.Pruning = !*noPruning
	cfg.Search.Verify = *verify
}

// applyGameFlags configures the starting position and game limits.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.MaxPlies = *maxPlies
	cfg.Game.StartFEN = *startFEN
	cfg.Game.BestMoveOnly = *bestMoveOnly
}

// applyOutputFlags configures the report format.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = !*noFEN
}
