// Package config holds the settings of an engine run: search depths, game
// limits, output format and the output and log streams.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Config holds all program configuration.
type Config struct {
	Search *SearchConfig
	Game   *GameConfig
	Output *OutputConfig

	Verbosity int // 0=nothing, 1=per-move summary, 2=per-search stats

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// DepthFor returns the search depth for colour.
func (c *Config) DepthFor(colour chess.Colour) int {
	return c.Search.DepthFor(colour)
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// SetOutput sets the writer for moves and reports.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
