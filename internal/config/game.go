package config

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// DefaultMaxPlies bounds self-play games, which have no draw rules beyond
// stalemate.
const DefaultMaxPlies = 200

// GameConfig holds settings for a game session.
type GameConfig struct {
	// MaxPlies stops self-play after this many moves
	MaxPlies int

	// StartFEN is the starting position; empty means the standard setup
	StartFEN string

	// BestMoveOnly prints one best move for the side to move and exits
	BestMoveOnly bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{MaxPlies: DefaultMaxPlies}
}

// Validate checks the ply limit.
func (c *GameConfig) Validate() error {
	if c.MaxPlies < 1 {
		return fmt.Errorf("%w: max plies %d must be at least 1", errors.ErrInvalidConfig, c.MaxPlies)
	}
	return nil
}
