package config

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// Depth limits accepted by Validate.
const (
	DefaultDepth = 3
	MaxDepth     = 8
)

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the search depth in plies for both sides
	Depth int

	// WhiteDepth and BlackDepth override Depth for one side when non-zero
	WhiteDepth int
	BlackDepth int

	// Pruning enables alpha-beta cutoffs; off means plain minimax
	Pruning bool

	// Verify fingerprints the board around every simulated move
	Verify bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   DefaultDepth,
		Pruning: true,
	}
}

// DepthFor returns the depth for colour, honouring a per-side override.
func (c *SearchConfig) DepthFor(colour chess.Colour) int {
	override := c.WhiteDepth
	if colour == chess.Black {
		override = c.BlackDepth
	}
	if override > 0 {
		return override
	}
	return c.Depth
}

// Validate checks that every depth is within 1..MaxDepth. A zero per-side
// depth means "use Depth".
func (c *SearchConfig) Validate() error {
	if c.Depth < 1 || c.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d not in 1..%d", errors.ErrInvalidConfig, c.Depth, MaxDepth)
	}
	for _, side := range []struct {
		name  string
		depth int
	}{{"white", c.WhiteDepth}, {"black", c.BlackDepth}} {
		if side.depth < 0 || side.depth > MaxDepth {
			return fmt.Errorf("%w: %s depth %d not in 0..%d", errors.ErrInvalidConfig, side.name, side.depth, MaxDepth)
		}
	}
	return nil
}
