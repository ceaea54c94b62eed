package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes a JSON game report instead of text
	JSONFormat bool

	// ShowBoard prints the board diagram after every move
	ShowBoard bool

	// ShowFEN prints the FEN of the final position
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{ShowFEN: true}
}
