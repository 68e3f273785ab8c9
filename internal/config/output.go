package config

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat represents different move notation formats.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (e2e4)
)

// ParseOutputFormat maps a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "san":
		return SAN, nil
	case "lalg", "uci":
		return LALG, nil
	}
	return SAN, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", name)
}

// MinLineLength is the shortest line a transcript may be wrapped to.
const MinLineLength = 20

// OutputConfig holds settings related to transcript formatting.
type OutputConfig struct {
	// Format specifies the move notation (SAN or LALG)
	Format OutputFormat

	// MaxLineLength is the maximum line length for transcript output
	MaxLineLength uint

	// JSONFormat enables JSON output instead of plain movetext
	JSONFormat bool

	// JSONSingle writes each game as its own JSON object instead of
	// collecting them into an array
	JSONSingle bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether the result marker is included
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// OutputFEN adds the final position to the output
	OutputFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
	}
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if c.MaxLineLength < MinLineLength {
		return errors.Wrapf(errors.ErrInvalidConfig, "line length %d below %d", c.MaxLineLength, MinLineLength)
	}
	return nil
}
