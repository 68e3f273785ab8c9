// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	startFEN  = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	movesText = flag.String("moves", "", "Moves to play, space separated, in SAN or long algebraic")
	movesFile = flag.String("f", "", "File containing moves to play (# starts a comment)")

	// Actions
	listLegal  = flag.Bool("legal", false, "List the legal moves of the final position")
	perftDepth = flag.Int("perft", 0, "Count move-tree leaf nodes to this depth")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Perft options
	workers   = flag.Int("workers", 0, "Number of perft worker threads (0 = auto-detect based on CPU cores)")
	useCache  = flag.Bool("cache", false, "Share a transposition cache between perft workers")
	cacheSize = flag.Int("cache-size", 0, "Maximum perft cache entries (0 = unlimited)")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength    = flag.Int("w", 80, "Maximum line length")
	outputFormat  = flag.String("W", "", "Move notation: san, lalg")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	jsonSingle    = flag.Bool("J1", false, "With -J, write a single JSON object instead of an array")
	noResults     = flag.Bool("noresults", false, "Don't output the result marker")
	noChecks      = flag.Bool("nochecks", false, "Don't output check and mate symbols")
	noMoveNumbers = flag.Bool("nonumbers", false, "Don't output move numbers")
	fenOutput     = flag.Bool("fenout", false, "Output the final position as FEN")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every move as it is played")

	// Other options
	quiet      = flag.Bool("q", false, "Quiet mode (no summary)")
	checkState = flag.Bool("checks", false, "Verify game bookkeeping after every move")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags builds the configuration from the command-line flags.
func applyFlags() (*config.Config, error) {
	b := config.NewConfigBuilder()
	if err := applyOutputFormatFlags(b); err != nil {
		return nil, err
	}
	applyContentFlags(b)
	applyPerftFlags(b)

	switch {
	case *quiet:
		b.WithVerbosity(0)
	case *verbose:
		b.WithVerbosity(2)
	}
	return b.WithInvariantChecks(*checkState).
		WithOutputFilename(*outputFile).
		Build(), nil
}

// applyOutputFormatFlags configures notation and layout.
func applyOutputFormatFlags(b *config.ConfigBuilder) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	b.WithOutputFormat(format).
		WithJSONOutput(*jsonOutput).
		WithJSONSingle(*jsonSingle)
	if *lineLength > 0 {
		b.WithMaxLineLength(uint(*lineLength))
	}
	return nil
}

// applyContentFlags configures what the transcript contains.
func applyContentFlags(b *config.ConfigBuilder) {
	b.KeepResults(!*noResults).
		KeepChecks(!*noChecks).
		KeepMoveNumbers(!*noMoveNumbers).
		WithFENOutput(*fenOutput)
}

// applyPerftFlags configures perft workers and caching.
func applyPerftFlags(b *config.ConfigBuilder) {
	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > config.MaxWorkers {
		numWorkers = config.MaxWorkers
	}
	b.WithWorkers(numWorkers).WithCache(*useCache, *cacheSize)
}
