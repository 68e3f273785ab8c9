// chessrules plays moves under the full rules of chess and reports the
// resulting position: its transcript, legal moves or perft counts.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/perft"
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
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := applyFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	moves, err := collectMoves(*movesText, *movesFile, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	j := job{
		fen:        *startFEN,
		moves:      moves,
		listLegal:  *listLegal,
		perftDepth: *perftDepth,
		divide:     *divide,
	}
	if err := run(j, cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// job is one invocation's work: a start position, the moves to play and
// what to report afterwards.
type job struct {
	fen        string
	moves      []string
	listLegal  bool
	perftDepth int
	divide     bool
}

// run plays the job's moves and writes the requested report.
func run(j job, cfg *config.Config) error {
	g, err := newGame(j.fen, cfg)
	if err != nil {
		return err
	}
	if err := playMoves(g, j.moves, cfg); err != nil {
		return err
	}
	cfg.Logf(1, "Position: %s\n", g.FEN())
	logStatus(g, cfg)

	switch {
	case j.perftDepth > 0:
		return runPerft(g, j.perftDepth, j.divide, cfg)
	case j.listLegal:
		return writeLegalMoves(g, cfg.OutputFile, cfg.Output.Format)
	}

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(g); err != nil {
		return err
	}
	return writer.Close()
}

// newGame creates the starting game for fen ("" for the initial position).
func newGame(fen string, cfg *config.Config) (*engine.Game, error) {
	var opts []engine.GameOption
	if cfg.InvariantChecks {
		opts = append(opts, engine.WithInvariantChecks())
	}
	if fen == "" {
		return engine.NewGame(opts...), nil
	}
	return engine.NewGameFromFEN(fen, opts...)
}

// playMoves applies each move in turn. Move text may be long algebraic
// ("e2e4", "e7e8q") or SAN ("Nf3", "O-O", "exd8=Q+").
func playMoves(g *engine.Game, moves []string, cfg *config.Config) error {
	for _, text := range moves {
		var san string
		var err error
		if _, _, _, parseErr := engine.ParseUCI(text); parseErr == nil {
			san = sanBefore(g, text)
			_, err = g.PlayUCI(text)
		} else {
			_, err = g.PlaySAN(text)
			san = text
		}
		if err != nil {
			return err
		}
		cfg.Logf(2, "ply %d: %s (hash %016x)\n", g.Ply(), san, hashing.Zobrist(g))
	}
	return nil
}

// sanBefore returns the SAN of a long algebraic move about to be played,
// or the text itself when it is not legal.
func sanBefore(g *engine.Game, uci string) string {
	from, to, promotion, err := engine.ParseUCI(uci)
	if err != nil {
		return uci
	}
	for _, m := range g.LegalMoves() {
		if m.From == from && m.To == to {
			m.PromotedTo = promotion
			return engine.SAN(g, m)
		}
	}
	return uci
}

// logStatus reports check, mate, stalemate and claimable draws.
func logStatus(g *engine.Game, cfg *config.Config) {
	switch {
	case g.Checkmate():
		cfg.Logf(1, "Checkmate: %s\n", g.Outcome())
	case g.Stalemate():
		cfg.Logf(1, "Stalemate: %s\n", g.Outcome())
	case g.InCheck():
		cfg.Logf(1, "%s is in check\n", g.ToMove())
	}

	draws := engine.AnalyzeDrawRules(g)
	if draws.FiftyMoveRule {
		cfg.Logf(1, "Draw claimable: fifty-move rule\n")
	}
	if draws.ThreefoldRepetition {
		cfg.Logf(1, "Draw claimable: threefold repetition\n")
	}
	if draws.InsufficientMaterial {
		cfg.Logf(1, "Draw: insufficient material\n")
	}
}

// writeLegalMoves lists the legal moves of g, one per line.
func writeLegalMoves(g *engine.Game, w io.Writer, format config.OutputFormat) error {
	bw := bufio.NewWriter(w)
	moves := engine.ExpandPromotions(g.LegalMoves())
	if format == config.LALG {
		ucis := make([]string, 0, len(moves))
		for _, m := range moves {
			ucis = append(ucis, m.UCI())
		}
		slices.Sort(ucis)
		for _, uci := range ucis {
			fmt.Fprintln(bw, uci)
		}
		return bw.Flush()
	}
	sans := make([]string, 0, len(moves))
	for _, m := range moves {
		sans = append(sans, engine.SAN(g, m))
	}
	fmt.Fprintln(bw, strings.Join(sans, " "))
	return bw.Flush()
}

// runPerft counts leaf nodes below g and writes the total or the divide
// table.
func runPerft(g *engine.Game, depth int, showDivide bool, cfg *config.Config) error {
	opts := perft.Options{Workers: cfg.Perft.Workers}
	var cache *hashing.ThreadSafePerftCache
	if cfg.Perft.UseCache {
		cache = hashing.NewThreadSafePerftCache(cfg.Perft.CacheCapacity)
		opts.Cache = cache
	}

	report, err := perft.Run(g, depth, opts)
	if err != nil {
		return errors.Wrap(err, "perft")
	}

	if showDivide {
		fmt.Fprint(cfg.OutputFile, report.String())
	} else {
		fmt.Fprintf(cfg.OutputFile, "%d\n", report.Nodes)
	}

	cfg.Logf(1, "perft(%d) = %d in %v (%.0f nodes/s, %d workers)\n",
		depth, report.Nodes, report.Elapsed, report.NodesPerSecond(), report.Workers)
	if cache != nil {
		hits, misses := cache.Stats()
		cfg.Logf(1, "cache: %d entries, %d hits, %d misses\n", cache.Len(), hits, misses)
	}
	return nil
}

// collectMoves gathers move text from the -moves flag, the -f file and the
// positional arguments, in that order.
func collectMoves(text, path string, args []string) ([]string, error) {
	moves := splitMoves(text)
	if path != "" {
		fromFile, err := loadMovesFile(path)
		if err != nil {
			return nil, err
		}
		moves = append(moves, fromFile...)
	}
	for _, arg := range args {
		moves = append(moves, splitMoves(arg)...)
	}
	return moves, nil
}

// loadMovesFile reads moves from a file. Blank lines and lines starting with
// # are ignored.
func loadMovesFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(err, "opening moves file %s", path)
	}
	defer file.Close()

	var moves []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		moves = append(moves, splitMoves(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading moves file %s", path)
	}
	return moves, nil
}

// splitMoves splits movetext into moves, dropping move numbers ("12.",
// "12...") and result markers.
func splitMoves(text string) []string {
	var moves []string
	for _, field := range strings.Fields(text) {
		if isMoveNumber(field) || isResult(field) {
			continue
		}
		// "1.e4" style: number glued to the move
		if i := strings.LastIndex(field, "."); i >= 0 && isMoveNumber(field[:i+1]) {
			field = field[i+1:]
		}
		moves = append(moves, field)
	}
	return moves
}

// isMoveNumber reports whether s is digits followed by one or more dots.
func isMoveNumber(s string) bool {
	digits := strings.TrimRight(s, ".")
	if digits == "" || digits == s {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isResult(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess moves under the full rules and reports the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notations (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
}
