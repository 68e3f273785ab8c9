// Package perft counts move-tree leaf nodes, optionally splitting the root
// moves over a worker pool and sharing a transposition cache.
package perft

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Options control a perft run.
type Options struct {
	// Workers is the number of goroutines counting root moves. Values
	// below 1 mean one worker.
	Workers int
	// Cache, if set, is shared by every worker and must be safe for
	// concurrent use when Workers > 1.
	Cache hashing.NodeCache
}

// Entry is the count below one root move.
type Entry struct {
	Move  string
	Nodes uint64
}

// Report is the outcome of a perft run.
type Report struct {
	Depth   int
	Nodes   uint64
	Divide  []Entry // Sorted by move
	Workers int
	Elapsed time.Duration
}

// Run counts the leaf nodes of g to depth. g is not modified: every root
// move is counted on its own clone.
func Run(g *engine.Game, depth int, opts Options) (Report, error) {
	start := time.Now()
	report := Report{Depth: depth}
	if depth <= 0 {
		report.Nodes = 1
		report.Elapsed = time.Since(start)
		return report, nil
	}

	moves := engine.ExpandPromotions(g.LegalMoves())
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Game: g.Clone(), Move: m, Depth: depth, Index: i}
	}

	workers := opts.Workers
	if workers > len(items) {
		workers = len(items)
	}
	pool := worker.NewPool(countMove(opts.Cache),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)))
	report.Workers = pool.NumWorkers()

	divide, err := divideRoot(pool, items)
	if err != nil {
		return Report{}, errors.Wrapf(err, "perft depth %d", depth)
	}
	for _, nodes := range divide {
		report.Nodes += nodes
	}

	keys := maps.Keys(divide)
	slices.Sort(keys)
	report.Divide = make([]Entry, 0, len(keys))
	for _, move := range keys {
		report.Divide = append(report.Divide, Entry{Move: move, Nodes: divide[move]})
	}
	report.Elapsed = time.Since(start)
	return report, nil
}

// divideRoot runs every item through pool and returns the count below each
// root move. The first failing item stops the pool; items still queued are
// drained without being counted.
func divideRoot(pool *worker.Pool, items []worker.WorkItem) (map[string]uint64, error) {
	pool.Start()
	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	divide := make(map[string]uint64, len(items))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(result.Error, "root move %s", result.Move)
				pool.Stop()
			}
			continue
		}
		divide[result.Move] = result.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return divide, nil
}

// countMove returns the worker function that plays one root move on its
// clone and counts the subtree below it.
func countMove(cache hashing.NodeCache) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Move: item.Move.UCI()}
		if err := item.Game.MakeMove(item.Move, item.Move.PromotedTo); err != nil {
			result.Error = err
			return result
		}
		result.Nodes = hashing.Perft(item.Game, item.Depth-1, cache)
		return result
	}
}

// NodesPerSecond returns the search speed of r, or 0 when too fast to time.
func (r Report) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// String formats the divide table followed by the total, one move per line.
func (r Report) String() string {
	var b strings.Builder
	for _, e := range r.Divide {
		fmt.Fprintf(&b, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(&b, "\nNodes searched: %d\n", r.Nodes)
	return b.String()
}
