package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// UCIs returns the long algebraic form of each move, sorted.
func UCIs(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	slices.Sort(out)
	return out
}

// AssertMoves compares a move list with the expected UCI strings, ignoring
// order. No wanted moves matches an empty list.
func AssertMoves(t *testing.T, got []chess.Move, want ...string) {
	t.Helper()
	sorted := append([]string(nil), want...)
	slices.Sort(sorted)
	if diff := cmp.Diff(sorted, UCIs(got), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

// AssertHasMove fails unless a move with the given UCI text is present.
func AssertHasMove(t *testing.T, moves []chess.Move, uci string) {
	t.Helper()
	if _, ok := FindMove(moves, uci); !ok {
		t.Errorf("move %s not found in %v", uci, UCIs(moves))
	}
}

// AssertNoMove fails if a move with the given UCI text is present.
func AssertNoMove(t *testing.T, moves []chess.Move, uci string) {
	t.Helper()
	if _, ok := FindMove(moves, uci); ok {
		t.Errorf("move %s unexpectedly present", uci)
	}
}

// FindMove returns the move matching the squares of uci. A promotion
// letter, if any, is ignored.
func FindMove(moves []chess.Move, uci string) (chess.Move, bool) {
	if len(uci) < 4 {
		return chess.Move{}, false
	}
	from, err := chess.ParseSquare(uci[0:2])
	if err != nil {
		return chess.Move{}, false
	}
	to, err := chess.ParseSquare(uci[2:4])
	if err != nil {
		return chess.Move{}, false
	}
	for _, m := range moves {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}
