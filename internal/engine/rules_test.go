package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "k4b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "k4b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustGame(t, tt.fen).Board()
			if got := HasInsufficientMaterial(&board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDrawRules_NewGame(t *testing.T) {
	result := AnalyzeDrawRules(NewGame())
	testutil.AssertEqual(t, result, DrawRuleResult{})
}

func TestAnalyzeDrawRules_Clocks(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want DrawRuleResult
	}{
		{"99 half-moves", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", DrawRuleResult{}},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", DrawRuleResult{FiftyMoveRule: true}},
		{"seventy-five moves", "4k3/8/8/8/8/8/8/R3K3 w - - 150 100", DrawRuleResult{FiftyMoveRule: true, SeventyFiveMoveRule: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, AnalyzeDrawRules(mustGame(t, tt.fen)), tt.want)
		})
	}
}

func TestAnalyzeDrawRules_Repetition(t *testing.T) {
	g := NewGame(WithInvariantChecks())
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	playAll(t, g, shuffle...)
	testutil.AssertEqual(t, Repetitions(g), 2)
	testutil.AssertFalse(t, AnalyzeDrawRules(g).ThreefoldRepetition)

	playAll(t, g, shuffle...)
	testutil.AssertEqual(t, Repetitions(g), 3)
	testutil.AssertTrue(t, AnalyzeDrawRules(g).ThreefoldRepetition)
	testutil.AssertFalse(t, AnalyzeDrawRules(g).FivefoldRepetition)

	playAll(t, g, shuffle...)
	playAll(t, g, shuffle...)
	testutil.AssertTrue(t, AnalyzeDrawRules(g).FivefoldRepetition)
	testutil.AssertEqual(t, g.Ply(), 16, "counting repetitions leaves the game intact")
}

func TestRepetitions_CastlingRightsDiffer(t *testing.T) {
	// The king returns to e1 but the position differs: castling rights are gone.
	g := mustGame(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	playAll(t, g, "e1f1", "e8f8", "f1e1", "f8e8")

	testutil.AssertEqual(t, Repetitions(g), 1)
}
