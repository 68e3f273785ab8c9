package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	notnil "github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// oraclePositions are compared move-for-move against two independent
// move generators.
var oraclePositions = []string{
	InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
}

// dragontoothMoves lists the legal moves dragontoothmg finds for fen.
func dragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	slices.Sort(out)
	return out
}

// notnilMoves lists the legal moves notnil/chess finds for fen.
func notnilMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("notnil.FEN(%q) failed: %v", fen, err)
	}
	game := notnil.NewGame(opt)
	var out []string
	for _, m := range game.ValidMoves() {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

// walkPositions calls visit for every position reachable within depth
// plies, the root included.
func walkPositions(g *Game, depth int, visit func(*Game)) {
	visit(g)
	if depth == 0 {
		return
	}
	for _, m := range ExpandPromotions(g.LegalMoves()) {
		if err := g.MakeMove(m, m.PromotedTo); err != nil {
			continue
		}
		walkPositions(g, depth-1, visit)
		g.UndoMove()
	}
}

func TestLegalMoves_MatchDragontooth(t *testing.T) {
	depth := 2
	if testing.Short() {
		depth = 1
	}
	for _, fen := range oraclePositions {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			walkPositions(mustGame(t, fen), depth, func(g *Game) {
				got := testutil.UCIs(ExpandPromotions(g.LegalMoves()))
				if diff := cmp.Diff(dragontoothMoves(g.FEN()), got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s: moves mismatch (-dragontooth +engine):\n%s", g.FEN(), diff)
				}
			})
		})
	}
}

func TestLegalMoves_MatchNotnil(t *testing.T) {
	for _, fen := range oraclePositions {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			walkPositions(mustGame(t, fen), 1, func(g *Game) {
				got := testutil.UCIs(ExpandPromotions(g.LegalMoves()))
				want := notnilMoves(t, g.FEN())
				if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s: moves mismatch (-notnil +engine):\n%s", g.FEN(), diff)
				}
			})
		})
	}
}

func TestStatus_MatchNotnil(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		method notnil.Method
	}{
		{"checkmate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", notnil.Checkmate},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", notnil.Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", notnil.Stalemate},
		{"in play", InitialFEN, notnil.NoMethod},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opt, err := notnil.FEN(tt.fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) failed: %v", tt.fen, err)
			}
			oracle := notnil.NewGame(opt)
			testutil.AssertEqual(t, oracle.Method(), tt.method, "oracle method")

			g := mustGame(t, tt.fen)
			testutil.AssertEqual(t, g.Checkmate(), tt.method == notnil.Checkmate, "Checkmate")
			testutil.AssertEqual(t, g.Stalemate(), tt.method == notnil.Stalemate, "Stalemate")
			testutil.AssertEqual(t, g.Outcome(), string(oracle.Outcome()), "Outcome")
		})
	}
}
