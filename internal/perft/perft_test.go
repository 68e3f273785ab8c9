package perft

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustGame(t testing.TB, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen, engine.WithInvariantChecks())
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// dragontoothDivide counts each root move's subtree with dragontoothmg.
func dragontoothDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	divide := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		divide[m.String()] = dragontoothCount(&board, depth-1)
		unapply()
	}
	return divide
}

func dragontoothCount(board *dragontoothmg.Board, depth int) uint64 {
	moves := board.GenerateLegalMoves()
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += dragontoothCount(board, depth-1)
		unapply()
	}
	return nodes
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		opts  Options
		want  uint64
	}{
		{"initial sequential", engine.InitialFEN, 3, Options{}, 8902},
		{"initial parallel", engine.InitialFEN, 3, Options{Workers: 4}, 8902},
		{"initial cached", engine.InitialFEN, 4, Options{Workers: 4, Cache: hashing.NewThreadSafePerftCache(0)}, 197281},
		{"kiwipete parallel", kiwipete, 2, Options{Workers: 8}, 2039},
		{"promotions", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", 1, Options{Workers: 2}, 9},
		{"depth zero", engine.InitialFEN, 0, Options{Workers: 2}, 1},
		{"checkmate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", 2, Options{Workers: 2}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			report, err := Run(g, tt.depth, tt.opts)
			testutil.AssertNoError(t, err)
			if report.Nodes != tt.want {
				t.Errorf("Run(%d).Nodes = %d; want %d", tt.depth, report.Nodes, tt.want)
			}
			testutil.AssertEqual(t, g.FEN(), tt.fen, "source game untouched")
		})
	}
}

func TestRun_DivideMatchesDragontooth(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range []string{
		engine.InitialFEN,
		kiwipete,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	} {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			report, err := Run(mustGame(t, fen), depth, Options{Workers: 4})
			testutil.AssertNoError(t, err)

			got := make(map[string]uint64, len(report.Divide))
			for _, e := range report.Divide {
				got[e.Move] = e.Nodes
			}
			testutil.AssertEqual(t, got, dragontoothDivide(fen, depth), "divide")
		})
	}
}

func TestRun_DivideSorted(t *testing.T) {
	report, err := Run(engine.NewGame(), 2, Options{Workers: 3})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, len(report.Divide), 20)
	for i := 1; i < len(report.Divide); i++ {
		if report.Divide[i-1].Move >= report.Divide[i].Move {
			t.Errorf("divide not sorted at %d: %s before %s", i, report.Divide[i-1].Move, report.Divide[i].Move)
		}
	}
	testutil.AssertEqual(t, report.Divide[0], Entry{Move: "a2a3", Nodes: 20})
}

func TestRun_MatchesEngineDivide(t *testing.T) {
	g := mustGame(t, kiwipete)
	want := engine.PerftDivide(g, 2)

	report, err := Run(g, 2, Options{Workers: 4, Cache: hashing.NewThreadSafePerftCache(1024)})
	testutil.AssertNoError(t, err)
	got := make(map[string]uint64)
	for _, e := range report.Divide {
		got[e.Move] = e.Nodes
	}
	testutil.AssertEqual(t, got, want)
}

func TestRun_Workers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"capped by root moves", 50, 20},
		{"explicit", 3, 3},
		{"zero means one", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Run(engine.NewGame(), 1, Options{Workers: tt.workers})
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, report.Workers, tt.want)
			testutil.AssertEqual(t, report.Nodes, uint64(20))
		})
	}
}

func TestDivideRoot_StopsOnFirstError(t *testing.T) {
	g := engine.NewGame()
	moves := engine.ExpandPromotions(g.LegalMoves())
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Game: g.Clone(), Move: m, Depth: 2, Index: i}
	}
	// The first clone has already played its move, so replaying it fails.
	if err := items[0].Game.MakeMove(items[0].Move, items[0].Move.PromotedTo); err != nil {
		t.Fatal(err)
	}

	pool := worker.NewPool(countMove(nil), worker.WithBufferSize(len(items)))
	divide, err := divideRoot(pool, items)

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertTrue(t, pool.IsStopped(), "pool stopped")
	if divide != nil {
		t.Errorf("divide = %v; want nil", divide)
	}
}

func TestReport_String(t *testing.T) {
	r := Report{
		Depth:  1,
		Nodes:  2,
		Divide: []Entry{{"a2a3", 1}, {"b2b3", 1}},
	}
	want := "a2a3: 1\nb2b3: 1\n\nNodes searched: 2\n"
	testutil.AssertEqual(t, r.String(), want)
	testutil.AssertEqual(t, r.NodesPerSecond(), float64(0))
	testutil.AssertTrue(t, strings.HasSuffix(r.String(), "2\n"))
}
