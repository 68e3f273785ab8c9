package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestSAN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		setup     []string
		uci       string
		promotion chess.Kind
		want      string
	}{
		{name: "pawn push", fen: InitialFEN, uci: "e2e4", want: "e4"},
		{name: "knight", fen: InitialFEN, uci: "g1f3", want: "Nf3"},
		{
			name:  "pawn capture",
			fen:   InitialFEN,
			setup: []string{"e2e4", "d7d5"},
			uci:   "e4d5",
			want:  "exd5",
		},
		{
			name:  "en passant",
			fen:   InitialFEN,
			setup: []string{"e2e4", "a7a6", "e4e5", "d7d5"},
			uci:   "e5d6",
			want:  "exd6",
		},
		{
			name:  "mate",
			fen:   InitialFEN,
			setup: []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6"},
			uci:   "h5f7",
			want:  "Qxf7#",
		},
		{name: "kingside castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", uci: "e1g1", want: "O-O"},
		{name: "queenside castle", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", uci: "e8c8", want: "O-O-O"},
		{name: "file disambiguation", fen: "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", uci: "a1d1", want: "Rad1"},
		{name: "other rook", fen: "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1", uci: "f1d1", want: "Rfd1"},
		{name: "rank disambiguation", fen: "4k3/8/8/R7/8/8/8/R6K w - - 0 1", uci: "a1a3", want: "R1a3"},
		{name: "square disambiguation", fen: "4k3/8/8/8/1N6/8/1N3N2/4K3 w - - 0 1", uci: "b2d3", want: "Nb2d3"},
		{name: "back rank mate", fen: "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", uci: "a1a8", want: "Ra8#"},
		{name: "promotion with check", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", uci: "a7a8", promotion: chess.Queen, want: "a8=Q+"},
		{name: "underpromotion", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", uci: "a7a8", promotion: chess.Knight, want: "a8=N"},
		{name: "promotion defaults to queen", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", uci: "a7a8", want: "a8=Q+"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, tt.fen)
			playAll(t, g, tt.setup...)
			before := g.FEN()

			m, ok := testutil.FindMove(g.LegalMoves(), tt.uci)
			if !ok {
				t.Fatalf("move %s not legal in %s", tt.uci, before)
			}
			m.PromotedTo = tt.promotion
			testutil.AssertEqual(t, SAN(g, m), tt.want)
			testutil.AssertEqual(t, g.FEN(), before, "SAN leaves the game unchanged")
		})
	}
}

func TestPlaySAN(t *testing.T) {
	g := NewGame(WithInvariantChecks())
	for _, san := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "0-0"} {
		if _, err := g.PlaySAN(san); err != nil {
			t.Fatalf("PlaySAN(%q) failed: %v", san, err)
		}
	}
	last, _ := g.LastMove()
	testutil.AssertTrue(t, last.Castle, "0-0 castles")
	testutil.AssertEqual(t, g.KingSquare(chess.White), sq("g1"))

	m, err := g.PlaySAN("axb5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "a6b5")
}

func TestPlaySAN_Promotion(t *testing.T) {
	g := mustGame(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	m, err := g.PlaySAN("a8=R+")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.PromotedTo, chess.Rook)
}

func TestPlaySAN_PromotionWithoutEquals(t *testing.T) {
	tests := []struct {
		san  string
		want chess.Kind
	}{
		{"a8Q", chess.Queen},
		{"a8N+", chess.Knight},
		{"a8r", chess.Rook},
		{"a8=b", chess.Bishop},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.san, func(t *testing.T) {
			t.Parallel()
			g := mustGame(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
			m, err := g.PlaySAN(tt.san)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m.PromotedTo, tt.want)
			testutil.AssertEqual(t, m.UCI()[:4], "a7a8")
		})
	}
}

func TestPlaySAN_CaptureAndPromoteWithoutEquals(t *testing.T) {
	g := mustGame(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	m, err := g.PlaySAN("axb8N")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "a7b8n")
	testutil.AssertEqual(t, m.PromotedTo, chess.Knight)
}

func TestPlaySAN_Errors(t *testing.T) {
	tests := []struct {
		name    string
		san     string
		wantErr error
	}{
		{"empty", "  ", errors.ErrParseFailure},
		{"no such move", "e5", errors.ErrIllegalMove},
		{"wrong piece", "Ke2", errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGame()
			_, err := g.PlaySAN(tt.san)
			testutil.AssertErrorIs(t, err, tt.wantErr)
			testutil.AssertEqual(t, g.Ply(), 0)
		})
	}
}
