package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = [4]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// ExpandPromotions returns the moves with each promotion replaced by one
// move per promotion kind, PromotedTo set. Other moves are copied as is.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		if !m.Promotion {
			expanded = append(expanded, m)
			continue
		}
		for _, kind := range PromotionKinds {
			m.PromotedTo = kind
			expanded = append(expanded, m)
		}
	}
	return expanded
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promotion kind counts as its own move. The game is restored before
// Perft returns.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := ExpandPromotions(g.LegalMoves())
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		if err := g.MakeMove(m, m.PromotedTo); err != nil {
			continue
		}
		nodes += Perft(g, depth-1)
		g.UndoMove()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move's long algebraic form.
func PerftDivide(g *Game, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range ExpandPromotions(g.LegalMoves()) {
		if err := g.MakeMove(m, m.PromotedTo); err != nil {
			continue
		}
		result[m.UCI()] = Perft(g, depth-1)
		g.UndoMove()
	}
	return result
}
