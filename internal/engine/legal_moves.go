package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the legal moves for the side to move and refreshes the
// check, checkmate and stalemate flags. Promotions appear once per from/to
// pair; the promotion kind is chosen when the move is made.
//
// King moves are never filtered here: the king generator accepts a square
// only after re-analysing from it, so every surviving king move already
// leaves the king out of check, including moves that step away along the
// checking ray.
func (g *Game) LegalMoves() []chess.Move {
	colour := g.toMove
	king := g.kings[colour]
	analysis := analyze(&g.board, king, colour)
	ctx := g.moveContext(analysis.Pins)

	var moves []chess.Move
	switch len(analysis.Checks) {
	case 0:
		moves = ctx.pseudoLegal(make([]chess.Move, 0, 48))
		moves = ctx.castleMoves(g.castling, false, moves)
	case 1:
		moves = filterEvasions(ctx.pseudoLegal(nil), blockingSquares(king, analysis.Checks[0]), analysis.Checks[0])
	default:
		moves = ctx.kingMoves(king, nil)
	}

	g.inCheck = analysis.InCheck
	g.checkmate = len(moves) == 0 && analysis.InCheck
	g.stalemate = len(moves) == 0 && !analysis.InCheck
	g.statusFresh = true
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *Game) HasLegalMoves() bool {
	return len(g.LegalMoves()) > 0
}

// blockingSquares lists the squares a non-king move must land on to answer
// a single check: the squares between king and attacker plus the attacker.
func blockingSquares(king chess.Square, check CheckRecord) []chess.Square {
	if check.Knight {
		return []chess.Square{check.Attacker}
	}
	var squares []chess.Square
	for i := 1; i < chess.BoardSize; i++ {
		sq := king.Add(check.Direction, i)
		if !sq.Valid() {
			break
		}
		squares = append(squares, sq)
		if sq == check.Attacker {
			break
		}
	}
	return squares
}

// filterEvasions keeps king moves and the non-king moves that block the
// check or capture the checking piece.
func filterEvasions(moves []chess.Move, blocks []chess.Square, check CheckRecord) []chess.Move {
	kept := moves[:0]
	for _, m := range moves {
		if m.Moved.Kind() == chess.King || resolvesCheck(m, blocks, check) {
			kept = append(kept, m)
		}
	}
	return kept
}

// resolvesCheck reports whether a non-king move interposes or captures.
func resolvesCheck(m chess.Move, blocks []chess.Square, check CheckRecord) bool {
	if m.EnPassant && m.CaptureSquare() == check.Attacker {
		return true
	}
	for _, sq := range blocks {
		if m.To == sq {
			return true
		}
	}
	return false
}
