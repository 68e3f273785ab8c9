package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnStartRow returns the row pawns of colour start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 2
	}
	return 1
}

// pawnMoves generates pushes, captures and en passant for the pawn on from.
func (ctx *moveContext) pawnMoves(from chess.Square, moves []chess.Move) []chess.Move {
	board := ctx.board
	push := chess.Direction{DRow: ctx.colour.Forward()}

	one := from.Add(push, 1)
	if one.Valid() && board.Get(one) == chess.Empty && ctx.allowed(from, push) {
		moves = append(moves, ctx.newMove(from, one))
		two := from.Add(push, 2)
		if from.Row == pawnStartRow(ctx.colour) && board.Get(two) == chess.Empty {
			moves = append(moves, ctx.newMove(from, two))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		d := chess.Direction{DRow: push.DRow, DCol: dc}
		to := from.Add(d, 1)
		if !to.Valid() || !ctx.allowed(from, d) {
			continue
		}
		target := board.Get(to)
		switch {
		case target.Is(ctx.colour.Opposite()):
			moves = append(moves, ctx.newMove(from, to))
		case target == chess.Empty && to == ctx.epTarget:
			m := ctx.newMove(from, to)
			m.EnPassant = true
			m.Captured = board.Get(m.CaptureSquare())
			if m.Captured == chess.MakePiece(ctx.colour.Opposite(), chess.Pawn) && ctx.enPassantSafe(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// enPassantSafe plays the capture on a scratch copy of the board and checks
// the king. Pin records cannot see this case: capturer and captured pawn
// leave the king's rank together.
func (ctx *moveContext) enPassantSafe(m chess.Move) bool {
	scratch := *ctx.board
	scratch.Set(m.From, chess.Empty)
	scratch.Set(m.CaptureSquare(), chess.Empty)
	scratch.Set(m.To, m.Moved)
	return !analyze(&scratch, ctx.king, ctx.colour).InCheck
}
