package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// kingHomeCol is the file the king starts on.
const kingHomeCol = 4

// GenerateCastling returns the castle moves available to the king of colour
// on king, given the current rights. It never generates moves when the king
// is in check.
func GenerateCastling(board *chess.Board, king chess.Square, colour chess.Colour, rights chess.CastlingRights) ([]chess.Move, error) {
	if !king.Valid() {
		return nil, fmt.Errorf("castle from %d,%d: %w", king.Row, king.Col, errors.ErrInvalidSquare)
	}
	ctx := newMoveContext(board, colour, king, nil, chess.NoSquare)
	inCheck := analyze(board, king, colour).InCheck
	return ctx.castleMoves(rights, inCheck, nil), nil
}

// castleMoves appends the legal castles for the side to move.
func (ctx *moveContext) castleMoves(rights chess.CastlingRights, inCheck bool, moves []chess.Move) []chess.Move {
	if inCheck {
		return moves
	}
	king := ctx.king
	if king != chess.Sq(chess.HomeRank(ctx.colour), kingHomeCol) {
		return moves
	}
	if rights.Kingside(ctx.colour) {
		if m, ok := ctx.castle(chess.BoardSize-1, 1); ok {
			moves = append(moves, m)
		}
	}
	if rights.Queenside(ctx.colour) {
		if m, ok := ctx.castle(0, -1); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// castle checks one side: the rook is home, the squares between are empty
// and the two squares the king crosses are not attacked.
func (ctx *moveContext) castle(rookCol, step int) (chess.Move, bool) {
	king := ctx.king
	rookSq := chess.Sq(king.Row, rookCol)
	if !rookSq.Valid() || ctx.board.Get(rookSq) != chess.MakePiece(ctx.colour, chess.Rook) {
		return chess.Move{}, false
	}

	for col := king.Col + step; col != rookCol; col += step {
		sq := chess.Sq(king.Row, col)
		if !sq.Valid() || ctx.board.Get(sq) != chess.Empty {
			return chess.Move{}, false
		}
	}

	dir := chess.Direction{DCol: step}
	for i := 1; i <= 2; i++ {
		sq := king.Add(dir, i)
		if !sq.Valid() || !ctx.kingSafe(sq) {
			return chess.Move{}, false
		}
	}

	m := ctx.newMove(king, king.Add(dir, 2))
	m.Castle = true
	return m, true
}

// nextCastlingRights applies the rights update for a move: a king move
// clears both of its rights, a rook leaving or being captured on a home
// corner clears that corner's right.
func nextCastlingRights(rights chess.CastlingRights, m chess.Move) chess.CastlingRights {
	switch m.Moved.Kind() {
	case chess.King:
		rights = rights.WithoutColour(m.Moved.Colour())
	case chess.Rook:
		rights = rights.WithoutRookAt(m.From)
	}
	if m.Captured.Kind() == chess.Rook {
		rights = rights.WithoutRookAt(m.CaptureSquare())
	}
	return rights
}
