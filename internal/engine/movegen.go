package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// moveContext is the read-only input shared by the per-kind generators for
// one side to move.
type moveContext struct {
	board    *chess.Board
	colour   chess.Colour
	king     chess.Square
	pins     []PinRecord
	epTarget chess.Square

	// kingSafe reports whether the moving side's king would be out of check
	// standing on sq.
	kingSafe func(sq chess.Square) bool
}

// newMoveContext builds a context whose king probe analyses the board
// directly from the candidate square.
func newMoveContext(board *chess.Board, colour chess.Colour, king chess.Square, pins []PinRecord, epTarget chess.Square) *moveContext {
	ctx := &moveContext{
		board:    board,
		colour:   colour,
		king:     king,
		pins:     pins,
		epTarget: epTarget,
	}
	ctx.kingSafe = func(sq chess.Square) bool {
		return !analyze(board, sq, colour).InCheck
	}
	return ctx
}

// GenerateMoves returns the pseudo-legal moves of the piece on from, already
// restricted by pins. Checks against the king are not resolved here; that is
// the legal-move filter's job. An empty square yields no moves.
func GenerateMoves(board *chess.Board, from chess.Square, pins []PinRecord, epTarget chess.Square) ([]chess.Move, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("generate from %d,%d: %w", from.Row, from.Col, errors.ErrInvalidSquare)
	}
	piece := board.Get(from)
	if piece == chess.Empty {
		return nil, nil
	}
	colour := piece.Colour()
	king, ok := board.Find(chess.MakePiece(colour, chess.King))
	if !ok {
		return nil, fmt.Errorf("no %s king on board: %w", colour, errors.ErrInconsistentState)
	}
	ctx := newMoveContext(board, colour, king, pins, epTarget)
	return ctx.pieceMoves(from, piece.Kind(), nil), nil
}

// pieceMoves dispatches to the generator for kind.
func (ctx *moveContext) pieceMoves(from chess.Square, kind chess.Kind, moves []chess.Move) []chess.Move {
	switch kind {
	case chess.Pawn:
		return ctx.pawnMoves(from, moves)
	case chess.Knight:
		return ctx.knightMoves(from, moves)
	case chess.Bishop:
		return ctx.slidingMoves(from, chess.Diagonals[:], moves)
	case chess.Rook:
		return ctx.slidingMoves(from, chess.Orthogonals[:], moves)
	case chess.Queen:
		moves = ctx.slidingMoves(from, chess.Diagonals[:], moves)
		return ctx.slidingMoves(from, chess.Orthogonals[:], moves)
	case chess.King:
		return ctx.kingMoves(from, moves)
	default:
		return moves
	}
}

// pseudoLegal generates moves for every piece of the side to move.
func (ctx *moveContext) pseudoLegal(moves []chess.Move) []chess.Move {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := ctx.board.Squares[row][col]
			if !piece.Is(ctx.colour) {
				continue
			}
			moves = ctx.pieceMoves(chess.Sq(row, col), piece.Kind(), moves)
		}
	}
	return moves
}

// newMove builds a move from the board contents, flagging promotions.
func (ctx *moveContext) newMove(from, to chess.Square) chess.Move {
	moved := ctx.board.Get(from)
	m := chess.Move{
		From:     from,
		To:       to,
		Moved:    moved,
		Captured: ctx.board.Get(to),
	}
	if moved.Kind() == chess.Pawn && to.Row == chess.HomeRank(ctx.colour.Opposite()) {
		m.Promotion = true
	}
	return m
}

// allowed reports whether a piece on from may step in direction d.
func (ctx *moveContext) allowed(from chess.Square, d chess.Direction) bool {
	pin, pinned := pinFor(ctx.pins, from)
	return !pinned || pin.SameAxis(d)
}

// slidingMoves walks each direction until blocked.
func (ctx *moveContext) slidingMoves(from chess.Square, dirs []chess.Direction, moves []chess.Move) []chess.Move {
	for _, d := range dirs {
		if !ctx.allowed(from, d) {
			continue
		}
		for i := 1; i < chess.BoardSize; i++ {
			to := from.Add(d, i)
			if !to.Valid() {
				break
			}
			target := ctx.board.Get(to)
			if target == chess.Empty {
				moves = append(moves, ctx.newMove(from, to))
				continue
			}
			if target.Colour() != ctx.colour {
				moves = append(moves, ctx.newMove(from, to))
			}
			break
		}
	}
	return moves
}

// knightMoves generates the eight jumps. A pinned knight never moves.
func (ctx *moveContext) knightMoves(from chess.Square, moves []chess.Move) []chess.Move {
	if _, pinned := pinFor(ctx.pins, from); pinned {
		return moves
	}
	for _, offset := range chess.KnightOffsets {
		to := from.Add(offset, 1)
		if !to.Valid() || ctx.board.Get(to).Is(ctx.colour) {
			continue
		}
		moves = append(moves, ctx.newMove(from, to))
	}
	return moves
}

// kingMoves generates the adjacent squares the king can stand on safely.
func (ctx *moveContext) kingMoves(from chess.Square, moves []chess.Move) []chess.Move {
	for _, d := range chess.KingDirections {
		to := from.Add(d, 1)
		if !to.Valid() || ctx.board.Get(to).Is(ctx.colour) {
			continue
		}
		if ctx.kingSafe(to) {
			moves = append(moves, ctx.newMove(from, to))
		}
	}
	return moves
}
