package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MakeMove applies a move produced by LegalMoves. For promotions the kind
// the pawn becomes must be given explicitly (queen, rook, bishop or knight);
// it is ignored for every other move. The move is recorded in the log with
// PromotedTo filled in.
//
// MakeMove trusts the move's flags. Use Play to apply a caller-chosen
// from/to pair that still has to be checked against the legal moves.
func (g *Game) MakeMove(m chess.Move, promotion chess.Kind) error {
	if !m.From.Valid() || !m.To.Valid() {
		return &errors.MoveError{Err: errors.ErrInvalidSquare, Ply: len(g.moveLog) + 1}
	}
	if g.board.Get(m.From) != m.Moved || !m.Moved.Is(g.toMove) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: len(g.moveLog) + 1, MoveText: m.UCI()}
	}
	if m.Promotion && !promotion.IsPromotionKind() {
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, Ply: len(g.moveLog) + 1, MoveText: m.UCI()}
	}

	colour := m.Moved.Colour()
	placed := m.Moved
	m.PromotedTo = chess.NoKind
	if m.Promotion {
		placed = chess.MakePiece(colour, promotion)
		m.PromotedTo = promotion
	}

	g.board.Set(m.From, chess.Empty)
	if m.EnPassant {
		g.board.Set(m.CaptureSquare(), chess.Empty)
	}
	g.board.Set(m.To, placed)
	if m.Castle {
		rookFrom, rookTo := m.CastleRookSquares()
		g.board.Set(rookTo, g.board.Get(rookFrom))
		g.board.Set(rookFrom, chess.Empty)
	}
	if m.Moved.Kind() == chess.King {
		g.kings[colour] = m.To
	}

	g.castling = nextCastlingRights(g.castling, m)
	g.epTarget = chess.NoSquare
	if m.IsDoublePush() {
		g.epTarget = chess.Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	}
	if m.Moved.Kind() == chess.Pawn || m.IsCapture() {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if colour == chess.Black {
		g.fullmove++
	}

	g.toMove = colour.Opposite()
	g.moveLog = append(g.moveLog, m)
	g.history = append(g.history, g.snapshot())
	g.statusFresh = false

	g.mustBeConsistent()
	return nil
}

// UndoMove takes back the last move. It returns false, changing nothing,
// when no move has been played.
func (g *Game) UndoMove() bool {
	if len(g.moveLog) == 0 {
		return false
	}
	m := g.moveLog[len(g.moveLog)-1]
	g.moveLog = g.moveLog[:len(g.moveLog)-1]

	colour := m.Moved.Colour()
	g.board.Set(m.From, m.Moved)
	if m.EnPassant {
		// The captured pawn goes back beside the capturer's origin, not onto
		// the square the capturer landed on.
		g.board.Set(m.To, chess.Empty)
		g.board.Set(m.CaptureSquare(), m.Captured)
	} else {
		g.board.Set(m.To, m.Captured)
	}
	if m.Castle {
		rookFrom, rookTo := m.CastleRookSquares()
		g.board.Set(rookFrom, g.board.Get(rookTo))
		g.board.Set(rookTo, chess.Empty)
	}
	if m.Moved.Kind() == chess.King {
		g.kings[colour] = m.From
	}
	g.toMove = colour

	g.history = g.history[:len(g.history)-1]
	g.restore(g.history[len(g.history)-1])
	g.statusFresh = false

	g.mustBeConsistent()
	return true
}

// Play applies the legal move matching from and to. Moves are matched on
// their squares alone. promotion is required when the move promotes and
// ignored otherwise. On error the game is unchanged.
func (g *Game) Play(from, to chess.Square, promotion chess.Kind) (chess.Move, error) {
	if !from.Valid() || !to.Valid() {
		return chess.Move{}, &errors.MoveError{
			Err:      errors.ErrInvalidSquare,
			Ply:      len(g.moveLog) + 1,
			MoveText: fmt.Sprintf("%d,%d-%d,%d", from.Row, from.Col, to.Row, to.Col),
		}
	}
	want := chess.Move{From: from, To: to}
	for _, m := range g.LegalMoves() {
		if !m.Equal(want) {
			continue
		}
		if err := g.MakeMove(m, promotion); err != nil {
			return chess.Move{}, err
		}
		last, _ := g.LastMove()
		return last, nil
	}
	return chess.Move{}, &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		Ply:      len(g.moveLog) + 1,
		MoveText: from.String() + to.String(),
	}
}

// PlayUCI applies a move written in long algebraic form, e.g. "e2e4" or
// "e7e8q".
func (g *Game) PlayUCI(text string) (chess.Move, error) {
	from, to, promotion, err := ParseUCI(text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: len(g.moveLog) + 1, MoveText: text}
	}
	return g.Play(from, to, promotion)
}

// ParseUCI splits long algebraic move text into its squares and optional
// promotion kind.
func ParseUCI(text string) (from, to chess.Square, promotion chess.Kind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, fmt.Errorf("move text %q: %w", text, errors.ErrParseFailure)
	}
	if from, err = chess.ParseSquare(text[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if len(text) == 5 {
		promotion = chess.KindFromLetter(text[4])
		if !promotion.IsPromotionKind() {
			return chess.NoSquare, chess.NoSquare, chess.NoKind, fmt.Errorf("promotion %q: %w", text[4:], errors.ErrInvalidPromotion)
		}
	}
	return from, to, promotion, nil
}
