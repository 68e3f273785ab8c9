package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SAN returns the standard algebraic notation of m, which must be legal in
// the game's current position. Promotions use m.PromotedTo, defaulting to
// a queen. The check and mate suffixes are found by playing the move and
// taking it back, so the game is left as it was.
func SAN(g *Game, m chess.Move) string {
	var sb strings.Builder

	promotion := m.PromotedTo
	if m.Promotion && !promotion.IsPromotionKind() {
		promotion = chess.Queen
	}

	switch {
	case m.Castle && m.IsKingside():
		sb.WriteString("O-O")
	case m.Castle:
		sb.WriteString("O-O-O")
	default:
		kind := m.Moved.Kind()
		if kind == chess.Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.From.File())
			}
		} else {
			sb.WriteByte(kind.Letter())
			sb.WriteString(disambiguation(g.LegalMoves(), m))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion {
			sb.WriteByte('=')
			sb.WriteByte(promotion.Letter())
		}
	}

	if err := g.MakeMove(m, promotion); err != nil {
		return sb.String()
	}
	switch {
	case g.Checkmate():
		sb.WriteByte('#')
	case g.InCheck():
		sb.WriteByte('+')
	}
	g.UndoMove()

	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell m apart
// from other moves of the same piece kind to the same square.
func disambiguation(legal []chess.Move, m chess.Move) string {
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range legal {
		if other.Moved != m.Moved || other.To != m.To || other.From == m.From {
			continue
		}
		ambiguous = true
		if other.From.Col == m.From.Col {
			sameFile = true
		}
		if other.From.Row == m.From.Row {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}

// PlaySAN applies a move written in standard algebraic notation. Check and
// annotation suffixes are ignored and "0-0" is accepted for "O-O".
func (g *Game) PlaySAN(text string) (chess.Move, error) {
	want := normalizeSAN(text)
	if want == "" {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrParseFailure, Ply: len(g.moveLog) + 1, MoveText: text}
	}

	for _, m := range ExpandPromotions(g.LegalMoves()) {
		if normalizeSAN(SAN(g, m)) != want {
			continue
		}
		if err := g.MakeMove(m, m.PromotedTo); err != nil {
			return chess.Move{}, err
		}
		last, _ := g.LastMove()
		return last, nil
	}
	return chess.Move{}, &errors.MoveError{
		Err:      fmt.Errorf("no legal move matches: %w", errors.ErrIllegalMove),
		Ply:      len(g.moveLog) + 1,
		MoveText: text,
	}
}

// normalizeSAN strips suffixes so that written and generated SAN compare.
// A pawn promotion written without "=" ("e8Q", "exd1n") gains one.
func normalizeSAN(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, "+#!?")
	text = strings.ReplaceAll(text, "0", "O")

	n := len(text)
	if n < 3 || text[0] < 'a' || text[0] > 'h' {
		return text
	}
	kind := chess.KindFromLetter(text[n-1])
	if !kind.IsPromotionKind() {
		return text
	}
	switch text[n-2] {
	case '1', '8':
		return text[:n-1] + "=" + string(kind.Letter())
	case '=':
		return text[:n-1] + string(kind.Letter())
	}
	return text
}
