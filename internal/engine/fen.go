// Package engine implements the chess rules: attack analysis, move
// generation, legal-move filtering and the Game state machine with exact
// make/undo.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. Castling rights that do
// not match the king and rook placement are dropped, as is an en passant
// square with no pawn to capture.
func NewGameFromFEN(fen string, opts ...GameOption) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &Game{
		toMove:   chess.White,
		epTarget: chess.NoSquare,
		fullmove: 1,
	}

	if err := parsePiecePositions(g, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}

	if analyze(&g.board, g.kings[g.toMove.Opposite()], g.toMove.Opposite()).InCheck {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}

	g.startFEN = g.FEN()
	g.history = []positionState{g.snapshot()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(g *Game, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("%d ranks in piece placement: %w", len(rows), errors.ErrInvalidFEN)
	}

	kingsSeen := [chess.NumColours]int{}
	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := chess.PieceFromLetter(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
			if piece.Kind() == chess.Pawn && (row == 0 || row == chess.BoardSize-1) {
				return fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidFEN)
			}
			sq := chess.Sq(row, col)
			g.board.Set(sq, piece)
			if piece.Kind() == chess.King {
				g.kings[piece.Colour()] = sq
				kingsSeen[piece.Colour()]++
			}
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kingsSeen[colour] != 1 {
			return fmt.Errorf("%d %s kings: %w", kingsSeen[colour], colour, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(g *Game, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	var rights chess.CastlingRights
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
	}
	g.castling = consistentRights(&g.board, rights)
	return nil
}

// consistentRights drops rights whose king or rook is not on its home square.
func consistentRights(board *chess.Board, rights chess.CastlingRights) chess.CastlingRights {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		if board.Get(chess.Sq(home, kingHomeCol)) != chess.MakePiece(colour, chess.King) {
			rights = rights.WithoutColour(colour)
			continue
		}
		rook := chess.MakePiece(colour, chess.Rook)
		for _, col := range []int{0, chess.BoardSize - 1} {
			sq := chess.Sq(home, col)
			if board.Get(sq) != rook {
				rights = rights.WithoutRookAt(sq)
			}
		}
	}
	return rights
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	// The pawn that just moved stands one row past the target, from the
	// mover's point of view.
	mover := g.toMove.Opposite()
	victim := chess.Sq(sq.Row+mover.Forward(), sq.Col)
	if !victim.Valid() || g.board.Get(victim) != chess.MakePiece(mover, chess.Pawn) || g.board.Get(sq) != chess.Empty {
		return nil
	}
	g.epTarget = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *Game, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		g.halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		g.fullmove = n
	}
	return nil
}

// FEN returns the FEN string of the current position.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.epTarget.String())
	fmt.Fprintf(&sb, " %d %d", g.halfmove, g.fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
