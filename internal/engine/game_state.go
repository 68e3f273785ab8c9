package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// positionState is the part of a position that cannot be recomputed when a
// move is undone. One snapshot exists per ply played plus the starting one.
type positionState struct {
	castling chess.CastlingRights
	epTarget chess.Square
	halfmove int
	fullmove int
}

// Game is the authoritative state of one game: board, side to move, king
// locations, castling rights history, en passant target and move log.
// It is mutated only through MakeMove, Play and UndoMove and is not safe
// for concurrent use; use Clone to hand a position to another goroutine.
type Game struct {
	board    chess.Board
	toMove   chess.Colour
	kings    [chess.NumColours]chess.Square
	castling chess.CastlingRights
	epTarget chess.Square
	halfmove int
	fullmove int

	moveLog []chess.Move
	history []positionState

	inCheck     bool
	checkmate   bool
	stalemate   bool
	statusFresh bool

	startFEN        string
	invariantChecks bool
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithInvariantChecks makes every MakeMove and UndoMove verify the game's
// bookkeeping and panic with ErrInconsistentState on drift.
func WithInvariantChecks() GameOption {
	return func(g *Game) {
		g.invariantChecks = true
	}
}

// NewGame creates a game at the standard starting position.
func NewGame(opts ...GameOption) *Game {
	g := &Game{
		toMove:   chess.White,
		castling: chess.AllCastlingRights(),
		epTarget: chess.NoSquare,
		fullmove: 1,
		startFEN: InitialFEN,
	}
	g.board.SetupInitialPosition()
	g.kings[chess.White] = chess.Sq(chess.HomeRank(chess.White), kingHomeCol)
	g.kings[chess.Black] = chess.Sq(chess.HomeRank(chess.Black), kingHomeCol)
	g.history = []positionState{g.snapshot()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.moveLog = append([]chess.Move(nil), g.moveLog...)
	c.history = append([]positionState(nil), g.history...)
	return &c
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, error) {
	if !sq.Valid() {
		return chess.Empty, fmt.Errorf("piece at %d,%d: %w", sq.Row, sq.Col, errors.ErrInvalidSquare)
	}
	return g.board.Get(sq), nil
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// KingSquare returns the cached king location for colour.
func (g *Game) KingSquare(colour chess.Colour) chess.Square {
	return g.kings[colour]
}

// CastlingRights returns the current castling rights.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.castling
}

// EnPassantTarget returns the square a pawn may capture onto en passant.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.epTarget, g.epTarget.Valid()
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullmoveNumber returns the current move number, starting at 1.
func (g *Game) FullmoveNumber() int {
	return g.fullmove
}

// Moves returns a copy of the move log, oldest first.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moveLog...)
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.moveLog)
}

// LastMove returns the most recently applied move.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.moveLog) == 0 {
		return chess.Move{}, false
	}
	return g.moveLog[len(g.moveLog)-1], true
}

// StartFEN returns the FEN of the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	g.refreshStatus()
	return g.inCheck
}

// Checkmate reports whether the side to move is checkmated.
func (g *Game) Checkmate() bool {
	g.refreshStatus()
	return g.checkmate
}

// Stalemate reports whether the side to move is stalemated.
func (g *Game) Stalemate() bool {
	g.refreshStatus()
	return g.stalemate
}

// Outcome returns the result marker: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Outcome() string {
	switch {
	case g.Checkmate() && g.toMove == chess.Black:
		return "1-0"
	case g.Checkmate():
		return "0-1"
	case g.Stalemate():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// refreshStatus recomputes the flags if a move changed the position since
// the last LegalMoves call.
func (g *Game) refreshStatus() {
	if !g.statusFresh {
		g.LegalMoves()
	}
}

// snapshot captures the irreversible parts of the current position.
func (g *Game) snapshot() positionState {
	return positionState{
		castling: g.castling,
		epTarget: g.epTarget,
		halfmove: g.halfmove,
		fullmove: g.fullmove,
	}
}

// restore makes s the current irreversible state.
func (g *Game) restore(s positionState) {
	g.castling = s.castling
	g.epTarget = s.epTarget
	g.halfmove = s.halfmove
	g.fullmove = s.fullmove
}

// moveContext builds the generator context for the side to move, with king
// probes running through the game's scoped king relocation.
func (g *Game) moveContext(pins []PinRecord) *moveContext {
	ctx := newMoveContext(&g.board, g.toMove, g.kings[g.toMove], pins, g.epTarget)
	colour := g.toMove
	ctx.kingSafe = func(sq chess.Square) bool {
		return g.kingSafeAt(colour, sq)
	}
	return ctx
}

// kingSafeAt virtually relocates the king of colour to sq, analyses, and
// puts the cached location back whatever happens during the probe.
func (g *Game) kingSafeAt(colour chess.Colour, sq chess.Square) bool {
	defer g.relocateKing(colour, sq)()
	return !analyze(&g.board, g.kings[colour], colour).InCheck
}

// relocateKing moves the cached king location and returns the function that
// undoes it.
func (g *Game) relocateKing(colour chess.Colour, sq chess.Square) func() {
	saved := g.kings[colour]
	g.kings[colour] = sq
	return func() {
		g.kings[colour] = saved
	}
}

// Validate checks the game's bookkeeping against the board: each king cache
// matches exactly one king, the state history is one longer than the move
// log, and an en passant target only follows a double pawn push.
func (g *Game) Validate() error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakePiece(colour, chess.King)
		sq := g.kings[colour]
		if !sq.Valid() || g.board.Get(sq) != king {
			return fmt.Errorf("%s king cached on %s: %w", colour, sq, errors.ErrInconsistentState)
		}
		if n := g.board.Count(king); n != 1 {
			return fmt.Errorf("%d %s kings on board: %w", n, colour, errors.ErrInconsistentState)
		}
	}
	if len(g.moveLog) != len(g.history)-1 {
		return fmt.Errorf("%d moves but %d state snapshots: %w", len(g.moveLog), len(g.history), errors.ErrInconsistentState)
	}
	if top := g.history[len(g.history)-1]; top != g.snapshot() {
		return fmt.Errorf("current state differs from history top: %w", errors.ErrInconsistentState)
	}
	if g.epTarget.Valid() && len(g.moveLog) > 0 {
		last := g.moveLog[len(g.moveLog)-1]
		if !last.IsDoublePush() || last.From.Col != g.epTarget.Col {
			return fmt.Errorf("en passant target %s after %s: %w", g.epTarget, last, errors.ErrInconsistentState)
		}
	}
	return nil
}

// mustBeConsistent panics on bookkeeping drift when invariant checks are on.
func (g *Game) mustBeConsistent() {
	if !g.invariantChecks {
		return
	}
	if err := g.Validate(); err != nil {
		panic(err)
	}
}
