package chess

// Move describes a single ply. Moves produced by the generator are treated
// as immutable values.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Moved Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// pawn removed from CaptureSquare, not the contents of To.
	Captured Piece

	EnPassant bool
	Castle    bool
	Promotion bool

	// The kind promoted to. Set only on moves recorded in a game's log.
	PromotedTo Kind
}

// Equal reports whether two moves share start and end squares. Flags are
// not part of a move's identity.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsKingside reports whether a castle move goes towards the h-file.
func (m Move) IsKingside() bool {
	return m.Castle && m.To.Col > m.From.Col
}

// IsDoublePush reports whether the move is a two-square pawn advance.
func (m Move) IsDoublePush() bool {
	if m.Moved.Kind() != Pawn {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// CaptureSquare returns the square vacated by the captured piece.
func (m Move) CaptureSquare() Square {
	if m.EnPassant {
		return Square{Row: m.From.Row, Col: m.To.Col}
	}
	return m.To
}

// UCI returns long algebraic notation such as "e2e4" or "e7e8q".
func (m Move) UCI() string {
	buf := []byte(m.From.String() + m.To.String())
	if m.Promotion && m.PromotedTo != NoKind {
		buf = append(buf, m.PromotedTo.Letter()+('a'-'A'))
	}
	return string(buf)
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}

// CastleRookSquares returns the rook's start and end squares for a castle move.
func (m Move) CastleRookSquares() (from, to Square) {
	if m.IsKingside() {
		return Square{Row: m.To.Row, Col: BoardSize - 1}, Square{Row: m.To.Row, Col: m.To.Col - 1}
	}
	return Square{Row: m.To.Row, Col: 0}, Square{Row: m.To.Row, Col: m.To.Col + 1}
}
