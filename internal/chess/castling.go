package chess

// CastlingRights records which castles are still available. It is a value
// type; a game keeps one snapshot per ply.
type CastlingRights struct {
	WhiteKingside  bool
	BlackKingside  bool
	WhiteQueenside bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every castle available.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		BlackKingside:  true,
		WhiteQueenside: true,
		BlackQueenside: true,
	}
}

// Kingside reports the kingside right for a colour.
func (r CastlingRights) Kingside(c Colour) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queenside right for a colour.
func (r CastlingRights) Queenside(c Colour) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// WithoutColour returns a copy with both rights of c removed.
func (r CastlingRights) WithoutColour(c Colour) CastlingRights {
	if c == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
	return r
}

// WithoutRookAt returns a copy with the right tied to a rook home square
// removed. Squares that are not rook homes leave the rights unchanged.
func (r CastlingRights) WithoutRookAt(sq Square) CastlingRights {
	switch sq {
	case Square{Row: 7, Col: 0}:
		r.WhiteQueenside = false
	case Square{Row: 7, Col: 7}:
		r.WhiteKingside = false
	case Square{Row: 0, Col: 0}:
		r.BlackQueenside = false
	case Square{Row: 0, Col: 7}:
		r.BlackKingside = false
	}
	return r
}

// Any reports whether any right is held.
func (r CastlingRights) Any() bool {
	return r.WhiteKingside || r.WhiteQueenside || r.BlackKingside || r.BlackQueenside
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	var buf []byte
	if r.WhiteKingside {
		buf = append(buf, 'K')
	}
	if r.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if r.BlackKingside {
		buf = append(buf, 'k')
	}
	if r.BlackQueenside {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// HomeRank returns the back-rank row for a colour.
func HomeRank(c Colour) int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}
