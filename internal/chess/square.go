package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a (row, col) board coordinate. Row 0 is Black's back rank
// (rank 8) and col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by the direction scaled by n.
// The result may be off the board; check Valid before use.
func (s Square) Add(d Direction, n int) Square {
	return Square{Row: s.Row + d.DRow*n, Col: s.Col + d.DCol*n}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns algebraic notation such as "e4", or "-" when off board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Direction is a unit step (or knight offset) on the board.
type Direction struct {
	DRow int
	DCol int
}

// Negate returns the opposite direction.
func (d Direction) Negate() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// SameAxis reports whether other equals d or its negation.
func (d Direction) SameAxis(other Direction) bool {
	return d == other || d == other.Negate()
}

// IsOrthogonal reports whether the direction runs along a rank or file.
func (d Direction) IsOrthogonal() bool {
	return d.DRow == 0 || d.DCol == 0
}

// Orthogonals are the four rook directions.
var Orthogonals = [4]Direction{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Diagonals are the four bishop directions.
var Diagonals = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// KingDirections lists orthogonals first, then diagonals.
var KingDirections = [8]Direction{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// KnightOffsets are the eight knight jumps.
var KnightOffsets = [8]Direction{
	{-2, -1}, {-2, 1}, {-1, 2}, {1, 2},
	{2, -1}, {2, 1}, {-1, -2}, {1, -2},
}
