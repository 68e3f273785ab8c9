package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PinRecord marks an allied piece that may only move along Direction or its
// negation. Direction points from the king towards the pinning piece.
type PinRecord struct {
	Square    chess.Square
	Direction chess.Direction
}

// CheckRecord describes one piece giving check. For sliders and adjacent
// attackers Direction is the unit step from the king towards the attacker;
// for knights it is the knight offset and Knight is set.
type CheckRecord struct {
	Attacker  chess.Square
	Direction chess.Direction
	Knight    bool
}

// Analysis is an immutable snapshot of the threats against one king.
type Analysis struct {
	InCheck bool
	Pins    []PinRecord
	Checks  []CheckRecord
}

// DoubleCheck reports whether two or more pieces give check.
func (a Analysis) DoubleCheck() bool {
	return len(a.Checks) > 1
}

// PinFor returns the pin direction for the piece on sq, if it is pinned.
func (a Analysis) PinFor(sq chess.Square) (chess.Direction, bool) {
	return pinFor(a.Pins, sq)
}

func pinFor(pins []PinRecord, sq chess.Square) (chess.Direction, bool) {
	for _, pin := range pins {
		if pin.Square == sq {
			return pin.Direction, true
		}
	}
	return chess.Direction{}, false
}

// Analyze computes check and pin information for a king of the given colour
// standing on king. The square need not hold the king: callers probe
// candidate king squares this way. The analysing side's own king is
// transparent to the rays.
func Analyze(board *chess.Board, king chess.Square, colour chess.Colour) (Analysis, error) {
	if !king.Valid() {
		return Analysis{}, fmt.Errorf("analyze %d,%d: %w", king.Row, king.Col, errors.ErrInvalidSquare)
	}
	return analyze(board, king, colour), nil
}

// analyze is Analyze without the entry check.
func analyze(board *chess.Board, king chess.Square, colour chess.Colour) Analysis {
	var result Analysis
	enemy := colour.Opposite()

	for _, dir := range chess.KingDirections {
		candidate := chess.NoSquare
		for i := 1; i < chess.BoardSize; i++ {
			sq := king.Add(dir, i)
			if !sq.Valid() {
				break
			}
			piece := board.Get(sq)
			if piece == chess.Empty {
				continue
			}
			if piece.Colour() == colour {
				if piece.Kind() == chess.King {
					continue
				}
				if candidate != chess.NoSquare {
					break // Second allied piece: nothing on this ray
				}
				candidate = sq
				continue
			}
			if attacksAlong(piece.Kind(), enemy, dir, i) {
				if candidate == chess.NoSquare {
					result.InCheck = true
					result.Checks = append(result.Checks, CheckRecord{Attacker: sq, Direction: dir})
				} else {
					result.Pins = append(result.Pins, PinRecord{Square: candidate, Direction: dir})
				}
			}
			break
		}
	}

	knight := chess.MakePiece(enemy, chess.Knight)
	for _, offset := range chess.KnightOffsets {
		sq := king.Add(offset, 1)
		if sq.Valid() && board.Get(sq) == knight {
			result.InCheck = true
			result.Checks = append(result.Checks, CheckRecord{Attacker: sq, Direction: offset, Knight: true})
		}
	}

	return result
}

// attacksAlong reports whether an enemy piece of the given kind, found
// distance squares from the king in direction dir, attacks the king.
func attacksAlong(kind chess.Kind, enemy chess.Colour, dir chess.Direction, distance int) bool {
	switch kind {
	case chess.Rook:
		return dir.IsOrthogonal()
	case chess.Bishop:
		return !dir.IsOrthogonal()
	case chess.Queen:
		return true
	case chess.King:
		return distance == 1
	case chess.Pawn:
		// The pawn sits one step against its own direction of travel.
		return distance == 1 && dir.DCol != 0 && dir.DRow == -enemy.Forward()
	default:
		return false
	}
}

// IsAttacked reports whether a piece of colour standing on sq would be
// attacked by the opponent.
func IsAttacked(board *chess.Board, sq chess.Square, colour chess.Colour) (bool, error) {
	a, err := Analyze(board, sq, colour)
	if err != nil {
		return false, err
	}
	return a.InCheck, nil
}
