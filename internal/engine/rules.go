package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DrawRuleResult contains the results of draw rule detection. The engine
// reports these conditions but never ends a game on them.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 50 moves (100 half-moves) have passed
	// without a pawn move or capture.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is the same for 75 moves (150 half-moves).
	SeventyFiveMoveRule bool

	// ThreefoldRepetition is true if the current position occurred at
	// least three times in the game.
	ThreefoldRepetition bool

	// FivefoldRepetition is the same for five occurrences.
	FivefoldRepetition bool

	// InsufficientMaterial is true if neither side can mate.
	InsufficientMaterial bool
}

// AnalyzeDrawRules reports the draw conditions of the current position.
func AnalyzeDrawRules(g *Game) DrawRuleResult {
	result := DrawRuleResult{
		FiftyMoveRule:        g.halfmove >= 100,
		SeventyFiveMoveRule:  g.halfmove >= 150,
		InsufficientMaterial: HasInsufficientMaterial(&g.board),
	}

	repeats := Repetitions(g)
	result.ThreefoldRepetition = repeats >= 3
	result.FivefoldRepetition = repeats >= 5
	return result
}

// Repetitions counts how many times the current position occurred in the
// game, the current occurrence included. Positions match on placement, side
// to move, castling rights and en passant square.
func Repetitions(g *Game) int {
	c := g.Clone()
	current := positionKey(c)
	count := 0
	for {
		if positionKey(c) == current {
			count++
		}
		if !c.UndoMove() {
			break
		}
	}
	return count
}

// positionKey is the FEN without its clocks.
func positionKey(g *Game) string {
	fields := strings.Fields(g.FEN())
	return strings.Join(fields[:4], " ")
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece == chess.Empty {
				continue
			}

			kind := piece.Kind()
			if kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
				return false
			}

			if piece.Colour() == chess.White {
				whitePieces = append(whitePieces, kind)
				if kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			} else {
				blackPieces = append(blackPieces, kind)
				if kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(chess.Sq(row, col))
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 (row 0, col 0) is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
