// Package hashing provides Zobrist position hashing and the perft result
// cache built on it.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

// pieceSlots covers every packed piece value.
const pieceSlots = (int(chess.King)<<chess.PieceShift | int(chess.White)) + 1

var (
	pieceKeys    [pieceSlots][chess.BoardSize][chess.BoardSize]uint64
	whiteToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	state := uint64(zobristSeed)
	for p := range pieceKeys {
		for row := range pieceKeys[p] {
			for col := range pieceKeys[p][row] {
				pieceKeys[p][row][col] = splitmix64(&state)
			}
		}
	}
	whiteToMove = splitmix64(&state)
	for i := range castlingKeys {
		castlingKeys[i] = splitmix64(&state)
	}
	for i := range epFileKeys {
		epFileKeys[i] = splitmix64(&state)
	}
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Zobrist returns the hash of the game's current position: placement, side
// to move, castling rights and en passant file.
func Zobrist(g *engine.Game) uint64 {
	board := g.Board()
	hash := BoardHash(&board)

	if g.ToMove() == chess.White {
		hash ^= whiteToMove
	}
	rights := g.CastlingRights()
	for i, held := range []bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if held {
			hash ^= castlingKeys[i]
		}
	}
	if ep, ok := g.EnPassantTarget(); ok {
		hash ^= epFileKeys[ep.Col]
	}
	return hash
}

// BoardHash hashes the piece placement alone.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := board.Squares[row][col]; p != chess.Empty {
				hash ^= pieceKeys[p][row][col]
			}
		}
	}
	return hash
}
