package hashing

import "github.com/lgbarn/matesearch-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs and can
// be stored.
const zobristSeed = 0x9E3779B97F4A7C15

// pieceKeys holds one key per colour, kind and square.
var pieceKeys [2][7][chess.BoardSize * chess.BoardSize]uint64

func init() {
	state := uint64(zobristSeed)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				state, pieceKeys[c][k][sq] = splitmix64(state)
			}
		}
	}
}

// splitmix64 advances the generator state and returns the next output.
func splitmix64(state uint64) (uint64, uint64) {
	state += 0x9E3779B97F4A7C15
	z := state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return state, z ^ (z >> 31)
}

func squareIndex(sq chess.Square) int {
	return sq.Rank*chess.BoardSize + sq.File
}

// Hash returns the Zobrist hash of the pieces on the board. The side to
// move is not part of the hash.
func Hash(board *chess.Board) uint64 {
	var h uint64
	for sq, p := range board.Pieces() {
		if !sq.Valid() {
			continue
		}
		h ^= pieceKeys[p.Colour][p.Kind][squareIndex(sq)]
	}
	return h
}

// WeakHash returns a cheap order-independent checksum of the board, used as
// a second opinion when two Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for sq, p := range board.Pieces() {
		code := uint32(p.Kind)<<1 | uint32(p.Colour)
		h += code * uint32(squareIndex(sq)+1) * 2654435761
	}
	return h
}
