// Package hashing identifies chess positions by hash and counts distinct
// mating positions.
package hashing

import (
	"github.com/lgbarn/matesearch-go/internal/chess"
)

// MateDeduper tracks the final positions of mate lines so that lines
// reaching the same mate by different move orders are counted once.
type MateDeduper struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]Signature
	// duplicateCount tracks the number of repeated positions
	duplicateCount int
}

// Signature identifies a mating position.
type Signature struct {
	// Hash is the Zobrist hash of the board
	Hash uint64
	// WeakHash is a second checksum for collision checks
	WeakHash uint32
	// Mated is the side that is checkmated
	Mated chess.Colour
}

// NewMateDeduper creates an empty deduper.
func NewMateDeduper() *MateDeduper {
	return &MateDeduper{hashTable: make(map[uint64][]Signature)}
}

// CheckAndAdd records the position and reports whether it had been seen
// before.
func (d *MateDeduper) CheckAndAdd(board *chess.Board, mated chess.Colour) bool {
	if board == nil {
		return false
	}

	sig := Signature{Hash: Hash(board), WeakHash: WeakHash(board), Mated: mated}
	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// DuplicateCount returns the number of repeated positions seen.
func (d *MateDeduper) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions.
func (d *MateDeduper) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the table.
func (d *MateDeduper) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
