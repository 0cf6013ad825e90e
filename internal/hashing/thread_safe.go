package hashing

import (
	"sync"

	"github.com/lgbarn/matesearch-go/internal/chess"
)

// ThreadSafeMateDeduper wraps MateDeduper with mutex protection for
// concurrent access.
type ThreadSafeMateDeduper struct {
	deduper *MateDeduper
	mu      sync.RWMutex
}

// NewThreadSafeMateDeduper creates an empty thread-safe deduper.
func NewThreadSafeMateDeduper() *ThreadSafeMateDeduper {
	return &ThreadSafeMateDeduper{deduper: NewMateDeduper()}
}

// CheckAndAdd atomically checks and records a position.
func (d *ThreadSafeMateDeduper) CheckAndAdd(board *chess.Board, mated chess.Colour) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deduper.CheckAndAdd(board, mated)
}

// DuplicateCount returns the number of repeated positions seen.
func (d *ThreadSafeMateDeduper) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.deduper.DuplicateCount()
}

// UniqueCount returns the number of distinct positions.
func (d *ThreadSafeMateDeduper) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.deduper.UniqueCount()
}
