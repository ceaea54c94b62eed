package hashing

import (
	"sync"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Tracker counts how often each position (placement plus side to move)
// has occurred in a game. It is safe for concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	seen     map[uint64]int
	repeated int
	max      int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]int)}
}

// Record adds the position and returns how many times it has now been seen.
func (t *Tracker) Record(b *chess.Board, toMove chess.Colour) int {
	key := PositionKey(b, toMove)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[key]++
	n := t.seen[key]
	if n > 1 {
		t.repeated++
	}
	if n > t.max {
		t.max = n
	}
	return n
}

// Count returns how many times the position has been recorded.
func (t *Tracker) Count(b *chess.Board, toMove chess.Colour) int {
	key := PositionKey(b, toMove)
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.seen[key]
}

// RepeatCount returns the number of Record calls that hit a position seen
// before.
func (t *Tracker) RepeatCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.repeated
}

// MaxOccurrences returns the highest occurrence count of any one position.
func (t *Tracker) MaxOccurrences() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.max
}

// UniqueCount returns the number of distinct positions recorded.
func (t *Tracker) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.seen)
}

// Reset clears the tracker.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = make(map[uint64]int)
	t.repeated = 0
	t.max = 0
}
