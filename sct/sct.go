// Package sct implements the Session Context Table: a per-session,
// content-addressed cache mapping previously transmitted encoded
// values to a short index, so a sender can replace a repeated value
// with a CONTEXT_REF and a receiver can resolve one back to its bytes.
package sct

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Table is a bounded, content-addressed value cache. It is safe for
// concurrent use by multiple goroutines.
type Table struct {
	mu      sync.Mutex
	maxSize uint32
	byHash  map[uint64]uint32
	byIndex [][]byte
}

// New returns a Table capped at maxSize entries, matching a
// session's negotiated SessionParams.SCTMaxSize.
func New(maxSize uint32) *Table {
	return &Table{
		maxSize: maxSize,
		byHash:  make(map[uint64]uint32),
	}
}

// ErrFull reports that the table has reached its negotiated capacity
// and cannot intern any new value.
type ErrFull struct{ MaxSize uint32 }

func (e *ErrFull) Error() string {
	return fmt.Sprintf("aill: session context table full at %d entries", e.MaxSize)
}

// Intern returns the short index assigned to value's content hash,
// registering a new entry if this exact content has not been seen
// before in this session. alreadyKnown reports whether an existing
// entry was reused, letting the caller decide whether emitting a
// CONTEXT_REF is actually cheaper than the value itself.
func (t *Table) Intern(value []byte) (index uint32, alreadyKnown bool, err error) {
	h := xxhash.Sum64(value)

	t.mu.Lock()
	defer t.mu.Unlock()

	if idx, ok := t.byHash[h]; ok {
		return idx, true, nil
	}
	if uint32(len(t.byIndex)) >= t.maxSize {
		return 0, false, &ErrFull{MaxSize: t.maxSize}
	}
	idx := uint32(len(t.byIndex))
	stored := make([]byte, len(value))
	copy(stored, value)
	t.byIndex = append(t.byIndex, stored)
	t.byHash[h] = idx
	return idx, false, nil
}

// Resolve returns the bytes previously interned at index.
func (t *Table) Resolve(index uint32) ([]byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index >= uint32(len(t.byIndex)) {
		return nil, false
	}
	return t.byIndex[index], true
}

// Len returns the number of entries currently interned.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byIndex)
}
