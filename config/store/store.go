// Package store holds configuration entries indexed by the hash of their path.
package store

import (
	"github.com/0xalexb/hjarta-conf/config/alloc"
	"github.com/0xalexb/hjarta-conf/config/cache"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the 64-bit key of a path. Distinct paths that collide are
// indistinguishable to the store.
func Hash(path string) uint64 {
	return xxhash.Sum64String(path)
}

// HashBytes is Hash for a path held in a byte slice.
func HashBytes(path []byte) uint64 {
	return xxhash.Sum64(path)
}

// Entry is a single key/value pair.
type Entry struct {
	Key   uint64
	Value cache.Handle
}

// Store maps path hashes to cache handles. Writes are not synchronized;
// concurrent Get calls are safe once writing has stopped.
type Store struct {
	entries map[uint64]cache.Handle
	tracker alloc.Tracker
}

// New creates an empty Store. A nil tracker is replaced with alloc.Nop.
func New(tracker alloc.Tracker) *Store {
	if tracker == nil {
		tracker = alloc.Nop{}
	}

	tracker.Acquire(alloc.KindStore, 1)

	return &Store{
		entries: make(map[uint64]cache.Handle),
		tracker: tracker,
	}
}

// Put inserts e, overwriting any entry with the same key. It reports whether an
// existing entry was replaced.
func (s *Store) Put(e Entry) bool {
	_, replaced := s.entries[e.Key]
	s.entries[e.Key] = e.Value

	return replaced
}

// Get returns the handle stored under key.
func (s *Store) Get(key uint64) (cache.Handle, bool) {
	handle, ok := s.entries[key]

	return handle, ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Released reports whether Release has been called.
func (s *Store) Released() bool {
	return s.entries == nil
}

// Release drops all entries. It is safe to call more than once.
func (s *Store) Release() {
	if s.entries == nil {
		return
	}

	s.entries = nil
	s.tracker.Free(alloc.KindStore, 1)
}
