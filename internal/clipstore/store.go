// Package clipstore holds the daemon's shared selection state: the "copied"
// and "cut" path sets. It is the only mutable state shared across connection
// handlers. Each set carries its own guard so traffic against one set never
// blocks traffic against the other.
package clipstore

import (
	"sort"
	"sync"
)

// Kind names one of the two selection sets.
type Kind int

const (
	Copied Kind = iota
	Cut
)

func (k Kind) String() string {
	if k == Cut {
		return "cut"
	}
	return "copied"
}

// PathStatus reports how a path participates in the clipboard. A path
// present in both sets reports StatusCut: cut takes precedence so the UI
// renders a pending move rather than a pending copy.
type PathStatus int

const (
	StatusNone PathStatus = iota
	StatusCopied
	StatusCut
)

type pathSet struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

// Store is the concurrency-safe container for both selection sets. Paths are
// opaque strings compared by exact byte value; the store never normalizes
// them.
type Store struct {
	copied pathSet
	cut    pathSet
}

// New returns a store with both selection sets empty.
func New() *Store {
	return &Store{
		copied: pathSet{paths: make(map[string]struct{})},
		cut:    pathSet{paths: make(map[string]struct{})},
	}
}

func (s *Store) set(kind Kind) *pathSet {
	if kind == Cut {
		return &s.cut
	}
	return &s.copied
}

// Replace atomically discards the named set's contents and installs paths.
// Duplicate entries collapse. Readers observe either the previous or the new
// contents, never a mixture.
func (s *Store) Replace(kind Kind, paths []string) {
	next := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		next[p] = struct{}{}
	}

	set := s.set(kind)
	set.mu.Lock()
	set.paths = next
	set.mu.Unlock()
}

// Clear empties both selection sets in one atomic step. Both guards are held
// for the duration, always in the same order, so no snapshot can observe one
// set cleared and the other not.
func (s *Store) Clear() {
	s.copied.mu.Lock()
	s.cut.mu.Lock()
	s.copied.paths = make(map[string]struct{})
	s.cut.paths = make(map[string]struct{})
	s.cut.mu.Unlock()
	s.copied.mu.Unlock()
}

// Snapshot returns an immutable point-in-time copy of the named set, sorted
// for stable output. Callers must not rely on any particular order.
func (s *Store) Snapshot(kind Kind) []string {
	set := s.set(kind)
	set.mu.RLock()
	out := make([]string, 0, len(set.paths))
	for p := range set.paths {
		out = append(out, p)
	}
	set.mu.RUnlock()

	sort.Strings(out)
	return out
}

// Len returns the current cardinality of the named set.
func (s *Store) Len(kind Kind) int {
	set := s.set(kind)
	set.mu.RLock()
	defer set.mu.RUnlock()
	return len(set.paths)
}

// Status resolves a path against both sets, applying cut precedence.
func (s *Store) Status(path string) PathStatus {
	s.cut.mu.RLock()
	_, inCut := s.cut.paths[path]
	s.cut.mu.RUnlock()
	if inCut {
		return StatusCut
	}

	s.copied.mu.RLock()
	_, inCopied := s.copied.paths[path]
	s.copied.mu.RUnlock()
	if inCopied {
		return StatusCopied
	}
	return StatusNone
}
