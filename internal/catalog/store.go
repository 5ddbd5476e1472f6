package catalog

import "sync/atomic"

// Store holds the current catalog snapshot for concurrent readers.
//
// Readers call Load and work on the returned *Catalog; a writer replaces
// the whole snapshot with Swap. Snapshots are immutable, so a reader
// never observes a partially applied reload.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Swap installs c and returns the previous snapshot.
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.current.Swap(c)
}
