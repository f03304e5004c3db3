// Package inventory holds the in-memory asset/relationship store and the
// pure view logic derived from it: subgraph filtering and selection
// details.
package inventory

import (
	"fmt"
	"sync"

	"github.com/cloud-compass/compass/backend/pkg/model"
)

// ValidationError reports a malformed ingest batch. The batch is applied
// all-or-nothing: when any element is invalid the store is left untouched.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid asset at index %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Store is the authoritative, ordered collection of assets and
// relationships. Mutations are atomic relative to each other; reads return
// copied snapshots so callers can filter and render without holding any
// lock.
//
// The store only grows: nothing ever deletes an asset or relationship,
// entries are only replaced by id collision during ingest.
type Store struct {
	mu            sync.RWMutex
	assets        []model.Asset
	relationships []model.Relationship
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Ingest merges a batch of assets into the store. An incoming asset whose
// id matches an existing one replaces it: the old entry is removed and the
// incoming batch is appended, in its given order, after the surviving
// assets. The whole batch is validated first; on any invalid element the
// store is left unchanged and a *ValidationError is returned.
func (s *Store) Ingest(assets []model.Asset) error {
	for i, a := range assets {
		if err := a.Validate(); err != nil {
			return &ValidationError{Index: i, Err: err}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		incoming[a.ID] = struct{}{}
	}

	kept := make([]model.Asset, 0, len(s.assets)+len(assets))
	for _, a := range s.assets {
		if _, replaced := incoming[a.ID]; !replaced {
			kept = append(kept, a)
		}
	}
	s.assets = append(kept, assets...)

	return nil
}

// AppendRelationship appends unconditionally. There is no duplicate-id
// check: accepted AI suggestions carry freshly generated ids.
func (s *Store) AppendRelationship(rel model.Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relationships = append(s.relationships, rel)
}

// Assets returns a snapshot of all assets in store order.
func (s *Store) Assets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Relationships returns a snapshot of all relationships in store order.
func (s *Store) Relationships() []model.Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Relationship, len(s.relationships))
	copy(out, s.relationships)
	return out
}

// Asset looks up a single asset by id.
func (s *Store) Asset(id string) (model.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return model.Asset{}, false
}

// Counts returns the number of stored assets and relationships.
func (s *Store) Counts() (assets int, relationships int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets), len(s.relationships)
}
