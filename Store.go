package rroute

import (
	"sync"

	"github.com/rohanthewiz/rroute/consts"
)

// MemoryStore is an in-memory Store. It applies PUSH and REPLACE
// actions to its current location and records every dispatched action.
// It keeps no history. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	location Location
	actions  []Action
}

// NewMemoryStore creates a store positioned at the given location.
func NewMemoryStore(initial Location) *MemoryStore {
	return &MemoryStore{location: initial.Normalize()}
}

func (s *MemoryStore) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append(s.actions, action)

	switch action.Type {
	case consts.ActionPush, consts.ActionReplace:
		next := action.Payload.Location().Normalize()

		if action.Payload.Options.PersistQuery && len(s.location.Query) > 0 {
			next.Query = next.Query.Merge(s.location.Query)
			next.Search = next.Query.Search()
		}
		s.location = next
	}
}

func (s *MemoryStore) Location() Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// Actions returns a copy of the dispatched actions in order.
func (s *MemoryStore) Actions() []Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Action(nil), s.actions...)
}
