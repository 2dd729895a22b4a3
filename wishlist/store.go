// Package wishlist maintains the persisted set of saved car ids for a
// browser session and keeps every observer of that set consistent through a
// payload-free change broadcast.
package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Transition reports which way a Toggle went.
type Transition string

const (
	Added   Transition = "added"
	Removed Transition = "removed"
)

// Storage is the persistence port. It deals in the raw stored blob (a JSON
// array of car ids); the Store owns encoding and tolerates whatever comes
// back. Read returns nil data when nothing is stored yet.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// Store is the single source of truth for one user's saved cars. Mutations
// follow a strict order: update the in-memory set, persist the whole set,
// then broadcast to observers synchronously in subscription order — so an
// observer reacting to the broadcast always reloads the just-written state.
//
// Persistence is best effort: wishlist data is non-critical, so a failing
// Write is logged and swallowed and the in-memory set keeps reflecting the
// user's actions for the rest of the session.
type Store struct {
	storage Storage

	mu        sync.Mutex
	loaded    bool
	ids       []string
	nextSub   int
	observers []observer
}

type observer struct {
	id int
	fn func()
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load returns the current set of saved ids in insertion order. Missing or
// malformed persisted data yields an empty list, never an error.
func (s *Store) Load(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Contains reports whether the car id is saved.
func (s *Store) Contains(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	return s.indexOf(id) >= 0
}

// Toggle removes the id if present, appends it otherwise, persists the full
// set and broadcasts. The returned transition lets the caller update its own
// view immediately instead of waiting for the broadcast it will also
// receive.
func (s *Store) Toggle(ctx context.Context, id string) Transition {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	transition := Added
	if i := s.indexOf(id); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
		transition = Removed
	} else {
		s.ids = append(s.ids, id)
	}
	s.persist(ctx)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	broadcast(observers)
	return transition
}

// Remove deletes the id; removing an absent id is a no-op but still
// persists and broadcasts.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	s.ensureLoaded(ctx)

	if i := s.indexOf(id); i >= 0 {
		s.ids = append(s.ids[:i], s.ids[i+1:]...)
	}
	s.persist(ctx)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	broadcast(observers)
}

// Clear empties the set.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.loaded = true
	s.ids = nil
	s.persist(ctx)
	observers := s.snapshotObservers()
	s.mu.Unlock()

	broadcast(observers)
}

// Len returns the number of saved ids.
func (s *Store) Len(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	return len(s.ids)
}

// Subscribe registers a payload-free change observer and returns its
// unsubscribe func. Observers are invoked synchronously, in subscription
// order, after each mutation's persistence write; they are expected to
// re-Load to pick up the new state.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// ensureLoaded lazily reads the persisted set once. Callers hold s.mu.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := s.storage.Read(ctx)
	if err != nil || len(data) == 0 {
		return
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// Corrupt stored value: treat as empty rather than erroring.
		return
	}
	s.ids = dedupe(ids)
}

// persist writes the full set back. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		log.Printf("[wishlist] encode failed: %v", err)
		return
	}
	if err := s.storage.Write(ctx, data); err != nil {
		log.Printf("[wishlist] persist failed (keeping in-memory state): %v", err)
	}
}

func (s *Store) indexOf(id string) int {
	for i, existing := range s.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotObservers() []func() {
	fns := make([]func(), len(s.observers))
	for i, o := range s.observers {
		fns[i] = o.fn
	}
	return fns
}

// broadcast runs outside the store lock so observers can call back into the
// store.
func broadcast(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
