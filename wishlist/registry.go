package wishlist

import "sync"

// Registry hands out one Store per browser session. The original site had a
// single browser's storage; the server multiplexes that per session cookie,
// so two requests from the same session always hit the same Store (and its
// observers).
type Registry struct {
	newStorage func(session string) Storage
	onCreate   func(session string, s *Store)

	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry builds a registry. newStorage creates the persistence port for
// a session; onCreate, if set, runs once per store so callers can attach
// standing observers (activity logging, metrics).
func NewRegistry(newStorage func(session string) Storage, onCreate func(session string, s *Store)) *Registry {
	return &Registry{
		newStorage: newStorage,
		onCreate:   onCreate,
		stores:     make(map[string]*Store),
	}
}

// For returns the session's store, creating it on first use.
func (r *Registry) For(session string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[session]; ok {
		return s
	}
	s := NewStore(r.newStorage(session))
	r.stores[session] = s
	if r.onCreate != nil {
		r.onCreate(session, s)
	}
	return s
}
