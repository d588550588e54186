package namespace

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Registry keeps the open sessions of one namespace, keyed by session id.
type Registry struct {
	ns       *Namespace
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry for ns.
func NewRegistry(ns *Namespace) *Registry {
	return &Registry{
		ns:       ns,
		sessions: make(map[string]*Session),
	}
}

// Namespace returns the namespace sessions are opened against.
func (r *Registry) Namespace() *Namespace {
	return r.ns
}

// Open creates a session at the root and registers it.
func (r *Registry) Open() *Session {
	s := r.ns.NewSession()
	r.mu.Lock()
	r.sessions[s.id] = s
	r.mu.Unlock()
	r.ns.logger.Debug("session opened", zap.String("session", s.id))
	return s
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Close forgets a session. It reports whether the id was registered.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		r.ns.logger.Debug("session closed", zap.String("session", id))
	}
	return ok
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs returns the open session ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}
