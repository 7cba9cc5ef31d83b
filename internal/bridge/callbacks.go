package bridge

import (
	"sync"

	"github.com/google/uuid"
)

// Registry tracks one-shot callbacks for asynchronous host operations.
// Each pending call is keyed by a generated request id; the callback runs
// at most once and is removed on dispatch or cancel. Late deliveries for an
// unknown id are dropped, so a caller that went away is safe to ignore.
type Registry struct {
	mu      sync.Mutex
	pending map[string]func(payload string)
}

// NewRegistry creates an empty callback registry
func NewRegistry() *Registry {
	return &Registry{pending: make(map[string]func(payload string))}
}

// Register stores fn and returns the request id to hand to the host
func (r *Registry) Register(fn func(payload string)) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.pending[id] = fn
	r.mu.Unlock()
	return id
}

// Dispatch delivers a payload for the given request id. Returns false when
// the id is unknown (already dispatched, cancelled, or never registered).
func (r *Registry) Dispatch(id, payload string) bool {
	r.mu.Lock()
	fn, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	fn(payload)
	return true
}

// Cancel drops a pending callback without invoking it
func (r *Registry) Cancel(id string) {
	r.mu.Lock()
	delete(r.pending, id)
	r.mu.Unlock()
}

// Len returns the number of callbacks still pending
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
