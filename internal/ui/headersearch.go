package ui

import "sync"

// HeaderSearch is the shared slot through which a screen asks the outer
// header to show a collapsed-search affordance. The list screen registers
// on mount and clears on teardown; the header subscribes and renders
// whatever the current registration says. It is passed in explicitly, not
// read from ambient state.
type HeaderSearch struct {
	mu      sync.Mutex
	visible bool
	onTap   func()
	subs    []func(visible bool)
}

// NewHeaderSearch creates an empty registration slot
func NewHeaderSearch() *HeaderSearch {
	return &HeaderSearch{}
}

// Set registers the affordance and the tap handler, replacing any previous
// registration.
func (h *HeaderSearch) Set(visible bool, onTap func()) {
	h.mu.Lock()
	h.visible = visible
	h.onTap = onTap
	subs := h.snapshotSubs()
	h.mu.Unlock()
	for _, fn := range subs {
		fn(visible)
	}
}

// Clear restores the header to its default state with no affordance
func (h *HeaderSearch) Clear() {
	h.Set(false, nil)
}

// Visible reports whether the affordance should be shown
func (h *HeaderSearch) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

// Tap invokes the registered handler, if any
func (h *HeaderSearch) Tap() {
	h.mu.Lock()
	onTap := h.onTap
	h.mu.Unlock()
	if onTap != nil {
		onTap()
	}
}

// Subscribe registers fn to run on every registration change
func (h *HeaderSearch) Subscribe(fn func(visible bool)) {
	h.mu.Lock()
	h.subs = append(h.subs, fn)
	h.mu.Unlock()
}

func (h *HeaderSearch) snapshotSubs() []func(visible bool) {
	subs := make([]func(visible bool), len(h.subs))
	copy(subs, h.subs)
	return subs
}
