package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ScrollCoordinator hides the inline search entry when the list scrolls
// down past ScrollHideTop and shows it again under ScrollShowTop. Inside
// the band the last decision is retained, so jitter near one boundary
// never flickers the entry. Scroll events only mark a recomputation as
// pending; Frame applies at most one per rendered frame.
type ScrollCoordinator struct {
	visible    bool
	pending    bool
	pendingTop float32
	attached   bool
	scheduled  bool
	onChange   func(visible bool)
	schedule   func(func())
}

// NewScrollCoordinator creates a coordinator with the search visible
func NewScrollCoordinator(onChange func(visible bool)) *ScrollCoordinator {
	return &ScrollCoordinator{
		visible:  true,
		onChange: onChange,
		schedule: fyne.Do,
	}
}

// Attach wires the coordinator to a scroll container. A nil scroll leaves
// the coordinator detached and the visible state at its default.
func (c *ScrollCoordinator) Attach(scroll *container.Scroll) {
	if scroll == nil {
		return
	}
	c.attached = true
	scroll.OnScrolled = func(offset fyne.Position) {
		c.OnScroll(offset.Y)
		c.scheduleFrame()
	}
}

// scheduleFrame queues a single Frame on the event loop. Scroll events
// arriving before the queued call runs land in the same Frame.
func (c *ScrollCoordinator) scheduleFrame() {
	if c.scheduled {
		return
	}
	c.scheduled = true
	c.schedule(func() {
		c.scheduled = false
		c.Frame()
	})
}

// OnScroll records the latest scroll position. Repeated calls before the
// next Frame collapse into one pending recomputation.
func (c *ScrollCoordinator) OnScroll(top float32) {
	if !c.attached {
		return
	}
	c.pendingTop = top
	c.pending = true
}

// Frame applies the pending recomputation, notifying only on an actual
// visibility change.
func (c *ScrollCoordinator) Frame() {
	if !c.pending {
		return
	}
	c.pending = false

	next := c.visible
	switch {
	case c.pendingTop >= ScrollHideTop:
		next = false
	case c.pendingTop < ScrollShowTop:
		next = true
	}
	if next == c.visible {
		return
	}
	c.visible = next
	if c.onChange != nil {
		c.onChange(next)
	}
}

// Visible returns the current search visibility decision
func (c *ScrollCoordinator) Visible() bool {
	return c.visible
}

// Pending reports whether a recomputation is waiting for the next frame
func (c *ScrollCoordinator) Pending() bool {
	return c.pending
}
