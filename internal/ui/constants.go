package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Swipe gesture geometry. ActionWidth is the reveal width hosting the two
// trailing action buttons; a release more negative than SnapThreshold settles
// open, anything else settles closed. Movement below DragThreshold counts as
// a tap, not a drag.
const (
	ActionWidth   float32 = 120
	SnapThreshold float32 = ActionWidth * 0.4
	DragThreshold float32 = 8
)

// Snap animation behavior
const (
	SnapAnimationDuration = 250 * time.Millisecond
)

// Scroll-linked search visibility thresholds. The band between the two
// values is a hysteresis zone where the last decision is retained.
const (
	ScrollHideTop float32 = 56
	ScrollShowTop float32 = 16
)

// Layout sizing (panel rows / lists)
const (
	RowMinWidth  float32 = 320
	RowMinHeight float32 = 64
	RowDefaultH  float32 = 72

	AvatarSize float32 = 48

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Sheet sizing
const (
	SheetWidth  float32 = 380
	SheetHeight float32 = 520
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)
