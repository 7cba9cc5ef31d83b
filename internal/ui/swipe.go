package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SwipeState is the gesture state machine behind a swipeable row. It turns a
// horizontal pointer drag into a trailing-action reveal offset in
// [-ActionWidth, 0]. Live tracking is 1:1 and unanimated; only the release
// snap is animated by the owning widget.
type SwipeState struct {
	offset      float32
	startX      float32
	startOffset float32
	tracking    bool
	didDrag     bool
}

// PointerDown begins a gesture at x, capturing the current offset as the
// drag origin and clearing the did-drag flag.
func (s *SwipeState) PointerDown(x float32) {
	s.startX = x
	s.startOffset = s.offset
	s.tracking = true
	s.didDrag = false
}

// PointerMove applies a pointer position update and returns the new offset.
// Movement past DragThreshold marks the gesture as a drag, which suppresses
// the row's next click.
func (s *SwipeState) PointerMove(x float32) float32 {
	if !s.tracking {
		return s.offset
	}
	delta := x - s.startX
	if delta > DragThreshold || delta < -DragThreshold {
		s.didDrag = true
	}
	offset := s.startOffset + delta
	if offset < -ActionWidth {
		offset = -ActionWidth
	}
	if offset > 0 {
		offset = 0
	}
	s.offset = offset
	return offset
}

// PointerUp resolves the gesture: strictly past the snap threshold settles
// fully open, anything else settles fully closed. Pointer-leave is handled
// the same way by callers.
func (s *SwipeState) PointerUp() (target float32, open bool) {
	if !s.tracking {
		return s.offset, s.offset == -ActionWidth
	}
	s.tracking = false
	if s.offset < -SnapThreshold {
		s.offset = -ActionWidth
		return -ActionWidth, true
	}
	s.offset = 0
	return 0, false
}

// ForceClose resets the row to closed, even mid-gesture
func (s *SwipeState) ForceClose() {
	s.offset = 0
	s.tracking = false
}

// ConsumeClick reports whether the last gesture was a drag, clearing the
// flag. A true result means the row's click handler must not fire.
func (s *SwipeState) ConsumeClick() bool {
	didDrag := s.didDrag
	s.didDrag = false
	return didDrag
}

// Offset returns the current reveal offset
func (s *SwipeState) Offset() float32 {
	return s.offset
}

// Open reports whether the row is fully open
func (s *SwipeState) Open() bool {
	return s.offset == -ActionWidth
}

// SwipeRow hosts a row's content over an under-layer with edit and delete
// buttons, revealed by dragging the content to the left. Callbacks are
// dispatched with the row's panel id, never with captured row data, so a
// list refresh mid-gesture cannot act on a stale record.
type SwipeRow struct {
	widget.BaseWidget

	PanelID uint

	OnEdit        func(panelID uint)
	OnDelete      func(panelID uint)
	OnSelect      func(panelID uint)
	OnOpenChanged func(panelID uint, open bool)

	state   SwipeState
	content fyne.CanvasObject

	editBtn   *widget.Button
	deleteBtn *widget.Button

	// Gesture direction classification
	dragX, dragY float32
	decided      bool
	horizontal   bool

	anim *fyne.Animation
}

// NewSwipeRow creates a swipe row around content for the given panel id
func NewSwipeRow(panelID uint, content fyne.CanvasObject, localization *Localization) *SwipeRow {
	sr := &SwipeRow{
		PanelID: panelID,
		content: content,
	}
	sr.editBtn = widget.NewButton(localization.GetText(KeyEdit), func() {
		sr.actionTapped(sr.OnEdit)
	})
	sr.editBtn.Importance = widget.MediumImportance
	sr.deleteBtn = widget.NewButton(localization.GetText(KeyDelete), func() {
		sr.actionTapped(sr.OnDelete)
	})
	sr.deleteBtn.Importance = widget.DangerImportance
	sr.ExtendBaseWidget(sr)
	return sr
}

// actionTapped closes the row first, then dispatches the action by id
func (sr *SwipeRow) actionTapped(callback func(panelID uint)) {
	sr.ForceClose()
	if callback != nil {
		callback(sr.PanelID)
	}
}

// IsOpen reports whether the trailing actions are fully revealed
func (sr *SwipeRow) IsOpen() bool {
	return sr.state.Open()
}

// ForceClose resets the row to closed without animation, used by the list
// when another row opens or the list re-renders.
func (sr *SwipeRow) ForceClose() {
	if sr.anim != nil {
		sr.anim.Stop()
		sr.anim = nil
	}
	sr.state.ForceClose()
	sr.applyOffset(0)
}

// Dragged tracks the pointer. The first events classify the gesture as
// horizontal or vertical; vertical drags are left to the scroll container.
func (sr *SwipeRow) Dragged(ev *fyne.DragEvent) {
	if !sr.state.tracking && !sr.decided {
		sr.state.PointerDown(0)
		sr.dragX, sr.dragY = 0, 0
	}
	sr.dragX += ev.Dragged.DX
	sr.dragY += ev.Dragged.DY

	if !sr.decided {
		absX, absY := abs32(sr.dragX), abs32(sr.dragY)
		if absX > DragThreshold || absY > DragThreshold {
			sr.decided = true
			sr.horizontal = absX >= absY
		}
	}
	if sr.decided && !sr.horizontal {
		return
	}

	sr.applyOffset(sr.state.PointerMove(sr.dragX))
}

// DragEnd resolves the gesture with the snap decision
func (sr *SwipeRow) DragEnd() {
	wasOpen := sr.state.Open()
	target, open := sr.state.PointerUp()
	sr.decided = false
	sr.animateTo(target)
	if open != wasOpen && sr.OnOpenChanged != nil {
		sr.OnOpenChanged(sr.PanelID, open)
	}
}

// Tapped selects the row unless the gesture was a drag. A tap on an open
// row just closes it.
func (sr *SwipeRow) Tapped(_ *fyne.PointEvent) {
	if sr.state.ConsumeClick() {
		return
	}
	if sr.state.Open() {
		sr.ForceClose()
		if sr.OnOpenChanged != nil {
			sr.OnOpenChanged(sr.PanelID, false)
		}
		return
	}
	if sr.OnSelect != nil {
		sr.OnSelect(sr.PanelID)
	}
}

func (sr *SwipeRow) applyOffset(offset float32) {
	sr.content.Move(fyne.NewPos(offset, 0))
}

// animateTo tweens the content to the target offset with an ease-out curve
func (sr *SwipeRow) animateTo(target float32) {
	if sr.anim != nil {
		sr.anim.Stop()
	}
	from := sr.content.Position().X
	if from == target {
		return
	}
	anim := fyne.NewAnimation(SnapAnimationDuration, func(progress float32) {
		sr.applyOffset(from + (target-from)*progress)
	})
	anim.Curve = fyne.AnimationEaseOut
	sr.anim = anim
	anim.Start()
}

// CreateRenderer creates the widget renderer
func (sr *SwipeRow) CreateRenderer() fyne.WidgetRenderer {
	return &swipeRowRenderer{row: sr}
}

// swipeRowRenderer stacks the action under-layer beneath the sliding content
type swipeRowRenderer struct {
	row *SwipeRow
}

// Layout pins the two action buttons to the right edge and sizes the
// content over them, preserving the current reveal offset.
func (r *swipeRowRenderer) Layout(size fyne.Size) {
	half := ActionWidth / 2
	r.row.editBtn.Resize(fyne.NewSize(half, size.Height))
	r.row.editBtn.Move(fyne.NewPos(size.Width-ActionWidth, 0))
	r.row.deleteBtn.Resize(fyne.NewSize(half, size.Height))
	r.row.deleteBtn.Move(fyne.NewPos(size.Width-half, 0))

	offset := r.row.state.Offset()
	r.row.content.Resize(size)
	r.row.content.Move(fyne.NewPos(offset, 0))
}

// MinSize returns the minimum size
func (r *swipeRowRenderer) MinSize() fyne.Size {
	min := r.row.content.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *swipeRowRenderer) Refresh() {
	r.row.editBtn.Refresh()
	r.row.deleteBtn.Refresh()
	r.row.content.Refresh()
}

// Objects returns the under-layer buttons below the sliding content
func (r *swipeRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.row.editBtn, r.row.deleteBtn, r.row.content}
}

// Destroy cleans up the renderer
func (r *swipeRowRenderer) Destroy() {
	if r.row.anim != nil {
		r.row.anim.Stop()
		r.row.anim = nil
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
