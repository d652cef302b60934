package valuebar

import (
	"github.com/go-drift/valuebar/pkg/errors"
	"github.com/go-drift/valuebar/pkg/gestures"
)

var _ gestures.PointerHandler = (*ValueBar)(nil)

// HandlePointer updates the value from a pointer event.
//
// It returns false only when touch is disabled, so that the host can fall
// back to its default handling. Events outside the horizontal band
// offset < x < width-offset are ignored but still reported as handled.
//
// A press and every move set the value and notify OnSelectionUpdate.
// Release sets the value and notifies OnValueSelected. A release or cancel
// always ends the drag, even when the gesture detector consumes it.
func (b *ValueBar) HandlePointer(event gestures.PointerEvent) bool {
	if !b.touchEnabled {
		return false
	}

	ends := event.Phase == gestures.PointerPhaseUp || event.Phase == gestures.PointerPhaseCancel
	if b.listener == nil && !b.warned {
		errors.Warn(&errors.Warning{
			Op:      "valuebar.HandlePointer",
			Message: "no selection listener set; use SetSelectionListener to receive selected values",
		})
		b.warned = true
	}
	if ends {
		b.warned = false
	}

	if b.detector != nil && b.detector.HandleEvent(event) {
		if ends {
			b.dragging = false
		}
		return true
	}

	x := event.Position.X
	if x <= b.offset || x >= b.size.Width-b.offset {
		// A release or cancel outside the band still ends the drag.
		if ends {
			b.dragging = false
		}
		return true
	}

	switch event.Phase {
	case gestures.PointerPhaseDown, gestures.PointerPhaseMove:
		b.dragging = true
		b.updateValue(x)
		if b.listener != nil {
			b.listener.OnSelectionUpdate(b.value, b.max, b.min, b)
		}
	case gestures.PointerPhaseUp:
		b.dragging = false
		b.updateValue(x)
		if b.listener != nil {
			b.listener.OnValueSelected(b.value, b.max, b.min, b)
		}
	case gestures.PointerPhaseCancel:
		b.dragging = false
	}
	return true
}

// Dragging reports whether a pointer is currently dragging the value.
func (b *ValueBar) Dragging() bool {
	return b.dragging
}

// updateValue maps x onto the value. The mapping scales max by the
// fraction of the track covered and does not add min, so with a non-zero
// min the selected value is offset from the bar's own geometry.
func (b *ValueBar) updateValue(x float64) {
	b.value = b.ValueAt(x)
	b.MarkNeedsPaint()
}

// ValueAt returns the value a touch at x would select without changing
// any state.
func (b *ValueBar) ValueAt(x float64) float64 {
	return b.max * (x - b.offset) / (b.size.Width - b.offset*2)
}
