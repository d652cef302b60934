// Package gestures defines pointer events and the gesture detectors a
// widget can consult before running its own pointer handling.
package gestures

import (
	"fmt"

	"github.com/go-drift/valuebar/pkg/graphics"
)

// PointerPhase describes where in its lifecycle a pointer event is.
type PointerPhase int

const (
	// PointerPhaseDown is the first contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while in contact.
	PointerPhaseMove
	// PointerPhaseUp is the release.
	PointerPhaseUp
	// PointerPhaseCancel means the host took the pointer away.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample in the receiver's local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}

// PointerHandler receives pointer events. It returns true when the event
// was handled and false when the host should fall back to its default
// handling.
type PointerHandler interface {
	HandlePointer(event PointerEvent) bool
}
