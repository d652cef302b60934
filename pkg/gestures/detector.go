package gestures

import "math"

// Detector recognizes gestures from a raw pointer stream.
//
// A widget that accepts a Detector offers it every event first. When
// HandleEvent returns true the event is consumed and the widget skips its
// own handling for that event.
type Detector interface {
	HandleEvent(event PointerEvent) bool
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(event PointerEvent) bool

// HandleEvent calls f(event).
func (f DetectorFunc) HandleEvent(event PointerEvent) bool {
	return f(event)
}

// DefaultTouchSlop is the distance in pixels a pointer may travel before a
// tap turns into a drag.
const DefaultTouchSlop = 8.0

// TapDetector recognizes single taps: a down followed by an up on the same
// pointer without moving further than Slop.
type TapDetector struct {
	// OnTap is called with the up event of a completed tap. Its result
	// decides whether that up event is consumed.
	OnTap func(event PointerEvent) bool

	// Slop overrides DefaultTouchSlop when positive.
	Slop float64

	tracking bool
	pointer  int64
	downX    float64
	downY    float64
}

// NewTapDetector creates a tap detector calling onTap.
func NewTapDetector(onTap func(event PointerEvent) bool) *TapDetector {
	return &TapDetector{OnTap: onTap}
}

// HandleEvent implements Detector. Only the up event of a recognized tap
// can be consumed; down and move events always pass through.
func (d *TapDetector) HandleEvent(event PointerEvent) bool {
	switch event.Phase {
	case PointerPhaseDown:
		d.tracking = true
		d.pointer = event.PointerID
		d.downX = event.Position.X
		d.downY = event.Position.Y
	case PointerPhaseMove:
		if d.tracking && event.PointerID == d.pointer && d.exceedsSlop(event) {
			d.tracking = false
		}
	case PointerPhaseUp:
		wasTap := d.tracking && event.PointerID == d.pointer && !d.exceedsSlop(event)
		d.tracking = false
		if wasTap && d.OnTap != nil {
			return d.OnTap(event)
		}
	case PointerPhaseCancel:
		d.tracking = false
	}
	return false
}

func (d *TapDetector) exceedsSlop(event PointerEvent) bool {
	slop := d.Slop
	if slop <= 0 {
		slop = DefaultTouchSlop
	}
	return math.Hypot(event.Position.X-d.downX, event.Position.Y-d.downY) > slop
}
