package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of an animation.
//
//	           Forward()               tick reaches 1
//	Dismissed ───────────► Forward ──────────────────► Completed
//
// Stop leaves the status unchanged.
type Status int

const (
	// StatusDismissed means the animation has not started.
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound.
	StatusForward
	// StatusCompleted means the animation is stopped at the upper bound.
	StatusCompleted
)

// String returns a human-readable representation of the animation status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// AnimationController drives an animation by producing values over time.
//
// Value progresses between 0.0 and 1.0 over Duration. Curve transforms the
// linear time fraction into eased motion; use a [Tween] to map Value onto
// another range.
//
// Always call Dispose when done to stop the animation.
type AnimationController struct {
	// Value is the current (eased) animation value, from 0.0 to 1.0.
	Value float64

	// Duration is the length of a full 0-to-1 run.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	status     Status
	ticker     *Ticker
	target     float64
	startValue float64
	listeners  []func()
	statusFns  []func(Status)
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration: duration,
		Curve:    LinearCurve,
		status:   StatusDismissed,
	}
}

// Forward animates from the current value to 1.0, replacing any in-flight
// run.
func (c *AnimationController) Forward() {
	c.Stop()

	c.target = 1
	c.startValue = c.Value
	c.setStatus(StatusForward)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.finish()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

func (c *AnimationController) finish() {
	c.Stop()
	c.setStatus(StatusCompleted)
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() Status {
	return c.status
}

// IsAnimating returns true while a ticker is driving the controller.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener adds a callback that fires whenever the value changes.
func (c *AnimationController) AddListener(fn func()) {
	c.listeners = append(c.listeners, fn)
}

// AddStatusListener adds a callback that fires whenever the status changes.
func (c *AnimationController) AddStatusListener(fn func(Status)) {
	c.statusFns = append(c.statusFns, fn)
}

func (c *AnimationController) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, fn := range c.statusFns {
		fn(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusFns = nil
}
