package valuebar

import (
	"time"

	"github.com/go-drift/valuebar/pkg/animation"
)

// Animate jumps to from and then animates the value to to.
func (b *ValueBar) Animate(from, to float64, duration time.Duration) {
	b.value = from
	b.startAnimation(to, duration)
}

// AnimateUp jumps to the minimum and then animates the value to to.
func (b *ValueBar) AnimateUp(to float64, duration time.Duration) {
	b.value = b.min
	b.startAnimation(to, duration)
}

// AnimateDown animates from the current value to to.
func (b *ValueBar) AnimateDown(to float64, duration time.Duration) {
	b.startAnimation(to, duration)
}

// startAnimation runs the animation curve from the current value to to. A
// run already in flight is stopped first, so the latest call always wins.
func (b *ValueBar) startAnimation(to float64, duration time.Duration) {
	b.StopAnimation()

	tween := animation.TweenFloat64(b.value, to)
	c := animation.NewAnimationController(duration)
	c.Curve = b.curve
	c.AddListener(func() {
		b.value = tween.Transform(c)
		b.MarkNeedsPaint()
	})
	c.AddStatusListener(func(status animation.Status) {
		if status == animation.StatusCompleted {
			b.tween = nil
		}
	})

	b.tween = tween
	b.controller = c
	b.MarkNeedsPaint()
	c.Forward()
}

// Advance returns the value the running animation produces at linear
// progress in [0, 1], without touching any state. Once the animation has
// finished or been stopped it returns the current value.
func (b *ValueBar) Advance(progress float64) float64 {
	if b.tween == nil {
		return b.value
	}
	return b.tween.Evaluate(b.curve(progress))
}

// IsAnimating reports whether an animation is in flight.
func (b *ValueBar) IsAnimating() bool {
	return b.controller != nil && b.controller.Status() == animation.StatusForward
}

// SetAnimationCurve sets the easing used by later animations. Nil restores
// [animation.AccelerateDecelerate].
func (b *ValueBar) SetAnimationCurve(curve func(float64) float64) {
	if curve == nil {
		curve = animation.AccelerateDecelerate
	}
	b.curve = curve
}

// StopAnimation stops an in-flight animation at its current value.
func (b *ValueBar) StopAnimation() {
	if b.controller != nil {
		b.controller.Dispose()
		b.controller = nil
	}
	b.tween = nil
}

// Dispose releases the bar's animation resources.
func (b *ValueBar) Dispose() {
	b.StopAnimation()
}
