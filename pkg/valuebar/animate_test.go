package valuebar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/valuebar/pkg/animation"
	drifttest "github.com/go-drift/valuebar/pkg/testing"
)

const frame = 16 * time.Millisecond

func TestAnimateUp(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)
	b.SetMinMax(10, 100)
	b.SetValue(90)

	b.AnimateUp(80, time.Second)
	assert.Equal(t, 10.0, b.Value(), "starts at min")
	assert.True(t, b.IsAnimating())

	prev := b.Value()
	for range 70 {
		drifttest.Pump(clk, frame)
		assert.GreaterOrEqual(t, b.Value(), prev)
		prev = b.Value()
	}
	assert.Equal(t, 80.0, b.Value())
	assert.False(t, b.IsAnimating())
}

func TestAnimateUp_EasesAtBothEnds(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)

	b.AnimateUp(100, time.Second)
	drifttest.Pump(clk, 100*time.Millisecond)
	early := b.Value()
	drifttest.Pump(clk, 400*time.Millisecond)
	assert.InDelta(t, 50.0, b.Value(), 1e-9, "halfway in time is halfway in value")
	drifttest.Pump(clk, 400*time.Millisecond)
	late := b.Value()

	assert.Less(t, early, 10.0, "starts slower than linear")
	assert.Greater(t, late, 90.0, "ends slower than linear")
}

func TestAnimate_JumpsToFrom(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)

	b.Animate(60, 20, 200*time.Millisecond)
	assert.Equal(t, 60.0, b.Value())
	drifttest.Pump(clk, 100*time.Millisecond)
	assert.InDelta(t, 40.0, b.Value(), 1e-9)
	drifttest.Pump(clk, 100*time.Millisecond)
	assert.Equal(t, 20.0, b.Value())
}

func TestAnimateDown_StartsFromCurrentValue(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)
	b.SetValue(70)

	b.AnimateDown(30, 500*time.Millisecond)
	assert.Equal(t, 70.0, b.Value())

	prev := b.Value()
	for range 40 {
		drifttest.Pump(clk, frame)
		assert.LessOrEqual(t, b.Value(), prev)
		prev = b.Value()
	}
	assert.Equal(t, 30.0, b.Value())
}

func TestAnimate_LatestCallWins(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)

	b.Animate(0, 100, time.Second)
	drifttest.Pump(clk, 500*time.Millisecond)
	require.InDelta(t, 50.0, b.Value(), 1e-9)

	b.AnimateDown(0, time.Second)
	drifttest.PumpFrames(clk, frame, 80)
	assert.Equal(t, 0.0, b.Value(), "the first run no longer writes the value")
}

func TestAnimate_TicksRequestPaint(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)
	frames := 0
	b.SetInvalidator(func() { frames++ })

	b.AnimateUp(50, 100*time.Millisecond)
	t.Cleanup(b.Dispose)
	paint(b)
	before := frames

	drifttest.Pump(clk, frame)
	assert.True(t, b.NeedsPaint())
	assert.Greater(t, frames, before)
}

func TestStopAnimation(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)

	b.AnimateUp(100, time.Second)
	drifttest.Pump(clk, 500*time.Millisecond)
	b.StopAnimation()
	stopped := b.Value()

	drifttest.Pump(clk, time.Second)
	assert.Equal(t, stopped, b.Value())
	assert.False(t, b.IsAnimating())
}

func TestAdvance(t *testing.T) {
	b := New()
	assert.Equal(t, 75.0, b.Advance(0.3), "no animation reports the current value")

	drifttest.UseFakeClock(t)
	b.Animate(0, 80, time.Second)
	defer b.Dispose()

	assert.Equal(t, 0.0, b.Advance(0))
	assert.InDelta(t, 40.0, b.Advance(0.5), 1e-9)
	assert.Equal(t, 80.0, b.Advance(1))
	assert.Equal(t, 0.0, b.Value(), "Advance does not change the value")
}

func TestAdvance_AfterAnimationEnds(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)

	b.AnimateUp(80, 100*time.Millisecond)
	drifttest.Pump(clk, time.Second)
	require.False(t, b.IsAnimating())
	b.SetValue(10)
	assert.Equal(t, 10.0, b.Advance(0.3), "a finished animation no longer drives Advance")

	b.AnimateUp(80, time.Second)
	b.StopAnimation()
	assert.Equal(t, b.Value(), b.Advance(0.3), "a stopped animation no longer drives Advance")
}

func TestSetAnimationCurve(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)
	b.SetAnimationCurve(animation.LinearCurve)

	b.Animate(0, 100, time.Second)
	t.Cleanup(b.Dispose)
	assert.InDelta(t, 30.0, b.Advance(0.3), 1e-9)
	drifttest.Pump(clk, 200*time.Millisecond)
	assert.InDelta(t, 20.0, b.Value(), 1e-9)

	b.SetAnimationCurve(nil)
	b.Animate(0, 100, time.Second)
	assert.InDelta(t, 100*animation.AccelerateDecelerate(0.3), b.Advance(0.3), 1e-9, "nil restores the default")
}

func TestAnimate_ZeroDuration(t *testing.T) {
	clk := drifttest.UseFakeClock(t)
	b := newSizedBar(200, 40)

	b.AnimateUp(42, 0)
	drifttest.Pump(clk, frame)
	assert.Equal(t, 42.0, b.Value())
}
