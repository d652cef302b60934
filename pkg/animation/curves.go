package animation

import "math"

// Easing curves map linear progress t in [0, 1] to eased progress. Set an
// [AnimationController]'s Curve field to apply one.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly and is fastest in the middle.
// It follows half a cosine period, so it is symmetric around t=0.5 and
// strictly increasing on [0, 1].
func AccelerateDecelerate(t float64) float64 {
	switch t = clampUnit(t); t {
	case 0, 1:
		return t
	}
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback keeps the solution inside [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

// Curve names accepted by CurveByName.
const (
	CurveNameLinear               = "linear"
	CurveNameAccelerateDecelerate = "accelerate_decelerate"
	CurveNameEaseIn               = "ease_in"
	CurveNameEaseOut              = "ease_out"
	CurveNameEaseInOut            = "ease_in_out"
)

// CurveByName returns the curve registered under name.
func CurveByName(name string) (func(float64) float64, bool) {
	switch name {
	case CurveNameLinear:
		return LinearCurve, true
	case CurveNameAccelerateDecelerate:
		return AccelerateDecelerate, true
	case CurveNameEaseIn:
		return EaseIn, true
	case CurveNameEaseOut:
		return EaseOut, true
	case CurveNameEaseInOut:
		return EaseInOut, true
	}
	return nil, false
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
