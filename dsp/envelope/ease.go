package envelope

import "github.com/cwbudde/algo-rack/dsp/core"

// EaseInOut evaluates a symmetric cubic ease-in/ease-out curve at p.
// p is clamped to [0, 1]. The curve is continuous and C1 at 0.5.
func EaseInOut(p float64) float64 {
	p = core.Clamp(p, 0, 1)
	if p < 0.5 {
		return 4 * p * p * p
	}

	q := 2*p - 2

	return (p-1)*q*q + 1
}

// Shape blends the linear position p with EaseInOut(p).
// ratio 0 is a straight line, ratio 1 the full eased curve.
func Shape(p, ratio float64) float64 {
	return core.Crossfade(p, EaseInOut(p), ratio)
}
