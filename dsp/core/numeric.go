package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Crossfade blends a into b by ratio: a*(1-ratio) + b*ratio.
// ratio is not clamped; values outside [0, 1] extrapolate.
func Crossfade(a, b, ratio float64) float64 {
	return a*(1-ratio) + b*ratio
}

// Rescale maps x linearly from [xMin, xMax] onto [yMin, yMax].
// A degenerate input range returns yMin.
func Rescale(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax == xMin {
		return yMin
	}

	return yMin + (x-xMin)/(xMax-xMin)*(yMax-yMin)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
