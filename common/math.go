package common

import "math"

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots. Reaching the target returns target exactly.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Heading returns the angle in radians of the direction (dx, dy).
func Heading(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
