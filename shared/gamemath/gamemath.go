// Package gamemath holds small numeric helpers shared by the simulation and
// the presentation systems.
package gamemath

import "math"

// Lerp interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// InvLerp returns where v sits between a and b, or 0 when a == b.
func InvLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

// Wrap maps x into [lo, lo+span). A non-positive span returns x unchanged.
func Wrap(x, lo, span float64) float64 {
	if span <= 0 {
		return x
	}
	x = math.Mod(x-lo, span)
	if x < 0 {
		x += span
	}
	return x + lo
}
