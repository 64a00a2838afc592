// Package mathutil holds the small scalar helpers sketches lean on.
package mathutil

import "math"

// MapRange re-maps v from [inLo, inHi] onto [outLo, outHi] without clamping.
// A degenerate input range maps everything to outLo.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

// Constrain clamps v to [lo, hi].
func Constrain(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Dist returns the Euclidean distance between two points.
func Dist(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// ToByte clamps v to [0, 1] and scales it to 0..255.
func ToByte(v float64) uint8 {
	return uint8(Constrain(v, 0, 1)*255 + 0.5)
}
