// pkg/vmath/vmath.go
package vmath

import "math"

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Dist2 returns the squared distance, for comparisons that don't need the
// square root.
func Dist2(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Angle returns the angle of the vector from (x1,y1) to (x2,y2).
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return Dist2(x1, y1, x2, y2) < rr*rr
}
