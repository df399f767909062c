package vmath

import "math"

// segment shorter than this is treated as a point
const degenerateSegmentSq = 1e-9

// SegmentCircleHit tests segment p1-p2 against a circle using the standard
// quadratic parametrization. Returns the earliest parameter t in [0,1] at
// which the segment enters the circle.
//
// Degenerate (zero-length) segments fall back to a point-in-circle test
// with t = 0.
func SegmentCircleHit(p1, p2, center Vec2, radius float64) (t float64, hit bool) {
	d := p2.Sub(p1)
	f := p1.Sub(center)

	a := d.X*d.X + d.Y*d.Y
	if a < degenerateSegmentSq {
		if f.X*f.X+f.Y*f.Y <= radius*radius {
			return 0, true
		}
		return 0, false
	}

	b := 2 * (f.X*d.X + f.Y*d.Y)
	c := f.X*f.X + f.Y*f.Y - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	if t1 >= 0 && t1 <= 1 {
		return t1, true
	}
	if t2 >= 0 && t2 <= 1 {
		return t2, true
	}

	// Segment fully inside the circle: both roots outside [0,1] but
	// straddling it. Entry happened before the segment started.
	if t1 < 0 && t2 > 1 {
		return 0, true
	}

	return 0, false
}

// PointInCircle reports whether p lies inside or on the circle
func PointInCircle(p, center Vec2, radius float64) bool {
	return DistSq(p, center) <= radius*radius
}
