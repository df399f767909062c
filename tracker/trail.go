package tracker

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/motion-fighter/vmath"
)

// TrailPoint is one filtered, timestamped sample of a trail
type TrailPoint struct {
	Screen   vmath.Vec2
	World    vmath.Vec3
	T        time.Time
	Velocity float64 // Normalized [0,1]
}

// Trail is the identity-stable filtered path of one input contact.
// Owned exclusively by the Tracker; consumers read, never mutate
type Trail struct {
	ID int

	points    []TrailPoint
	fading    bool
	lastMatch time.Time

	fx, fy axisFilter
	speed  float64 // Smoothed speed, px/sec

	speedSamples []float64

	matched bool // Frame-local matching flag
}

// Points returns the recent point list, oldest first.
// Valid until the next Tracker.Update
func (t *Trail) Points() []TrailPoint {
	return t.points
}

// Len returns the current point count
func (t *Trail) Len() int {
	return len(t.points)
}

// Last returns the newest point
func (t *Trail) Last() (TrailPoint, bool) {
	if len(t.points) == 0 {
		return TrailPoint{}, false
	}
	return t.points[len(t.points)-1], true
}

// Fading reports whether the trail lost its contact and is trimming out
func (t *Trail) Fading() bool {
	return t.fading
}

// push appends a point, evicting the oldest when at capacity
func (t *Trail) push(p TrailPoint, maxPoints int) {
	if len(t.points) >= maxPoints {
		n := copy(t.points, t.points[len(t.points)-maxPoints+1:])
		t.points = t.points[:n]
	}
	t.points = append(t.points, p)
}

// recordSpeed keeps a bounded window of raw speed samples for statistics
func (t *Trail) recordSpeed(s float64, window int) {
	if len(t.speedSamples) >= window {
		copy(t.speedSamples, t.speedSamples[1:])
		t.speedSamples = t.speedSamples[:len(t.speedSamples)-1]
	}
	t.speedSamples = append(t.speedSamples, s)
}

// SpeedStats summarizes recent stroke speed over the sample window
type SpeedStats struct {
	Mean float64
	Peak float64
	P95  float64
}

// SpeedStats computes mean, peak, and 95th percentile of recent raw
// speeds (px/sec). Zero-valued when no samples exist yet
func (t *Trail) SpeedStats() SpeedStats {
	if len(t.speedSamples) == 0 {
		return SpeedStats{}
	}

	sorted := make([]float64, len(t.speedSamples))
	copy(sorted, t.speedSamples)
	sort.Float64s(sorted)

	return SpeedStats{
		Mean: stat.Mean(sorted, nil),
		Peak: sorted[len(sorted)-1],
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
