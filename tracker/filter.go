package tracker

import (
	"math"

	"github.com/lixenwraith/motion-fighter/vmath"
)

// axisFilter is an adaptive low-pass filter for one screen axis.
// The cutoff frequency rises with the smoothed rate-of-change, so the
// filter suppresses jitter at rest while staying responsive to fast
// strokes. State resets with its trail.
type axisFilter struct {
	initialized bool
	value       float64 // Filtered position
	rate        float64 // Smoothed rate estimate
}

// apply filters one raw sample. dt is the elapsed time in seconds
func (f *axisFilter) apply(raw, dt, minCutoff, beta, rateCutoff float64) float64 {
	if !f.initialized || dt <= 0 {
		f.initialized = true
		f.value = raw
		f.rate = 0
		return raw
	}

	rawRate := (raw - f.value) / dt
	f.rate += vmath.SmoothingAlpha(rateCutoff, dt) * (rawRate - f.rate)

	cutoff := minCutoff + beta*math.Abs(f.rate)
	f.value += vmath.SmoothingAlpha(cutoff, dt) * (raw - f.value)
	return f.value
}
