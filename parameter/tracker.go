package parameter

import "time"

// Trail Identity
const (
	// TrackerMaxTrails is the maximum number of simultaneous trails (input contacts)
	TrackerMaxTrails = 2

	// TrailMaxPoints is the point-list cap per trail, oldest evicted first
	TrailMaxPoints = 24

	// TrailMatchRadiusPx is the pixel threshold for matching a detection to an existing trail
	TrailMatchRadiusPx = 90.0

	// TrailFadeGrace is how long an unmatched trail holds before trimming begins
	TrailFadeGrace = 120 * time.Millisecond

	// TrailFadeTrimPerFrame is how many oldest points an unmatched trail loses per frame
	TrailFadeTrimPerFrame = 2
)

// Adaptive Filter
const (
	// FilterMinCutoff is the low-pass cutoff (Hz) at rest; lower = more smoothing
	FilterMinCutoff = 1.2

	// FilterCutoffBeta raises the cutoff with estimated rate-of-change,
	// keeping fast strokes responsive while suppressing jitter at rest
	FilterCutoffBeta = 0.015

	// FilterDerivativeCutoff is the fixed cutoff (Hz) for the rate estimate itself
	FilterDerivativeCutoff = 1.0
)

// Velocity Estimation
const (
	// VelocitySmoothing is the exponential smoothing factor for instantaneous speed
	VelocitySmoothing = 0.35

	// VelocityNormPxPerSec maps raw speed to the normalized [0,1] range
	VelocityNormPxPerSec = 2400.0

	// SpeedSampleWindow is how many recent speed samples feed trail statistics
	SpeedSampleWindow = 60
)

// Anti-Tunneling
const (
	// SegmentMaxPx is the raw movement above which intermediate points are inserted
	SegmentMaxPx = 48.0

	// SegmentMaxInterp bounds the number of inserted intermediate points
	SegmentMaxInterp = 4
)
