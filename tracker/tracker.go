// Package tracker converts raw per-frame anchor detections into a small
// set of identity-stable, filtered, timestamped trails.
//
// Detections carry no identity across frames. Each frame, detections are
// greedily matched in arrival order to the nearest unmatched trail within
// a pixel threshold. The greedy pass is a deliberate approximation of
// optimal assignment: first-come tie-breaking is part of the contract.
package tracker

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/status"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// Detection is an ephemeral per-frame 2D anchor position with no identity
type Detection struct {
	Pos vmath.Vec2
}

// Unproject lifts a screen point into world space for trail points
type Unproject func(vmath.Vec2) vmath.Vec3

// Config tunes the tracker. DefaultConfig covers every field
type Config struct {
	MaxTrails        int
	MaxPoints        int
	MatchRadius      float64
	FadeGrace        time.Duration
	FadeTrimPerFrame int

	MinCutoff  float64
	CutoffBeta float64
	RateCutoff float64

	VelocitySmoothing float64
	VelocityNorm      float64
	SpeedSampleWindow int

	SegmentMax float64
	MaxInterp  int

	Unproject Unproject
}

// DefaultConfig returns tracker tuning from the parameter tables
func DefaultConfig() Config {
	return Config{
		MaxTrails:         parameter.TrackerMaxTrails,
		MaxPoints:         parameter.TrailMaxPoints,
		MatchRadius:       parameter.TrailMatchRadiusPx,
		FadeGrace:         parameter.TrailFadeGrace,
		FadeTrimPerFrame:  parameter.TrailFadeTrimPerFrame,
		MinCutoff:         parameter.FilterMinCutoff,
		CutoffBeta:        parameter.FilterCutoffBeta,
		RateCutoff:        parameter.FilterDerivativeCutoff,
		VelocitySmoothing: parameter.VelocitySmoothing,
		VelocityNorm:      parameter.VelocityNormPxPerSec,
		SpeedSampleWindow: parameter.SpeedSampleWindow,
		SegmentMax:        parameter.SegmentMaxPx,
		MaxInterp:         parameter.SegmentMaxInterp,
	}
}

// Tracker owns all trails
type Tracker struct {
	cfg    Config
	log    zerolog.Logger
	trails []*Trail
	nextID int

	statActive *atomic.Int64
}

// New creates a tracker. Config fields left zero fall back to defaults
func New(cfg Config, log zerolog.Logger, reg *status.Registry) *Tracker {
	def := DefaultConfig()
	if cfg.MaxTrails <= 0 {
		cfg.MaxTrails = def.MaxTrails
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = def.MaxPoints
	}
	if cfg.MatchRadius <= 0 {
		cfg.MatchRadius = def.MatchRadius
	}
	if cfg.FadeGrace <= 0 {
		cfg.FadeGrace = def.FadeGrace
	}
	if cfg.FadeTrimPerFrame <= 0 {
		cfg.FadeTrimPerFrame = def.FadeTrimPerFrame
	}
	if cfg.MinCutoff <= 0 {
		cfg.MinCutoff = def.MinCutoff
	}
	if cfg.CutoffBeta <= 0 {
		cfg.CutoffBeta = def.CutoffBeta
	}
	if cfg.RateCutoff <= 0 {
		cfg.RateCutoff = def.RateCutoff
	}
	if cfg.VelocitySmoothing <= 0 {
		cfg.VelocitySmoothing = def.VelocitySmoothing
	}
	if cfg.VelocityNorm <= 0 {
		cfg.VelocityNorm = def.VelocityNorm
	}
	if cfg.SpeedSampleWindow <= 0 {
		cfg.SpeedSampleWindow = def.SpeedSampleWindow
	}
	if cfg.SegmentMax <= 0 {
		cfg.SegmentMax = def.SegmentMax
	}
	if cfg.MaxInterp <= 0 {
		cfg.MaxInterp = def.MaxInterp
	}
	if cfg.Unproject == nil {
		cfg.Unproject = func(p vmath.Vec2) vmath.Vec3 {
			return vmath.Vec3{X: p.X, Y: p.Y}
		}
	}

	return &Tracker{
		cfg:        cfg,
		log:        log,
		statActive: reg.Ints.Get("tracker.active"),
	}
}

// Trails returns the live trails, oldest identity first.
// Valid until the next Update
func (tk *Tracker) Trails() []*Trail {
	return tk.trails
}

// Update ingests one frame of detections.
// Detections beyond the trail cap are ignored for the frame; zero
// detections start all trails fading
func (tk *Tracker) Update(dets []Detection, now time.Time, dt time.Duration) {
	for _, t := range tk.trails {
		t.matched = false
	}

	for _, det := range dets {
		if t := tk.nearestUnmatched(det.Pos); t != nil {
			tk.advanceTrail(t, det.Pos, now, dt)
			continue
		}
		if len(tk.trails) < tk.cfg.MaxTrails {
			tk.startTrail(det.Pos, now)
		}
		// At cap with no match: dropped for this frame
	}

	tk.fadeUnmatched(now)
	tk.statActive.Store(int64(len(tk.trails)))
}

// Reset removes all trails
func (tk *Tracker) Reset() {
	tk.trails = tk.trails[:0]
	tk.statActive.Store(0)
}

// nearestUnmatched finds the closest unmatched trail within the match
// radius, or nil
func (tk *Tracker) nearestUnmatched(pos vmath.Vec2) *Trail {
	maxSq := tk.cfg.MatchRadius * tk.cfg.MatchRadius

	var best *Trail
	bestSq := maxSq
	for _, t := range tk.trails {
		if t.matched {
			continue
		}
		last, ok := t.Last()
		if !ok {
			continue
		}
		if d := vmath.DistSq(last.Screen, pos); d <= bestSq {
			best = t
			bestSq = d
		}
	}
	return best
}

func (tk *Tracker) startTrail(pos vmath.Vec2, now time.Time) {
	tk.nextID++
	t := &Trail{ID: tk.nextID, lastMatch: now, matched: true}

	dtSec := 0.0
	t.fx.apply(pos.X, dtSec, tk.cfg.MinCutoff, tk.cfg.CutoffBeta, tk.cfg.RateCutoff)
	t.fy.apply(pos.Y, dtSec, tk.cfg.MinCutoff, tk.cfg.CutoffBeta, tk.cfg.RateCutoff)

	t.push(TrailPoint{
		Screen: pos,
		World:  tk.cfg.Unproject(pos),
		T:      now,
	}, tk.cfg.MaxPoints)

	tk.trails = append(tk.trails, t)
	tk.log.Debug().Int("trail", t.ID).Msg("trail started")
}

// advanceTrail filters the new sample, derives velocity, and appends the
// point, inserting interpolated points when the raw movement is large
// enough to tunnel through a target between frames
func (tk *Tracker) advanceTrail(t *Trail, raw vmath.Vec2, now time.Time, dt time.Duration) {
	dtSec := dt.Seconds()
	if dtSec <= 0 {
		dtSec = 1.0 / 120
	}

	prev, _ := t.Last()

	filtered := vmath.Vec2{
		X: t.fx.apply(raw.X, dtSec, tk.cfg.MinCutoff, tk.cfg.CutoffBeta, tk.cfg.RateCutoff),
		Y: t.fy.apply(raw.Y, dtSec, tk.cfg.MinCutoff, tk.cfg.CutoffBeta, tk.cfg.RateCutoff),
	}

	dist := vmath.Dist(prev.Screen, filtered)
	rawSpeed := dist / dtSec
	t.speed += tk.cfg.VelocitySmoothing * (rawSpeed - t.speed)
	t.recordSpeed(rawSpeed, tk.cfg.SpeedSampleWindow)

	velocity := vmath.Clamp(t.speed/tk.cfg.VelocityNorm, 0, 1)

	if dist > tk.cfg.SegmentMax {
		n := int(dist / tk.cfg.SegmentMax)
		if n > tk.cfg.MaxInterp {
			n = tk.cfg.MaxInterp
		}
		for i := 1; i <= n; i++ {
			frac := float64(i) / float64(n+1)
			mid := vmath.LerpVec2(prev.Screen, filtered, frac)
			t.push(TrailPoint{
				Screen:   mid,
				World:    tk.cfg.Unproject(mid),
				T:        prev.T.Add(time.Duration(frac * float64(now.Sub(prev.T)))),
				Velocity: velocity,
			}, tk.cfg.MaxPoints)
		}
	}

	t.push(TrailPoint{
		Screen:   filtered,
		World:    tk.cfg.Unproject(filtered),
		T:        now,
		Velocity: velocity,
	}, tk.cfg.MaxPoints)

	t.lastMatch = now
	t.fading = false
	t.matched = true
}

// fadeUnmatched ages out trails that received no detection: after the
// grace delay the oldest points are trimmed each frame until the trail
// is empty and removed
func (tk *Tracker) fadeUnmatched(now time.Time) {
	kept := tk.trails[:0]
	for _, t := range tk.trails {
		if t.matched {
			kept = append(kept, t)
			continue
		}

		if !t.fading && now.Sub(t.lastMatch) >= tk.cfg.FadeGrace {
			t.fading = true
		}
		if t.fading {
			trim := tk.cfg.FadeTrimPerFrame
			if trim > len(t.points) {
				trim = len(t.points)
			}
			t.points = t.points[trim:]
		}

		if len(t.points) == 0 {
			tk.log.Debug().Int("trail", t.ID).Msg("trail removed")
			continue
		}
		kept = append(kept, t)
	}
	tk.trails = kept
}
