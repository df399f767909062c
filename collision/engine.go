// Package collision tests trails against active target footprints,
// yielding at most one hit per object per cooldown window.
package collision

import (
	"time"

	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/tracker"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// Target is the reduced screen-space view of an active object.
// Producers with no valid projection must not emit a Target at all
type Target struct {
	ObjectID   int
	TypeTag    uint8
	Screen     vmath.Vec2
	ProjScale  float64 // Distance-based scale from the projection
	ObjScale   float64 // Object's own scale factor
	BaseRadius float64
}

// Hit is one collision event
type Hit struct {
	ObjectID int
	TypeTag  uint8
	TrailID  int
	Impact   float64 // Normalized impact velocity [0,1]
	Screen   vmath.Vec2
	At       time.Time
}

// Config tunes the engine
type Config struct {
	RecencyWindow time.Duration
	MaxPoints     int
	Cooldown      time.Duration
	RadiusFudge   float64
}

// DefaultConfig returns engine tuning from the parameter tables
func DefaultConfig() Config {
	return Config{
		RecencyWindow: parameter.CollisionRecencyWindow,
		MaxPoints:     parameter.CollisionMaxPoints,
		Cooldown:      parameter.CollisionCooldown,
		RadiusFudge:   parameter.CollisionRadiusFudge,
	}
}

// Engine holds per-object cooldown state between frames
type Engine struct {
	cfg       Config
	cooldowns map[int]time.Time // Object id -> last hit time
	lastPurge time.Time
}

// New creates an engine
func New(cfg Config) *Engine {
	if cfg.RecencyWindow <= 0 {
		cfg.RecencyWindow = parameter.CollisionRecencyWindow
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = parameter.CollisionMaxPoints
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = parameter.CollisionCooldown
	}
	if cfg.RadiusFudge <= 0 {
		cfg.RadiusFudge = parameter.CollisionRadiusFudge
	}
	return &Engine{
		cfg:       cfg,
		cooldowns: make(map[int]time.Time),
	}
}

// Test runs the frame's collision pass. For each target not on cooldown
// the first trail whose recent segment intersects the target's circle
// wins; later trails are not consulted for that target
func (e *Engine) Test(trails []*tracker.Trail, targets []Target, now time.Time) []Hit {
	e.purge(now)

	var hits []Hit
	for _, tgt := range targets {
		if last, ok := e.cooldowns[tgt.ObjectID]; ok && now.Sub(last) < e.cfg.Cooldown {
			continue
		}

		radius := tgt.BaseRadius * tgt.ProjScale * tgt.ObjScale * e.cfg.RadiusFudge
		if radius <= 0 {
			continue
		}

		for _, trail := range trails {
			hit, ok := e.testTrail(trail, tgt, radius, now)
			if !ok {
				continue
			}
			hits = append(hits, hit)
			e.cooldowns[tgt.ObjectID] = now
			break // First matching trail wins
		}
	}
	return hits
}

// Reset clears all cooldown state
func (e *Engine) Reset() {
	clear(e.cooldowns)
	e.lastPurge = time.Time{}
}

// testTrail examines the newest few recent points of one trail against
// one target circle. Trails with fewer than two recent points cannot
// form a segment and are skipped
func (e *Engine) testTrail(trail *tracker.Trail, tgt Target, radius float64, now time.Time) (Hit, bool) {
	pts := trail.Points()
	if len(pts) > e.cfg.MaxPoints {
		pts = pts[len(pts)-e.cfg.MaxPoints:]
	}

	// Drop points older than the recency window
	cutoff := now.Add(-e.cfg.RecencyWindow)
	for len(pts) > 0 && pts[0].T.Before(cutoff) {
		pts = pts[1:]
	}
	if len(pts) < 2 {
		return Hit{}, false
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		t, ok := vmath.SegmentCircleHit(a.Screen, b.Screen, tgt.Screen, radius)
		if !ok {
			continue
		}
		impact := a.Velocity
		if b.Velocity > impact {
			impact = b.Velocity
		}
		return Hit{
			ObjectID: tgt.ObjectID,
			TypeTag:  tgt.TypeTag,
			TrailID:  trail.ID,
			Impact:   impact,
			Screen:   vmath.LerpVec2(a.Screen, b.Screen, t),
			At:       now,
		}, true
	}
	return Hit{}, false
}

// purge drops cooldown entries older than twice the window, on a cadence
// of the purge age itself
func (e *Engine) purge(now time.Time) {
	age := e.cfg.Cooldown * parameter.CollisionPurgeFactor
	if now.Sub(e.lastPurge) < age {
		return
	}
	e.lastPurge = now
	for id, t := range e.cooldowns {
		if now.Sub(t) >= age {
			delete(e.cooldowns, id)
		}
	}
}
