package collision

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/motion-fighter/status"
	"github.com/lixenwraith/motion-fighter/tracker"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// sweep builds a single-trail tracker that moved through the given
// positions, one frame apart, ending at now
func sweep(t *testing.T, now time.Time, positions ...vmath.Vec2) []*tracker.Trail {
	t.Helper()
	tk := tracker.New(tracker.Config{
		MaxTrails:   1,
		MatchRadius: 1e9,
		SegmentMax:  1e9, // No interpolation, keep point count predictable
		MinCutoff:   1e6, // Effectively unfiltered
	}, zerolog.Nop(), status.NewRegistry())

	frame := 16 * time.Millisecond
	start := now.Add(-time.Duration(len(positions)-1) * frame)
	for i, p := range positions {
		tk.Update([]tracker.Detection{{Pos: p}}, start.Add(time.Duration(i)*frame), frame)
	}
	require.Len(t, tk.Trails(), 1)
	return tk.Trails()
}

func target(id int, x, y, radius float64) Target {
	return Target{ObjectID: id, Screen: vmath.Vec2{X: x, Y: y}, ProjScale: 1, ObjScale: 1, BaseRadius: radius}
}

func TestHitThroughCircle(t *testing.T) {
	now := time.Unix(10, 0)
	trails := sweep(t, now, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
	e := New(Config{RadiusFudge: 1})

	hits := e.Test(trails, []Target{target(1, 5, 0, 2)}, now)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, hits[0].ObjectID)
	assert.InDelta(t, 3.0, hits[0].Screen.X, 0.5, "hit point near circle entry")
}

func TestNoHitFarFromCircle(t *testing.T) {
	now := time.Unix(10, 0)
	trails := sweep(t, now, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
	e := New(Config{RadiusFudge: 1})

	hits := e.Test(trails, []Target{target(1, 20, 0, 2)}, now)
	assert.Empty(t, hits)
}

func TestCooldownSpacing(t *testing.T) {
	now := time.Unix(10, 0)
	cooldown := 200 * time.Millisecond
	e := New(Config{Cooldown: cooldown, RadiusFudge: 1})
	tgts := []Target{target(1, 5, 0, 2)}

	trails := sweep(t, now, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
	require.Len(t, e.Test(trails, tgts, now), 1)

	// Repeat hits inside the window are suppressed
	for d := 16 * time.Millisecond; d < cooldown; d += 16 * time.Millisecond {
		later := now.Add(d)
		trails := sweep(t, later, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
		assert.Empty(t, e.Test(trails, tgts, later))
	}

	// After the window the object is hittable again
	later := now.Add(cooldown + time.Millisecond)
	trails = sweep(t, later, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
	assert.Len(t, e.Test(trails, tgts, later), 1)
}

func TestSinglePointTrailSkipped(t *testing.T) {
	now := time.Unix(10, 0)
	trails := sweep(t, now, vmath.Vec2{X: 5, Y: 0})
	e := New(Config{RadiusFudge: 1})

	hits := e.Test(trails, []Target{target(1, 5, 0, 10)}, now)
	assert.Empty(t, hits, "a trail with fewer than two points cannot hit")
}

func TestStalePointsOutsideRecencyWindow(t *testing.T) {
	now := time.Unix(10, 0)
	// The stroke passed through the circle long ago; now it idles far away
	e := New(Config{RecencyWindow: 80 * time.Millisecond, RadiusFudge: 1})

	tk := tracker.New(tracker.Config{MaxTrails: 1, MatchRadius: 1e9, SegmentMax: 1e9, MinCutoff: 1e6},
		zerolog.Nop(), status.NewRegistry())
	old := now.Add(-time.Second)
	tk.Update([]tracker.Detection{{Pos: vmath.Vec2{X: 0, Y: 0}}}, old, 16*time.Millisecond)
	tk.Update([]tracker.Detection{{Pos: vmath.Vec2{X: 10, Y: 0}}}, old.Add(16*time.Millisecond), 16*time.Millisecond)

	hits := e.Test(tk.Trails(), []Target{target(1, 5, 0, 2)}, now)
	assert.Empty(t, hits, "stale trail segments must not produce hits")
}

func TestFirstTrailWinsPerObject(t *testing.T) {
	now := time.Unix(10, 0)
	e := New(Config{RadiusFudge: 1})

	tk := tracker.New(tracker.Config{MaxTrails: 2, MatchRadius: 30, SegmentMax: 1e9, MinCutoff: 1e6},
		zerolog.Nop(), status.NewRegistry())
	frame := 16 * time.Millisecond
	// Two trails both crossing the same circle
	tk.Update([]tracker.Detection{{Pos: vmath.Vec2{X: 0, Y: 0}}, {Pos: vmath.Vec2{X: 0, Y: 3}}}, now.Add(-frame), frame)
	tk.Update([]tracker.Detection{{Pos: vmath.Vec2{X: 10, Y: 0}}, {Pos: vmath.Vec2{X: 10, Y: 3}}}, now, frame)
	require.Len(t, tk.Trails(), 2)

	hits := e.Test(tk.Trails(), []Target{target(1, 5, 0, 5)}, now)
	require.Len(t, hits, 1, "one event per object per pass")
	assert.Equal(t, tk.Trails()[0].ID, hits[0].TrailID)
}

func TestImpactVelocityFromSegment(t *testing.T) {
	now := time.Unix(10, 0)
	tk := tracker.New(tracker.Config{MaxTrails: 1, MatchRadius: 1e9, SegmentMax: 1e9, MinCutoff: 1e6, VelocityNorm: 100},
		zerolog.Nop(), status.NewRegistry())
	frame := 16 * time.Millisecond
	tk.Update([]tracker.Detection{{Pos: vmath.Vec2{X: 0, Y: 0}}}, now.Add(-frame), frame)
	tk.Update([]tracker.Detection{{Pos: vmath.Vec2{X: 10, Y: 0}}}, now, frame)

	e := New(Config{RadiusFudge: 1})
	hits := e.Test(tk.Trails(), []Target{target(1, 5, 0, 2)}, now)
	require.Len(t, hits, 1)
	assert.Positive(t, hits[0].Impact)
	assert.LessOrEqual(t, hits[0].Impact, 1.0)
}

func TestCooldownPurge(t *testing.T) {
	now := time.Unix(10, 0)
	e := New(Config{Cooldown: 100 * time.Millisecond, RadiusFudge: 1})

	trails := sweep(t, now, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 10, Y: 0})
	require.Len(t, e.Test(trails, []Target{target(1, 5, 0, 2)}, now), 1)
	require.Len(t, e.cooldowns, 1)

	// Well past 2x the window, a later pass garbage-collects the entry
	later := now.Add(time.Second)
	e.Test(nil, nil, later)
	assert.Empty(t, e.cooldowns)
}

func TestMultipleObjectsIndependentCooldowns(t *testing.T) {
	now := time.Unix(10, 0)
	e := New(Config{RadiusFudge: 1})
	trails := sweep(t, now, vmath.Vec2{X: 0, Y: 0}, vmath.Vec2{X: 20, Y: 0})

	hits := e.Test(trails, []Target{target(1, 5, 0, 2), target(2, 15, 0, 2)}, now)
	assert.Len(t, hits, 2)
}
