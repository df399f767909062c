package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentCircleHit(t *testing.T) {
	tests := []struct {
		name    string
		p1, p2  Vec2
		center  Vec2
		radius  float64
		wantHit bool
	}{
		{"Segment through circle", Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0}, Vec2{X: 5, Y: 0}, 2, true},
		{"Segment far from circle", Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0}, Vec2{X: 20, Y: 0}, 2, false},
		{"Zero-length inside circle", Vec2{X: 5, Y: 1}, Vec2{X: 5, Y: 1}, Vec2{X: 5, Y: 0}, 2, true},
		{"Zero-length outside circle", Vec2{X: 50, Y: 50}, Vec2{X: 50, Y: 50}, Vec2{X: 5, Y: 0}, 2, false},
		{"Tangent grazing", Vec2{X: 0, Y: 2}, Vec2{X: 10, Y: 2}, Vec2{X: 5, Y: 0}, 2, true},
		{"Segment ends before circle", Vec2{X: 0, Y: 0}, Vec2{X: 2, Y: 0}, Vec2{X: 5, Y: 0}, 2, false},
		{"Segment fully inside", Vec2{X: 4.5, Y: 0}, Vec2{X: 5.5, Y: 0}, Vec2{X: 5, Y: 0}, 2, true},
		{"Diagonal crossing", Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 10}, Vec2{X: 5, Y: 5}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tHit, hit := SegmentCircleHit(tt.p1, tt.p2, tt.center, tt.radius)
			assert.Equal(t, tt.wantHit, hit)
			if hit {
				assert.GreaterOrEqual(t, tHit, 0.0)
				assert.LessOrEqual(t, tHit, 1.0)
			}
		})
	}
}

func TestSegmentCircleHitEntryParameter(t *testing.T) {
	// Circle at x=5 r=2, entry along the x axis should be at x=3, t=0.3
	tHit, hit := SegmentCircleHit(Vec2{X: 0, Y: 0}, Vec2{X: 10, Y: 0}, Vec2{X: 5, Y: 0}, 2)
	assert.True(t, hit)
	assert.InDelta(t, 0.3, tHit, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
