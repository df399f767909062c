// Package vmath provides float vector math for the interaction core.
// Screen-space quantities are in pixels, world-space in abstract units.
package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec2 is a 2D screen-space vector (pixels) backed by gonum's r2.Vec.
// gonum exposes vector arithmetic as package functions; the methods
// here delegate so call sites read naturally.
type Vec2 r2.Vec

// Add returns v + u
func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2(r2.Add(r2.Vec(v), r2.Vec(u)))
}

// Sub returns v - u
func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2(r2.Sub(r2.Vec(v), r2.Vec(u)))
}

// Scale returns v scaled by f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2(r2.Scale(f, r2.Vec(v)))
}

// Vec3 is a 3D world-space vector backed by gonum's r3.Vec
type Vec3 r3.Vec

// Add returns v + u
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3(r3.Add(r3.Vec(v), r3.Vec(u)))
}

// Sub returns v - u
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3(r3.Sub(r3.Vec(v), r3.Vec(u)))
}

// Scale returns v scaled by f
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3(r3.Scale(f, r3.Vec(v)))
}

// Dist returns the distance between two screen points
func Dist(a, b Vec2) float64 {
	return r2.Norm(r2.Vec(b.Sub(a)))
}

// DistSq returns squared distance, avoiding the sqrt for threshold checks
func DistSq(a, b Vec2) float64 {
	return r2.Norm2(r2.Vec(b.Sub(a)))
}

// Norm returns vector length
func Norm(v Vec2) float64 {
	return r2.Norm(r2.Vec(v))
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 interpolates component-wise between two screen points
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// LerpVec3 interpolates component-wise between two world points
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t), Z: Lerp(a.Z, b.Z, t)}
}

// SmoothingAlpha converts a low-pass cutoff frequency (Hz) and sample
// interval into an exponential smoothing factor in (0,1]
func SmoothingAlpha(cutoff, dt float64) float64 {
	if cutoff <= 0 || dt <= 0 {
		return 1
	}
	tau := 1.0 / (2 * math.Pi * cutoff)
	return 1.0 / (1.0 + tau/dt)
}
