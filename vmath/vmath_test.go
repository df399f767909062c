package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}

	assert.Equal(t, Vec2{X: 4, Y: 6}, a.Add(b))
	assert.Equal(t, Vec2{X: 2, Y: 2}, a.Sub(b))
	assert.Equal(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, 5.0, Norm(a))
}

func TestVec3Arithmetic(t *testing.T) {
	p := Vec3{X: 1, Y: 2, Z: 3}
	v := Vec3{X: 10, Y: -20, Z: 5}

	// Euler step: position advanced by velocity over half a second
	assert.Equal(t, Vec3{X: 6, Y: -8, Z: 5.5}, p.Add(v.Scale(0.5)))
	assert.Equal(t, Vec3{X: -9, Y: 22, Z: -2}, p.Sub(v))
}

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4}))
	assert.Equal(t, 25.0, DistSq(Vec2{X: 0, Y: 0}, Vec2{X: 3, Y: 4}))
}

func TestLerpVec(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 20}
	assert.Equal(t, Vec2{X: 5, Y: 10}, LerpVec2(a, b, 0.5))

	p := Vec3{X: 0, Y: 0, Z: 40}
	q := Vec3{X: 4, Y: 8, Z: 0}
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 30}, LerpVec3(p, q, 0.25))
}
