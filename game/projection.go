package game

import (
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/pool"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// Perspective returns a pinhole projection centered on the given screen
// size. Positions behind the near plane have no projection. The returned
// size scale is normalized to 1 at spawn depth, so base radii read as
// on-screen pixels for a freshly spawned object
func Perspective(width, height float64) pool.Projection {
	cx, cy := width/2, height/2
	return func(p vmath.Vec3) (vmath.Vec2, float64, bool) {
		if p.Z <= parameter.ProjectionNear {
			return vmath.Vec2{}, 0, false
		}
		f := parameter.ProjectionFocal / p.Z
		screen := vmath.Vec2{X: cx + p.X*f, Y: cy - p.Y*f}
		return screen, parameter.SpawnDepth / p.Z, true
	}
}
