package pool

import (
	"time"

	"github.com/lixenwraith/motion-fighter/registry"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// State is the lifecycle state of a pooled target.
// Transitions only pooled -> active -> {sliced, missed} -> pooled
type State uint8

const (
	StatePooled State = iota
	StateActive
	StateSliced
	StateMissed
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StatePooled:
		return "pooled"
	case StateActive:
		return "active"
	case StateSliced:
		return "sliced"
	case StateMissed:
		return "missed"
	}
	return "unknown"
}

// TargetObject is one slot of the pool. Slots are reused: ID changes on
// every activation, Slot never does
type TargetObject struct {
	ID   int // Unique per activation, 0 while never used
	Slot int
	Type registry.TargetType

	State  State
	Hidden bool // Sliced objects hide immediately, recycle later

	Pos     vmath.Vec3
	Vel     vmath.Vec3
	Rot     float64
	RotRate float64
	Scale   float64

	// FadeFactor shrinks toward 0 as the object nears the despawn
	// boundary; presentation and collision radius both scale by it
	FadeFactor float64

	ActivatedAt time.Time
}

// Projection maps a world position to screen space with a distance-based
// scale factor. ok is false when the point is at or behind the viewpoint
type Projection func(vmath.Vec3) (screen vmath.Vec2, scale float64, ok bool)
