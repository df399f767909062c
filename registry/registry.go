// Package registry owns the per-type visual and physical configuration of
// target objects. It is a closed enum-keyed lookup table, lazily built and
// explicitly injected into consumers, never a hidden global.
package registry

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/vmath"
)

// TargetType tags a poolable target variant. Closed set; the boss re-keys
// into the same table
type TargetType uint8

const (
	TypeOrb TargetType = iota
	TypeCube
	TypeShard
	TypeBoss

	typeCount
)

// String returns the type name
func (t TargetType) String() string {
	switch t {
	case TypeOrb:
		return "orb"
	case TypeCube:
		return "cube"
	case TypeShard:
		return "shard"
	case TypeBoss:
		return "boss"
	}
	return "unknown"
}

// Descriptor is the per-type physical and scoring configuration
type Descriptor struct {
	Type        TargetType
	BaseRadius  float64 // Collision radius before scale factors (pixels at unit projection)
	BaseScale   float64
	ScoreValue  int
	ChargeValue float64 // Normalized ability charge granted per slice
	SpawnWeight int     // Relative weighted-choice weight; 0 = never auto-spawned
}

// Geometry is a renderer-agnostic outline used by the presentation layer
type Geometry struct {
	Outline []vmath.Vec2 // Unit-scale closed outline
	Glyph   rune         // Terminal-presentation fallback glyph
}

// Loader supplies geometry assets. Load failures are non-fatal: the
// registry falls back to a procedurally generated outline
type Loader interface {
	LoadGeometry(t TargetType) (Geometry, error)
}

type entry struct {
	desc  Descriptor
	geom  Geometry
	built bool
}

// Registry is the lazily-built descriptor and geometry table
type Registry struct {
	loader  Loader
	log     zerolog.Logger
	entries [typeCount]entry
}

// New creates a registry backed by the given loader. A nil loader means
// every type uses procedural geometry
func New(loader Loader, log zerolog.Logger) *Registry {
	r := &Registry{loader: loader, log: log}
	for _, d := range defaultDescriptors {
		r.entries[d.Type].desc = d
	}
	return r
}

var defaultDescriptors = []Descriptor{
	{Type: TypeOrb, BaseRadius: 34, BaseScale: 1.0, ScoreValue: 10, ChargeValue: 0.04, SpawnWeight: 5},
	{Type: TypeCube, BaseRadius: 30, BaseScale: 0.9, ScoreValue: 15, ChargeValue: 0.05, SpawnWeight: 3},
	{Type: TypeShard, BaseRadius: 24, BaseScale: 0.7, ScoreValue: 25, ChargeValue: 0.07, SpawnWeight: 2},
	{Type: TypeBoss, BaseRadius: 46, BaseScale: 2.5, ScoreValue: 0, ChargeValue: 0.08, SpawnWeight: 0},
}

// Descriptor returns the configuration for a type
func (r *Registry) Descriptor(t TargetType) Descriptor {
	if t >= typeCount {
		t = TypeOrb
	}
	return r.entries[t].desc
}

// Geometry returns the outline for a type, building it on first use.
// Asset load failure falls back to a procedural outline and the game
// continues; this is never a fatal condition
func (r *Registry) Geometry(t TargetType) Geometry {
	if t >= typeCount {
		t = TypeOrb
	}
	e := &r.entries[t]
	if e.built {
		return e.geom
	}

	if r.loader != nil {
		g, err := r.loader.LoadGeometry(t)
		if err == nil {
			e.geom = g
			e.built = true
			return e.geom
		}
		r.log.Warn().Err(err).Stringer("type", t).Msg("geometry load failed, using procedural fallback")
	}

	e.geom = proceduralGeometry(t)
	e.built = true
	return e.geom
}

// Types returns the spawnable types with their weights, excluding the boss
func (r *Registry) Types() []Descriptor {
	out := make([]Descriptor, 0, typeCount)
	for i := TargetType(0); i < typeCount; i++ {
		if r.entries[i].desc.SpawnWeight > 0 {
			out = append(out, r.entries[i].desc)
		}
	}
	return out
}

// proceduralGeometry generates a default outline per type: a regular
// polygon whose vertex count distinguishes the silhouette
func proceduralGeometry(t TargetType) Geometry {
	sides := 12
	glyph := 'o'
	switch t {
	case TypeCube:
		sides, glyph = 4, '#'
	case TypeShard:
		sides, glyph = 3, '^'
	case TypeBoss:
		sides, glyph = 8, '@'
	}

	outline := make([]vmath.Vec2, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		outline[i] = vmath.Vec2{X: math.Cos(a), Y: math.Sin(a)}
	}
	return Geometry{Outline: outline, Glyph: glyph}
}
