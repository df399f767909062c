package config

import (
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// QualityLevel is the performance ladder step
type QualityLevel int

const (
	QualityLow QualityLevel = iota
	QualityMedium
	QualityHigh
)

// Runtime is the live-tunable configuration surface, settable without
// reconstruction. Out-of-range values are silently clamped, never rejected
type Runtime struct {
	spawnRate float64
	spawnCap  int
	speedMult float64
	scaleMult float64
	quality   QualityLevel
}

// NewRuntime creates the runtime surface with base values
func NewRuntime(spawnRate float64, spawnCap int) *Runtime {
	r := &Runtime{quality: QualityHigh, speedMult: 1, scaleMult: 1}
	r.SetSpawnRate(spawnRate)
	r.SetSpawnCap(spawnCap)
	return r
}

// SetSpawnRate sets the base spawn rate (objects/sec), clamped to a safe range
func (r *Runtime) SetSpawnRate(rate float64) {
	if rate < 0.1 {
		rate = 0.1
	}
	if rate > 10 {
		rate = 10
	}
	r.spawnRate = rate
}

// SetSpawnCap sets the base concurrency cap, clamped to the pool slot count
func (r *Runtime) SetSpawnCap(cap int) {
	r.spawnCap = vmath.ClampInt(cap, 1, parameter.PoolSlots)
}

// SetSpeedMultiplier sets the global speed multiplier, clamped
func (r *Runtime) SetSpeedMultiplier(m float64) {
	r.speedMult = vmath.Clamp(m, parameter.SpeedMultMin, parameter.SpeedMultMax)
}

// SetScaleMultiplier sets the object scale multiplier, clamped
func (r *Runtime) SetScaleMultiplier(m float64) {
	r.scaleMult = vmath.Clamp(m, parameter.ScaleMultMin, parameter.ScaleMultMax)
}

// SetQuality sets the performance ladder step, clamped to known levels
func (r *Runtime) SetQuality(q QualityLevel) {
	if q < QualityLow {
		q = QualityLow
	}
	if q > QualityHigh {
		q = QualityHigh
	}
	r.quality = q
}

// SpawnRate returns the base spawn rate
func (r *Runtime) SpawnRate() float64 { return r.spawnRate }

// SpawnCap returns the base concurrency cap
func (r *Runtime) SpawnCap() int { return r.spawnCap }

// SpeedMultiplier returns the global speed multiplier
func (r *Runtime) SpeedMultiplier() float64 { return r.speedMult }

// ScaleMultiplier returns the object scale multiplier
func (r *Runtime) ScaleMultiplier() float64 { return r.scaleMult }

// Quality returns the performance ladder step
func (r *Runtime) Quality() QualityLevel { return r.quality }

// QualityMultiplier maps the ladder step onto the clamped rate/cap multiplier
func (r *Runtime) QualityMultiplier() float64 {
	switch r.quality {
	case QualityLow:
		return parameter.QualityMultMin
	case QualityMedium:
		return (parameter.QualityMultMin + parameter.QualityMultMax) / 2
	default:
		return parameter.QualityMultMax
	}
}

