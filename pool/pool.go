// Package pool owns the fixed-capacity slot pool of target objects:
// spawning, per-frame advancement, fading, recycling, and live difficulty
// scaling. It also constructs and drives the bespoke boss instance.
package pool

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/collision"
	"github.com/lixenwraith/motion-fighter/config"
	"github.com/lixenwraith/motion-fighter/core"
	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/registry"
	"github.com/lixenwraith/motion-fighter/status"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// Config tunes the pool. Zero fields fall back to parameter defaults
type Config struct {
	Slots    int
	BaseRate float64
	BaseCap  int
	Seed     uint64
}

// Pool is the object lifecycle owner. All TargetObject and BossEncounter
// lifetime is managed here and nowhere else
type Pool struct {
	cfg   Config
	log   zerolog.Logger
	sched *core.Scheduler
	queue *event.Queue
	reg   *registry.Registry
	rng   *vmath.FastRand

	slots  []TargetObject
	nextID int

	nextSpawnTime time.Time
	frozen        bool
	frame         uint64

	baseRate       float64
	baseCap        int
	qualityMult    float64
	difficultyMult float64
	speedMult      float64
	scaleMult      float64

	boss *BossEncounter

	missed int
	sliced int

	statActive *atomic.Int64
	statMissed *atomic.Int64
	statSliced *atomic.Int64
	statRate   *status.AtomicFloat
}

// New creates a pool with all slots pooled
func New(cfg Config, log zerolog.Logger, sched *core.Scheduler, queue *event.Queue,
	reg *registry.Registry, statusReg *status.Registry) *Pool {

	if cfg.Slots <= 0 {
		cfg.Slots = parameter.PoolSlots
	}
	if cfg.BaseRate <= 0 {
		cfg.BaseRate = parameter.SpawnBaseRate
	}
	if cfg.BaseCap <= 0 {
		cfg.BaseCap = parameter.SpawnBaseCap
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	p := &Pool{
		cfg:   cfg,
		log:   log,
		sched: sched,
		queue: queue,
		reg:   reg,

		statActive: statusReg.Ints.Get("pool.active"),
		statMissed: statusReg.Ints.Get("pool.missed"),
		statSliced: statusReg.Ints.Get("pool.sliced"),
		statRate:   statusReg.Floats.Get("pool.rate"),
	}
	p.init()
	return p
}

// init resets session state
func (p *Pool) init() {
	p.rng = vmath.NewFastRand(p.cfg.Seed)
	p.slots = make([]TargetObject, p.cfg.Slots)
	for i := range p.slots {
		p.slots[i].Slot = i
		p.slots[i].State = StatePooled
	}
	p.nextID = 0
	p.nextSpawnTime = time.Time{}
	p.frozen = false
	p.baseRate = p.cfg.BaseRate
	p.baseCap = p.cfg.BaseCap
	p.qualityMult = parameter.QualityMultMax
	p.difficultyMult = parameter.DifficultyMultMin
	p.speedMult = 1
	p.scaleMult = 1
	p.boss = nil
	p.missed = 0
	p.sliced = 0
}

// Reset recycles everything. Scheduled recycle callbacks are cancelled by
// the owning pipeline resetting the shared scheduler
func (p *Pool) Reset() {
	p.init()
	p.statActive.Store(0)
	p.statMissed.Store(0)
	p.statSliced.Store(0)
}

// EffectiveRate combines base rate with the clamped quality and
// difficulty multipliers
func (p *Pool) EffectiveRate() float64 {
	rate := p.baseRate * p.qualityMult * p.difficultyMult
	return vmath.Clamp(rate, 0.1, 10)
}

// EffectiveCap combines base cap with the clamped multipliers, never
// exceeding the slot count
func (p *Pool) EffectiveCap() int {
	c := int(math.Round(float64(p.baseCap) * p.qualityMult * p.difficultyMult))
	return vmath.ClampInt(c, 1, p.cfg.Slots)
}

// ApplyRuntime pulls the live-tunable surface into the pool. A changed
// speed multiplier rescales active objects' velocities in place by the
// delta ratio, not just future spawns
func (p *Pool) ApplyRuntime(rt *config.Runtime) {
	p.baseRate = rt.SpawnRate()
	p.baseCap = rt.SpawnCap()
	p.qualityMult = vmath.Clamp(rt.QualityMultiplier(), parameter.QualityMultMin, parameter.QualityMultMax)
	p.scaleMult = rt.ScaleMultiplier()
	p.setSpeedMultiplier(rt.SpeedMultiplier())
}

// SetDifficultyMultiplier applies the level-driven feedback, clamped
func (p *Pool) SetDifficultyMultiplier(m float64) {
	p.difficultyMult = vmath.Clamp(m, parameter.DifficultyMultMin, parameter.DifficultyMultMax)
}

func (p *Pool) setSpeedMultiplier(m float64) {
	m = vmath.Clamp(m, parameter.SpeedMultMin, parameter.SpeedMultMax)
	if m == p.speedMult {
		return
	}
	ratio := m / p.speedMult
	for i := range p.slots {
		if p.slots[i].State == StateActive {
			p.slots[i].Vel = p.slots[i].Vel.Scale(ratio)
		}
	}
	p.speedMult = m
}

// FreezeSpawning gates the spawn timer without touching active objects.
// Used by the boss warning phase
func (p *Pool) FreezeSpawning(frozen bool) {
	p.frozen = frozen
}

// Update advances one frame: spawn gating, integration, fading, and
// despawn-boundary handling
func (p *Pool) Update(now time.Time, dt time.Duration, frame uint64) {
	p.frame = frame
	p.statRate.Set(p.EffectiveRate())

	if !p.frozen {
		interval := p.spawnInterval()
		if p.nextSpawnTime.IsZero() || now.Sub(p.nextSpawnTime) > 10*interval {
			// First frame or a large stall: resync instead of catching up
			p.nextSpawnTime = now.Add(interval)
		}
		for !now.Before(p.nextSpawnTime) {
			p.trySpawn(now)
			p.nextSpawnTime = p.nextSpawnTime.Add(interval)
		}
	}

	sec := dt.Seconds()
	for i := range p.slots {
		obj := &p.slots[i]
		if obj.State != StateActive {
			continue
		}

		obj.Pos = obj.Pos.Add(obj.Vel.Scale(sec))
		obj.Rot += obj.RotRate * sec
		obj.FadeFactor = vmath.Clamp((obj.Pos.Z-parameter.DespawnDepth)/parameter.FadeBandDepth, 0, 1)

		if obj.Pos.Z <= parameter.DespawnDepth {
			p.missObject(obj, now)
		}
	}

	if p.boss != nil && p.boss.advance(dt) {
		p.queue.Emit(event.EventBossEscaped, p.frame, &event.BossPayload{
			EncounterID: p.boss.ID,
			Tier:        p.boss.Tier,
			Required:    p.boss.Required,
			Hits:        p.boss.Hits,
		})
	}

	p.statActive.Store(int64(p.ActiveCount()))
}

func (p *Pool) spawnInterval() time.Duration {
	return time.Duration(1000/p.EffectiveRate()) * time.Millisecond
}

// trySpawn activates one pooled slot if the concurrency cap allows
func (p *Pool) trySpawn(now time.Time) {
	if p.ActiveCount() >= p.EffectiveCap() {
		return
	}
	slot := p.freeSlot()
	if slot == nil {
		return
	}

	desc := p.pickType()
	// Warm the geometry cache before the object becomes visible
	p.reg.Geometry(desc.Type)

	slot.Type = desc.Type
	p.nextID++
	slot.ID = p.nextID
	slot.State = StateActive
	slot.Hidden = false
	slot.Pos = p.pickSpawnPosition()
	slot.Vel = p.pickVelocity(slot.Pos)
	slot.Rot = 0
	slot.RotRate = p.rng.Jitter(0, parameter.SpawnRotRateMax)
	slot.Scale = desc.BaseScale * p.rng.Jitter(1, parameter.SpawnScaleJitter)
	slot.FadeFactor = 1
	slot.ActivatedAt = now
}

func (p *Pool) freeSlot() *TargetObject {
	for i := range p.slots {
		if p.slots[i].State == StatePooled {
			return &p.slots[i]
		}
	}
	return nil
}

// pickType is a weighted choice over the spawnable descriptors
func (p *Pool) pickType() registry.Descriptor {
	types := p.reg.Types()
	total := 0
	for _, d := range types {
		total += d.SpawnWeight
	}
	pick := p.rng.Intn(total)
	for _, d := range types {
		pick -= d.SpawnWeight
		if pick < 0 {
			return d
		}
	}
	return types[len(types)-1]
}

// pickSpawnPosition rejection-samples a lateral position at spawn depth,
// biased toward the field edges and keeping the central deadzone clear
func (p *Pool) pickSpawnPosition() vmath.Vec3 {
	for try := 0; try < parameter.SpawnPlacementTries; try++ {
		var x, y float64
		if p.rng.Float64() < parameter.SpawnEdgeBias {
			// Edge band sample
			x = p.edgeCoordinate(parameter.SpawnFieldHalfWidth)
			y = p.rng.Jitter(0, parameter.SpawnFieldHalfHeight)
		} else {
			x = p.rng.Jitter(0, parameter.SpawnFieldHalfWidth)
			y = p.rng.Jitter(0, parameter.SpawnFieldHalfHeight)
		}

		if x*x+y*y < parameter.SpawnDeadzoneRadius*parameter.SpawnDeadzoneRadius {
			continue
		}
		return vmath.Vec3{X: x, Y: y, Z: parameter.SpawnDepth}
	}

	// All tries landed in the deadzone: force an edge placement
	return vmath.Vec3{
		X: p.edgeCoordinate(parameter.SpawnFieldHalfWidth),
		Y: p.rng.Jitter(0, parameter.SpawnFieldHalfHeight),
		Z: parameter.SpawnDepth,
	}
}

func (p *Pool) edgeCoordinate(half float64) float64 {
	v := p.rng.Range(0.6, 1) * half
	if p.rng.Intn(2) == 0 {
		return -v
	}
	return v
}

// pickVelocity aims the object at a jittered lateral target near the
// viewer, with speed jitter scaled by the global speed multiplier
func (p *Pool) pickVelocity(from vmath.Vec3) vmath.Vec3 {
	speed := parameter.SpawnApproachSpeed * p.rng.Jitter(1, parameter.SpawnSpeedJitter) * p.speedMult
	travel := (from.Z - parameter.DespawnDepth) / speed

	targetX := p.rng.Jitter(0, parameter.SpawnLateralJitter)
	targetY := p.rng.Jitter(0, parameter.SpawnLateralJitter)

	return vmath.Vec3{
		X: (targetX - from.X) / travel,
		Y: (targetY - from.Y) / travel,
		Z: -speed,
	}
}

// missObject handles the despawn-boundary crossing: emit, count, recycle
func (p *Pool) missObject(obj *TargetObject, now time.Time) {
	obj.State = StateMissed
	p.missed++
	p.statMissed.Store(int64(p.missed))

	p.queue.Emit(event.EventMiss, p.frame, &event.MissPayload{
		ObjectID: obj.ID,
		TypeTag:  uint8(obj.Type),
		At:       now,
	})

	obj.State = StatePooled
	obj.Hidden = false
	obj.ID = 0
}

// Slice marks an active object sliced: hidden immediately, recycled to
// pooled after a fixed short delay. Returns the sliced type
func (p *Pool) Slice(objectID int, now time.Time) (registry.TargetType, bool) {
	for i := range p.slots {
		obj := &p.slots[i]
		if obj.State != StateActive || obj.ID != objectID {
			continue
		}

		obj.State = StateSliced
		obj.Hidden = true
		p.sliced++
		p.statSliced.Store(int64(p.sliced))

		slot := i
		id := obj.ID
		p.sched.After(now, parameter.SliceRecycleDelay, func() {
			s := &p.slots[slot]
			if s.State == StateSliced && s.ID == id {
				s.State = StatePooled
				s.Hidden = false
				s.ID = 0
			}
		})
		return obj.Type, true
	}
	return 0, false
}

// ActiveCount returns the number of active slots (sliced-pending slots
// do not count toward the concurrency cap)
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].State == StateActive {
			n++
		}
	}
	return n
}

// MissedCount returns total missed objects this session
func (p *Pool) MissedCount() int { return p.missed }

// SlicedCount returns total sliced objects this session
func (p *Pool) SlicedCount() int { return p.sliced }

// Boss returns the live encounter, or nil
func (p *Pool) Boss() *BossEncounter { return p.boss }

// EnterBossMode clears active non-boss objects, freezes normal spawning,
// and constructs the tier-scaled boss instance outside the slot array
func (p *Pool) EnterBossMode(tier int, now time.Time) *BossEncounter {
	p.frozen = true
	for i := range p.slots {
		if p.slots[i].State == StateActive {
			p.slots[i].State = StatePooled
			p.slots[i].ID = 0
		}
	}

	p.reg.Geometry(registry.TypeBoss)

	p.boss = newBossEncounter(tier, now, p.rng)
	p.log.Info().Int("tier", tier).Int("required", p.boss.Required).Msg("boss spawned")
	return p.boss
}

// ExitBossMode drops the encounter and resumes normal spawning
func (p *Pool) ExitBossMode(now time.Time) {
	p.boss = nil
	p.frozen = false
	p.nextSpawnTime = now.Add(p.spawnInterval())
}

// ActiveTargets reduces active objects (and the boss) to their
// screen-space collision footprints. Objects with no valid projection
// are omitted
func (p *Pool) ActiveTargets(project Projection) []collision.Target {
	out := make([]collision.Target, 0, p.ActiveCount()+1)
	for i := range p.slots {
		obj := &p.slots[i]
		if obj.State != StateActive || obj.Hidden {
			continue
		}
		screen, scale, ok := project(obj.Pos)
		if !ok {
			continue
		}
		desc := p.reg.Descriptor(obj.Type)
		out = append(out, collision.Target{
			ObjectID:   obj.ID,
			TypeTag:    uint8(obj.Type),
			Screen:     screen,
			ProjScale:  scale,
			ObjScale:   obj.Scale * p.scaleMult * obj.FadeFactor,
			BaseRadius: desc.BaseRadius,
		})
	}

	if b := p.boss; b != nil && !b.Defeated && !b.Escaped {
		if screen, scale, ok := project(b.Pos); ok {
			desc := p.reg.Descriptor(registry.TypeBoss)
			out = append(out, collision.Target{
				ObjectID:   BossObjectID,
				TypeTag:    uint8(registry.TypeBoss),
				Screen:     screen,
				ProjScale:  scale,
				ObjScale:   b.Scale * p.scaleMult,
				BaseRadius: desc.BaseRadius,
			})
		}
	}
	return out
}

// Snapshot copies the current slot states for presentation
func (p *Pool) Snapshot() []TargetObject {
	out := make([]TargetObject, len(p.slots))
	copy(out, p.slots)
	return out
}
