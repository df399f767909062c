package pool

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// BossObjectID is the reserved collision object id of the boss instance,
// outside the pool's positive slot id space
const BossObjectID = -1

// BossEncounter is a transient high-value target constructed outside the
// slot array, with tier-scaled stats and direct motion control
type BossEncounter struct {
	ID   uuid.UUID
	Tier int

	Required int
	Hits     int

	RewardTotal int
	accrued     int

	Pos     vmath.Vec3
	Vel     vmath.Vec3
	Rot     float64
	RotRate float64
	Scale   float64

	StartedAt time.Time
	Escaped   bool
	Defeated  bool
}

// newBossEncounter builds a tier-scaled encounter. Required hits, reward,
// speed, and size all strictly increase with tier index
func newBossEncounter(tier int, now time.Time, rng *vmath.FastRand) *BossEncounter {
	speed := parameter.BossBaseSpeed + float64(tier)*parameter.BossSpeedPerTier
	return &BossEncounter{
		ID:          uuid.New(),
		Tier:        tier,
		Required:    parameter.BossBaseHits + tier*parameter.BossHitsPerTier,
		RewardTotal: parameter.BossBaseReward + tier*parameter.BossRewardPerTier,
		Pos: vmath.Vec3{
			X: rng.Jitter(0, parameter.SpawnFieldHalfWidth/3),
			Y: rng.Jitter(0, parameter.SpawnFieldHalfHeight/3),
			Z: parameter.SpawnDepth,
		},
		Vel:       vmath.Vec3{Z: -speed},
		RotRate:   rng.Jitter(0, parameter.SpawnRotRateMax/2),
		Scale:     parameter.BossBaseScale + float64(tier)*parameter.BossScalePerTier,
		StartedAt: now,
	}
}

// RegisterHit increments the capped hit counter and accrues reward along
// a super-linear curve of hit progress: later hits are worth more. The
// returned delta is the newly accrued reward; nothing is granted to the
// score until the encounter resolves
func (b *BossEncounter) RegisterHit() (delta int, defeated bool) {
	if b.Hits >= b.Required || b.Defeated || b.Escaped {
		return 0, false
	}
	b.Hits++

	progress := float64(b.Hits) / float64(b.Required)
	total := int(math.Floor(math.Pow(progress, parameter.BossRewardExponent) * float64(b.RewardTotal)))
	delta = total - b.accrued
	b.accrued = total

	if b.Hits == b.Required {
		b.Defeated = true
		return delta, true
	}
	return delta, false
}

// Accrued returns the reward accrued so far
func (b *BossEncounter) Accrued() int {
	return b.accrued
}

// advance integrates boss motion. Returns true the moment the boss
// crosses the despawn boundary unbeaten
func (b *BossEncounter) advance(dt time.Duration) bool {
	if b.Defeated || b.Escaped {
		return false
	}
	sec := dt.Seconds()
	b.Pos = b.Pos.Add(b.Vel.Scale(sec))
	b.Rot += b.RotRate * sec

	if b.Pos.Z <= parameter.DespawnDepth {
		b.Escaped = true
		return true
	}
	return false
}
