package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/motion-fighter/vmath"
)

// SlicePayload carries a collision hit on a standard target
type SlicePayload struct {
	ObjectID  int
	TypeTag   uint8
	Impact    float64 // Normalized impact velocity [0,1]
	Screen    vmath.Vec2
	TrailID   int
	BaseScore int
	At        time.Time
}

// MissPayload carries an object crossing the despawn boundary unsliced
type MissPayload struct {
	ObjectID int
	TypeTag  uint8
	At       time.Time
}

// ScoreChangedPayload carries an applied score delta
type ScoreChangedPayload struct {
	Delta  int
	Score  int
	Reason ScoreReason
}

// ScoreReason identifies why a score delta was applied
type ScoreReason uint8

const (
	ReasonSlice ScoreReason = iota
	ReasonMiss
	ReasonComboBonus
	ReasonBossReward
	ReasonAbilityKill
)

// String returns the reason name for logging and HUD display
func (r ScoreReason) String() string {
	switch r {
	case ReasonSlice:
		return "slice"
	case ReasonMiss:
		return "miss"
	case ReasonComboBonus:
		return "combo"
	case ReasonBossReward:
		return "boss"
	case ReasonAbilityKill:
		return "ability"
	}
	return "unknown"
}

// LevelChangedPayload carries an actual level transition
type LevelChangedPayload struct {
	Previous int
	New      int
}

// Increased reports whether the transition was upward, gating
// celebratory side effects
func (p *LevelChangedPayload) Increased() bool {
	return p.New > p.Previous
}

// ComboPayload carries a resolved combo group
type ComboPayload struct {
	Count      int
	Multiplier int
	BaseSum    int
	Bonus      int
}

// BossPayload carries a boss encounter phase edge
type BossPayload struct {
	EncounterID uuid.UUID
	Tier        int
	Required    int
	Hits        int
}

// BossHitPayload carries one registered boss hit
type BossHitPayload struct {
	EncounterID uuid.UUID
	Hits        int
	Required    int
	Accrued     int // Reward accrued so far, not yet granted
	Impact      float64
	Screen      vmath.Vec2
}

// AbilityPhasePayload carries a special-ability phase transition
type AbilityPhasePayload struct {
	Previous AbilityPhase
	New      AbilityPhase
	Charge   float64
}

// AbilityPhase is the special-ability machine phase
type AbilityPhase uint8

const (
	AbilityCharging AbilityPhase = iota
	AbilityReady
	AbilityActive
	AbilityCooldown
)

// String returns the phase name
func (p AbilityPhase) String() string {
	switch p {
	case AbilityCharging:
		return "charging"
	case AbilityReady:
		return "ready"
	case AbilityActive:
		return "active"
	case AbilityCooldown:
		return "cooldown"
	}
	return "unknown"
}
