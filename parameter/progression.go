package parameter

import "time"

// Score Ladder
const (
	// LevelBasePoints seeds the points-to-next-level curve
	LevelBasePoints = 100

	// LevelPointsGrowth is the additional points required per level
	LevelPointsGrowth = 50

	// MissPenalty is the score deducted when an object crosses the despawn boundary
	MissPenalty = 15
)

// Combo Aggregation
const (
	// ComboWindow is the sliding window grouping consecutive slices
	ComboWindow = 450 * time.Millisecond

	// ComboMultMin / ComboMultMax clamp the combo multiplier
	ComboMultMin = 2
	ComboMultMax = 5
)

// Boss Encounters
const (
	// BossLevelInterval triggers an encounter every N levels
	BossLevelInterval = 5

	// BossWarningDuration holds the warning phase before the boss spawns
	BossWarningDuration = 2 * time.Second

	// BossBaseHits / BossHitsPerTier scale required hits with tier index
	BossBaseHits    = 8
	BossHitsPerTier = 4

	// BossBaseReward / BossRewardPerTier scale the total reward with tier index
	BossBaseReward    = 500
	BossRewardPerTier = 250

	// BossRewardExponent shapes reward accrual super-linearly over hit progress,
	// making later hits worth more
	BossRewardExponent = 2.0

	// BossBaseSpeed / BossSpeedPerTier scale approach speed with tier index
	BossBaseSpeed    = 3.0
	BossSpeedPerTier = 0.5

	// BossBaseScale / BossScalePerTier scale boss size with tier index
	BossBaseScale    = 2.5
	BossScalePerTier = 0.25

	// BossResolveDelay holds the defeated boss for its resolution sequence
	BossResolveDelay = 800 * time.Millisecond
)

// Special Ability
const (
	// AbilityChargeSlice is the normalized charge gained per standard slice
	AbilityChargeSlice = 0.04

	// AbilityChargeBossHit is the normalized charge gained per boss hit
	AbilityChargeBossHit = 0.08

	// AbilityDecayDelay is the inactivity period before charge decay begins
	AbilityDecayDelay = 4 * time.Second

	// AbilityDecayPerSec is the normalized charge lost per second while decaying
	AbilityDecayPerSec = 0.05

	// AbilityActivationDebounce is how long the dual-input condition must
	// hold before activation fires
	AbilityActivationDebounce = 250 * time.Millisecond

	// AbilityActiveDuration auto-expires the active phase
	AbilityActiveDuration = 6 * time.Second

	// AbilityCooldownDuration holds the cooldown phase before recharging
	AbilityCooldownDuration = 3 * time.Second

	// AbilityScoreMult multiplies base score for kills during the active phase
	AbilityScoreMult = 2
)
