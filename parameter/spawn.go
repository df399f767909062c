package parameter

import "time"

// Pool Capacity
const (
	// PoolSlots is the fixed slot-array capacity of the target pool
	PoolSlots = 25

	// SpawnBaseRate is the base spawn rate in objects per second
	SpawnBaseRate = 1.5

	// SpawnBaseCap is the base concurrency cap on active objects
	SpawnBaseCap = 12
)

// Difficulty Scaling
const (
	// QualityMultMin / QualityMultMax clamp the performance-ladder multiplier
	QualityMultMin = 0.5
	QualityMultMax = 1.0

	// DifficultyMultMin / DifficultyMultMax clamp the level-driven multiplier
	DifficultyMultMin = 1.0
	DifficultyMultMax = 2.5

	// SpeedMultMin / SpeedMultMax clamp the global speed multiplier
	SpeedMultMin = 0.25
	SpeedMultMax = 3.0

	// ScaleMultMin / ScaleMultMax clamp the object scale multiplier
	ScaleMultMin = 0.5
	ScaleMultMax = 2.0

	// DifficultyPerLevel raises the difficulty multiplier per level gained
	DifficultyPerLevel = 0.06
)

// Spawn Placement
const (
	// SpawnDepth is the world Z at which objects appear
	SpawnDepth = 40.0

	// DespawnDepth is the world Z past which an unsliced object counts as missed
	DespawnDepth = 1.0

	// FadeBandDepth is the Z band above the despawn boundary over which
	// the fade/shrink factor ramps to zero
	FadeBandDepth = 6.0

	// SpawnFieldHalfWidth / SpawnFieldHalfHeight bound lateral spawn positions
	SpawnFieldHalfWidth  = 16.0
	SpawnFieldHalfHeight = 10.0

	// SpawnDeadzoneRadius keeps a central region clear at spawn time
	SpawnDeadzoneRadius = 4.0

	// SpawnEdgeBias is the probability a spawn is forced into the edge band
	SpawnEdgeBias = 0.6

	// SpawnPlacementTries bounds rejection sampling before edge fallback
	SpawnPlacementTries = 3
)

// Spawn Motion
const (
	// SpawnApproachSpeed is the base speed toward the viewer (units/sec)
	SpawnApproachSpeed = 7.0

	// SpawnSpeedJitter is the fractional speed randomization per spawn
	SpawnSpeedJitter = 0.25

	// SpawnLateralJitter is the lateral drift target spread per spawn
	SpawnLateralJitter = 2.5

	// SpawnRotRateMax is the maximum rotation rate magnitude (rad/sec)
	SpawnRotRateMax = 3.0

	// SpawnScaleJitter is the fractional size randomization per spawn
	SpawnScaleJitter = 0.2
)

// Recycle Timing
const (
	// SliceRecycleDelay holds a sliced slot before returning it to the pool,
	// covering the presentation-side burst effect
	SliceRecycleDelay = 300 * time.Millisecond
)
