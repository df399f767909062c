package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never dispatched
	EventNone EventType = iota

	// === Collision Events ===

	// EventSlice signals a trail struck an active target
	// Trigger: collision test phase, first matching trail per object
	// Consumer: progression coordinator, presentation | Payload: *SlicePayload
	EventSlice

	// EventMiss signals an unsliced target crossed the despawn boundary
	// Trigger: pool per-frame update
	// Consumer: progression coordinator | Payload: *MissPayload
	EventMiss

	// === Score Events ===

	// EventScoreChanged signals a score delta was applied
	// Trigger: score ladder on every accepted delta
	// Consumer: HUD | Payload: *ScoreChangedPayload
	EventScoreChanged

	// EventLevelChanged signals an actual level change, up or down
	// Trigger: score ladder when recomputed level differs
	// Consumer: HUD, boss machine, difficulty feedback | Payload: *LevelChangedPayload
	EventLevelChanged

	// EventComboCompleted signals a combo window resolved with a bonus
	// Trigger: combo aggregator flush
	// Consumer: score ladder (bonus), HUD | Payload: *ComboPayload
	EventComboCompleted

	// === Boss Events ===

	// EventBossWarning signals the warning phase began, spawning frozen
	// Trigger: boss machine idle->warning
	// Consumer: pool, presentation | Payload: *BossPayload
	EventBossWarning

	// EventBossSpawned signals the boss instance is live
	// Trigger: boss machine warning->active
	// Consumer: presentation | Payload: *BossPayload
	EventBossSpawned

	// EventBossHit signals a registered hit on the boss
	// Trigger: collision on the boss instance
	// Consumer: presentation, ability machine | Payload: *BossHitPayload
	EventBossHit

	// EventBossDefeated signals hits reached required, reward awarded
	// Trigger: boss machine active->idle on defeat
	// Consumer: presentation | Payload: *BossPayload
	EventBossDefeated

	// EventBossEscaped signals the boss crossed the despawn boundary
	// Trigger: pool boss motion update
	// Consumer: boss machine, presentation | Payload: *BossPayload
	EventBossEscaped

	// === Ability Events ===

	// EventAbilityPhaseChanged signals a special-ability phase transition
	// Trigger: ability machine on any phase edge
	// Consumer: HUD | Payload: *AbilityPhasePayload
	EventAbilityPhaseChanged

	// EventAbilityActivated signals ready->active
	// Trigger: ability machine after dual-input debounce
	// Consumer: presentation | Payload: *AbilityPhasePayload
	EventAbilityActivated

	// EventAbilityDeactivated signals active ended, by expiry or input break
	// Trigger: ability machine active->cooldown
	// Consumer: presentation | Payload: *AbilityPhasePayload
	EventAbilityDeactivated

	// === Lifecycle Events ===

	// EventGameReset signals all components must clear state and pending work
	// Trigger: external reset request
	// Consumer: every component | Payload: nil
	EventGameReset
)

const eventTypeCount = int(EventGameReset) + 1

// AllTypes returns every dispatchable event type, for handlers that tap
// the whole stream
func AllTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount-1)
	for t := EventType(1); t < EventType(eventTypeCount); t++ {
		out = append(out, t)
	}
	return out
}

// GameEvent is a single queued event with its origin frame
type GameEvent struct {
	Type    EventType
	Frame   uint64
	Payload any
}
