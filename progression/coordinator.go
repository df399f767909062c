package progression

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/core"
	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/registry"
	"github.com/lixenwraith/motion-fighter/status"
	"github.com/lixenwraith/motion-fighter/vmath"
)

// Coordinator owns the four progression machines and translates gameplay
// events into score, combo, boss, and ability updates. It is registered
// as an event handler; the hosting loop drives Update and dispatch
type Coordinator struct {
	log zerolog.Logger
	reg *registry.Registry

	Ladder  *ScoreLadder
	Combo   *ComboAggregator
	Boss    *BossMachine
	Ability *AbilityMachine
}

// NewCoordinator wires the machines against a shared queue and scheduler
func NewCoordinator(log zerolog.Logger, queue *event.Queue, sched *core.Scheduler,
	reg *registry.Registry, arena BossArena, statusReg *status.Registry) *Coordinator {

	ladder := NewScoreLadder(log, queue, statusReg)
	return &Coordinator{
		log:     log,
		reg:     reg,
		Ladder:  ladder,
		Combo:   NewComboAggregator(queue, sched),
		Boss:    NewBossMachine(log, queue, arena, ladder),
		Ability: NewAbilityMachine(log, queue),
	}
}

// EventTypes declares the gameplay events the coordinator consumes
func (c *Coordinator) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSlice,
		event.EventMiss,
		event.EventComboCompleted,
		event.EventLevelChanged,
		event.EventBossEscaped,
	}
}

// HandleEvent routes one gameplay event to the owning machine
func (c *Coordinator) HandleEvent(_ *Coordinator, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSlice:
		c.onSlice(ev)
	case event.EventMiss:
		c.Ladder.Apply(-parameter.MissPenalty, event.ReasonMiss, ev.Frame)
	case event.EventComboCompleted:
		p := ev.Payload.(*event.ComboPayload)
		c.Ladder.Apply(p.Bonus, event.ReasonComboBonus, ev.Frame)
	case event.EventLevelChanged:
		c.Boss.OnLevelChanged(ev.Payload.(*event.LevelChangedPayload))
	case event.EventBossEscaped:
		c.Boss.OnEscaped()
	}
}

func (c *Coordinator) onSlice(ev event.GameEvent) {
	p := ev.Payload.(*event.SlicePayload)
	desc := c.reg.Descriptor(registry.TargetType(p.TypeTag))

	mult := c.Ability.RecordKill()
	reason := event.ReasonSlice
	if mult > 1 {
		reason = event.ReasonAbilityKill
	}
	c.Ladder.Apply(desc.ScoreValue*mult, reason, ev.Frame)
	c.Combo.OnSlice(desc.ScoreValue, p.At, ev.Frame)
	c.Ability.AddCharge(desc.ChargeValue, p.At)
}

// OnBossHit registers a collision hit on the live boss. Boss hits feed
// the ability charge directly, independent of target type
func (c *Coordinator) OnBossHit(impact float64, at time.Time, frame uint64) {
	c.Boss.OnHit(impact, frame)
	c.Ability.AddCharge(parameter.AbilityChargeBossHit, at)
}

// Update advances the boss and ability machines
func (c *Coordinator) Update(now time.Time, dt time.Duration, frame uint64) {
	c.Boss.Update(now, dt, frame)
	c.Ability.Update(now, dt, frame)
}

// DifficultyMultiplier derives the spawn-layer feedback from the level
func (c *Coordinator) DifficultyMultiplier() float64 {
	m := 1 + float64(c.Ladder.Level())*parameter.DifficultyPerLevel
	return vmath.Clamp(m, parameter.DifficultyMultMin, parameter.DifficultyMultMax)
}

// Reset resolves any pending combo, then returns every machine to its
// initial state
func (c *Coordinator) Reset() {
	c.Combo.Reset()
	c.Ladder.Reset()
	c.Boss.Reset()
	c.Ability.Reset()
}
