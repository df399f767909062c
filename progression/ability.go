package progression

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/fsm"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/vmath"
)

const (
	abilityCharging fsm.StateID = iota + 1
	abilityReady
	abilityActive
	abilityCooldown
)

const abilityEvDeactivate fsm.EventID = 1

// AbilityMachine runs the special-ability cycle. Charge accumulates from
// slices and boss hits while charging, decays after an inactivity period,
// and reaching full charge arms the ability. Activation requires the
// dual-input condition held through a debounce window; the active phase
// doubles slice scores until it expires or is cut short, then a cooldown
// runs before charging resumes
type AbilityMachine struct {
	log     zerolog.Logger
	queue   *event.Queue
	machine *fsm.Machine[*AbilityMachine]

	charge    float64
	lastGain  time.Time
	lastPhase event.AbilityPhase

	dualInput bool
	dualSince time.Time

	activeKills int

	now   time.Time
	frame uint64
}

// NewAbilityMachine builds and initializes the machine in the charging phase
func NewAbilityMachine(log zerolog.Logger, queue *event.Queue) *AbilityMachine {
	a := &AbilityMachine{log: log, queue: queue}

	m := fsm.NewMachine[*AbilityMachine]()
	m.AddState(fsm.State[*AbilityMachine]{
		ID:      abilityCharging,
		Name:    "charging",
		OnEnter: func(a *AbilityMachine) { a.emitPhase(event.AbilityCharging) },
	})
	m.AddState(fsm.State[*AbilityMachine]{
		ID:      abilityReady,
		Name:    "ready",
		OnEnter: func(a *AbilityMachine) { a.emitPhase(event.AbilityReady) },
	})
	m.AddState(fsm.State[*AbilityMachine]{
		ID:      abilityActive,
		Name:    "active",
		OnEnter: func(a *AbilityMachine) { a.enterActive() },
		OnExit:  func(a *AbilityMachine) { a.exitActive() },
	})
	m.AddState(fsm.State[*AbilityMachine]{
		ID:      abilityCooldown,
		Name:    "cooldown",
		OnEnter: func(a *AbilityMachine) { a.emitPhase(event.AbilityCooldown) },
	})

	m.AddTransition(fsm.Transition[*AbilityMachine]{
		From: abilityCharging, To: abilityReady, Event: fsm.TickEvent,
		Guard: func(a *AbilityMachine) bool { return a.charge >= 1 },
	})
	m.AddTransition(fsm.Transition[*AbilityMachine]{
		From: abilityReady, To: abilityActive, Event: fsm.TickEvent,
		Guard: func(a *AbilityMachine) bool {
			return a.dualInput && a.now.Sub(a.dualSince) >= parameter.AbilityActivationDebounce
		},
	})
	m.AddTransition(fsm.Transition[*AbilityMachine]{
		From: abilityActive, To: abilityCooldown, Event: fsm.TickEvent,
		Guard: func(a *AbilityMachine) bool { return a.machine.TimeInState() >= parameter.AbilityActiveDuration },
	})
	m.AddTransition(fsm.Transition[*AbilityMachine]{From: abilityActive, To: abilityCooldown, Event: abilityEvDeactivate})
	m.AddTransition(fsm.Transition[*AbilityMachine]{
		From: abilityCooldown, To: abilityCharging, Event: fsm.TickEvent,
		Guard: func(a *AbilityMachine) bool { return a.machine.TimeInState() >= parameter.AbilityCooldownDuration },
	})

	a.machine = m
	_ = m.Init(a)
	return a
}

// Update advances the machine clock, applies inactivity decay, and
// evaluates tick transitions
func (a *AbilityMachine) Update(now time.Time, dt time.Duration, frame uint64) {
	a.now = now
	a.frame = frame

	if a.machine.Current() == abilityCharging && a.charge > 0 &&
		now.Sub(a.lastGain) > parameter.AbilityDecayDelay {
		a.charge = vmath.Clamp(a.charge-parameter.AbilityDecayPerSec*dt.Seconds(), 0, 1)
	}

	a.machine.Update(a, dt)
}

// AddCharge accumulates normalized charge. Ignored outside the charging
// phase; a full bar arms the ability on the next update
func (a *AbilityMachine) AddCharge(amount float64, now time.Time) {
	if a.machine.Current() != abilityCharging {
		return
	}
	a.charge = vmath.Clamp(a.charge+amount, 0, 1)
	a.lastGain = now
}

// SetDualInput reports the external dual-input condition. Activation
// fires only after the condition has held through the debounce window;
// breaking the condition during the active phase cuts it short
func (a *AbilityMachine) SetDualInput(engaged bool, now time.Time) {
	if engaged && !a.dualInput {
		a.dualSince = now
	}
	released := a.dualInput && !engaged
	a.dualInput = engaged
	if released && a.machine.Current() == abilityActive {
		a.machine.Fire(a, abilityEvDeactivate)
	}
}

// Deactivate cuts the active phase short, entering cooldown through the
// same path as natural expiry
func (a *AbilityMachine) Deactivate() {
	a.machine.Fire(a, abilityEvDeactivate)
}

// RecordKill counts a slice landed during the active phase and returns
// the score multiplier to apply
func (a *AbilityMachine) RecordKill() int {
	if a.machine.Current() != abilityActive {
		return 1
	}
	a.activeKills++
	return parameter.AbilityScoreMult
}

// Active reports whether the ability is live
func (a *AbilityMachine) Active() bool {
	return a.machine.Current() == abilityActive
}

// Charge returns the normalized charge level
func (a *AbilityMachine) Charge() float64 { return a.charge }

// Phase returns the current phase for presentation
func (a *AbilityMachine) Phase() event.AbilityPhase {
	switch a.machine.Current() {
	case abilityReady:
		return event.AbilityReady
	case abilityActive:
		return event.AbilityActive
	case abilityCooldown:
		return event.AbilityCooldown
	}
	return event.AbilityCharging
}

// ActiveKills returns the kill count of the current or last activation
func (a *AbilityMachine) ActiveKills() int { return a.activeKills }

// Reset discharges and returns to the charging phase
func (a *AbilityMachine) Reset() {
	a.charge = 0
	a.dualInput = false
	a.activeKills = 0
	a.lastGain = time.Time{}
	a.machine.Reset(a)
}

func (a *AbilityMachine) enterActive() {
	a.activeKills = 0
	a.emitPhase(event.AbilityActive)
	a.queue.Emit(event.EventAbilityActivated, a.frame, nil)
}

func (a *AbilityMachine) exitActive() {
	a.charge = 0
	a.queue.Emit(event.EventAbilityDeactivated, a.frame, nil)
}

func (a *AbilityMachine) emitPhase(phase event.AbilityPhase) {
	prev := a.lastPhase
	a.lastPhase = phase
	a.queue.Emit(event.EventAbilityPhaseChanged, a.frame, &event.AbilityPhasePayload{
		Previous: prev,
		New:      phase,
		Charge:   a.charge,
	})
}
