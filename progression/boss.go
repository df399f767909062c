package progression

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/fsm"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/pool"
)

// BossArena is the spawn-layer surface the boss machine drives.
// Satisfied by pool.Pool
type BossArena interface {
	FreezeSpawning(frozen bool)
	EnterBossMode(tier int, now time.Time) *pool.BossEncounter
	ExitBossMode(now time.Time)
	Boss() *pool.BossEncounter
}

const (
	bossIdle fsm.StateID = iota + 1
	bossWarning
	bossActive
	bossResolving
)

const (
	bossEvDefeated fsm.EventID = iota + 1
	bossEvEscaped
)

// BossMachine sequences boss encounters: a warning phase with spawning
// frozen, the live encounter, and a short resolution hold after defeat.
// Level thresholds crossed while an encounter runs are queued and play
// out sequentially
type BossMachine struct {
	log     zerolog.Logger
	queue   *event.Queue
	arena   BossArena
	ladder  *ScoreLadder
	machine *fsm.Machine[*BossMachine]

	pendingTiers  []int
	nextThreshold int
	tier          int

	now   time.Time
	frame uint64
}

// NewBossMachine builds and initializes the machine in the idle state
func NewBossMachine(log zerolog.Logger, queue *event.Queue, arena BossArena, ladder *ScoreLadder) *BossMachine {
	b := &BossMachine{
		log:           log,
		queue:         queue,
		arena:         arena,
		ladder:        ladder,
		nextThreshold: parameter.BossLevelInterval,
	}

	m := fsm.NewMachine[*BossMachine]()
	m.AddState(fsm.State[*BossMachine]{ID: bossIdle, Name: "idle"})
	m.AddState(fsm.State[*BossMachine]{
		ID:      bossWarning,
		Name:    "warning",
		OnEnter: func(b *BossMachine) { b.enterWarning() },
	})
	m.AddState(fsm.State[*BossMachine]{
		ID:      bossActive,
		Name:    "active",
		OnEnter: func(b *BossMachine) { b.enterActive() },
	})
	m.AddState(fsm.State[*BossMachine]{
		ID:     bossResolving,
		Name:   "resolving",
		OnExit: func(b *BossMachine) { b.arena.ExitBossMode(b.now) },
	})

	m.AddTransition(fsm.Transition[*BossMachine]{
		From: bossIdle, To: bossWarning, Event: fsm.TickEvent,
		Guard: func(b *BossMachine) bool { return len(b.pendingTiers) > 0 },
	})
	m.AddTransition(fsm.Transition[*BossMachine]{
		From: bossWarning, To: bossActive, Event: fsm.TickEvent,
		Guard: func(b *BossMachine) bool { return b.machine.TimeInState() >= parameter.BossWarningDuration },
	})
	m.AddTransition(fsm.Transition[*BossMachine]{From: bossActive, To: bossResolving, Event: bossEvDefeated})
	m.AddTransition(fsm.Transition[*BossMachine]{From: bossActive, To: bossIdle, Event: bossEvEscaped})
	m.AddTransition(fsm.Transition[*BossMachine]{
		From: bossResolving, To: bossIdle, Event: fsm.TickEvent,
		Guard: func(b *BossMachine) bool { return b.machine.TimeInState() >= parameter.BossResolveDelay },
	})

	b.machine = m
	_ = m.Init(b)
	return b
}

// Update advances the machine clock and tick transitions
func (b *BossMachine) Update(now time.Time, dt time.Duration, frame uint64) {
	b.now = now
	b.frame = frame
	b.machine.Update(b, dt)
}

// Encountering reports whether an encounter is pending or live
func (b *BossMachine) Encountering() bool {
	return b.machine.Current() != bossIdle
}

// OnLevelChanged queues one encounter per boss-interval threshold the
// new level crossed. Downward level movement never un-queues an encounter
func (b *BossMachine) OnLevelChanged(p *event.LevelChangedPayload) {
	if !p.Increased() {
		return
	}
	for p.New >= b.nextThreshold {
		b.pendingTiers = append(b.pendingTiers, b.nextThreshold/parameter.BossLevelInterval-1)
		b.nextThreshold += parameter.BossLevelInterval
	}
}

// OnHit registers one collision hit on the live boss. Reward accrues
// along the encounter's curve but only lands on the score at defeat
func (b *BossMachine) OnHit(impact float64, frame uint64) {
	if b.machine.Current() != bossActive {
		return
	}
	enc := b.arena.Boss()
	if enc == nil {
		return
	}

	_, defeated := enc.RegisterHit()
	b.queue.Emit(event.EventBossHit, frame, &event.BossHitPayload{
		EncounterID: enc.ID,
		Hits:        enc.Hits,
		Required:    enc.Required,
		Accrued:     enc.Accrued(),
		Impact:      impact,
	})

	if defeated {
		b.ladder.Apply(enc.Accrued(), event.ReasonBossReward, frame)
		b.queue.Emit(event.EventBossDefeated, frame, b.payloadFor(enc))
		b.machine.Fire(b, bossEvDefeated)
	}
}

// OnEscaped handles the spawn layer reporting the boss crossing the
// despawn boundary unbeaten. No penalty, normal spawning resumes
func (b *BossMachine) OnEscaped() {
	if b.machine.Fire(b, bossEvEscaped) {
		b.arena.ExitBossMode(b.now)
	}
}

// Reset drops queued encounters and returns to idle. The spawn layer
// resets itself, so a mid-encounter exit action is harmless
func (b *BossMachine) Reset() {
	b.pendingTiers = nil
	b.nextThreshold = parameter.BossLevelInterval
	b.tier = 0
	b.machine.Reset(b)
}

func (b *BossMachine) enterWarning() {
	b.arena.FreezeSpawning(true)
	tier := b.pendingTiers[0]
	b.log.Info().Int("tier", tier).Msg("boss warning")
	b.queue.Emit(event.EventBossWarning, b.frame, &event.BossPayload{Tier: tier})
}

func (b *BossMachine) enterActive() {
	b.tier = b.pendingTiers[0]
	b.pendingTiers = b.pendingTiers[1:]
	enc := b.arena.EnterBossMode(b.tier, b.now)
	b.queue.Emit(event.EventBossSpawned, b.frame, b.payloadFor(enc))
}

func (b *BossMachine) payloadFor(enc *pool.BossEncounter) *event.BossPayload {
	return &event.BossPayload{
		EncounterID: enc.ID,
		Tier:        enc.Tier,
		Required:    enc.Required,
		Hits:        enc.Hits,
	}
}
