package progression

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/motion-fighter/core"
	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/pool"
	"github.com/lixenwraith/motion-fighter/registry"
	"github.com/lixenwraith/motion-fighter/status"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *core.Scheduler, *event.Queue, *event.Router[*Coordinator]) {
	t.Helper()
	queue := event.NewQueue()
	sched := core.NewScheduler()
	reg := registry.New(nil, zerolog.Nop())
	p := pool.New(pool.Config{Seed: 1}, zerolog.Nop(), sched, queue, reg, status.NewRegistry())
	c := NewCoordinator(zerolog.Nop(), queue, sched, reg, p, status.NewRegistry())

	router := event.NewRouter[*Coordinator](queue)
	router.Register(c)
	return c, sched, queue, router
}

func emitSlice(queue *event.Queue, typ registry.TargetType, at time.Time, frame uint64) {
	queue.Emit(event.EventSlice, frame, &event.SlicePayload{
		ObjectID: 1,
		TypeTag:  uint8(typ),
		Impact:   0.8,
		At:       at,
	})
}

func TestSliceScoresByType(t *testing.T) {
	c, _, queue, router := newTestCoordinator(t)
	reg := registry.New(nil, zerolog.Nop())
	now := time.Unix(0, 0)

	emitSlice(queue, registry.TypeShard, now, 1)
	router.DispatchAll(c)

	assert.Equal(t, reg.Descriptor(registry.TypeShard).ScoreValue, c.Ladder.Score())
	assert.Equal(t, 1, c.Combo.Count())
	assert.InDelta(t, reg.Descriptor(registry.TypeShard).ChargeValue, c.Ability.Charge(), 1e-9)
}

func TestComboChainAddsBonus(t *testing.T) {
	c, sched, queue, router := newTestCoordinator(t)
	now := time.Unix(0, 0)

	for i := 0; i < 3; i++ {
		emitSlice(queue, registry.TypeOrb, now.Add(time.Duration(i)*100*time.Millisecond), uint64(i))
	}
	router.DispatchAll(c)
	require.Equal(t, 30, c.Ladder.Score())

	// The quiet period elapses, the flush lands on the queue, and the
	// next dispatch applies the bonus
	sched.Advance(now.Add(time.Second))
	router.DispatchAll(c)
	assert.Equal(t, 30+60, c.Ladder.Score())
}

func TestMissPenaltyFloorsAtZero(t *testing.T) {
	c, _, queue, router := newTestCoordinator(t)

	queue.Emit(event.EventMiss, 1, &event.MissPayload{ObjectID: 1})
	router.DispatchAll(c)
	assert.Zero(t, c.Ladder.Score())

	emitSlice(queue, registry.TypeOrb, time.Unix(0, 0), 2)
	queue.Emit(event.EventMiss, 3, &event.MissPayload{ObjectID: 2})
	queue.Emit(event.EventMiss, 4, &event.MissPayload{ObjectID: 3})
	router.DispatchAll(c)
	assert.Zero(t, c.Ladder.Score())
}

func TestDifficultyFollowsLevel(t *testing.T) {
	c, _, _, router := newTestCoordinator(t)
	assert.Equal(t, 1.0, c.DifficultyMultiplier())

	c.Ladder.Apply(parameter.LevelBasePoints, event.ReasonSlice, 1)
	router.DispatchAll(c)
	assert.InDelta(t, 1+parameter.DifficultyPerLevel, c.DifficultyMultiplier(), 1e-9)

	// Clamped at the ceiling regardless of level
	c.Ladder.Apply(1_000_000, event.ReasonSlice, 2)
	router.DispatchAll(c)
	assert.Equal(t, parameter.DifficultyMultMax, c.DifficultyMultiplier())
}

func TestBossHitChargesAbility(t *testing.T) {
	c, _, _, _ := newTestCoordinator(t)

	c.OnBossHit(0.5, time.Unix(0, 0), 1)
	assert.InDelta(t, parameter.AbilityChargeBossHit, c.Ability.Charge(), 1e-9)
}

func TestLevelUpQueuesBossEncounter(t *testing.T) {
	c, _, _, router := newTestCoordinator(t)
	now := time.Unix(0, 0)

	// Enough score to cross the first boss threshold in one step
	total := 0
	for lvl := 0; lvl < parameter.BossLevelInterval; lvl++ {
		total += parameter.LevelBasePoints + parameter.LevelPointsGrowth*lvl
	}
	c.Ladder.Apply(total, event.ReasonSlice, 1)
	router.DispatchAll(c)

	c.Update(now.Add(16*time.Millisecond), 16*time.Millisecond, 2)
	assert.True(t, c.Boss.Encountering())
}

func TestCoordinatorReset(t *testing.T) {
	c, _, queue, router := newTestCoordinator(t)

	emitSlice(queue, registry.TypeOrb, time.Unix(0, 0), 1)
	router.DispatchAll(c)
	require.Positive(t, c.Ladder.Score())

	c.Reset()
	assert.Zero(t, c.Ladder.Score())
	assert.Zero(t, c.Combo.Count())
	assert.Zero(t, c.Ability.Charge())
	assert.False(t, c.Boss.Encountering())
}
