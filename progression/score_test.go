package progression

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/status"
)

func newTestLadder() (*ScoreLadder, *event.Queue) {
	queue := event.NewQueue()
	return NewScoreLadder(zerolog.Nop(), queue, status.NewRegistry()), queue
}

func eventsOfType(queue *event.Queue, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range queue.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func TestScoreFloorClamp(t *testing.T) {
	l, queue := newTestLadder()

	// Deduction at zero is a no-op and emits nothing
	l.Apply(-parameter.MissPenalty, event.ReasonMiss, 1)
	assert.Zero(t, l.Score())
	assert.Empty(t, queue.Consume())

	// Deduction past zero clamps and reports the applied delta
	l.Apply(30, event.ReasonSlice, 2)
	l.Apply(-100, event.ReasonMiss, 3)
	assert.Zero(t, l.Score())

	changes := eventsOfType(queue, event.EventScoreChanged)
	require.Len(t, changes, 2)
	p := changes[1].Payload.(*event.ScoreChangedPayload)
	assert.Equal(t, -30, p.Delta)
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, event.ReasonMiss, p.Reason)
}

func TestLevelMonotoneThresholds(t *testing.T) {
	l, _ := newTestLadder()

	// Thresholds grow per level, so level(score) is non-decreasing in score
	prev := 0
	for score := 0; score <= 2000; score += 10 {
		lvl := l.levelFor(score)
		assert.GreaterOrEqual(t, lvl, prev)
		prev = lvl
	}

	assert.Equal(t, 0, l.levelFor(parameter.LevelBasePoints-1))
	assert.Equal(t, 1, l.levelFor(parameter.LevelBasePoints))
}

func TestLevelChangeEventsBothDirections(t *testing.T) {
	l, queue := newTestLadder()

	l.Apply(parameter.LevelBasePoints, event.ReasonSlice, 1)
	require.Equal(t, 1, l.Level())

	ups := eventsOfType(queue, event.EventLevelChanged)
	require.Len(t, ups, 1)
	up := ups[0].Payload.(*event.LevelChangedPayload)
	assert.Equal(t, 0, up.Previous)
	assert.Equal(t, 1, up.New)
	assert.True(t, up.Increased())

	// Dropping back below the threshold reports a downward transition
	l.Apply(-parameter.LevelBasePoints, event.ReasonMiss, 2)
	require.Equal(t, 0, l.Level())

	downs := eventsOfType(queue, event.EventLevelChanged)
	require.Len(t, downs, 1)
	down := downs[0].Payload.(*event.LevelChangedPayload)
	assert.False(t, down.Increased())
}

func TestNoEventWithoutChange(t *testing.T) {
	l, queue := newTestLadder()
	l.Apply(0, event.ReasonSlice, 1)
	assert.Empty(t, queue.Consume())
}

func TestLadderReset(t *testing.T) {
	l, _ := newTestLadder()
	l.Apply(1000, event.ReasonSlice, 1)
	require.Positive(t, l.Level())

	l.Reset()
	assert.Zero(t, l.Score())
	assert.Zero(t, l.Level())
}
