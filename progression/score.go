// Package progression owns the meta-game machines driven by gameplay
// events: score and level, combo grouping, boss encounters, and the
// special ability. The Coordinator wires them to the event router and
// feeds difficulty back into the spawn layer.
package progression

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/status"
)

// ScoreLadder accumulates score deltas and derives the level from a
// lazily extended monotonic threshold table. Score never goes below zero
type ScoreLadder struct {
	log   zerolog.Logger
	queue *event.Queue

	score int
	level int

	// thresholds[i] is the cumulative score required to reach level i+1
	thresholds []int

	statScore *atomic.Int64
	statLevel *atomic.Int64
}

// NewScoreLadder creates a ladder at score 0, level 0
func NewScoreLadder(log zerolog.Logger, queue *event.Queue, statusReg *status.Registry) *ScoreLadder {
	return &ScoreLadder{
		log:       log,
		queue:     queue,
		statScore: statusReg.Ints.Get("progression.score"),
		statLevel: statusReg.Ints.Get("progression.level"),
	}
}

// Apply adds a signed delta, clamped so score never drops below zero.
// Emits a score-changed event for the applied delta and a separate
// level-changed event when the derived level moves in either direction
func (l *ScoreLadder) Apply(delta int, reason event.ScoreReason, frame uint64) {
	next := l.score + delta
	if next < 0 {
		next = 0
	}
	applied := next - l.score
	if applied == 0 {
		return
	}
	l.score = next
	l.statScore.Store(int64(l.score))

	l.queue.Emit(event.EventScoreChanged, frame, &event.ScoreChangedPayload{
		Delta:  applied,
		Score:  l.score,
		Reason: reason,
	})

	newLevel := l.levelFor(l.score)
	if newLevel != l.level {
		prev := l.level
		l.level = newLevel
		l.statLevel.Store(int64(l.level))
		l.log.Debug().Int("prev", prev).Int("level", newLevel).Msg("level changed")
		l.queue.Emit(event.EventLevelChanged, frame, &event.LevelChangedPayload{
			Previous: prev,
			New:      newLevel,
		})
	}
}

// Score returns the current score
func (l *ScoreLadder) Score() int { return l.score }

// Level returns the current level
func (l *ScoreLadder) Level() int { return l.level }

// NextThreshold returns the cumulative score required for the next level
func (l *ScoreLadder) NextThreshold() int {
	l.extend(l.level + 1)
	return l.thresholds[l.level]
}

// Reset returns the ladder to score 0, level 0. The threshold table is kept
func (l *ScoreLadder) Reset() {
	l.score = 0
	l.level = 0
	l.statScore.Store(0)
	l.statLevel.Store(0)
}

// extend grows the threshold table to cover at least n levels
func (l *ScoreLadder) extend(n int) {
	for len(l.thresholds) < n {
		lvl := len(l.thresholds)
		step := parameter.LevelBasePoints + parameter.LevelPointsGrowth*lvl
		prev := 0
		if lvl > 0 {
			prev = l.thresholds[lvl-1]
		}
		l.thresholds = append(l.thresholds, prev+step)
	}
}

// levelFor derives the level for a score, extending the table as needed
func (l *ScoreLadder) levelFor(score int) int {
	level := 0
	for {
		l.extend(level + 1)
		if score < l.thresholds[level] {
			return level
		}
		level++
	}
}
