package fsm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stateA StateID = iota + 1
	stateB
	stateC
)

const (
	evGo EventID = iota + 1
	evBack
)

type testCtx struct {
	entered []StateID
	exited  []StateID
	allow   bool
}

func buildMachine() *Machine[*testCtx] {
	m := NewMachine[*testCtx]()
	for _, id := range []StateID{stateA, stateB, stateC} {
		sid := id
		m.AddState(State[*testCtx]{
			ID:      sid,
			OnEnter: func(c *testCtx) { c.entered = append(c.entered, sid) },
			OnExit:  func(c *testCtx) { c.exited = append(c.exited, sid) },
		})
	}
	m.AddTransition(Transition[*testCtx]{From: stateA, To: stateB, Event: evGo})
	m.AddTransition(Transition[*testCtx]{From: stateB, To: stateA, Event: evBack})
	m.AddTransition(Transition[*testCtx]{
		From: stateB, To: stateC, Event: TickEvent,
		Guard: func(c *testCtx) bool { return c.allow },
	})
	return m
}

func TestMachineEventTransitions(t *testing.T) {
	ctx := &testCtx{}
	m := buildMachine()
	require.NoError(t, m.Init(ctx))
	assert.Equal(t, stateA, m.Current())
	assert.Equal(t, []StateID{stateA}, ctx.entered)

	assert.True(t, m.Fire(ctx, evGo))
	assert.Equal(t, stateB, m.Current())
	assert.Equal(t, []StateID{stateA}, ctx.exited)

	// Undeclared event from current state is a no-op
	assert.False(t, m.Fire(ctx, evGo))
	assert.Equal(t, stateB, m.Current())
}

func TestMachineTickGuard(t *testing.T) {
	ctx := &testCtx{}
	m := buildMachine()
	require.NoError(t, m.Init(ctx))
	m.Fire(ctx, evGo)

	m.Update(ctx, 10*time.Millisecond)
	assert.Equal(t, stateB, m.Current())
	assert.Equal(t, 10*time.Millisecond, m.TimeInState())

	ctx.allow = true
	m.Update(ctx, 10*time.Millisecond)
	assert.Equal(t, stateC, m.Current())
	assert.Equal(t, time.Duration(0), m.TimeInState())
}

func TestMachineReset(t *testing.T) {
	ctx := &testCtx{}
	m := buildMachine()
	require.NoError(t, m.Init(ctx))
	m.Fire(ctx, evGo)

	m.Reset(ctx)
	assert.Equal(t, stateA, m.Current())
	// Reset exits B and re-enters A
	assert.Equal(t, []StateID{stateA, stateB}, ctx.exited)
	assert.Equal(t, []StateID{stateA, stateB, stateA}, ctx.entered)
}

func TestMachineInitRequiresStates(t *testing.T) {
	m := NewMachine[*testCtx]()
	assert.Error(t, m.Init(&testCtx{}))
}
