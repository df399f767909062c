// Package game assembles the per-frame pipeline: detection tracking,
// object advancement, collision testing, event dispatch into the
// progression machines, and the difficulty feedback loop. Everything runs
// single-threaded in frame order; no component is touched concurrently.
package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/collision"
	"github.com/lixenwraith/motion-fighter/config"
	"github.com/lixenwraith/motion-fighter/core"
	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/parameter"
	"github.com/lixenwraith/motion-fighter/pool"
	"github.com/lixenwraith/motion-fighter/progression"
	"github.com/lixenwraith/motion-fighter/registry"
	"github.com/lixenwraith/motion-fighter/status"
	"github.com/lixenwraith/motion-fighter/tracker"
)

// maxDispatchPasses bounds event cascades within one frame. Leftovers
// carry to the next frame
const maxDispatchPasses = 4

// maxFrameDelta clamps the per-frame step after a stall so objects do
// not teleport across the field
const maxFrameDelta = 250 * time.Millisecond

// Config aggregates per-component tuning. Zero-valued sections use each
// component's defaults
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	Tracker   tracker.Config
	Collision collision.Config
	Pool      pool.Config
}

// Game owns the simulation components and drives them in strict order
type Game struct {
	log   zerolog.Logger
	clock *core.Clock
	sched *core.Scheduler
	queue *event.Queue

	// outbound receives a copy of every dispatched event for the
	// presentation layer to drain at its own pace
	outbound *event.Queue
	router   *event.Router[*progression.Coordinator]

	Status      *status.Registry
	Registry    *registry.Registry
	Tracker     *tracker.Tracker
	Pool        *pool.Pool
	Collision   *collision.Engine
	Progression *progression.Coordinator
	Runtime     *config.Runtime

	project pool.Projection
}

// presentationTap copies every dispatched event onto the outbound queue
type presentationTap struct {
	out *event.Queue
}

func (p *presentationTap) EventTypes() []event.EventType { return event.AllTypes() }

func (p *presentationTap) HandleEvent(_ *progression.Coordinator, ev event.GameEvent) {
	p.out.Push(ev)
}

// New assembles a game from the given configuration
func New(cfg Config, log zerolog.Logger, loader registry.Loader) *Game {
	statusReg := status.NewRegistry()
	queue := event.NewQueue()
	sched := core.NewScheduler()
	reg := registry.New(loader, log)

	if cfg.ScreenWidth <= 0 {
		cfg.ScreenWidth = 1280
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = 720
	}

	p := pool.New(cfg.Pool, log, sched, queue, reg, statusReg)
	g := &Game{
		log:         log,
		clock:       core.NewClock(time.Time{}),
		sched:       sched,
		queue:       queue,
		outbound:    event.NewQueue(),
		Status:      statusReg,
		Registry:    reg,
		Tracker:     tracker.New(cfg.Tracker, log, statusReg),
		Pool:        p,
		Collision:   collision.New(cfg.Collision),
		Progression: progression.NewCoordinator(log, queue, sched, reg, p, statusReg),
		Runtime:     config.NewRuntime(parameter.SpawnBaseRate, parameter.SpawnBaseCap),
		project:     Perspective(cfg.ScreenWidth, cfg.ScreenHeight),
	}

	g.router = event.NewRouter[*progression.Coordinator](queue)
	g.router.Register(g.Progression)
	g.router.Register(&presentationTap{out: g.outbound})
	return g
}

// SetProjection replaces the world-to-screen mapping
func (g *Game) SetProjection(project pool.Projection) {
	g.project = project
}

// Frame runs one simulation step. Order is fixed: scheduler, tracking,
// object advancement, collision, hit routing, event dispatch, machine
// updates, difficulty feedback
func (g *Game) Frame(dets []tracker.Detection, now time.Time) {
	if g.clock.Now().IsZero() {
		g.clock.Reset(now)
	}
	g.clock.Tick(now)
	dt := g.clock.Delta()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	frame := g.clock.Frame()

	g.sched.Advance(now)

	g.Tracker.Update(dets, now, dt)

	g.Pool.ApplyRuntime(g.Runtime)
	g.Pool.Update(now, dt, frame)

	targets := g.Pool.ActiveTargets(g.project)
	hits := g.Collision.Test(g.Tracker.Trails(), targets, now)
	for _, hit := range hits {
		g.routeHit(hit, now)
	}

	for pass := 0; pass < maxDispatchPasses && g.queue.Len() > 0; pass++ {
		g.router.DispatchAll(g.Progression)
	}

	g.Progression.Update(now, dt, frame)
	g.Pool.SetDifficultyMultiplier(g.Progression.DifficultyMultiplier())
}

// routeHit turns one collision hit into the appropriate gameplay path:
// boss hits go to the encounter, everything else slices a pooled object
func (g *Game) routeHit(hit collision.Hit, now time.Time) {
	if hit.ObjectID == pool.BossObjectID {
		g.Progression.OnBossHit(hit.Impact, hit.At, g.clock.Frame())
		return
	}

	typ, ok := g.Pool.Slice(hit.ObjectID, now)
	if !ok {
		return
	}
	g.queue.Emit(event.EventSlice, g.clock.Frame(), &event.SlicePayload{
		ObjectID:  hit.ObjectID,
		TypeTag:   hit.TypeTag,
		Impact:    hit.Impact,
		Screen:    hit.Screen,
		TrailID:   hit.TrailID,
		BaseScore: g.Registry.Descriptor(typ).ScoreValue,
		At:        hit.At,
	})
}

// SetDualInput forwards the external two-hand condition to the ability
// machine
func (g *Game) SetDualInput(engaged bool, now time.Time) {
	g.Progression.Ability.SetDualInput(engaged, now)
}

// PresentationEvents drains the outbound copy of this frame's events
func (g *Game) PresentationEvents() []event.GameEvent {
	return g.outbound.Consume()
}

// FrameCount returns the number of frames simulated
func (g *Game) FrameCount() uint64 { return g.clock.Frame() }

// Reset returns every component to its initial state and cancels all
// deferred work
func (g *Game) Reset() {
	g.sched.Reset()
	g.Progression.Reset()
	g.queue.Drain()
	g.outbound.Drain()
	g.Tracker.Reset()
	g.Collision.Reset()
	g.Pool.Reset()
	g.clock.Reset(time.Time{})
	g.outbound.Push(event.GameEvent{Type: event.EventGameReset})
	g.log.Info().Msg("game reset")
}
