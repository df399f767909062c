// Command motion-fighter is the terminal frontend for the slicing core.
// The mouse (or trackpad) is the motion signal: moving the pointer cuts
// trails across the field, slicing the targets drifting toward the
// viewer. Holding space is the dual-input condition that activates the
// special ability once charged.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/motion-fighter/config"
	"github.com/lixenwraith/motion-fighter/event"
	"github.com/lixenwraith/motion-fighter/game"
	"github.com/lixenwraith/motion-fighter/logging"
	"github.com/lixenwraith/motion-fighter/pool"
	"github.com/lixenwraith/motion-fighter/registry"
	"github.com/lixenwraith/motion-fighter/tracker"
	"github.com/lixenwraith/motion-fighter/vmath"
)

const (
	// Terminal cells map to the virtual pixel space the core runs in
	cellWidthPx  = 8.0
	cellHeightPx = 16.0

	trailFadeMs = 350
)

type trailGhost struct {
	x, y int
	at   time.Time
}

type app struct {
	log    zerolog.Logger
	screen tcell.Screen
	game   *game.Game

	width, height int

	mouseX, mouseY int
	mouseMoved     bool

	ghosts []trailGhost

	spaceHeld bool
	spaceLast time.Time

	audioInit bool
	sampleHz  beep.SampleRate
}

func newApp(log zerolog.Logger, cfg *config.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &app{
		log:    log,
		screen: screen,
	}
	a.width, a.height = screen.Size()

	a.game = game.New(game.Config{
		ScreenWidth:  float64(a.width) * cellWidthPx,
		ScreenHeight: float64(a.height) * cellHeightPx,
		Tracker: tracker.Config{
			MaxTrails:   cfg.Tracker.MaxTrails,
			MaxPoints:   cfg.Tracker.MaxPoints,
			MatchRadius: cfg.Tracker.MatchRadiusPx,
		},
		Pool: pool.Config{
			Slots:    cfg.Pool.Slots,
			BaseRate: cfg.Pool.SpawnRate,
			BaseCap:  cfg.Pool.SpawnCap,
			Seed:     cfg.Pool.Seed,
		},
	}, log, nil)

	if err := a.initAudio(); err != nil {
		// The game runs fine silent
		log.Warn().Err(err).Msg("audio init failed")
	}
	return a, nil
}

func (a *app) initAudio() error {
	a.sampleHz = beep.SampleRate(44100)
	err := speaker.Init(a.sampleHz, a.sampleHz.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *app) playTone(freq float64, d time.Duration) {
	if !a.audioInit {
		return
	}
	sine, err := generators.SineTone(a.sampleHz, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(a.sampleHz.N(d), sine))
}

// cellToPx maps a terminal cell to the virtual pixel space
func cellToPx(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: (float64(x) + 0.5) * cellWidthPx, Y: (float64(y) + 0.5) * cellHeightPx}
}

// pxToCell maps a virtual pixel position back to a terminal cell
func pxToCell(p vmath.Vec2) (int, int) {
	return int(p.X / cellWidthPx), int(p.Y / cellHeightPx)
}

func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			a.game.Reset()
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			// Key repeat keeps arriving while held; release is detected
			// by the repeat stream going quiet
			a.spaceHeld = true
			a.spaceLast = now
			a.game.SetDualInput(true, now)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		if x != a.mouseX || y != a.mouseY {
			a.mouseX, a.mouseY = x, y
			a.mouseMoved = true
		}

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.game.SetProjection(game.Perspective(
			float64(a.width)*cellWidthPx, float64(a.height)*cellHeightPx))
	}
	return true
}

func (a *app) frame(now time.Time) {
	// Terminals deliver no key-up; treat a quiet repeat stream as release
	if a.spaceHeld && now.Sub(a.spaceLast) > 600*time.Millisecond {
		a.spaceHeld = false
		a.game.SetDualInput(false, now)
	}

	var dets []tracker.Detection
	if a.mouseMoved {
		dets = append(dets, tracker.Detection{Pos: cellToPx(a.mouseX, a.mouseY)})
		a.mouseMoved = false
	}
	a.game.Frame(dets, now)

	for _, ev := range a.game.PresentationEvents() {
		a.react(ev, now)
	}
	a.draw(now)
}

func (a *app) react(ev event.GameEvent, now time.Time) {
	switch ev.Type {
	case event.EventSlice:
		p := ev.Payload.(*event.SlicePayload)
		x, y := pxToCell(p.Screen)
		a.ghosts = append(a.ghosts, trailGhost{x: x, y: y, at: now})
		a.playTone(880, 50*time.Millisecond)
	case event.EventBossHit:
		a.playTone(440, 60*time.Millisecond)
	case event.EventBossWarning:
		a.playTone(220, 300*time.Millisecond)
	case event.EventBossDefeated:
		a.playTone(1320, 200*time.Millisecond)
	case event.EventComboCompleted:
		a.playTone(1100, 80*time.Millisecond)
	case event.EventAbilityActivated:
		a.playTone(660, 150*time.Millisecond)
	}
}

func typeStyle(t registry.TargetType) tcell.Style {
	switch t {
	case registry.TypeCube:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case registry.TypeShard:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case registry.TypeBoss:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGreen)
}

func (a *app) draw(now time.Time) {
	a.screen.Clear()
	project := game.Perspective(float64(a.width)*cellWidthPx, float64(a.height)*cellHeightPx)

	for _, obj := range a.game.Pool.Snapshot() {
		if obj.State != pool.StateActive || obj.Hidden {
			continue
		}
		screen, scale, ok := project(obj.Pos)
		if !ok {
			continue
		}
		x, y := pxToCell(screen)
		if x < 0 || x >= a.width || y < 0 || y >= a.height {
			continue
		}
		geom := a.game.Registry.Geometry(obj.Type)
		style := typeStyle(obj.Type)
		if obj.FadeFactor < 1 {
			style = style.Dim(true)
		}
		a.screen.SetContent(x, y, geom.Glyph, nil, style)

		// A crude size cue: spread extra glyphs for close objects
		if r := int(scale * obj.Scale); r > 2 {
			for dx := -1; dx <= 1; dx += 2 {
				if x+dx >= 0 && x+dx < a.width {
					a.screen.SetContent(x+dx, y, geom.Glyph, nil, style.Dim(true))
				}
			}
		}
	}

	if b := a.game.Pool.Boss(); b != nil && !b.Defeated && !b.Escaped {
		if screen, _, ok := project(b.Pos); ok {
			x, y := pxToCell(screen)
			glyph := a.game.Registry.Geometry(registry.TypeBoss).Glyph
			style := typeStyle(registry.TypeBoss)
			for dx := -2; dx <= 2; dx++ {
				if x+dx >= 0 && x+dx < a.width && y >= 0 && y < a.height {
					a.screen.SetContent(x+dx, y, glyph, nil, style)
				}
			}
		}
	}

	a.drawTrails(now)
	a.drawHUD()
	a.screen.Show()
}

func (a *app) drawTrails(now time.Time) {
	kept := a.ghosts[:0]
	for _, g := range a.ghosts {
		age := now.Sub(g.at)
		if age > trailFadeMs*time.Millisecond {
			continue
		}
		kept = append(kept, g)
		v := int32(255 * (1 - float64(age.Milliseconds())/trailFadeMs))
		color := tcell.NewRGBColor(v, v, v)
		if g.x >= 0 && g.x < a.width && g.y >= 0 && g.y < a.height {
			a.screen.SetContent(g.x, g.y, '*', nil, tcell.StyleDefault.Foreground(color))
		}
	}
	a.ghosts = kept

	for _, trail := range a.game.Tracker.Trails() {
		for _, pt := range trail.Points() {
			x, y := pxToCell(pt.Screen)
			if x >= 0 && x < a.width && y >= 0 && y < a.height {
				a.screen.SetContent(x, y, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
			}
		}
	}
}

func (a *app) drawHUD() {
	prog := a.game.Progression
	charge := int(math.Round(prog.Ability.Charge() * 10))

	line := fmt.Sprintf(" score %d  level %d  ability [%s%s] %s ",
		prog.Ladder.Score(), prog.Ladder.Level(),
		repeat('#', charge), repeat('-', 10-charge), prog.Ability.Phase())

	if b := a.game.Pool.Boss(); b != nil {
		line += fmt.Sprintf(" BOSS %d/%d ", b.Hits, b.Required)
	} else if prog.Boss.Encountering() {
		line += " !!! "
	}

	style := tcell.StyleDefault.Reverse(true)
	for i, r := range line {
		if i >= a.width {
			break
		}
		a.screen.SetContent(i, 0, r, nil, style)
	}

	a.drawStatusLine()
}

// drawStatusLine samples the metric atomics the components publish and
// renders them on the bottom row
func (a *app) drawStatusLine() {
	st := a.game.Status
	line := fmt.Sprintf(" trails %d  active %d  sliced %d  missed %d  rate %.1f/s ",
		st.Ints.Get("tracker.active").Load(),
		st.Ints.Get("pool.active").Load(),
		st.Ints.Get("pool.sliced").Load(),
		st.Ints.Get("pool.missed").Load(),
		st.Floats.Get("pool.rate").Get())

	style := tcell.StyleDefault.Dim(true)
	for i, r := range line {
		if i >= a.width {
			break
		}
		a.screen.SetContent(i, a.height-1, r, nil, style)
	}
}

func repeat(r rune, n int) string {
	if n < 0 {
		n = 0
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

func (a *app) run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev, time.Now()) {
				close(quit)
				return
			}
		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var logW io.Writer = io.Discard
	if f, err := os.OpenFile("motion-fighter.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		defer f.Close()
		logW = f
	}
	log := logging.NewWriter(logW, cfg.Log.Level)

	a, err := newApp(log, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	log.Info().Int("width", a.width).Int("height", a.height).Msg("starting")
	a.run()
}
