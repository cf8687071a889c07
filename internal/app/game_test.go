package app

import (
	"reflect"
	"testing"
	"time"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
)

const frame = time.Second / 60

type fakeHUD struct {
	stats      interfaces.Stats
	paused     bool
	countdown  []string
	hidden     int
	pauseShown int
}

func (h *fakeHUD) Update(stats interfaces.Stats) { h.stats = stats }
func (h *fakeHUD) ShowPause(visible bool) {
	h.paused = visible
	if visible {
		h.pauseShown++
	}
}
func (h *fakeHUD) ShowCountdown(stage string) { h.countdown = append(h.countdown, stage) }
func (h *fakeHUD) HideCountdown()             { h.hidden++ }

type fakeSurface struct {
	draws int
}

func (s *fakeSurface) Clear()                                                { s.draws = 0 }
func (s *fakeSurface) DrawImage(string, float64, float64, float64, float64)  { s.draws++ }
func (s *fakeSurface) SetVisualState(types.EntityID, interfaces.VisualState) {}

type player string

func (p player) PlayerName() (string, bool) { return string(p), p != "" }

func newTestGame(t *testing.T, tune func(*config.Tuning)) (*Game, *fakeHUD, *fakeSurface) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 1
	if tune != nil {
		tune(tuning)
	}
	var images []string
	for _, s := range defs.DefaultSeeds {
		images = append(images, s.Image)
	}
	hud := &fakeHUD{}
	surface := &fakeSurface{}
	g := NewGame(tuning, defs.DefaultSeeds, assets.NewCatalog(tuning.HazardFrames, images), surface, hud, nil, nil)
	return g, hud, surface
}

// run ticks the game for d of game time in 60 FPS frames.
func run(g *Game, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		g.Tick(frame)
	}
}

func startedGame(t *testing.T, tune func(*config.Tuning)) (*Game, *fakeHUD, *fakeSurface) {
	t.Helper()
	g, hud, surface := newTestGame(t, tune)
	if g.Begin(player("alice")) != OutcomeStarted {
		t.Fatal("Begin() did not start")
	}
	run(g, 4600*time.Millisecond)
	if !g.Started() {
		t.Fatal("session not running after the countdown")
	}
	return g, hud, surface
}

func TestBeginRedirectsWithoutName(t *testing.T) {
	g, hud, _ := newTestGame(t, nil)
	redirected := 0
	g.EventDispatcher.Subscribe(event.SessionRedirected, event.ListenerFunc(func(event.Event) { redirected++ }))

	if got := g.Begin(player("")); got != OutcomeRedirect {
		t.Fatalf("Begin() = %v, want Redirect", got)
	}
	if got := g.Begin(nil); got != OutcomeRedirect {
		t.Fatalf("Begin(nil) = %v, want Redirect", got)
	}
	if len(g.Scheduler.Names()) != 0 {
		t.Errorf("tasks scheduled on redirect: %v", g.Scheduler.Names())
	}
	run(g, 10*time.Second)
	if g.Started() || len(hud.countdown) != 0 || len(g.World.Hazards) != 0 {
		t.Error("a redirected session started")
	}
	if redirected != 2 {
		t.Errorf("SessionRedirected events = %d", redirected)
	}
}

func TestCountdownSequence(t *testing.T) {
	g, hud, _ := newTestGame(t, nil)
	starts := 0
	g.EventDispatcher.Subscribe(event.SessionStarted, event.ListenerFunc(func(event.Event) { starts++ }))
	g.Begin(player("alice"))

	run(g, 3900*time.Millisecond)
	if want := []string{"READY", "SET", "PLANT"}; !reflect.DeepEqual(hud.countdown, want) {
		t.Fatalf("countdown = %v, want %v", hud.countdown, want)
	}
	if g.Started() {
		t.Fatal("started before the last stage elapsed")
	}

	run(g, 700*time.Millisecond)
	if !g.Started() || hud.hidden != 1 {
		t.Fatalf("started=%v hidden=%d after the start delay", g.Started(), hud.hidden)
	}

	run(g, 20*time.Second)
	if starts != 1 || hud.hidden != 1 || len(hud.countdown) != 3 {
		t.Errorf("starts=%d hidden=%d countdown=%v", starts, hud.hidden, hud.countdown)
	}
	want := []string{taskClock, taskSpawnCollectible, taskSpawnHazard}
	if got := g.Scheduler.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("tasks = %v, want %v", got, want)
	}
}

func TestPauseIgnoredDuringCountdown(t *testing.T) {
	g, _, _ := newTestGame(t, nil)
	g.Begin(player("alice"))
	run(g, time.Second)
	if g.OnKey(config.PauseKey) || g.IsPaused() {
		t.Error("pause accepted before the session started")
	}
}

func TestClockAndSpawns(t *testing.T) {
	g, hud, _ := startedGame(t, nil)

	run(g, 8*time.Second+frame)
	if g.Clock.Seconds() < 8 {
		t.Errorf("clock = %s after 8s of play", g.Clock)
	}
	if len(g.World.Hazards) != 1 || len(g.World.Collectibles) != 1 {
		t.Errorf("hazards=%d collectibles=%d after 8s", len(g.World.Hazards), len(g.World.Collectibles))
	}
	if hud.stats.Player != "alice" || hud.stats.Elapsed != g.Clock.Elapsed() {
		t.Errorf("HUD stats = %+v", hud.stats)
	}
}

func TestPauseFreezesClockAndPositions(t *testing.T) {
	g, hud, _ := startedGame(t, nil)
	run(g, 8*time.Second+frame)

	h, _ := g.World.Get(g.World.Hazards[0])
	x := h.Position.X
	clock := g.Clock.String()
	hazards := len(g.World.Hazards)

	if !g.OnKey(config.PauseKey) {
		t.Fatal("pause rejected")
	}
	run(g, 15*time.Second)

	if g.Clock.String() != clock {
		t.Errorf("clock moved while paused: %s -> %s", clock, g.Clock)
	}
	if h.Position.X != x {
		t.Errorf("hazard moved while paused: %v -> %v", x, h.Position.X)
	}
	if len(g.World.Hazards) <= hazards {
		t.Error("spawners should keep firing while paused by default")
	}
	if !hud.paused {
		t.Error("pause indicator hidden")
	}

	g.Resume()
	g.Tick(frame)
	if hud.paused || h.Position.X == x {
		t.Error("resume did not restart the simulation")
	}
}

func TestPauseSpawnersFlag(t *testing.T) {
	g, _, _ := startedGame(t, func(tuning *config.Tuning) { tuning.PauseSpawners = true })
	g.OnKey(config.PauseKey)
	run(g, 30*time.Second)
	if len(g.World.Hazards) != 0 || len(g.World.Collectibles) != 0 {
		t.Errorf("spawned while paused: hazards=%d collectibles=%d", len(g.World.Hazards), len(g.World.Collectibles))
	}
}

func TestPickupAddsResources(t *testing.T) {
	g, hud, _ := startedGame(t, func(tuning *config.Tuning) { tuning.CollectibleFallSpeed = 0 })

	sun := system.NewCollectible(50, g.Tuning, g.Catalog)
	sun.Position.Y = 50
	sun.Size = component.Size{Width: 42, Height: 80}
	sun.Scale = 1
	g.World.AddCollectible(sun)
	second := system.NewCollectible(50, g.Tuning, g.Catalog)
	second.Position.Y = 50
	second.Size = sun.Size
	second.Scale = 1
	g.World.AddCollectible(second)

	g.OnPointerDown(70, 90)
	g.Tick(frame)

	if g.Resources() != 100 || hud.stats.Resources != 100 {
		t.Errorf("resources = %d (HUD %d), want 100", g.Resources(), hud.stats.Resources)
	}
	if len(g.World.Collectibles) != 1 {
		t.Errorf("collectibles = %d, want 1", len(g.World.Collectibles))
	}
	if g.Input.Pointer().HasCurrent {
		t.Error("click not consumed")
	}

	g.Tick(frame)
	if g.Resources() != 100 {
		t.Error("the same click collected twice")
	}
}

func TestClickWhilePausedDropped(t *testing.T) {
	g, _, _ := startedGame(t, func(tuning *config.Tuning) { tuning.CollectibleFallSpeed = 0 })
	sun := system.NewCollectible(50, g.Tuning, g.Catalog)
	sun.Position.Y = 50
	g.World.AddCollectible(sun)

	g.OnKey(config.PauseKey)
	g.OnPointerDown(60, 60)
	g.OnKey(config.PauseKey)
	g.Tick(frame)
	if g.Resources() != g.Tuning.InitialResources {
		t.Error("click made while paused collected a sun")
	}
}

func TestMowerNeutralizesHazard(t *testing.T) {
	g, _, _ := startedGame(t, func(tuning *config.Tuning) {
		tuning.HazardInterval = config.Duration{Duration: time.Hour}
	})

	unit := g.World.Defense(2)
	h := system.NewHazard(2, g.Tuning, g.Catalog)
	h.Position.X = unit.RenderWidth() + 9
	g.World.AddHazard(h)

	g.Tick(frame)
	if !unit.Defense.Triggered() {
		t.Fatal("mower not triggered")
	}
	if len(g.World.Hazards) != 1 {
		t.Fatal("zombie removed by a mower that is not moving yet")
	}

	run(g, 3*time.Second)
	if len(g.World.Hazards) != 0 {
		t.Errorf("zombie survived the mower: %v", g.World.Hazards)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
}

func TestBreach(t *testing.T) {
	g, hud, _ := startedGame(t, func(tuning *config.Tuning) {
		tuning.HazardInterval = config.Duration{Duration: time.Hour}
	})
	h := system.NewHazard(0, g.Tuning, g.Catalog)
	h.Position.X = -h.RenderWidth() + 0.25
	h.Lane = -1 // без косилки
	g.World.AddHazard(h)

	g.Tick(frame)
	if len(g.World.Hazards) != 0 || g.Breaches() != 1 || hud.stats.Breaches != 1 {
		t.Errorf("hazards=%d breaches=%d", len(g.World.Hazards), g.Breaches())
	}
}

func TestSingleSelectedCard(t *testing.T) {
	g, _, _ := startedGame(t, nil)
	cards := g.World.Resolve(g.World.Cards)

	for _, x := range []float64{200, 260, 310, 365} {
		g.OnPointerDown(x, 40)
		g.Tick(frame)
		selected := 0
		for _, c := range cards {
			if c.Card.Selected {
				selected++
			}
		}
		if selected != 1 {
			t.Fatalf("click at x=%v selected %d cards", x, selected)
		}
	}
}

func TestSelectionRunsWhilePaused(t *testing.T) {
	g, _, surface := startedGame(t, nil)
	g.OnPointerDown(200, 40)
	g.OnKey(config.PauseKey)
	drawn := surface.draws

	g.Tick(frame)
	card, _ := system.SelectedCard(g.World)
	if card == nil || card.ID != g.World.Cards[0] {
		t.Error("selection not recomputed while paused")
	}
	if surface.draws != drawn {
		t.Error("surface drawn while paused")
	}
}

func TestStopCancelsTasks(t *testing.T) {
	g, _, _ := startedGame(t, nil)
	g.Stop()
	run(g, 20*time.Second)
	if len(g.World.Hazards) != 0 || g.Clock.Seconds() > 1 {
		t.Error("tasks kept running after Stop")
	}
}
