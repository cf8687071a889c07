// internal/app/game.go
package app

import (
	"time"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/input"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/logging"
	"go-lane-defense/internal/scheduler"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// Имена задач планировщика.
const (
	taskCountdown        = "countdown"
	taskStart            = "start"
	taskClock            = "clock"
	taskSpawnHazard      = "spawn-hazard"
	taskSpawnCollectible = "spawn-collectible"
)

// Outcome is the result of trying to begin a session.
type Outcome int

const (
	OutcomePending  Outcome = iota // Begin ещё не вызывался
	OutcomeStarted                 // идёт отсчёт или игра
	OutcomeRedirect                // нет имени игрока, нужно вернуться на экран входа
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomeStarted:
		return "Started"
	case OutcomeRedirect:
		return "Redirect"
	default:
		return "Unknown"
	}
}

// Game holds one session: the world, its timers and the run state.
type Game struct {
	World             *entity.World
	Tuning            *config.Tuning
	Catalog           *assets.Catalog
	Scheduler         *scheduler.Scheduler
	Input             *input.Controller
	SpawnSystem       *system.SpawnSystem
	InteractionSystem *system.InteractionSystem
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService
	Clock             *Clock
	Countdown         *Countdown

	surface interfaces.Surface
	hud     interfaces.HUD
	logger  *logging.Logger

	outcome   Outcome
	selected  types.EntityID
	player    string
	resources int
	score     int
	breaches  int
	ticks     int
}

// NewGame builds the world of a new session. Nothing is scheduled until Begin.
func NewGame(tuning *config.Tuning, seeds []defs.SeedDefinition, catalog *assets.Catalog,
	surface interfaces.Surface, hud interfaces.HUD, dispatcher *event.Dispatcher, logger *logging.Logger) *Game {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if hud == nil {
		hud = nopHUD{}
	}

	world := entity.NewWorld()
	rng := utils.NewPRNGService(tuning.Seed)
	system.Populate(world, tuning, catalog, seeds)

	g := &Game{
		World:             world,
		Tuning:            tuning,
		Catalog:           catalog,
		Scheduler:         scheduler.New(),
		Input:             input.NewController(config.PauseKey),
		SpawnSystem:       system.NewSpawnSystem(world, tuning, catalog, rng, dispatcher),
		InteractionSystem: system.NewInteractionSystem(world, tuning, dispatcher),
		EventDispatcher:   dispatcher,
		Rng:               rng,
		Clock:             &Clock{},
		surface:           surface,
		hud:               hud,
		logger:            logger,
		resources:         tuning.InitialResources,
	}
	g.Countdown = NewCountdown(g.Scheduler, hud, dispatcher,
		tuning.CountdownInterval.Duration, tuning.StartDelay.Duration, DefaultCountdown, g.start)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.HazardNeutralized, listener)
	dispatcher.Subscribe(event.HazardBreached, listener)

	logger.Debug("world created",
		"lanes", len(tuning.Lanes),
		"cards", len(world.Cards),
		"seed", rng.Seed())
	return g
}

// GameEventListener keeps the session counters in step with the detector.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.HazardNeutralized:
		l.game.score++
	case event.HazardBreached:
		l.game.breaches++
	}
}

// Begin starts the session for the player named by identity. Without a name
// nothing is scheduled and the caller must send the player to the entry screen.
func (g *Game) Begin(identity interfaces.Identity) Outcome {
	if g.outcome == OutcomeStarted {
		return g.outcome
	}

	name, ok := "", false
	if identity != nil {
		name, ok = identity.PlayerName()
	}
	if !ok || name == "" {
		g.outcome = OutcomeRedirect
		g.logger.Warn("no player name, redirecting to entry screen")
		g.dispatch(event.SessionRedirected, "missing player name")
		return g.outcome
	}

	g.outcome = OutcomeStarted
	g.player = name
	g.logger = g.logger.ForSession(logging.GenerateSessionID(), name)
	g.Countdown.Schedule()
	g.hud.Update(g.Stats())
	g.logger.Info("countdown started")
	return g.outcome
}

// start runs once, after the last countdown stage and the start delay.
func (g *Game) start() {
	if !g.Input.Start() {
		return
	}
	g.Scheduler.Every(taskClock, g.Tuning.ClockInterval.Duration, g.Clock.Tick, scheduler.PauseAware(true))
	g.Scheduler.Every(taskSpawnHazard, g.Tuning.HazardInterval.Duration, func() {
		g.SpawnSystem.SpawnHazard()
	}, scheduler.PauseAware(g.Tuning.PauseSpawners))
	g.Scheduler.Every(taskSpawnCollectible, g.Tuning.CollectibleInterval.Duration, func() {
		g.SpawnSystem.SpawnCollectible()
	}, scheduler.PauseAware(g.Tuning.PauseSpawners))

	g.logger.Info("session started", "tasks", g.Scheduler.Names())
	g.dispatch(event.SessionStarted, g.player)
}

// Tick advances the session by one frame of dt game time.
func (g *Game) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	g.ticks++

	g.Scheduler.Advance(dt)

	// Выбор карточки пересчитывается и на паузе.
	if id := system.RecomputeSelection(g.World, g.Input.Pointer()); id != g.selected {
		g.selected = id
		if card, ok := system.SelectedCard(g.World); ok {
			g.logger.Debug("card selected", "seed", card.Card.SeedID, "price", card.Card.Price)
		}
	}

	if g.Input.Paused() {
		g.hud.ShowPause(true)
		return
	}
	g.hud.ShowPause(false)

	if g.surface != nil {
		g.surface.Clear()
	}
	system.UpdatePurchasable(g.World, g.resources)

	env := system.Env{Tuning: g.Tuning, Catalog: g.Catalog, DT: dt}
	g.updateOne(g.World.Background, env)
	g.updateOne(g.World.Tool, env)
	g.updateAll(g.World.Defenses, env)
	g.updateAll(g.World.Cards, env)
	g.updateAll(g.World.Hazards, env)
	g.updateAll(g.World.Collectibles, env)

	g.InteractionSystem.PruneCollectibles()
	g.collect()
	g.InteractionSystem.TriggerDefenses()
	g.InteractionSystem.ResolveCollisions()
	g.InteractionSystem.PruneHazards()
	g.World.Compact()

	g.hud.Update(g.Stats())
}

func (g *Game) collect() {
	id, ok := g.InteractionSystem.CollectPickup(g.Input.Pointer())
	if !ok {
		return
	}
	g.Input.ConsumeClick()
	g.resources += g.Tuning.PickupValue
	g.dispatch(event.CollectibleCollected, event.ResourcePayload{
		ID:        id,
		Gained:    g.Tuning.PickupValue,
		Resources: g.resources,
	})
}

func (g *Game) updateOne(id types.EntityID, env system.Env) {
	if e, ok := g.World.Get(id); ok {
		system.UpdateEntity(e, g.surface, env)
	}
}

func (g *Game) updateAll(ids []types.EntityID, env system.Env) {
	for _, e := range g.World.Resolve(ids) {
		system.UpdateEntity(e, g.surface, env)
	}
}

// OnPointerDown forwards a click in playfield coordinates.
func (g *Game) OnPointerDown(x, y float64) bool {
	return g.Input.OnPointerDown(x, y)
}

// OnKey forwards a key press; the pause key toggles pause once the session runs.
func (g *Game) OnKey(key string) bool {
	if !g.Input.OnKey(key) {
		return false
	}
	g.syncPause()
	return true
}

// Resume leaves pause through the on-screen affordance.
func (g *Game) Resume() bool {
	if !g.Input.Resume() {
		return false
	}
	g.syncPause()
	return true
}

func (g *Game) syncPause() {
	paused := g.Input.Paused()
	g.Scheduler.SetPaused(paused)
	if paused {
		g.logger.Info("game paused", "clock", g.Clock.String())
		g.dispatch(event.GamePaused, nil)
	} else {
		g.logger.Info("game resumed", "clock", g.Clock.String())
		g.dispatch(event.GameResumed, nil)
	}
}

// Stop tears down every timer of the session.
func (g *Game) Stop() {
	g.Scheduler.Stop()
	g.logger.Info("session stopped",
		"clock", g.Clock.String(),
		"score", g.score,
		"breaches", g.breaches,
		"ticks", g.ticks)
}

// Stats is the scoreboard snapshot pushed to the HUD.
func (g *Game) Stats() interfaces.Stats {
	return interfaces.Stats{
		Resources: g.resources,
		Elapsed:   g.Clock.Elapsed(),
		Player:    g.player,
		Score:     g.score,
		Breaches:  g.breaches,
	}
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Player() string {
	return g.player
}

func (g *Game) Resources() int {
	return g.resources
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Breaches() int {
	return g.breaches
}

func (g *Game) IsPaused() bool {
	return g.Input.Paused()
}

func (g *Game) Started() bool {
	return g.Input.Started()
}

type nopHUD struct{}

func (nopHUD) Update(interfaces.Stats) {}
func (nopHUD) ShowPause(bool)          {}
func (nopHUD) ShowCountdown(string)    {}
func (nopHUD) HideCountdown()          {}

func (g *Game) dispatch(t event.EventType, payload any) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Data: payload})
}
