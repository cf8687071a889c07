package system

import (
	"testing"
	"time"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/input"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

type drawCall struct {
	image string
	x, y  float64
	w, h  float64
}

type recordingSurface struct {
	draws  []drawCall
	states map[types.EntityID]interfaces.VisualState
}

func (s *recordingSurface) Clear() {
	s.draws = nil
}

func (s *recordingSurface) DrawImage(image string, x, y, w, h float64) {
	s.draws = append(s.draws, drawCall{image, x, y, w, h})
}

func (s *recordingSurface) SetVisualState(id types.EntityID, state interfaces.VisualState) {
	if s.states == nil {
		s.states = make(map[types.EntityID]interfaces.VisualState)
	}
	s.states[id] = state
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T) (*entity.World, *config.Tuning, *assets.Catalog) {
	t.Helper()
	tuning := config.DefaultTuning()
	seedImages := make([]string, 0, len(defs.DefaultSeeds))
	for _, s := range defs.DefaultSeeds {
		seedImages = append(seedImages, s.Image)
	}
	catalog := assets.NewCatalog(tuning.HazardFrames, seedImages)
	world := entity.NewWorld()
	Populate(world, tuning, catalog, defs.DefaultSeeds)
	return world, tuning, catalog
}

func env(tuning *config.Tuning, catalog *assets.Catalog) Env {
	return Env{Tuning: tuning, Catalog: catalog, DT: time.Second / 60}
}

func TestPopulate(t *testing.T) {
	world, tuning, _ := newTestWorld(t)

	if len(world.Defenses) != len(tuning.Lanes) {
		t.Fatalf("defenses = %d, want one per lane", len(world.Defenses))
	}
	for lane := range tuning.Lanes {
		d := world.Defense(lane)
		if d.Lane != lane || d.Position.Y != tuning.Lanes[lane]+tuning.DefenseOffsetY {
			t.Errorf("lane %d: defense at lane %d y=%v", lane, d.Lane, d.Position.Y)
		}
		if d.Defense.State != component.DefenseIdle {
			t.Errorf("lane %d: state %v, want Idle", lane, d.Defense.State)
		}
	}

	if len(world.Cards) != len(defs.DefaultSeeds) {
		t.Fatalf("cards = %d", len(world.Cards))
	}
	for i, c := range world.Resolve(world.Cards) {
		wantX := tuning.CardOriginX + float64(i)*tuning.CardSpacing
		if c.Position.X != wantX || c.Card.Price != defs.DefaultSeeds[i].Price {
			t.Errorf("card %d at x=%v price=%d", i, c.Position.X, c.Card.Price)
		}
	}

	tool, _ := world.Get(world.Tool)
	if tool.Position.X != 610 || tool.Position.Y != 12 || tool.Scale != 0.55 {
		t.Errorf("tool = %+v", tool.Position)
	}
}

func TestUpdateEntityRendersThenAdvances(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	s := &recordingSurface{}

	h := NewHazard(2, tuning, catalog)
	world.AddHazard(h)
	UpdateEntity(h, s, env(tuning, catalog))

	if len(s.draws) != 1 || s.draws[0].x != tuning.PlayfieldWidth {
		t.Fatalf("draws = %+v, want one draw at the spawn column", s.draws)
	}
	if h.Position.X != tuning.PlayfieldWidth-tuning.HazardSpeed {
		t.Errorf("x = %v after one tick", h.Position.X)
	}
	if h.Position.Y != tuning.Lanes[2] {
		t.Errorf("hazard left its lane: y = %v", h.Position.Y)
	}
}

func TestHazardFramesStayInRange(t *testing.T) {
	_, tuning, catalog := newTestWorld(t)
	h := NewHazard(0, tuning, catalog)
	h.Anim.Frame = 99

	e := env(tuning, catalog)
	for i := 0; i < 200; i++ {
		UpdateEntity(h, nil, e)
		if h.Anim.Frame < 0 || h.Anim.Frame >= tuning.HazardFrames {
			t.Fatalf("tick %d: frame %d", i, h.Anim.Frame)
		}
		if h.Image != assets.HazardFrame(h.Anim.Frame) {
			t.Fatalf("image %q does not match frame %d", h.Image, h.Anim.Frame)
		}
	}
}

func TestCollectibleFalls(t *testing.T) {
	_, tuning, catalog := newTestWorld(t)
	c := NewCollectible(100, tuning, catalog)
	for i := 0; i < 10; i++ {
		UpdateEntity(c, nil, env(tuning, catalog))
	}
	if c.Position.X != 100 || c.Position.Y != tuning.CollectibleSpawnY+10*tuning.CollectibleFallSpeed {
		t.Errorf("position = %+v", c.Position)
	}
}

func TestDefenseLifecycle(t *testing.T) {
	_, tuning, catalog := newTestWorld(t)
	d := NewDefense(0, tuning, catalog)
	e := Env{Tuning: tuning, Catalog: catalog, DT: 100 * time.Millisecond}

	UpdateEntity(d, nil, e)
	if d.Position.X != tuning.DefenseX || d.Image != assets.LawnmowerIdle {
		t.Fatalf("idle mower moved or changed image: %+v %q", d.Position, d.Image)
	}

	if !Trigger(d) {
		t.Fatal("first trigger rejected")
	}
	for i := 0; i < 9; i++ {
		UpdateEntity(d, nil, e)
	}
	if d.Defense.State != component.DefenseSpinningUp || d.Position.X != tuning.DefenseX {
		t.Fatalf("after 0.9s: state %v x %v", d.Defense.State, d.Position.X)
	}
	if d.Image != assets.LawnmowerActive {
		t.Errorf("spinning mower image = %q", d.Image)
	}

	UpdateEntity(d, nil, e)
	if d.Defense.State != component.DefenseMoving {
		t.Fatalf("after 1s: state %v, want Moving", d.Defense.State)
	}

	prev := 0.0
	for i := 0; i < 100 && d.Defense.State == component.DefenseMoving; i++ {
		UpdateEntity(d, nil, e)
		if d.Defense.Velocity < prev && d.Defense.State == component.DefenseMoving {
			t.Fatalf("velocity dropped from %v to %v", prev, d.Defense.Velocity)
		}
		if d.Defense.Velocity > tuning.DefenseMaxVelocity {
			t.Fatalf("velocity %v above max", d.Defense.Velocity)
		}
		prev = d.Defense.Velocity
	}
	for i := 0; i < 1000 && d.Defense.State != component.DefenseSpent; i++ {
		UpdateEntity(d, nil, e)
	}
	if d.Defense.State != component.DefenseSpent {
		t.Fatalf("mower never left the playfield")
	}
	x := d.Position.X
	UpdateEntity(d, nil, e)
	if d.Position.X != x {
		t.Error("spent mower kept moving")
	}
}

func TestTriggerIdempotent(t *testing.T) {
	_, tuning, catalog := newTestWorld(t)
	d := NewDefense(0, tuning, catalog)
	e := Env{Tuning: tuning, Catalog: catalog, DT: 600 * time.Millisecond}

	Trigger(d)
	UpdateEntity(d, nil, e)
	if Trigger(d) {
		t.Error("re-trigger while spinning up reported a change")
	}
	if d.Defense.Spinup != 600*time.Millisecond {
		t.Errorf("re-trigger reset the spin-up: %v", d.Defense.Spinup)
	}

	UpdateEntity(d, nil, e)
	UpdateEntity(d, nil, e)
	v := d.Defense.Velocity
	if Trigger(d) || d.Defense.Velocity != v {
		t.Error("re-trigger while moving changed the mower")
	}
}

func TestTriggerNonDefense(t *testing.T) {
	_, tuning, catalog := newTestWorld(t)
	if Trigger(NewHazard(0, tuning, catalog)) {
		t.Error("hazards have no trigger")
	}
}

func TestCardRenderReportsVisualState(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	s := &recordingSurface{}
	UpdatePurchasable(world, 50)
	card := world.Resolve(world.Cards)[2] // 100
	SetSelected(card, true)

	UpdateEntity(card, s, env(tuning, catalog))
	state := s.states[card.ID]
	if !state.Highlighted || !state.Disabled {
		t.Errorf("state = %+v, want highlighted and disabled", state)
	}
	if state.Bounds != card.Bounds() {
		t.Errorf("bounds = %+v, want %+v", state.Bounds, card.Bounds())
	}
}

func TestSpawnHazard(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	rec := &eventRecorder{}
	d := event.NewDispatcher()
	d.SubscribeAll(rec)
	spawner := NewSpawnSystem(world, tuning, catalog, utils.NewPRNGService(42), d)

	lanes := make(map[int]bool)
	for i := 0; i < 50; i++ {
		id, ok := spawner.SpawnHazard()
		if !ok {
			t.Fatal("unbounded spawn refused")
		}
		h, _ := world.Get(id)
		if h.Position.X != tuning.PlayfieldWidth || h.Position.Y != tuning.Lanes[h.Lane] {
			t.Fatalf("hazard %d at %+v lane %d", i, h.Position, h.Lane)
		}
		lanes[h.Lane] = true
	}
	if len(lanes) != len(tuning.Lanes) {
		t.Errorf("50 spawns covered lanes %v", lanes)
	}
	if rec.count(event.HazardSpawned) != 50 {
		t.Errorf("HazardSpawned events = %d", rec.count(event.HazardSpawned))
	}
}

func TestSpawnCollectibleColumn(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	spawner := NewSpawnSystem(world, tuning, catalog, utils.NewPRNGService(7), nil)

	maxX := tuning.PlayfieldWidth - tuning.CollectibleMaxWidth
	for i := 0; i < 100; i++ {
		id, _ := spawner.SpawnCollectible()
		c, _ := world.Get(id)
		if c.Position.X < 0 || c.Position.X > maxX || c.Position.X != float64(int(c.Position.X)) {
			t.Fatalf("collectible x = %v", c.Position.X)
		}
		if c.Position.Y != tuning.CollectibleSpawnY {
			t.Fatalf("collectible y = %v", c.Position.Y)
		}
	}
}

func TestSpawnBounds(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	tuning.MaxHazards = 2
	tuning.MaxCollectibles = 1
	rec := &eventRecorder{}
	d := event.NewDispatcher()
	d.Subscribe(event.SpawnSkipped, rec)
	spawner := NewSpawnSystem(world, tuning, catalog, utils.NewPRNGService(1), d)

	for i := 0; i < 4; i++ {
		spawner.SpawnHazard()
		spawner.SpawnCollectible()
	}
	if len(world.Hazards) != 2 || len(world.Collectibles) != 1 {
		t.Errorf("hazards=%d collectibles=%d", len(world.Hazards), len(world.Collectibles))
	}
	if len(rec.events) != 5 {
		t.Errorf("SpawnSkipped events = %d, want 5", len(rec.events))
	}
}

func TestSelectionSinglePick(t *testing.T) {
	world, _, _ := newTestWorld(t)
	cards := world.Resolve(world.Cards)

	tests := []struct {
		name    string
		pointer input.Pointer
		want    types.EntityID
	}{
		{"none", input.Pointer{}, 0},
		{"current hits first card", input.Pointer{Current: types.Point{X: 200, Y: 40}, HasCurrent: true}, cards[0].ID},
		{"previous when current misses", input.Pointer{
			Current: types.Point{X: 5, Y: 500}, HasCurrent: true,
			Previous: types.Point{X: 300, Y: 40}, HasPrevious: true,
		}, cards[2].ID},
		{"current wins over previous", input.Pointer{
			Current: types.Point{X: 360, Y: 40}, HasCurrent: true,
			Previous: types.Point{X: 200, Y: 40}, HasPrevious: true,
		}, cards[3].ID},
		{"right edge is inclusive", input.Pointer{Current: types.Point{X: 240, Y: 87}, HasCurrent: true}, cards[0].ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecomputeSelection(world, tt.pointer)
			if got != tt.want {
				t.Errorf("selected %d, want %d", got, tt.want)
			}
			n := 0
			for _, c := range cards {
				if c.Card.Selected {
					n++
				}
			}
			if n > 1 {
				t.Errorf("%d cards selected", n)
			}
			if tt.want == 0 && n != 0 {
				t.Error("a card is still selected")
			}
		})
	}
}

func TestUpdatePurchasable(t *testing.T) {
	world, _, _ := newTestWorld(t)
	UpdatePurchasable(world, 100)
	want := []bool{true, true, true, false}
	for i, c := range world.Resolve(world.Cards) {
		if c.Card.Purchasable != want[i] {
			t.Errorf("card %s purchasable = %v", c.Card.SeedID, c.Card.Purchasable)
		}
	}
	if _, ok := SelectedCard(world); ok {
		t.Error("no card should be selected")
	}
}
