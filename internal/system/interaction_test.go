package system

import (
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/input"
	"go-lane-defense/internal/types"
)

func TestPruneCollectibles(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	rec := &eventRecorder{}
	d := event.NewDispatcher()
	d.SubscribeAll(rec)
	s := NewInteractionSystem(world, tuning, d)

	if s.PruneCollectibles() != 0 {
		t.Fatal("pruning an empty list removed something")
	}

	onScreen := NewCollectible(10, tuning, catalog)
	onScreen.Position.Y = tuning.PlayfieldHeight
	gone := NewCollectible(10, tuning, catalog)
	gone.Position.Y = tuning.PlayfieldHeight + 1
	world.AddCollectible(onScreen)
	world.AddCollectible(gone)

	if got := s.PruneCollectibles(); got != 1 {
		t.Errorf("pruned %d, want 1", got)
	}
	world.Compact()
	if len(world.Collectibles) != 1 || world.Collectibles[0] != onScreen.ID {
		t.Errorf("collectibles = %v", world.Collectibles)
	}
	if rec.count(event.CollectibleExpired) != 1 {
		t.Error("missing CollectibleExpired")
	}
}

func TestCollectPickupOneSunPerClick(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	s := NewInteractionSystem(world, tuning, nil)

	for i := 0; i < 2; i++ {
		c := NewCollectible(50, tuning, catalog)
		c.Position.Y = 50
		c.Size = component.Size{Width: 42, Height: 80}
		c.Scale = 1
		world.AddCollectible(c)
	}

	pointer := input.Pointer{Current: types.Point{X: 70, Y: 90}, HasCurrent: true}
	id, ok := s.CollectPickup(pointer)
	if !ok || id != world.Collectibles[0] {
		t.Fatalf("CollectPickup() = %d, %v", id, ok)
	}
	if world.Compact() != 1 || len(world.Collectibles) != 1 {
		t.Errorf("one click removed more than one sun")
	}

	if _, ok := s.CollectPickup(input.Pointer{Previous: types.Point{X: 70, Y: 90}, HasPrevious: true}); ok {
		t.Error("a consumed click collected a sun")
	}
}

func TestTriggerDefenses(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	rec := &eventRecorder{}
	d := event.NewDispatcher()
	d.Subscribe(event.DefenseTriggered, rec)
	s := NewInteractionSystem(world, tuning, d)

	unit := world.Defense(1)
	h := NewHazard(1, tuning, catalog)
	h.Position.X = unit.RenderWidth() + 5
	world.AddHazard(h)
	far := NewHazard(3, tuning, catalog)
	world.AddHazard(far)

	if got := s.TriggerDefenses(); got != 1 {
		t.Fatalf("triggered %d, want 1", got)
	}
	if !unit.Defense.Triggered() || world.Defense(3).Defense.Triggered() {
		t.Error("wrong lane triggered")
	}
	if got := s.TriggerDefenses(); got != 0 {
		t.Errorf("second pass triggered %d", got)
	}
	if len(rec.events) != 1 {
		t.Errorf("DefenseTriggered events = %d", len(rec.events))
	}
}

func TestResolveCollisionsOnlyWhenMoving(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	s := NewInteractionSystem(world, tuning, nil)

	unit := world.Defense(0)
	h := NewHazard(0, tuning, catalog)
	h.Position.X = 10
	world.AddHazard(h)

	unit.Defense.State = component.DefenseSpinningUp
	if s.ResolveCollisions() != 0 {
		t.Fatal("a spinning mower with zero velocity neutralized a zombie")
	}

	unit.Defense.State = component.DefenseMoving
	unit.Defense.Velocity = 0.15
	if s.ResolveCollisions() != 1 {
		t.Fatal("moving mower missed")
	}
	world.Compact()
	if len(world.Hazards) != 0 {
		t.Errorf("hazards = %v after neutralization", world.Hazards)
	}
}

func TestPruneHazardsBreach(t *testing.T) {
	world, tuning, catalog := newTestWorld(t)
	rec := &eventRecorder{}
	d := event.NewDispatcher()
	d.Subscribe(event.HazardBreached, rec)
	s := NewInteractionSystem(world, tuning, d)

	h := NewHazard(4, tuning, catalog)
	h.Position.X = -h.RenderWidth() - 1
	world.AddHazard(h)
	edge := NewHazard(4, tuning, catalog)
	edge.Position.X = -edge.RenderWidth()
	world.AddHazard(edge)

	if got := s.PruneHazards(); got != 1 {
		t.Errorf("breached %d, want 1", got)
	}
	if len(rec.events) != 1 {
		t.Errorf("HazardBreached events = %d", len(rec.events))
	}
}
