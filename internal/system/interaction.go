// internal/system/interaction.go
package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/input"
	"go-lane-defense/internal/types"
)

// InteractionSystem runs the resolution passes that follow the per-entity
// updates of a tick. Every pass only marks entities; World.Compact drops them.
type InteractionSystem struct {
	world      *entity.World
	tuning     *config.Tuning
	dispatcher *event.Dispatcher
}

func NewInteractionSystem(world *entity.World, tuning *config.Tuning, dispatcher *event.Dispatcher) *InteractionSystem {
	return &InteractionSystem{world: world, tuning: tuning, dispatcher: dispatcher}
}

// PruneCollectibles removes suns whose top edge fell past the bottom of the playfield.
func (s *InteractionSystem) PruneCollectibles() int {
	pruned := 0
	for _, c := range s.world.Resolve(s.world.Collectibles) {
		if c.Position.Y <= s.tuning.PlayfieldHeight {
			continue
		}
		if s.world.MarkRemoved(c.ID) {
			pruned++
			s.dispatch(event.CollectibleExpired, event.EntityPayload{ID: c.ID, Lane: -1, At: point(c)})
		}
	}
	return pruned
}

// CollectPickup matches the pending click against the collectibles in order.
// A click collects at most one sun; the caller clears the click afterwards.
func (s *InteractionSystem) CollectPickup(pointer input.Pointer) (types.EntityID, bool) {
	if !pointer.HasCurrent {
		return 0, false
	}
	for _, c := range s.world.Resolve(s.world.Collectibles) {
		if PointInBounds(pointer.Current, c) {
			s.world.MarkRemoved(c.ID)
			return c.ID, true
		}
	}
	return 0, false
}

// TriggerDefenses arms the mower of every lane a hazard has reached.
// Triggering an armed mower is a no-op.
func (s *InteractionSystem) TriggerDefenses() int {
	triggered := 0
	for _, h := range s.world.Resolve(s.world.Hazards) {
		unit := s.world.Defense(h.Lane)
		if unit == nil {
			continue
		}
		if HazardReachesDefense(h, unit, s.tuning.TriggerDistance) && Trigger(unit) {
			triggered++
			s.dispatch(event.DefenseTriggered, event.EntityPayload{ID: unit.ID, Lane: unit.Lane, At: point(unit)})
		}
	}
	return triggered
}

// ResolveCollisions removes every hazard hit by the moving mower of its lane.
func (s *InteractionSystem) ResolveCollisions() int {
	neutralized := 0
	for _, h := range s.world.Resolve(s.world.Hazards) {
		unit := s.world.Defense(h.Lane)
		if unit == nil || !HazardCollidesDefense(h, unit, s.tuning.ImpactDistance) {
			continue
		}
		if s.world.MarkRemoved(h.ID) {
			neutralized++
			s.dispatch(event.HazardNeutralized, event.EntityPayload{ID: h.ID, Lane: h.Lane, At: point(h)})
		}
	}
	return neutralized
}

// PruneHazards removes zombies that walked completely past the left edge.
func (s *InteractionSystem) PruneHazards() int {
	breached := 0
	for _, h := range s.world.Resolve(s.world.Hazards) {
		if h.Position.X+h.RenderWidth() >= 0 {
			continue
		}
		if s.world.MarkRemoved(h.ID) {
			breached++
			s.dispatch(event.HazardBreached, event.EntityPayload{ID: h.ID, Lane: h.Lane, At: point(h)})
		}
	}
	return breached
}

func (s *InteractionSystem) dispatch(t event.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, Data: payload})
}

func point(e *entity.Entity) types.Point {
	return types.Point{X: e.Position.X, Y: e.Position.Y}
}
