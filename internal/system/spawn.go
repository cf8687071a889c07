// internal/system/spawn.go
package system

import (
	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// SpawnSystem injects hazards and collectibles into the world. Its methods are
// the bodies of the two periodic spawner tasks.
type SpawnSystem struct {
	world      *entity.World
	tuning     *config.Tuning
	catalog    *assets.Catalog
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, tuning *config.Tuning, catalog *assets.Catalog, rng *utils.PRNGService, dispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:      world,
		tuning:     tuning,
		catalog:    catalog,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// SpawnHazard appends a zombie in a uniformly chosen lane at the right edge.
// Returns false when MaxHazards live hazards already exist.
func (s *SpawnSystem) SpawnHazard() (types.EntityID, bool) {
	if s.tuning.MaxHazards > 0 && len(s.world.Hazards) >= s.tuning.MaxHazards {
		s.dispatch(event.SpawnSkipped, event.EntityPayload{Lane: -1})
		return 0, false
	}
	lane := s.rng.Intn(len(s.tuning.Lanes))
	e := NewHazard(lane, s.tuning, s.catalog)
	id := s.world.AddHazard(e)
	s.dispatch(event.HazardSpawned, event.EntityPayload{
		ID:   id,
		Lane: lane,
		At:   types.Point{X: e.Position.X, Y: e.Position.Y},
	})
	return id, true
}

// SpawnCollectible appends a sun at a random column above the playfield.
func (s *SpawnSystem) SpawnCollectible() (types.EntityID, bool) {
	if s.tuning.MaxCollectibles > 0 && len(s.world.Collectibles) >= s.tuning.MaxCollectibles {
		s.dispatch(event.SpawnSkipped, event.EntityPayload{Lane: -1})
		return 0, false
	}
	x := s.rng.RoundedUpTo(s.tuning.PlayfieldWidth - s.tuning.CollectibleMaxWidth)
	e := NewCollectible(x, s.tuning, s.catalog)
	id := s.world.AddCollectible(e)
	s.dispatch(event.CollectibleSpawned, event.EntityPayload{
		ID:   id,
		Lane: -1,
		At:   types.Point{X: e.Position.X, Y: e.Position.Y},
	})
	return id, true
}

func (s *SpawnSystem) dispatch(t event.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, Data: payload})
}
