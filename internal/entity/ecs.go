// internal/entity/ecs.go
package entity

import (
	"go-lane-defense/internal/types"
)

// World is the arena of one game session. Ordered ID lists give the
// iteration order the tick relies on; entities themselves live in the arena.
type World struct {
	NextID   types.EntityID
	entities map[types.EntityID]*Entity

	Background   types.EntityID
	Tool         types.EntityID
	Defenses     []types.EntityID // индекс = полоса, размер не меняется
	Cards        []types.EntityID
	Hazards      []types.EntityID // порядок = порядок спавна
	Collectibles []types.EntityID
}

func NewWorld() *World {
	return &World{
		NextID:   1,
		entities: make(map[types.EntityID]*Entity),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Add stores e in the arena under a fresh ID and returns it.
// The caller decides which ordered list, if any, references it.
func (w *World) Add(e *Entity) types.EntityID {
	e.ID = w.NewEntity()
	w.entities[e.ID] = e
	return e.ID
}

// Get returns the entity with the given ID.
func (w *World) Get(id types.EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Len is the number of live entities in the arena.
func (w *World) Len() int {
	return len(w.entities)
}

func (w *World) AddHazard(e *Entity) types.EntityID {
	id := w.Add(e)
	w.Hazards = append(w.Hazards, id)
	return id
}

func (w *World) AddCollectible(e *Entity) types.EntityID {
	id := w.Add(e)
	w.Collectibles = append(w.Collectibles, id)
	return id
}

// Defense returns the defense unit guarding lane, or nil for an unknown lane.
func (w *World) Defense(lane int) *Entity {
	if lane < 0 || lane >= len(w.Defenses) {
		return nil
	}
	return w.entities[w.Defenses[lane]]
}

// Resolve maps an ID list to entities, skipping IDs already marked removed.
// The returned slice is a snapshot: marking entities while ranging over it is safe.
func (w *World) Resolve(ids []types.EntityID) []*Entity {
	out := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities[id]; ok && !e.Removed() {
			out = append(out, e)
		}
	}
	return out
}

// MarkRemoved flags an entity for removal at the next Compact.
// Marking twice is harmless.
func (w *World) MarkRemoved(id types.EntityID) bool {
	e, ok := w.entities[id]
	if !ok || e.Removed() {
		return false
	}
	e.removed = true
	return true
}

// Compact drops every marked hazard and collectible from the ordered lists and
// the arena in one pass. Defenses, cards, background and tool are never removed.
func (w *World) Compact() int {
	removed := 0
	w.Hazards, removed = w.compactList(w.Hazards, removed)
	w.Collectibles, removed = w.compactList(w.Collectibles, removed)
	return removed
}

func (w *World) compactList(ids []types.EntityID, removed int) ([]types.EntityID, int) {
	kept := ids[:0]
	for _, id := range ids {
		e, ok := w.entities[id]
		if !ok {
			continue
		}
		if e.Removed() {
			delete(w.entities, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	return kept, removed
}
