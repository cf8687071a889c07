package system

import (
	"time"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/interfaces"
)

// Env is what per-entity behaviours may read during one tick.
type Env struct {
	Tuning  *config.Tuning
	Catalog *assets.Catalog
	DT      time.Duration
}

// Behavior is the capability table of one entity kind. Nil entries mean the
// kind has no such capability.
type Behavior struct {
	Render    func(e *entity.Entity, surface interfaces.Surface)
	Advance   func(e *entity.Entity, env Env)
	OnTrigger func(e *entity.Entity) bool
}

// Behaviors — таблица поведений по виду сущности вместо иерархии классов.
var Behaviors = map[component.Kind]Behavior{
	component.KindHazard: {
		Render:  renderScaled,
		Advance: advanceHazard,
	},
	component.KindCollectible: {
		Render:  renderScaled,
		Advance: advanceCollectible,
	},
	component.KindDefense: {
		Render:    renderScaled,
		Advance:   advanceDefense,
		OnTrigger: triggerDefense,
	},
	component.KindBackground: {
		Render: renderScaled,
	},
	component.KindCard: {
		Render: renderCard,
	},
	component.KindTool: {
		Render: renderScaled,
	},
}

// UpdateEntity renders e and then advances it, the per-frame update of every variant.
func UpdateEntity(e *entity.Entity, surface interfaces.Surface, env Env) {
	b, ok := Behaviors[e.Kind]
	if !ok {
		return
	}
	if b.Render != nil && surface != nil {
		b.Render(e, surface)
	}
	if b.Advance != nil {
		b.Advance(e, env)
	}
}

// Trigger fires the OnTrigger capability of e. Kinds without one ignore it.
func Trigger(e *entity.Entity) bool {
	b, ok := Behaviors[e.Kind]
	if !ok || b.OnTrigger == nil {
		return false
	}
	return b.OnTrigger(e)
}

func setImage(e *entity.Entity, name string, catalog *assets.Catalog) {
	if e.Image == name {
		return
	}
	e.Image = name
	if catalog != nil {
		e.Size, _ = catalog.Size(name)
	}
}
