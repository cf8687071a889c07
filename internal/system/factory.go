// internal/system/factory.go
package system

import (
	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// Populate creates the fixed part of a session: background, shovel, one
// defense unit per lane and one card per seed definition.
func Populate(world *entity.World, tuning *config.Tuning, catalog *assets.Catalog, seeds []defs.SeedDefinition) {
	world.Background = world.Add(newStatic(component.KindBackground, assets.Background, 0, 0, 1, catalog))
	world.Tool = world.Add(newStatic(component.KindTool, assets.Shovel, tuning.ToolX, tuning.ToolY, tuning.ToolScale, catalog))

	world.Defenses = make([]types.EntityID, 0, len(tuning.Lanes))
	for lane := range tuning.Lanes {
		world.Defenses = append(world.Defenses, world.Add(NewDefense(lane, tuning, catalog)))
	}

	world.Cards = make([]types.EntityID, 0, len(seeds))
	for i, seed := range seeds {
		card := newStatic(component.KindCard, seed.Image,
			tuning.CardOriginX+float64(i)*tuning.CardSpacing, tuning.CardOriginY, 1, catalog)
		card.Card = &component.Card{SeedID: seed.ID, Price: seed.Price}
		world.Cards = append(world.Cards, world.Add(card))
	}
}

// NewDefense returns an idle mower parked at the start of lane.
func NewDefense(lane int, tuning *config.Tuning, catalog *assets.Catalog) *entity.Entity {
	e := newStatic(component.KindDefense, assets.LawnmowerIdle, tuning.DefenseX, tuning.DefenseRow(lane), tuning.DefenseScale, catalog)
	e.Lane = lane
	e.Defense = &component.Defense{State: component.DefenseIdle}
	return e
}

// NewHazard returns a zombie entering lane from the right edge.
func NewHazard(lane int, tuning *config.Tuning, catalog *assets.Catalog) *entity.Entity {
	e := newStatic(component.KindHazard, assets.HazardFrame(0), tuning.PlayfieldWidth, tuning.Lanes[lane], tuning.HazardScale, catalog)
	e.Lane = lane
	e.Motion = component.Motion{VX: -tuning.HazardSpeed}
	e.Anim = component.Animation{Hold: tuning.HazardFrameHold, Max: tuning.HazardFrames}
	return e
}

// NewCollectible returns a sun falling from above the playfield at x.
func NewCollectible(x float64, tuning *config.Tuning, catalog *assets.Catalog) *entity.Entity {
	e := newStatic(component.KindCollectible, assets.Sun, x, tuning.CollectibleSpawnY, tuning.CollectibleScale, catalog)
	e.Lane = -1
	e.Motion = component.Motion{VY: tuning.CollectibleFallSpeed}
	return e
}

func newStatic(kind component.Kind, image string, x, y, scale float64, catalog *assets.Catalog) *entity.Entity {
	e := &entity.Entity{
		Kind:     kind,
		Image:    image,
		Position: component.Position{X: x, Y: y},
		Scale:    scale,
		Lane:     -1,
	}
	if catalog != nil {
		e.Size, _ = catalog.Size(image)
	}
	return e
}
