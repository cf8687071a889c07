// internal/system/selection.go
package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/input"
	"go-lane-defense/internal/types"
)

// CheckSelected reports whether p hits the card at its natural size.
func CheckSelected(card *entity.Entity, p types.Point) bool {
	return PointInBounds(p, card)
}

// SetSelected is a no-op for entities that are not cards.
func SetSelected(card *entity.Entity, selected bool) {
	if card.Card != nil {
		card.Card.Selected = selected
	}
}

// RecomputeSelection selects the card under the current click, falling back
// to the previous click. At most one card ends up selected.
func RecomputeSelection(world *entity.World, pointer input.Pointer) types.EntityID {
	cards := world.Resolve(world.Cards)
	var selected types.EntityID

	pick := func(p types.Point) {
		for _, c := range cards {
			if CheckSelected(c, p) {
				selected = c.ID
				return
			}
		}
	}
	if pointer.HasCurrent {
		pick(pointer.Current)
	}
	if selected == 0 && pointer.HasPrevious {
		pick(pointer.Previous)
	}

	for _, c := range cards {
		SetSelected(c, c.ID == selected)
	}
	return selected
}

// UpdatePurchasable marks every card the player can currently afford.
func UpdatePurchasable(world *entity.World, resources int) {
	for _, c := range world.Resolve(world.Cards) {
		if c.Card != nil {
			c.Card.Purchasable = resources >= c.Card.Price
		}
	}
}

// SelectedCard returns the selected card, if any.
func SelectedCard(world *entity.World) (*entity.Entity, bool) {
	for _, c := range world.Resolve(world.Cards) {
		if c.Card != nil && c.Card.Selected {
			return c, true
		}
	}
	return nil, false
}
