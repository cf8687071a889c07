// internal/system/render.go
package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/interfaces"
)

// renderScaled рисует картинку сущности с учётом масштаба.
func renderScaled(e *entity.Entity, surface interfaces.Surface) {
	surface.DrawImage(e.Image, e.Position.X, e.Position.Y, e.RenderWidth(), e.RenderHeight())
}

// renderCard draws the card at its natural size and reports the highlight and
// disabled treatment to the shell.
func renderCard(e *entity.Entity, surface interfaces.Surface) {
	surface.DrawImage(e.Image, e.Position.X, e.Position.Y, e.RenderWidth(), e.RenderHeight())
	if e.Card == nil {
		return
	}
	surface.SetVisualState(e.ID, interfaces.VisualState{
		Highlighted: e.Card.Selected,
		Disabled:    !e.Card.Purchasable,
		Bounds:      e.Bounds(),
	})
}
