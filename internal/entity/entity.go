package entity

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/types"
)

// Entity is the single record shared by every variant. Variant-specific data
// lives in the optional component pointers; Kind selects the behaviour.
type Entity struct {
	ID       types.EntityID
	Kind     component.Kind
	Image    string // логическое имя текущей картинки
	Position component.Position
	Size     component.Size
	Scale    float64
	Lane     int

	Anim    component.Animation
	Motion  component.Motion
	Defense *component.Defense
	Card    *component.Card

	removed bool
}

// RenderWidth is the on-screen width (natural width times scale).
func (e *Entity) RenderWidth() float64 {
	return e.Size.Width * e.scale()
}

// RenderHeight is the on-screen height (natural height times scale).
func (e *Entity) RenderHeight() float64 {
	return e.Size.Height * e.scale()
}

// Bounds returns the rendered rectangle of the entity.
func (e *Entity) Bounds() types.Rect {
	return types.Rect{
		X:      e.Position.X,
		Y:      e.Position.Y,
		Width:  e.RenderWidth(),
		Height: e.RenderHeight(),
	}
}

// Removed reports whether the entity was marked for removal this tick.
func (e *Entity) Removed() bool {
	return e.removed
}

func (e *Entity) scale() float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}
