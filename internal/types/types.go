// internal/types/types.go
package types

// EntityID — идентификатор сущности в мире.
type EntityID uint64

// Point is a screen coordinate in playfield pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in playfield pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}
