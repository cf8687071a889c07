// internal/system/collision.go
package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// HazardReachesDefense reports whether the hazard's leading edge, shifted by
// distance, lies within the unit's horizontal extent. The extent uses the
// natural image width, not the scaled one. Both ends are inclusive.
func HazardReachesDefense(hazard, unit *entity.Entity, distance float64) bool {
	edge := hazard.Position.X + distance
	return unit.Position.X <= edge && edge <= unit.Position.X+unit.Size.Width
}

// HazardCollidesDefense is HazardReachesDefense plus a moving unit: a parked
// or spinning mower never neutralizes anything.
func HazardCollidesDefense(hazard, unit *entity.Entity, distance float64) bool {
	if unit.Defense == nil || unit.Defense.Velocity <= 0 {
		return false
	}
	return HazardReachesDefense(hazard, unit, distance)
}

// PointInBounds is a closed-rectangle test against the rendered bounds of e.
func PointInBounds(p types.Point, e *entity.Entity) bool {
	return e.Bounds().Contains(p)
}
