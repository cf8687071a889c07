// internal/system/movement.go
package system

import (
	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/utils"
)

// advanceHazard — зомби идёт влево с постоянной скоростью и листает кадры.
func advanceHazard(e *entity.Entity, env Env) {
	e.Anim.Step()
	setImage(e, assets.HazardFrame(e.Anim.Frame), env.Catalog)
	e.Position.X += e.Motion.VX
	e.Position.Y += e.Motion.VY
}

func advanceCollectible(e *entity.Entity, env Env) {
	e.Position.X += e.Motion.VX
	e.Position.Y += e.Motion.VY
}

// advanceDefense runs the unit state machine: idle, spin-up for a fixed
// delay of game time, then a velocity ramp up to the configured maximum.
func advanceDefense(e *entity.Entity, env Env) {
	d := e.Defense
	if d == nil {
		return
	}
	switch d.State {
	case component.DefenseSpinningUp:
		d.Spinup += env.DT
		if d.Spinup >= env.Tuning.DefenseSpinup.Duration {
			d.State = component.DefenseMoving
		}
	case component.DefenseMoving:
		d.Velocity = utils.Clamp(d.Velocity+env.Tuning.DefenseAcceleration, 0, env.Tuning.DefenseMaxVelocity)
		e.Position.X += d.Velocity
		if e.Position.X > env.Tuning.PlayfieldWidth {
			d.State = component.DefenseSpent
			d.Velocity = 0
		}
	}

	if d.State == component.DefenseIdle {
		setImage(e, assets.LawnmowerIdle, env.Catalog)
	} else {
		setImage(e, assets.LawnmowerActive, env.Catalog)
	}
}

// triggerDefense arms an idle unit. Any other state ignores the trigger so
// repeated proximity checks never restart the spin-up or the ramp.
func triggerDefense(e *entity.Entity) bool {
	if e.Defense == nil || e.Defense.Triggered() {
		return false
	}
	e.Defense.State = component.DefenseSpinningUp
	e.Defense.Spinup = 0
	e.Defense.Velocity = 0
	return true
}
