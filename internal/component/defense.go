package component

import "time"

// DefenseState — состояние газонокосилки.
type DefenseState int

const (
	DefenseIdle DefenseState = iota
	DefenseSpinningUp
	DefenseMoving
	DefenseSpent // уехала за край поля
)

func (s DefenseState) String() string {
	switch s {
	case DefenseIdle:
		return "Idle"
	case DefenseSpinningUp:
		return "SpinningUp"
	case DefenseMoving:
		return "Moving"
	case DefenseSpent:
		return "Spent"
	default:
		return "Unknown"
	}
}

// Defense is the per-lane unit that neutralizes hazards once it moves.
type Defense struct {
	State    DefenseState
	Spinup   time.Duration // накопленное время раскрутки
	Velocity float64       // px за тик, растёт до максимума
}

// Triggered reports whether the unit has left the idle state.
func (d *Defense) Triggered() bool {
	return d.State != DefenseIdle
}
