// Package input turns pointer and key events into the session run state and
// the stored pointer the tick reads.
package input

import (
	"go-lane-defense/internal/types"
)

// RunState — состояние сессии с точки зрения ввода.
type RunState int

const (
	NotStarted RunState = iota
	Running
	Paused
)

func (s RunState) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Pointer is the last accepted click and the one before the last reset.
// Previous survives ConsumeClick so card selection can lag one frame behind.
type Pointer struct {
	Current     types.Point
	HasCurrent  bool
	Previous    types.Point
	HasPrevious bool
}

// Controller owns the pause state machine. There is exactly one state field,
// so the pause key and the resume button can never disagree.
type Controller struct {
	state    RunState
	pauseKey string
	pointer  Pointer
}

func NewController(pauseKey string) *Controller {
	return &Controller{pauseKey: pauseKey}
}

func (c *Controller) State() RunState {
	return c.state
}

func (c *Controller) Paused() bool {
	return c.state == Paused
}

func (c *Controller) Started() bool {
	return c.state != NotStarted
}

// Start moves NotStarted to Running. Returns false if the session had already started.
func (c *Controller) Start() bool {
	if c.state != NotStarted {
		return false
	}
	c.state = Running
	return true
}

// OnKey toggles pause on the pause key. Before the session starts it is a no-op.
// Returns true when the run state changed.
func (c *Controller) OnKey(key string) bool {
	if key != c.pauseKey {
		return false
	}
	switch c.state {
	case Running:
		c.state = Paused
	case Paused:
		c.state = Running
	default:
		return false
	}
	return true
}

// Resume forces Paused to Running. Returns true when the state changed.
func (c *Controller) Resume() bool {
	if c.state != Paused {
		return false
	}
	c.state = Running
	return true
}

// OnPointerDown stores a click. Clicks while paused are dropped, not queued.
func (c *Controller) OnPointerDown(x, y float64) bool {
	if c.state == Paused {
		return false
	}
	p := types.Point{X: x, Y: y}
	c.pointer = Pointer{Current: p, HasCurrent: true, Previous: p, HasPrevious: true}
	return true
}

func (c *Controller) Pointer() Pointer {
	return c.pointer
}

// ConsumeClick clears the current click after it has been used.
func (c *Controller) ConsumeClick() {
	c.pointer.Current = types.Point{}
	c.pointer.HasCurrent = false
}
