// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/audio"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/logging"
	"go-lane-defense/internal/session"
	"go-lane-defense/internal/ui"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context is what every state shares for the lifetime of the window.
type Context struct {
	Tuning  *config.Tuning
	Seeds   []defs.SeedDefinition
	Catalog *assets.Catalog
	Images  *ui.ImageManager
	Store   *session.Store
	Audio   *audio.Player
	Logger  *logging.Logger
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Ctx     *Context
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Ctx: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// newDispatcher wires the listeners every session gets.
func (sm *StateMachine) newDispatcher() *event.Dispatcher {
	d := event.NewDispatcher()
	if sm.Ctx.Logger != nil {
		d.SubscribeAll(logging.NewEventLogger(sm.Ctx.Logger))
	}
	if sm.Ctx.Audio != nil {
		d.SubscribeAll(sm.Ctx.Audio)
	}
	return d
}
