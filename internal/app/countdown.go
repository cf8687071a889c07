// internal/app/countdown.go
package app

import (
	"time"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/scheduler"
)

// CountdownStage is one banner of the pre-game countdown.
type CountdownStage struct {
	Label string
	Image string
}

// DefaultCountdown is the READY, SET, PLANT sequence.
var DefaultCountdown = []CountdownStage{
	{Label: "READY", Image: assets.CountdownReady},
	{Label: "SET", Image: assets.CountdownSet},
	{Label: "PLANT", Image: assets.CountdownPlant},
}

// Countdown walks its stages on a periodic task. The tick after the last
// stage cancels the task and schedules a single delayed start.
type Countdown struct {
	sched      *scheduler.Scheduler
	hud        interfaces.HUD
	dispatcher *event.Dispatcher
	interval   time.Duration
	delay      time.Duration
	stages     []CountdownStage
	onStart    func()

	next     int
	finished bool
	shown    []string
}

func NewCountdown(sched *scheduler.Scheduler, hud interfaces.HUD, dispatcher *event.Dispatcher,
	interval, delay time.Duration, stages []CountdownStage, onStart func()) *Countdown {
	return &Countdown{
		sched:      sched,
		hud:        hud,
		dispatcher: dispatcher,
		interval:   interval,
		delay:      delay,
		stages:     stages,
		onStart:    onStart,
	}
}

// Schedule registers the countdown task. The countdown ignores pause.
func (c *Countdown) Schedule() {
	c.sched.Every(taskCountdown, c.interval, c.step, scheduler.PauseAware(false))
}

func (c *Countdown) step() {
	if c.next < len(c.stages) {
		stage := c.stages[c.next]
		c.next++
		c.shown = append(c.shown, stage.Label)
		c.hud.ShowCountdown(stage.Label)
		c.dispatcher.Dispatch(event.Event{
			Type: event.CountdownStage,
			Data: event.CountdownPayload{Stage: len(c.stages) - c.next + 1, Label: stage.Label},
		})
		return
	}

	c.sched.Cancel(taskCountdown)
	c.sched.After(taskStart, c.delay, c.finish, scheduler.PauseAware(false))
}

func (c *Countdown) finish() {
	if c.finished {
		return
	}
	c.finished = true
	c.hud.HideCountdown()
	c.onStart()
}

// Shown lists the labels displayed so far, in order.
func (c *Countdown) Shown() []string {
	return append([]string(nil), c.shown...)
}

// Finished reports whether the start task has run.
func (c *Countdown) Finished() bool {
	return c.finished
}
