// Package scheduler runs the named timers of a game session: the countdown,
// the clock and the spawners. Time only moves when the orchestrator calls
// Advance, so every task runs on the game loop and never mid-tick.
package scheduler

import (
	"sort"
	"time"
)

// Task is a named timer registered with a Scheduler.
type Task struct {
	Name       string
	Interval   time.Duration
	Repeat     bool
	PauseAware bool // не копит время, пока планировщик на паузе

	run       func()
	elapsed   time.Duration
	fired     int
	cancelled bool
}

// Fired is the number of times the task has run.
func (t *Task) Fired() int {
	return t.fired
}

// Option tweaks a task at registration.
type Option func(*Task)

// PauseAware makes the task freeze while the scheduler is paused.
func PauseAware(aware bool) Option {
	return func(t *Task) {
		t.PauseAware = aware
	}
}

// Scheduler owns every timer of one session.
type Scheduler struct {
	tasks   []*Task
	paused  bool
	stopped bool
	now     time.Duration
}

func New() *Scheduler {
	return &Scheduler{}
}

// Every registers a repeating task. A task already registered under name is
// cancelled and replaced.
func (s *Scheduler) Every(name string, interval time.Duration, run func(), opts ...Option) *Task {
	return s.register(&Task{Name: name, Interval: interval, Repeat: true, run: run}, opts)
}

// After registers a one-shot task that fires once delay has elapsed.
func (s *Scheduler) After(name string, delay time.Duration, run func(), opts ...Option) *Task {
	return s.register(&Task{Name: name, Interval: delay, run: run}, opts)
}

func (s *Scheduler) register(t *Task, opts []Option) *Task {
	for _, opt := range opts {
		opt(t)
	}
	if s.stopped {
		t.cancelled = true
		return t
	}
	s.Cancel(t.Name)
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel stops the task registered under name. Safe to call from inside a
// running task, including the task itself.
func (s *Scheduler) Cancel(name string) bool {
	found := false
	for _, t := range s.tasks {
		if t.Name == name && !t.cancelled {
			t.cancelled = true
			found = true
		}
	}
	return found
}

// Has reports whether a live task is registered under name.
func (s *Scheduler) Has(name string) bool {
	for _, t := range s.tasks {
		if t.Name == name && !t.cancelled {
			return true
		}
	}
	return false
}

// Names lists live task names, sorted.
func (s *Scheduler) Names() []string {
	var names []string
	for _, t := range s.tasks {
		if !t.cancelled {
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

// Now is the total time fed through Advance, pauses included.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves every live task forward by dt and runs the ones that are due,
// in registration order. Tasks registered while advancing start counting on
// the next call.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.stopped || dt < 0 {
		return
	}
	s.now += dt

	snapshot := make([]*Task, len(s.tasks))
	copy(snapshot, s.tasks)

	for _, t := range snapshot {
		if t.cancelled || (s.paused && t.PauseAware) {
			continue
		}
		t.elapsed += dt
		for !t.cancelled && !s.stopped && t.elapsed >= t.Interval {
			if s.paused && t.PauseAware {
				break
			}
			if t.Interval > 0 {
				t.elapsed -= t.Interval
			} else {
				t.elapsed = 0
			}
			t.fired++
			if !t.Repeat {
				t.cancelled = true
			}
			t.run()
			if t.Interval <= 0 {
				break
			}
		}
	}

	s.compact()
}

// Stop cancels every task. Registration after Stop is ignored.
func (s *Scheduler) Stop() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
	s.stopped = true
}

func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
