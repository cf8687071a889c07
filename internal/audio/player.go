// Package audio plays short synthesized cues for gameplay events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-lane-defense/internal/event"
)

// Player mixes cues into the speaker. Until Init succeeds every Play is dropped,
// so a machine without an audio device still runs the game.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      map[Cue]int
}

func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[Cue]int),
	}
}

// Init opens the speaker with a 100ms buffer and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer. Returns false when the speaker is not open.
func (p *Player) Play(cue Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	s, err := NewCue(cue, sampleRate, p.volume)
	if err != nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played[cue]++
	return true
}

// Played is how many times cue reached the mixer.
func (p *Player) Played(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[cue]
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// CueFor maps a gameplay event to its cue.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.CollectibleCollected:
		return CueCollect, true
	case event.DefenseTriggered:
		return CueTrigger, true
	case event.HazardNeutralized:
		return CueNeutralize, true
	case event.HazardBreached:
		return CueBreach, true
	}
	return 0, false
}

func (p *Player) OnEvent(e event.Event) {
	if cue, ok := CueFor(e.Type); ok {
		p.Play(cue)
	}
}
