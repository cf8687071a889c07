package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// DefaultVolume plays cues at their synthesized level.
const DefaultVolume = 1.0

// Cue is one short sound effect.
type Cue int

const (
	CueCollect    Cue = iota // солнце собрано
	CueTrigger               // косилка запущена
	CueNeutralize            // зомби сбит
	CueBreach                // зомби прошёл
)

func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueTrigger:
		return "trigger"
	case CueNeutralize:
		return "neutralize"
	case CueBreach:
		return "breach"
	default:
		return "unknown"
	}
}

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueCollect:    {{freq: 987.77, duration: 60 * time.Millisecond}, {freq: 1318.51, duration: 90 * time.Millisecond}},
	CueTrigger:    {{freq: 110, duration: 250 * time.Millisecond}},
	CueNeutralize: {{freq: 220, duration: 50 * time.Millisecond}, {freq: 165, duration: 80 * time.Millisecond}},
	CueBreach:     {{freq: 98, duration: 400 * time.Millisecond}},
}

// NewCue builds the streamer of cue at the given volume (0..1).
func NewCue(cue Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s tone: %w", cue, err)
		}
		parts = append(parts, beep.Take(rate.N(n.duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// CueLength is the number of samples cue lasts at rate.
func CueLength(cue Cue, rate beep.SampleRate) int {
	total := 0
	for _, n := range cueNotes[cue] {
		total += rate.N(n.duration)
	}
	return total
}

// volume is linear; effects.Volume works in log2, and math.Log2(0) is -Inf,
// so zero volume is expressed as Silent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
