package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrInvalidTuning is returned when a tuning file describes an unplayable session.
var ErrInvalidTuning = errors.New("invalid tuning")

// Duration accepts either a Go duration string ("7s", "500ms") or a number of
// milliseconds in JSON.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		d.Duration = parsed
		return nil
	}
	ms, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("parse duration %s: %w", b, err)
	}
	d.Duration = time.Duration(ms * float64(time.Millisecond))
	return nil
}

// Tuning holds every gameplay number of a session.
type Tuning struct {
	PlayfieldWidth  float64   `json:"playfieldWidth"`
	PlayfieldHeight float64   `json:"playfieldHeight"`
	Lanes           []float64 `json:"lanes"` // Y строки спавна зомби, индекс = полоса

	InitialResources int `json:"initialResources"`
	PickupValue      int `json:"pickupValue"`

	CountdownInterval   Duration `json:"countdownInterval"`
	StartDelay          Duration `json:"startDelay"`
	ClockInterval       Duration `json:"clockInterval"`
	HazardInterval      Duration `json:"hazardInterval"`
	CollectibleInterval Duration `json:"collectibleInterval"`

	HazardSpeed     float64 `json:"hazardSpeed"` // px за тик
	HazardScale     float64 `json:"hazardScale"`
	HazardFrames    int     `json:"hazardFrames"`
	HazardFrameHold int     `json:"hazardFrameHold"`

	CollectibleFallSpeed float64 `json:"collectibleFallSpeed"`
	CollectibleScale     float64 `json:"collectibleScale"`
	CollectibleSpawnY    float64 `json:"collectibleSpawnY"`
	CollectibleMaxWidth  float64 `json:"collectibleMaxWidth"`

	DefenseX            float64  `json:"defenseX"`
	DefenseOffsetY      float64  `json:"defenseOffsetY"`
	DefenseScale        float64  `json:"defenseScale"`
	DefenseSpinup       Duration `json:"defenseSpinup"`
	DefenseAcceleration float64  `json:"defenseAcceleration"`
	DefenseMaxVelocity  float64  `json:"defenseMaxVelocity"`

	TriggerDistance float64 `json:"triggerDistance"`
	ImpactDistance  float64 `json:"impactDistance"`

	CardOriginX float64 `json:"cardOriginX"`
	CardOriginY float64 `json:"cardOriginY"`
	CardSpacing float64 `json:"cardSpacing"`

	ToolX     float64 `json:"toolX"`
	ToolY     float64 `json:"toolY"`
	ToolScale float64 `json:"toolScale"`

	// PauseSpawners=false сохраняет поведение оригинала: спавн идёт и на паузе.
	PauseSpawners   bool `json:"pauseSpawners"`
	MaxHazards      int  `json:"maxHazards"`      // 0 — без ограничения
	MaxCollectibles int  `json:"maxCollectibles"` // 0 — без ограничения

	Seed int64 `json:"seed"`
}

// DefaultTuning returns the stock numbers: 770x600 field, five lanes, 50 sun per pickup.
func DefaultTuning() *Tuning {
	return &Tuning{
		PlayfieldWidth:  ScreenWidth,
		PlayfieldHeight: ScreenHeight,
		Lanes:           []float64{100, 190, 280, 370, 460},

		InitialResources: 50,
		PickupValue:      50,

		CountdownInterval:   Duration{time.Second},
		StartDelay:          Duration{500 * time.Millisecond},
		ClockInterval:       Duration{time.Second},
		HazardInterval:      Duration{7 * time.Second},
		CollectibleInterval: Duration{8 * time.Second},

		HazardSpeed:     0.5,
		HazardScale:     0.7,
		HazardFrames:    34,
		HazardFrameHold: 2,

		CollectibleFallSpeed: 2,
		CollectibleScale:     0.7,
		CollectibleSpawnY:    -95,
		CollectibleMaxWidth:  92,

		DefenseX:            0,
		DefenseOffsetY:      10,
		DefenseScale:        0.8,
		DefenseSpinup:       Duration{time.Second},
		DefenseAcceleration: 0.15,
		DefenseMaxVelocity:  6,

		TriggerDistance: -10,
		ImpactDistance:  40,

		CardOriginX: 190,
		CardOriginY: 17,
		CardSpacing: 55,

		ToolX:     610,
		ToolY:     12,
		ToolScale: 0.55,
	}
}

// LoadTuning reads a JSON tuning file on top of DefaultTuning.
// Fields missing from the file keep their default values.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	t := DefaultTuning()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects tunings that would break the lane mapping or the scheduler.
func (t *Tuning) Validate() error {
	switch {
	case len(t.Lanes) == 0:
		return fmt.Errorf("%w: at least one lane is required", ErrInvalidTuning)
	case t.PlayfieldWidth <= 0 || t.PlayfieldHeight <= 0:
		return fmt.Errorf("%w: playfield must have a positive size", ErrInvalidTuning)
	case t.CountdownInterval.Duration <= 0, t.ClockInterval.Duration <= 0,
		t.HazardInterval.Duration <= 0, t.CollectibleInterval.Duration <= 0:
		return fmt.Errorf("%w: periodic intervals must be positive", ErrInvalidTuning)
	case t.StartDelay.Duration < 0 || t.DefenseSpinup.Duration < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidTuning)
	case t.HazardFrames <= 0 || t.HazardFrameHold <= 0:
		return fmt.Errorf("%w: hazard animation needs frames and a hold", ErrInvalidTuning)
	case t.HazardScale <= 0 || t.CollectibleScale <= 0 || t.DefenseScale <= 0 || t.ToolScale <= 0:
		return fmt.Errorf("%w: scales must be positive", ErrInvalidTuning)
	case t.DefenseMaxVelocity <= 0 || t.DefenseAcceleration <= 0:
		return fmt.Errorf("%w: defense units must be able to move", ErrInvalidTuning)
	case t.MaxHazards < 0 || t.MaxCollectibles < 0:
		return fmt.Errorf("%w: entity bounds must not be negative", ErrInvalidTuning)
	}
	return nil
}

// DefenseRow returns the Y coordinate of the defense unit guarding lane.
func (t *Tuning) DefenseRow(lane int) float64 {
	return t.Lanes[lane] + t.DefenseOffsetY
}
