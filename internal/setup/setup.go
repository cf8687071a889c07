// Package setup loads what both shells need before the first session:
// tuning, seed cards and the asset catalog.
package setup

import (
	"flag"
	"fmt"
	"os"

	"go-lane-defense/internal/assets"
	"go-lane-defense/internal/audio"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/logging"
)

// TuningEnv names a tuning file when -tuning is not given.
const TuningEnv = "LANES_TUNING"

type Options struct {
	TuningPath string
	SeedsPath  string
	AssetsDir  string
	Volume     float64
	Mute       bool
}

// RegisterFlags binds the shared command line flags to o.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.TuningPath, "tuning", "", "JSON tuning file (default $"+TuningEnv+")")
	fs.StringVar(&o.SeedsPath, "seeds", "", "JSON seed card definitions")
	fs.StringVar(&o.AssetsDir, "assets", "assets", "directory with PNG images")
	fs.Float64Var(&o.Volume, "volume", audio.DefaultVolume, "cue volume 0..1")
	fs.BoolVar(&o.Mute, "mute", false, "disable sound")
}

type Resources struct {
	Tuning  *config.Tuning
	Seeds   []defs.SeedDefinition
	Catalog *assets.Catalog
}

// Load reads tuning and seeds, falling back to the built-in defaults.
func Load(o Options, logger *logging.Logger) (*Resources, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	path := o.TuningPath
	if path == "" {
		path = os.Getenv(TuningEnv)
	}
	tuning := config.DefaultTuning()
	if path != "" {
		t, err := config.LoadTuning(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load tuning %s: %w", path, err)
		}
		tuning = t
		logger.Info("tuning loaded", "path", path)
	}

	seeds := defs.DefaultSeeds
	if o.SeedsPath != "" {
		s, err := defs.LoadSeedDefinitions(o.SeedsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load seeds %s: %w", o.SeedsPath, err)
		}
		seeds = s
		logger.Info("seeds loaded", "path", o.SeedsPath, "count", len(seeds))
	}

	images := make([]string, 0, len(seeds))
	for _, s := range seeds {
		images = append(images, s.Image)
	}
	return &Resources{
		Tuning:  tuning,
		Seeds:   seeds,
		Catalog: assets.NewCatalog(tuning.HazardFrames, images),
	}, nil
}
