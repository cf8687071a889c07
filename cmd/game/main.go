// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-lane-defense/internal/audio"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/logging"
	"go-lane-defense/internal/session"
	"go-lane-defense/internal/setup"
	"go-lane-defense/internal/state"
	"go-lane-defense/internal/ui"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var opts setup.Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger := logging.NewLogger(os.Stderr)

	res, err := setup.Load(opts, logger)
	if err != nil {
		logger.Failure("startup failed", err)
		os.Exit(1)
	}

	images := ui.NewImageManager(opts.AssetsDir, res.Catalog, logger)
	loaded, placeholders, err := images.Preload()
	if err != nil {
		logger.Failure("failed to load images", err)
		os.Exit(1)
	}
	logger.Info("images ready", "loaded", loaded, "placeholders", placeholders)

	player := audio.NewPlayer(opts.Volume)
	if !opts.Mute {
		if err := player.Init(); err != nil {
			// Без звуковой карты играем молча.
			logger.Warn("audio disabled", "error", err)
		}
	}
	defer player.Close()

	store := session.FromEnv()
	sm := state.NewStateMachine(&state.Context{
		Tuning:  res.Tuning,
		Seeds:   res.Seeds,
		Catalog: res.Catalog,
		Images:  images,
		Store:   store,
		Audio:   player,
		Logger:  logger,
	})
	if _, ok := store.PlayerName(); ok {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		logger.Failure("game loop stopped", err)
		os.Exit(1)
	}
}
