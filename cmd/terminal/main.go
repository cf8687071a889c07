// cmd/terminal/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/audio"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/logging"
	"go-lane-defense/internal/session"
	"go-lane-defense/internal/setup"
	"go-lane-defense/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var opts setup.Options
	opts.RegisterFlags(flag.CommandLine)
	fps := flag.Int("fps", config.TerminalFPS, "frames per second")
	flag.Parse()

	// stderr занят экраном, поэтому лог пишем в файл.
	logFile, err := os.OpenFile(config.LogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.NewLogger(logFile)

	res, err := setup.Load(opts, logger)
	if err != nil {
		return err
	}

	player := audio.NewPlayer(opts.Volume)
	if !opts.Mute {
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	store := session.FromEnv()
	if _, ok := store.PlayerName(); !ok {
		if err := terminal.NewNamePrompt(store).Run(screen); err != nil {
			if errors.Is(err, terminal.ErrPromptCancelled) {
				return nil
			}
			return err
		}
	}

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(logging.NewEventLogger(logger))
	dispatcher.SubscribeAll(player)

	surface := terminal.NewSurface(screen, config.TerminalCellWidth, config.TerminalCellHeight)
	hud := terminal.NewHUD(screen)
	game := app.NewGame(res.Tuning, res.Seeds, res.Catalog, surface, hud, dispatcher, logger)
	if game.Begin(store) != app.OutcomeStarted {
		return errors.New("no player name")
	}
	defer game.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = terminal.NewLoop(screen, game, hud, surface, *fps, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
