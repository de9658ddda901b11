package main

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/rsnake/audio"
	"github.com/lixenwraith/rsnake/core"
	"github.com/lixenwraith/rsnake/engine"
	"github.com/lixenwraith/rsnake/modes"
	"github.com/lixenwraith/rsnake/render"
	"github.com/lixenwraith/rsnake/terminal"
)

// runSaver owns the terminal for the whole animation and releases it on every exit path
func runSaver(ctx context.Context, opts *options) error {
	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	svc, err := terminal.Open()
	if err != nil {
		return err
	}
	defer svc.Stop()

	// Panic Recovery: Ensure terminal is reset even if the saver crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	palette := render.NewPalette(rng, svc.Colors())
	cfg, err := engine.NewConfig(palette, string(opts.color), string(opts.leadColor), int(opts.speed))
	if err != nil {
		return err
	}

	gameOpts := []engine.Option{
		engine.WithEvents(svc),
		engine.WithInput(modes.NewInputHandler(cfg, logger.With("component", "input"))),
		engine.WithLogger(logger.With("component", "engine")),
	}

	if opts.chime {
		chime := audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, the saver runs silently
			logger.Warn("audio initialization failed", "err", err)
		} else {
			defer chime.Cleanup()
			gameOpts = append(gameOpts, engine.WithGrowthListener(chime))
		}
	}

	game := engine.NewGame(cfg, render.NewTerminalRenderer(svc.Screen()), rng, gameOpts...)

	logger.Info("saver started", "colors", svc.Colors(), "speed", cfg.Speed)
	err = game.Run(ctx)
	logger.Info("saver stopped", "frames", game.Frames(), "err", err)
	return err
}
