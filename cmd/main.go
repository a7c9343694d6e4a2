/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"gpu-raycasting/internal"
	"gpu-raycasting/internal/config"
	"gpu-raycasting/internal/graphics"
	"gpu-raycasting/internal/scene"
	"gpu-raycasting/internal/trace"
)

func main() {
	cfg, verbose, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := renderHeadless(ctx, cfg); err != nil {
			slog.Error("headless render failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := graphics.Open(cfg.Title, cfg.Width, cfg.Height, internal.NewController(cfg)); err != nil {
		slog.Error("viewer failed", "err", err)
		os.Exit(1)
	}
	slog.Info("viewer closed")
}

func renderHeadless(ctx context.Context, cfg config.Config) error {
	s := scene.New()
	var shader trace.Shader
	var err error
	switch cfg.Mode {
	case config.ModeMetaball:
		shader, err = trace.NewMetaballs(s, cfg.Headless.Time)
	default:
		shader, err = trace.NewRayTracer(s)
	}
	if err != nil {
		return fmt.Errorf("prepare %s: %w", cfg.Mode, err)
	}

	start := time.Now()
	if err := trace.WritePNG(ctx, cfg.Headless.Out, int(cfg.Width), int(cfg.Height), shader); err != nil {
		return err
	}
	slog.Info("frame written", "mode", cfg.Mode, "path", cfg.Headless.Out, "elapsed", time.Since(start))
	return nil
}
