/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"flag"
	"fmt"
	"math"
)

// ParseArgs loads the optional -config file, then applies the flags that
// were set explicitly on top of it. The second result reports -v.
func ParseArgs(args []string) (Config, bool, error) {
	fs := flag.NewFlagSet("raycast", flag.ContinueOnError)
	path := fs.String("config", "", "TOML config file.")
	width := fs.Int("width", 0, "Window width in pixels.")
	height := fs.Int("height", 0, "Window height in pixels.")
	mode := fs.String("mode", "", "Start mode: raytrace or metaball.")
	headless := fs.Bool("headless", false, "Render one frame on the CPU and write a PNG.")
	out := fs.String("out", "", "Output file for -headless.")
	at := fs.Float64("time", 0, "Metaball clock for -headless.")
	verbose := fs.Bool("v", false, "Debug logging.")
	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	for name, v := range map[string]int{"width": *width, "height": *height} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return Config{}, false, fmt.Errorf("%w: -%s %d out of range", ErrInvalid, name, v)
		}
	}

	cfg := Default()
	if *path != "" {
		var err error
		if cfg, err = Load(*path); err != nil {
			return cfg, false, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = int32(*width)
		case "height":
			cfg.Height = int32(*height)
		case "mode":
			cfg.Mode = Mode(*mode)
		case "headless":
			cfg.Headless.Enabled = *headless
		case "out":
			cfg.Headless.Out = *out
		case "time":
			cfg.Headless.Time = float32(*at)
		}
	})
	return cfg, *verbose, cfg.Validate()
}
