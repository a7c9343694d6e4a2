/*
 * Copyright (C) 2023 by Jason Figge
 */

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Mode string

const (
	ModeRayTrace Mode = "raytrace"
	ModeMetaball Mode = "metaball"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	Mode   Mode   `toml:"mode"`

	// RotateStep is the camera orbit angle per key press, in radians.
	RotateStep float32 `toml:"rotate_step"`
	// TimeStep is the metaball clock advance per frame.
	TimeStep   float32    `toml:"time_step"`
	ClearColor [4]float32 `toml:"clear_color"`

	Headless HeadlessConfig `toml:"headless"`
}

// HeadlessConfig controls the single frame CPU render.
type HeadlessConfig struct {
	Enabled bool    `toml:"enabled"`
	Out     string  `toml:"out"`
	Time    float32 `toml:"time"`
}

func Default() Config {
	return Config{
		Title:      "GPU Ray Caster",
		Width:      600,
		Height:     600,
		Mode:       ModeRayTrace,
		RotateStep: 0.1,
		TimeStep:   0.01,
		ClearColor: [4]float32{1, 0.5, 0.8, 1},
		Headless: HeadlessConfig{
			Out: "frame.png",
		},
	}
}

// Load overlays the TOML file at path onto the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Mode != ModeRayTrace && c.Mode != ModeMetaball:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	case c.RotateStep <= 0:
		return fmt.Errorf("%w: rotate_step must be positive", ErrInvalid)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time_step must be positive", ErrInvalid)
	case c.Headless.Enabled && c.Headless.Out == "":
		return fmt.Errorf("%w: headless render needs an output file", ErrInvalid)
	}
	return nil
}
