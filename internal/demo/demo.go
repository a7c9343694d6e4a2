/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package demo holds the interactive state of the viewer: which fragment
// program is active, the metaball clock and the key bindings.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"

	"gpu-raycasting/internal/config"
	"gpu-raycasting/internal/scene"
)

const (
	KeyToggle     = 'x'
	KeyOrbitLeft  = 'a'
	KeyOrbitRight = 'd'
	KeyQuit       = 'q'
	KeyEscape     = 0x1B
	idleStep      = 0.1
)

type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionQuit
)

// Program is a linked shader program that accepts scene uniforms.
type Program interface {
	scene.Uniforms
	Use()
}

type State struct {
	scene      *scene.Scene
	metaball   bool
	time       float32
	rotateStep float32
	timeStep   float32
}

func New(s *scene.Scene, cfg config.Config) *State {
	return &State{
		scene:      s,
		metaball:   cfg.Mode == config.ModeMetaball,
		rotateStep: cfg.RotateStep,
		timeStep:   cfg.TimeStep,
	}
}

func (st *State) Scene() *scene.Scene { return st.scene }
func (st *State) Metaball() bool      { return st.metaball }
func (st *State) Time() float32       { return st.time }

// Mode names the active fragment program.
func (st *State) Mode() config.Mode {
	if st.metaball {
		return config.ModeMetaball
	}
	return config.ModeRayTrace
}

// HandleKey applies a key press and reports what the caller has to do.
func (st *State) HandleKey(key rune) Action {
	switch key {
	case KeyToggle:
		st.metaball = !st.metaball
		slog.Debug("mode switched", "mode", st.Mode())
		return ActionRedraw
	case KeyOrbitLeft:
		st.scene.AnimateCamera(st.rotateStep)
		return ActionRedraw
	case KeyOrbitRight:
		st.scene.AnimateCamera(-st.rotateStep)
		return ActionRedraw
	case KeyQuit, KeyEscape:
		return ActionQuit
	}
	return ActionNone
}

// Idle runs between frames.
func (st *State) Idle() {
	st.scene.Animate(idleStep)
}

// Frame uploads the uniforms of the active program and makes it current.
// In metaball mode the clock advances once per frame.
func (st *State) Frame(rayTrace, metaball Program) error {
	if st.metaball {
		st.time = WrapTime(st.time, st.timeStep)
		if err := st.scene.ApplyMetaball(metaball, st.time); err != nil {
			return fmt.Errorf("metaball uniforms: %w", err)
		}
		metaball.Use()
		return nil
	}
	if err := st.scene.ApplyRayTrace(rayTrace); err != nil {
		return fmt.Errorf("ray trace uniforms: %w", err)
	}
	rayTrace.Use()
	return nil
}

// WrapTime advances the metaball clock by dt, restarting from zero once a
// full period has passed.
func WrapTime(t, dt float32) float32 {
	t += dt
	if t > 2*math32.Pi {
		t = 0
	}
	return t
}
