/*
 * Copyright (C) 2023 by Jason Figge
 */

package internal

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"gpu-raycasting/internal/config"
	"gpu-raycasting/internal/demo"
	"gpu-raycasting/internal/graphics"
	"gpu-raycasting/internal/scene"
	"gpu-raycasting/internal/shaders"
)

type Controller struct {
	graphics.BaseHandler
	graphics.CoreMethods
	cfg      config.Config
	state    *demo.State
	rayTrace *graphics.Program
	metaball *graphics.Program
	quad     *graphics.FullscreenQuad
}

func NewController(cfg config.Config) *Controller {
	return &Controller{
		cfg:   cfg,
		state: demo.New(scene.New(), cfg),
	}
}

func (c *Controller) Init(canvas *graphics.Canvas) error {
	var err error
	c.metaball, err = graphics.NewProgram("metaball", shaders.Vertex, shaders.Metaball, shaders.FragmentOutput)
	if err != nil {
		return err
	}
	c.AddDestroyer(c.metaball.Delete)

	c.rayTrace, err = graphics.NewProgram("raytrace", shaders.Vertex, shaders.RayTrace, shaders.FragmentOutput)
	if err != nil {
		return err
	}
	c.AddDestroyer(c.rayTrace.Delete)

	c.quad = graphics.NewFullscreenQuad()
	c.AddDestroyer(c.quad.Delete)

	w, h := canvas.Size()
	slog.Info("viewer ready", "width", w, "height", h, "mode", c.state.Mode())
	return graphics.CheckGL("init")
}

func (c *Controller) Events(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		return c.keyboardEvent(e)
	}
	return false
}

func (c *Controller) keyboardEvent(event *sdl.KeyboardEvent) bool {
	if event.State != sdl.PRESSED {
		return false
	}
	switch c.state.HandleKey(rune(event.Keysym.Sym)) {
	case demo.ActionQuit:
		c.Quit()
	case demo.ActionNone:
		return false
	}
	return true
}

func (c *Controller) OnUpdate() {
	c.state.Idle()
}

func (c *Controller) OnDraw(canvas *graphics.Canvas) {
	cc := c.cfg.ClearColor
	canvas.Clear(cc[0], cc[1], cc[2], cc[3])
	graphics.ErrorTrap(c.state.Frame(c.rayTrace, c.metaball))
	c.quad.Draw()
}
