/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package graphics runs an SDL window with an OpenGL 4.1 core context and
// drives a Handler from its event loop.
package graphics

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// Handler receives the window lifecycle. Embed BaseHandler and CoreMethods
// and override what is needed.
type Handler interface {
	Init(canvas *Canvas) error
	Events(event sdl.Event) bool
	OnUpdate()
	OnDraw(canvas *Canvas)

	Quit()
	Running() bool
	Destroy()
}

// BaseHandler provides no-op lifecycle callbacks.
type BaseHandler struct{}

func (BaseHandler) Init(*Canvas) error    { return nil }
func (BaseHandler) Events(sdl.Event) bool { return false }
func (BaseHandler) OnUpdate()             {}
func (BaseHandler) OnDraw(*Canvas)        {}

// CoreMethods tracks whether the loop should keep running and the cleanup
// functions to run when it stops.
type CoreMethods struct {
	quit       bool
	destroyers []func()
}

func (c *CoreMethods) Quit()                  { c.quit = true }
func (c *CoreMethods) Running() bool          { return !c.quit }
func (c *CoreMethods) AddDestroyer(fn func()) { c.destroyers = append(c.destroyers, fn) }

// Destroy runs the destroyers in reverse registration order.
func (c *CoreMethods) Destroy() {
	for i := len(c.destroyers) - 1; i >= 0; i-- {
		c.destroyers[i]()
	}
	c.destroyers = nil
}

// Canvas is the drawing surface handed to the handler.
type Canvas struct {
	window *sdl.Window
	title  string
	width  int32
	height int32
	frames FrameTimer
}

func (c *Canvas) Size() (int32, int32) { return c.width, c.height }
func (c *Canvas) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (c *Canvas) writeFrameRate() {
	c.window.SetTitle(fmt.Sprintf("%s - %d msec", c.title, c.frames.Average().Milliseconds()))
}

// ErrorTrap aborts the loop on errors that leave the GL state unusable.
func ErrorTrap(err error) {
	if err != nil {
		slog.Error("fatal graphics error", "err", err)
		panic(err)
	}
}

// CheckGL returns the pending OpenGL error, if any.
func CheckGL(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%04x", op, code)
	}
	return nil
}

// Open creates the window and runs the event loop until the handler quits
// or the window is closed.
func Open(title string, width, height int32, handler Handler) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_CONTEXT_PROFILE_MASK, int(sdl.GL_CONTEXT_PROFILE_CORE)},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("set gl attribute %d: %w", a.attr, err)
		}
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		return fmt.Errorf("create gl context: %w", err)
	}
	defer sdl.GLDeleteContext(glContext)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init gl: %w", err)
	}
	if err := sdl.GLSetSwapInterval(1); err != nil {
		slog.Warn("vsync unavailable", "err", err)
	}
	slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Viewport(0, 0, width, height)
	canvas := &Canvas{window: window, title: title, width: width, height: height}

	if err := handler.Init(canvas); err != nil {
		handler.Destroy()
		return fmt.Errorf("init handler: %w", err)
	}
	defer handler.Destroy()

	lastTitle := time.Now()
	for handler.Running() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				handler.Quit()
				continue
			}
			handler.Events(event)
		}
		handler.OnUpdate()
		handler.OnDraw(canvas)
		window.GLSwap()

		now := time.Now()
		canvas.frames.Tick(now)
		if now.Sub(lastTitle) >= time.Second {
			lastTitle = now
			canvas.writeFrameRate()
			slog.Debug("frame time", "avg", canvas.frames.Average(), "frames", canvas.frames.Count())
		}
	}
	return nil
}
