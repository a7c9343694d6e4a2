/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Ray struct {
	Start mgl32.Vec3
	Dir   mgl32.Vec3
}

// Camera is a pinhole camera. Right and Up span the camera window at
// LookAt and are scaled so that the window covers [-1,1] in both axes.
type Camera struct {
	eye    mgl32.Vec3
	lookAt mgl32.Vec3
	right  mgl32.Vec3
	up     mgl32.Vec3
	fov    float32
}

func (c *Camera) Set(eye, lookAt, vup mgl32.Vec3, fov float32) {
	c.eye = eye
	c.lookAt = lookAt
	c.fov = fov
	w := eye.Sub(lookAt)
	f := w.Len() * math32.Tan(fov/2)
	c.right = vup.Cross(w).Normalize().Mul(f)
	c.up = w.Cross(c.right).Normalize().Mul(f)
}

// Animate orbits the eye around the vertical axis through the look-at
// point by dt radians.
func (c *Camera) Animate(dt float32) {
	sin, cos := math32.Sincos(dt)
	dx := c.eye.X() - c.lookAt.X()
	dz := c.eye.Z() - c.lookAt.Z()
	eye := mgl32.Vec3{
		dx*cos + dz*sin + c.lookAt.X(),
		c.eye.Y(),
		-dx*sin + dz*cos + c.lookAt.Z(),
	}
	c.Set(eye, c.lookAt, c.up, c.fov)
}

func (c *Camera) Eye() mgl32.Vec3       { return c.eye }
func (c *Camera) SetEye(eye mgl32.Vec3) { c.eye = eye }
func (c *Camera) LookAt() mgl32.Vec3    { return c.lookAt }
func (c *Camera) Right() mgl32.Vec3     { return c.right }
func (c *Camera) Up() mgl32.Vec3        { return c.up }
func (c *Camera) FOV() float32          { return c.fov }

// WindowPoint maps normalised device coordinates onto the camera window.
func (c *Camera) WindowPoint(x, y float32) mgl32.Vec3 {
	return c.lookAt.Add(c.right.Mul(x)).Add(c.up.Mul(y))
}

// Ray returns the primary ray through the window point at (x, y).
func (c *Camera) Ray(x, y float32) Ray {
	return Ray{
		Start: c.eye,
		Dir:   c.WindowPoint(x, y).Sub(c.eye).Normalize(),
	}
}
