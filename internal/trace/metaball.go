/*
 * Copyright (C) 2023 by Jason Figge
 */

package trace

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gpu-raycasting/internal/scene"
)

const (
	MarchSteps     = 800
	MarchStep      = 0.003
	FieldThreshold = 100
	normalDelta    = 0.001
)

// Background is the colour of rays that never reach the iso-surface.
var Background = mgl32.Vec3{0, 0, 0.01}

// Metaballs evaluates the metaball fragment program on the CPU.
type Metaballs struct {
	blobs    []*scene.Sphere
	material *scene.Material
	light    *scene.Light
	camera   *scene.Camera
	time     float32
}

func NewMetaballs(s *scene.Scene, t float32) (*Metaballs, error) {
	if err := checkScene(s.Light(), s.Metaballs(), s.Materials()); err != nil {
		return nil, err
	}
	return &Metaballs{
		blobs:    s.Metaballs(),
		material: s.Materials()[0],
		light:    s.Light(),
		camera:   s.Camera(),
		time:     t,
	}, nil
}

// Center returns the position of blob i at time t. Blobs 1 to 5 follow
// fixed periodic paths; every other blob stays at its sphere centre.
func Center(blobs []*scene.Sphere, i int, t float32) mgl32.Vec3 {
	switch i {
	case 1:
		return mgl32.Vec3{0.6 * math32.Cos(t*12), 0.4 * math32.Cos(t), 0}
	case 2, 4:
		return mgl32.Vec3{0, 0.5 * math32.Cos(t), 0}
	case 3:
		return mgl32.Vec3{0.4 * math32.Sin(t*0.3), 0.7 * math32.Cos(t*4), 0}
	case 5:
		return mgl32.Vec3{0.5 * math32.Cos(t), 0, 0}
	}
	return blobs[i].Center
}

// Field is the inverse square density of the static blobs at p.
func (m *Metaballs) Field(p mgl32.Vec3) float32 {
	var acc float32
	for _, b := range m.blobs {
		dist := p.Sub(b.Center).Len()
		acc += 1 / (dist * dist)
	}
	return acc
}

// Normal estimates the surface normal at p by forward differences of the
// static field.
func (m *Metaballs) Normal(p mgl32.Vec3) mgl32.Vec3 {
	f := m.Field(p)
	return mgl32.Vec3{
		f - m.Field(p.Add(mgl32.Vec3{normalDelta, 0, 0})),
		f - m.Field(p.Add(mgl32.Vec3{0, normalDelta, 0})),
		f - m.Field(p.Add(mgl32.Vec3{0, 0, normalDelta})),
	}.Normalize()
}

// March steps along ray until the animated field crosses the threshold.
// The running sum is tested after every blob, so a single close blob is
// enough to stop the march.
func (m *Metaballs) March(ray scene.Ray) (mgl32.Vec3, bool) {
	q := ray.Start
	for j := 0; j < MarchSteps; j++ {
		var acc float32
		for i := range m.blobs {
			dist := q.Sub(Center(m.blobs, i, m.time)).Len()
			acc += 1 / (dist * dist)
			if acc > FieldThreshold {
				return q, true
			}
		}
		q = q.Add(ray.Dir.Mul(MarchStep))
	}
	return q, false
}

// ShadeSurface lights the surface point q seen through window point p.
// Points inside any static sphere only receive ambient light.
func (m *Metaballs) ShadeSurface(q, p mgl32.Vec3) mgl32.Vec3 {
	normal := m.Normal(q)
	viewDir := m.camera.Eye().Sub(p).Normalize()
	lightDir := m.light.Direction.Normalize()
	halfway := lightDir.Add(viewDir).Normalize()

	ambient := mul(m.material.Ka, m.light.La)
	diffuse := mul(m.material.Kd, m.light.Le).Mul(math32.Max(normal.Dot(lightDir), 0))
	specAngle := math32.Max(normal.Dot(halfway), 0)
	specular := mul(m.material.Ks, m.light.Le).Mul(math32.Pow(specAngle, m.material.Shininess))

	for _, b := range m.blobs {
		if b.Contains(q) {
			return ambient
		}
	}
	return ambient.Add(diffuse).Add(specular)
}

func (m *Metaballs) Shade(x, y float32) mgl32.Vec3 {
	p := m.camera.WindowPoint(x, y)
	ray := scene.Ray{Start: m.camera.Eye(), Dir: p.Sub(m.camera.Eye()).Normalize()}
	q, ok := m.March(ray)
	if !ok {
		return Background
	}
	return m.ShadeSurface(q, p)
}
