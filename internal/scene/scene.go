/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Scene struct {
	objects   []*Sphere
	metaballs []*Sphere
	lights    []*Light
	materials []*Material
	camera    Camera
}

// New returns a scene populated by Build.
func New() *Scene {
	s := &Scene{}
	s.Build()
	return s
}

// Build replaces the scene contents with the demo scene: three small
// spheres for the ray tracer, the same three twice over as metaballs,
// one directional light and two rough materials.
func (s *Scene) Build() {
	eye := mgl32.Vec3{0, 0, 2}
	vup := mgl32.Vec3{0, 1, 0}
	lookAt := mgl32.Vec3{0, 0, 0}
	fov := 45 * math32.Pi / 180
	s.camera.Set(eye, lookAt, vup, fov)

	s.lights = []*Light{
		NewLight(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{3, 3, 3}, mgl32.Vec3{0.4, 0.3, 0.3}),
	}

	kd, ks := mgl32.Vec3{0.3, 0.2, 0.1}, mgl32.Vec3{10, 10, 10}
	s.materials = []*Material{
		NewRoughMaterial(kd, ks, 50),
		NewRoughMaterial(kd, ks, 50),
	}

	centers := []mgl32.Vec3{{0, 0, 0}, {0, 0, -0.5}, {0.3, 0, -0.5}}
	s.objects = s.objects[:0]
	s.metaballs = s.metaballs[:0]
	for _, c := range centers {
		s.objects = append(s.objects, NewSphere(c, 0.1))
	}
	for i := 0; i < 2; i++ {
		for _, c := range centers {
			s.metaballs = append(s.metaballs, NewSphere(c, 0.1))
		}
	}
}

func (s *Scene) Objects() []*Sphere     { return s.objects }
func (s *Scene) Metaballs() []*Sphere   { return s.metaballs }
func (s *Scene) Materials() []*Material { return s.materials }
func (s *Scene) Camera() *Camera        { return &s.camera }

// Light returns the light used for shading, or nil when there is none.
func (s *Scene) Light() *Light {
	if len(s.lights) == 0 {
		return nil
	}
	return s.lights[0]
}

// ApplyRayTrace uploads the ray tracer's uniforms.
func (s *Scene) ApplyRayTrace(u Uniforms) error {
	light := s.Light()
	if light == nil {
		return ErrNoLight
	}
	if err := setObjects(u, s.objects); err != nil {
		return err
	}
	if err := setMaterials(u, s.materials); err != nil {
		return err
	}
	setLight(u, light)
	setCamera(u, &s.camera)
	return nil
}

// ApplyMetaball uploads the metaball raymarcher's uniforms for time t.
func (s *Scene) ApplyMetaball(u Uniforms, t float32) error {
	light := s.Light()
	if light == nil {
		return ErrNoLight
	}
	if err := setObjects(u, s.metaballs); err != nil {
		return err
	}
	if err := setMaterials(u, s.materials); err != nil {
		return err
	}
	setLight(u, light)
	u.SetFloat("time", t)
	setCamera(u, &s.camera)
	return nil
}

// Animate advances scene objects. The demo scene is static.
func (s *Scene) Animate(dt float32) {}

func (s *Scene) AnimateCamera(dt float32) { s.camera.Animate(dt) }

func (s *Scene) Eye() mgl32.Vec3       { return s.camera.Eye() }
func (s *Scene) SetEye(eye mgl32.Vec3) { s.camera.SetEye(eye) }
