/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Material mirrors the Material struct of both fragment programs.
type Material struct {
	Ka, Kd, Ks mgl32.Vec3
	Shininess  float32
	F0         mgl32.Vec3
	Rough      bool
	Reflective bool
}

// NewRoughMaterial returns a diffuse/specular material whose ambient
// reflectance is derived from the diffuse one.
func NewRoughMaterial(kd, ks mgl32.Vec3, shininess float32) *Material {
	return &Material{
		Ka:        kd.Mul(math32.Pi),
		Kd:        kd,
		Ks:        ks,
		Shininess: shininess,
		Rough:     true,
	}
}

// NewSmoothMaterial returns an ideal mirror with Fresnel reflectance f0 at
// normal incidence.
func NewSmoothMaterial(f0 mgl32.Vec3) *Material {
	return &Material{
		F0:         f0,
		Reflective: true,
	}
}
