/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import "github.com/go-gl/mathgl/mgl32"

type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

func NewSphere(center mgl32.Vec3, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Contains reports whether p lies strictly inside the sphere.
func (s *Sphere) Contains(p mgl32.Vec3) bool {
	return p.Sub(s.Center).Len() < s.Radius
}
