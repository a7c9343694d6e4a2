/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxObjects is the size of the objects[] uniform array in both
	// fragment programs.
	MaxObjects = 500
	// MaxMaterials is the size of the materials[] uniform array.
	MaxMaterials = 2
)

var (
	ErrTooManyObjects   = errors.New("too many objects")
	ErrTooManyMaterials = errors.New("too many materials")
	ErrNoLight          = errors.New("scene has no light")
)

// Uniforms receives shader uniform values keyed by their GLSL name.
type Uniforms interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func setMaterials(u Uniforms, materials []*Material) error {
	if len(materials) > MaxMaterials {
		return fmt.Errorf("%w: %d > %d", ErrTooManyMaterials, len(materials), MaxMaterials)
	}
	for i, m := range materials {
		u.SetVec3(fmt.Sprintf("materials[%d].ka", i), m.Ka)
		u.SetVec3(fmt.Sprintf("materials[%d].kd", i), m.Kd)
		u.SetVec3(fmt.Sprintf("materials[%d].ks", i), m.Ks)
		u.SetFloat(fmt.Sprintf("materials[%d].shininess", i), m.Shininess)
		u.SetVec3(fmt.Sprintf("materials[%d].F0", i), m.F0)
		u.SetInt(fmt.Sprintf("materials[%d].rough", i), boolInt(m.Rough))
		u.SetInt(fmt.Sprintf("materials[%d].reflective", i), boolInt(m.Reflective))
	}
	return nil
}

func setLight(u Uniforms, light *Light) {
	u.SetVec3("light.La", light.La)
	u.SetVec3("light.Le", light.Le)
	u.SetVec3("light.direction", light.Direction)
}

func setCamera(u Uniforms, camera *Camera) {
	u.SetVec3("wEye", camera.eye)
	u.SetVec3("wLookAt", camera.lookAt)
	u.SetVec3("wRight", camera.right)
	u.SetVec3("wUp", camera.up)
}

func setObjects(u Uniforms, objects []*Sphere) error {
	if len(objects) > MaxObjects {
		return fmt.Errorf("%w: %d > %d", ErrTooManyObjects, len(objects), MaxObjects)
	}
	u.SetInt("nObjects", int32(len(objects)))
	for i, o := range objects {
		u.SetVec3(fmt.Sprintf("objects[%d].center", i), o.Center)
		u.SetFloat(fmt.Sprintf("objects[%d].radius", i), o.Radius)
	}
	return nil
}
