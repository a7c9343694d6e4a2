/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is a directional light. Direction points towards the light.
type Light struct {
	Direction mgl32.Vec3
	Le        mgl32.Vec3
	La        mgl32.Vec3
}

func NewLight(direction, le, la mgl32.Vec3) *Light {
	return &Light{
		Direction: direction.Normalize(),
		Le:        le,
		La:        la,
	}
}
