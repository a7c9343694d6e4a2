/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package shaders holds the GLSL programs drawn over the fullscreen quad.
package shaders

import _ "embed"

// FragmentOutput is the name of the colour output of every fragment program.
const FragmentOutput = "fragmentColor"

var (
	//go:embed quad.vert
	Vertex string

	//go:embed raytrace.frag
	RayTrace string

	//go:embed metaball.frag
	Metaball string
)
