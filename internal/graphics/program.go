/*
 * Copyright (C) 2023 by Jason Figge
 */

package graphics

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex/fragment shader pair. Uniform writes go
// through glProgramUniform, so the program does not need to be current.
type Program struct {
	name      string
	id        uint32
	locations map[string]int32
}

// NewProgram compiles and links a program, binding output as the colour
// output of the fragment shader.
func NewProgram(name, vertexSource, fragmentSource, output string) (*Program, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s vertex shader: %w", name, err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s fragment shader: %w", name, err)
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.BindFragDataLocation(id, 0, gl.Str(output+"\x00"))
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link %s program: %v", name, strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(id, vertex)
	gl.DetachShader(id, fragment)

	slog.Debug("program linked", "name", name, "id", id)
	return &Program{name: name, id: id, locations: map[string]int32{}}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (p *Program) Use() { gl.UseProgram(p.id) }

func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
	p.id = 0
}

// location caches uniform locations. Uniforms the compiler dropped resolve
// to -1, which GL ignores on write.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Debug("inactive uniform", "program", p.name, "uniform", name)
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	gl.ProgramUniform1i(p.id, p.location(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.ProgramUniform1f(p.id, p.location(name), v)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.ProgramUniform3f(p.id, p.location(name), v[0], v[1], v[2])
}
