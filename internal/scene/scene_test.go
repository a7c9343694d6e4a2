/*
 * Copyright (C) 2023 by Jason Figge
 */

package scene

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

type recorder struct {
	ints   map[string]int32
	floats map[string]float32
	vecs   map[string]mgl32.Vec3
}

func newRecorder() *recorder {
	return &recorder{
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vecs:   map[string]mgl32.Vec3{},
	}
}

func (r *recorder) SetInt(name string, v int32)       { r.ints[name] = v }
func (r *recorder) SetFloat(name string, v float32)   { r.floats[name] = v }
func (r *recorder) SetVec3(name string, v mgl32.Vec3) { r.vecs[name] = v }

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d: want %v, got %v", i, want, got)
	}
}

func TestNewRoughMaterial(t *testing.T) {
	kd := mgl32.Vec3{0.3, 0.2, 0.1}
	m := NewRoughMaterial(kd, mgl32.Vec3{10, 10, 10}, 50)
	assertVec(t, kd.Mul(math32.Pi), m.Ka)
	assert.True(t, m.Rough)
	assert.False(t, m.Reflective)
	assert.Equal(t, float32(50), m.Shininess)
}

func TestNewSmoothMaterial(t *testing.T) {
	m := NewSmoothMaterial(mgl32.Vec3{0.9, 0.85, 0.8})
	assert.False(t, m.Rough)
	assert.True(t, m.Reflective)
}

func TestLightIsNormalized(t *testing.T) {
	l := NewLight(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{3, 3, 3}, mgl32.Vec3{0.4, 0.3, 0.3})
	assert.InDelta(t, 1, l.Direction.Len(), tol)
	assert.InDelta(t, l.Direction.X(), l.Direction.Z(), tol)
}

func TestCameraSet(t *testing.T) {
	var c Camera
	fov := 45 * math32.Pi / 180
	c.Set(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, fov)

	f := 2 * math32.Tan(fov/2)
	assertVec(t, mgl32.Vec3{f, 0, 0}, c.Right())
	assertVec(t, mgl32.Vec3{0, f, 0}, c.Up())
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), tol)

	r := c.Ray(0, 0)
	assertVec(t, mgl32.Vec3{0, 0, 2}, r.Start)
	assertVec(t, mgl32.Vec3{0, 0, -1}, r.Dir)
	assertVec(t, mgl32.Vec3{f, f, 0}, c.WindowPoint(1, 1))
}

func TestCameraAnimate(t *testing.T) {
	s := New()
	c := s.Camera()

	c.Animate(math32.Pi / 2)
	assertVec(t, mgl32.Vec3{2, 0, 0}, c.Eye())
	// The window stays perpendicular to the view direction.
	w := c.Eye().Sub(c.LookAt())
	assert.InDelta(t, 0, w.Dot(c.Right()), tol)
	assert.InDelta(t, 0, w.Dot(c.Up()), tol)
	assert.InDelta(t, 2*math32.Tan(c.FOV()/2), c.Up().Len(), tol)

	for i := 0; i < 3; i++ {
		c.Animate(math32.Pi / 2)
	}
	assertVec(t, mgl32.Vec3{0, 0, 2}, c.Eye())
}

func TestCameraAnimateOppositeDirections(t *testing.T) {
	s := New()
	start := s.Eye()
	s.AnimateCamera(0.1)
	assert.Greater(t, s.Eye().X(), start.X())
	s.AnimateCamera(-0.1)
	assertVec(t, start, s.Eye())
}

func TestBuild(t *testing.T) {
	s := New()
	assert.Len(t, s.Objects(), 3)
	assert.Len(t, s.Metaballs(), 6)
	assert.Len(t, s.Materials(), 2)
	require.NotNil(t, s.Light())
	for i, m := range s.Metaballs() {
		assert.Equal(t, s.Objects()[i%3].Center, m.Center)
	}

	// Rebuilding resets rather than appends.
	s.Build()
	assert.Len(t, s.Objects(), 3)
	assert.Len(t, s.Metaballs(), 6)
}

func TestApplyRayTrace(t *testing.T) {
	s := New()
	r := newRecorder()
	require.NoError(t, s.ApplyRayTrace(r))

	assert.Equal(t, int32(3), r.ints["nObjects"])
	for i, o := range s.Objects() {
		assert.Equal(t, o.Center, r.vecs[fmt.Sprintf("objects[%d].center", i)])
		assert.Equal(t, o.Radius, r.floats[fmt.Sprintf("objects[%d].radius", i)])
	}
	assert.Equal(t, int32(1), r.ints["materials[0].rough"])
	assert.Equal(t, int32(0), r.ints["materials[1].reflective"])
	assert.Equal(t, float32(50), r.floats["materials[1].shininess"])
	assert.Equal(t, s.Light().Direction, r.vecs["light.direction"])
	assert.Equal(t, s.Eye(), r.vecs["wEye"])
	assert.Contains(t, r.vecs, "wRight")
	assert.NotContains(t, r.floats, "time")
}

func TestApplyMetaball(t *testing.T) {
	s := New()
	r := newRecorder()
	require.NoError(t, s.ApplyMetaball(r, 1.25))

	assert.Equal(t, int32(6), r.ints["nObjects"])
	assert.Equal(t, float32(1.25), r.floats["time"])
	assert.Contains(t, r.vecs, "objects[5].center")
	assert.Contains(t, r.vecs, "light.La")
}

func TestApplyLimits(t *testing.T) {
	s := New()
	for len(s.objects) <= MaxObjects {
		s.objects = append(s.objects, NewSphere(mgl32.Vec3{}, 1))
	}
	assert.ErrorIs(t, s.ApplyRayTrace(newRecorder()), ErrTooManyObjects)

	s = New()
	s.materials = append(s.materials, NewSmoothMaterial(mgl32.Vec3{1, 1, 1}))
	assert.ErrorIs(t, s.ApplyMetaball(newRecorder(), 0), ErrTooManyMaterials)

	s = New()
	s.lights = nil
	assert.ErrorIs(t, s.ApplyRayTrace(newRecorder()), ErrNoLight)
	assert.ErrorIs(t, s.ApplyMetaball(newRecorder(), 0), ErrNoLight)
}

func TestSphereContains(t *testing.T) {
	sp := NewSphere(mgl32.Vec3{1, 0, 0}, 0.5)
	assert.True(t, sp.Contains(mgl32.Vec3{1.2, 0, 0}))
	assert.False(t, sp.Contains(mgl32.Vec3{0, 0, 0}))
}

func TestSetEyeKeepsBasisUntilSet(t *testing.T) {
	s := New()
	right := s.Camera().Right()
	s.SetEye(mgl32.Vec3{0, 0, 4})
	assert.Equal(t, mgl32.Vec3{0, 0, 4}, s.Eye())
	assert.Equal(t, right, s.Camera().Right())
}
