/*
 * Copyright (C) 2023 by Jason Figge
 */

package trace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpu-raycasting/internal/scene"
)

func newMetaballs(t *testing.T, at float32) (*Metaballs, *scene.Scene) {
	t.Helper()
	s := scene.New()
	m, err := NewMetaballs(s, at)
	require.NoError(t, err)
	return m, s
}

func TestCenter(t *testing.T) {
	s := scene.New()
	blobs := s.Metaballs()
	assert.Equal(t, blobs[0].Center, Center(blobs, 0, 3))
	assertVec(t, mgl32.Vec3{0.6, 0.4, 0}, Center(blobs, 1, 0))
	assertVec(t, mgl32.Vec3{0, 0.5, 0}, Center(blobs, 2, 0))
	assertVec(t, mgl32.Vec3{0, 0.7, 0}, Center(blobs, 3, 0))
	assert.Equal(t, Center(blobs, 2, 1.3), Center(blobs, 4, 1.3))
	assertVec(t, mgl32.Vec3{0.5, 0, 0}, Center(blobs, 5, 0))
}

func TestField(t *testing.T) {
	m, _ := newMetaballs(t, 0)
	near := m.Field(mgl32.Vec3{0, 0, 0.05})
	far := m.Field(mgl32.Vec3{0, 0, 2})
	assert.Greater(t, near, float32(FieldThreshold))
	assert.Less(t, far, float32(FieldThreshold))
	assert.Greater(t, near, far)
}

func TestNormalPointsOutward(t *testing.T) {
	m, _ := newMetaballs(t, 0)
	n := m.Normal(mgl32.Vec3{0, 0, 0.1})
	assert.InDelta(t, 1, n.Len(), tol)
	assert.Greater(t, n.Z(), float32(0.9))
}

func TestMarchHitsCentralBlob(t *testing.T) {
	m, _ := newMetaballs(t, 0)
	q, ok := m.March(down(mgl32.Vec3{0, 0, 2}))
	require.True(t, ok)
	assert.Greater(t, q.Z(), float32(0))
	assert.LessOrEqual(t, q.Z(), float32(0.2))
}

func TestMarchMisses(t *testing.T) {
	m, _ := newMetaballs(t, 0)
	_, ok := m.March(scene.Ray{Start: mgl32.Vec3{0, 0, 2}, Dir: mgl32.Vec3{0, 0, 1}})
	assert.False(t, ok)
}

func TestShade(t *testing.T) {
	m, s := newMetaballs(t, 0)

	centre := m.Shade(0, 0)
	assert.NotEqual(t, Background, centre)
	ambient := mul(s.Materials()[0].Ka, s.Light().La)
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, centre[i], ambient[i])
	}

	inside := m.ShadeSurface(mgl32.Vec3{0, 0, 0.05}, m.camera.LookAt())
	assertVec(t, ambient, inside)
}

func TestMetaballsFollowTime(t *testing.T) {
	a, _ := newMetaballs(t, 0)
	b, _ := newMetaballs(t, 1.5)
	ray := scene.Ray{Start: mgl32.Vec3{0.6, 0.4, 2}, Dir: mgl32.Vec3{0, 0, -1}}
	_, hitA := a.March(ray)
	_, hitB := b.March(ray)
	assert.True(t, hitA)
	assert.NotEqual(t, hitA, hitB)
}
