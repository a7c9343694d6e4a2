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
	Epsilon  = 0.0001
	MaxDepth = 5
)

// Hit is a ray/sphere intersection. T is negative when there is none.
type Hit struct {
	T        float32
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Mat      int
}

var noHit = Hit{T: -1}

// Intersect returns the nearest intersection of ray with sphere in front
// of the ray origin.
func Intersect(sphere *scene.Sphere, ray scene.Ray) Hit {
	dist := ray.Start.Sub(sphere.Center)
	a := ray.Dir.Dot(ray.Dir)
	b := dist.Dot(ray.Dir) * 2
	c := dist.Dot(dist) - sphere.Radius*sphere.Radius
	discr := b*b - 4*a*c
	if discr < 0 {
		return noHit
	}
	sqrtDiscr := math32.Sqrt(discr)
	t1 := (-b + sqrtDiscr) / 2 / a
	t2 := (-b - sqrtDiscr) / 2 / a
	if t1 <= 0 {
		return noHit
	}
	hit := Hit{T: t1}
	if t2 > 0 {
		hit.T = t2
	}
	hit.Position = ray.Start.Add(ray.Dir.Mul(hit.T))
	hit.Normal = hit.Position.Sub(sphere.Center).Mul(1 / sphere.Radius)
	return hit
}

// Fresnel is Schlick's approximation of the Fresnel reflectance.
func Fresnel(f0 mgl32.Vec3, cosTheta float32) mgl32.Vec3 {
	return f0.Add(mgl32.Vec3{1, 1, 1}.Sub(f0).Mul(math32.Pow(cosTheta, 5)))
}

func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func mul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// RayTracer evaluates the ray tracing fragment program on the CPU.
type RayTracer struct {
	objects   []*scene.Sphere
	materials []*scene.Material
	light     *scene.Light
	camera    *scene.Camera
}

func NewRayTracer(s *scene.Scene) (*RayTracer, error) {
	if err := checkScene(s.Light(), s.Objects(), s.Materials()); err != nil {
		return nil, err
	}
	return &RayTracer{
		objects:   s.Objects(),
		materials: s.Materials(),
		light:     s.Light(),
		camera:    s.Camera(),
	}, nil
}

// FirstIntersect returns the closest hit along ray with its normal facing
// the ray. The first half of the objects use material 0, the rest 1.
func (rt *RayTracer) FirstIntersect(ray scene.Ray) Hit {
	best := noHit
	n := len(rt.objects)
	for o, object := range rt.objects {
		hit := Intersect(object, ray)
		if o < n/2 {
			hit.Mat = 0
		} else {
			hit.Mat = 1
		}
		if hit.T > 0 && (best.T < 0 || hit.T < best.T) {
			best = hit
		}
	}
	if ray.Dir.Dot(best.Normal) > 0 {
		best.Normal = best.Normal.Mul(-1)
	}
	return best
}

// ShadowIntersect reports whether anything blocks ray.
func (rt *RayTracer) ShadowIntersect(ray scene.Ray) bool {
	for _, object := range rt.objects {
		if Intersect(object, ray).T > 0 {
			return true
		}
	}
	return false
}

func (rt *RayTracer) Trace(ray scene.Ray) mgl32.Vec3 {
	weight := mgl32.Vec3{1, 1, 1}
	var outRadiance mgl32.Vec3
	for d := 0; d < MaxDepth; d++ {
		hit := rt.FirstIntersect(ray)
		if hit.T < 0 {
			return mul(weight, rt.light.La)
		}
		mat := rt.materials[hit.Mat]
		if mat.Rough {
			outRadiance = outRadiance.Add(mul(mul(weight, mat.Ka), rt.light.La))
			shadowRay := scene.Ray{
				Start: hit.Position.Add(hit.Normal.Mul(Epsilon)),
				Dir:   rt.light.Direction,
			}
			cosTheta := hit.Normal.Dot(rt.light.Direction)
			if cosTheta > 0 && !rt.ShadowIntersect(shadowRay) {
				le := mul(weight, rt.light.Le)
				outRadiance = outRadiance.Add(mul(le, mat.Kd).Mul(cosTheta))
				halfway := ray.Dir.Mul(-1).Add(rt.light.Direction).Normalize()
				if cosDelta := hit.Normal.Dot(halfway); cosDelta > 0 {
					outRadiance = outRadiance.Add(mul(le, mat.Ks).Mul(math32.Pow(cosDelta, mat.Shininess)))
				}
			}
		}
		if !mat.Reflective {
			return outRadiance
		}
		weight = mul(weight, Fresnel(mat.F0, ray.Dir.Mul(-1).Dot(hit.Normal)))
		ray.Start = hit.Position.Add(hit.Normal.Mul(Epsilon))
		ray.Dir = reflect(ray.Dir, hit.Normal)
	}
	return outRadiance
}

// Shade returns the colour of the window point at normalised device
// coordinates (x, y).
func (rt *RayTracer) Shade(x, y float32) mgl32.Vec3 {
	return rt.Trace(rt.camera.Ray(x, y))
}
