/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package trace evaluates the fragment programs on the CPU. It backs the
// headless mode and lets the shading be checked without a GPU.
package trace

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"gpu-raycasting/internal/scene"
)

var errNoMaterial = errors.New("scene has no material")

// Shader returns the colour of a window point in normalised device
// coordinates.
type Shader interface {
	Shade(x, y float32) mgl32.Vec3
}

func checkScene(light *scene.Light, objects []*scene.Sphere, materials []*scene.Material) error {
	if light == nil {
		return scene.ErrNoLight
	}
	if len(objects) > scene.MaxObjects {
		return fmt.Errorf("%w: %d > %d", scene.ErrTooManyObjects, len(objects), scene.MaxObjects)
	}
	if n := len(materials); n > scene.MaxMaterials {
		return fmt.Errorf("%w: %d > %d", scene.ErrTooManyMaterials, n, scene.MaxMaterials)
	} else if n < scene.MaxMaterials {
		return fmt.Errorf("%w: need %d, have %d", errNoMaterial, scene.MaxMaterials, n)
	}
	return nil
}

// NDC maps the centre of pixel (px, py) of a w x h image to normalised
// device coordinates, y pointing up.
func NDC(px, py, w, h int) (float32, float32) {
	x := 2*(float32(px)+0.5)/float32(w) - 1
	y := 1 - 2*(float32(py)+0.5)/float32(h)
	return x, y
}

// RGBA clamps c to [0,1] and quantises it.
func RGBA(c mgl32.Vec3) color.RGBA {
	q := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: q(c[0]), G: q(c[1]), B: q(c[2]), A: 0xFF}
}

// Render shades every pixel of img. Rows are spread over one worker per
// available CPU.
func Render(ctx context.Context, img *image.RGBA, shader Shader) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for py := range rows {
				for px := 0; px < w; px++ {
					x, y := NDC(px, py, w, h)
					img.SetRGBA(b.Min.X+px, b.Min.Y+py, RGBA(shader.Shade(x, y)))
				}
			}
		}()
	}

	var err error
feed:
	for py := 0; py < h; py++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case rows <- py:
		}
	}
	close(rows)
	wg.Wait()
	return err
}
