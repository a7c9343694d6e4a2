/*
 * Copyright (C) 2023 by Jason Figge
 */

package trace

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG renders a w x h frame with shader and stores it at path.
func WritePNG(ctx context.Context, path string, w, h int, shader Shader) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := Render(ctx, img, shader); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
