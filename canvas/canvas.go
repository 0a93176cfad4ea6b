// Package canvas owns the drawing surface for a single generation run.
// Every pipeline creates exactly one Canvas, draws into it through the
// gg context, and finalizes it exactly once with SavePNG.
package canvas

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// Canvas is an RGBA buffer plus the vector drawing context over it.
type Canvas struct {
	dc        *gg.Context
	w, h      int
	finalized bool
}

// New creates a transparent canvas of the given pixel size.
func New(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h), w: w, h: h}
}

// Ctx returns the drawing context. Painters draw through this.
func (c *Canvas) Ctx() *gg.Context { return c.dc }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Image returns the backing RGBA buffer. Intended for tests and for
// handing the finished buffer to other consumers (e.g. the preview).
func (c *Canvas) Image() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

// SavePNG encodes the canvas and writes it to path atomically: the
// encode goes to a temp file in the destination directory which is
// renamed into place, so a failed run never leaves a corrupt file.
// A canvas can only be finalized once.
func (c *Canvas) SavePNG(path string) error {
	if c.finalized {
		return fmt.Errorf("spriteforge/canvas: %s: canvas already finalized", path)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("spriteforge/canvas: create temp for %s: %w", path, err)
	}
	if err := png.Encode(tmp, c.dc.Image()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("spriteforge/canvas: encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("spriteforge/canvas: close temp for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("spriteforge/canvas: finalize %s: %w", path, err)
	}
	c.finalized = true
	return nil
}
