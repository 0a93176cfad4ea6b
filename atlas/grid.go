// Package atlas lays out N semantic categories by M variants into one
// addressable sprite sheet. Cell geometry is never stored: every rect
// is recomputed from (row, variant, cell size), so the same indices
// always address the same pixels on both the write and the read side.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/crittersim/spriteforge/canvas"
	"github.com/crittersim/spriteforge/shapes"
)

// ErrOutOfRange reports a cell request outside the declared grid. It is
// fatal for the sheet being generated; cells never wrap or clip into a
// neighbor.
var ErrOutOfRange = errors.New("spriteforge/atlas: cell outside declared grid")

// Category is one semantic row of a sheet: an animation name, a biome,
// an icon type. Seed is the row's base color.
type Category struct {
	Name string
	Row  int
	Seed color.RGBA
}

// Painter fills one cell. The context is clipped to cell before the
// call, so a painter cannot write outside its rect. rng is scoped to
// this cell and seeded deterministically.
type Painter func(dc *gg.Context, cell image.Rectangle, cat Category, variant int, rng *rand.Rand)

// Grid declares a sheet layout: len(Categories) rows by Variants
// columns of CellW x CellH cells.
type Grid struct {
	Categories []Category
	Variants   int
	CellW      int
	CellH      int
}

// Rect computes the pixel rectangle of a cell. It is a pure function
// of its arguments and the grid's cell size.
func (g Grid) Rect(row, variant int) (image.Rectangle, error) {
	if row < 0 || row >= len(g.Categories) || variant < 0 || variant >= g.Variants {
		return image.Rectangle{}, fmt.Errorf("%w: row %d, variant %d in %dx%d grid",
			ErrOutOfRange, row, variant, len(g.Categories), g.Variants)
	}
	x0 := variant * g.CellW
	y0 := row * g.CellH
	return image.Rect(x0, y0, x0+g.CellW, y0+g.CellH), nil
}

// RectOf resolves a category by name and returns its cell rect.
func (g Grid) RectOf(name string, variant int) (image.Rectangle, error) {
	cat, ok := g.Category(name)
	if !ok {
		return image.Rectangle{}, fmt.Errorf("%w: unknown category %q", ErrOutOfRange, name)
	}
	return g.Rect(cat.Row, variant)
}

// Category returns the category with the given name.
func (g Grid) Category(name string) (Category, bool) {
	for _, c := range g.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Size returns the exact canvas size the grid tiles with no gaps.
func (g Grid) Size() (w, h int) {
	return g.Variants * g.CellW, len(g.Categories) * g.CellH
}

// NewCanvas allocates the one canvas this grid renders into.
func (g Grid) NewCanvas() *canvas.Canvas {
	w, h := g.Size()
	return canvas.New(w, h)
}

// PaintCell runs p inside the clipped rect of (row, variant). On an
// out-of-range request it fails before any canvas write.
func (g Grid) PaintCell(c *canvas.Canvas, row, variant int, p Painter, rng *rand.Rand) error {
	cell, err := g.Rect(row, variant)
	if err != nil {
		return err
	}
	dc := c.Ctx()
	dc.Push()
	dc.DrawRectangle(float64(cell.Min.X), float64(cell.Min.Y), float64(cell.Dx()), float64(cell.Dy()))
	dc.Clip()
	p(dc, cell, g.Categories[row], variant, rng)
	dc.Pop()
	return nil
}

// Generate fills every cell of the sheet. Painters are dispatched by
// category name; names with no painter fall back to a generic swatch
// and are logged, never skipped. Cells are independent, so generation
// order does not affect the output (the loop runs sequentially; the
// per-cell work is trivially parallelizable if it ever matters).
func (g Grid) Generate(c *canvas.Canvas, painters map[string]Painter, seed int64) error {
	cw, ch := c.Size()
	gw, gh := g.Size()
	if cw != gw || ch != gh {
		return fmt.Errorf("spriteforge/atlas: canvas %dx%d does not match grid %dx%d", cw, ch, gw, gh)
	}
	for _, cat := range g.Categories {
		p, ok := painters[cat.Name]
		if !ok {
			log.Printf("Warning: no painter for category %q, using generic swatch", cat.Name)
			p = PaintSwatch
		}
		for v := 0; v < g.Variants; v++ {
			rng := rand.New(rand.NewSource(seed + int64(cat.Row)*97561 + int64(v)))
			if err := g.PaintCell(c, cat.Row, v, p, rng); err != nil {
				return err
			}
		}
	}
	return nil
}

// PaintSwatch is the generic fallback cell: a disc of the category's
// seed color, clearly placeholder but never blank.
func PaintSwatch(dc *gg.Context, cell image.Rectangle, cat Category, _ int, _ *rand.Rand) {
	cx := float64(cell.Min.X+cell.Max.X) / 2
	cy := float64(cell.Min.Y+cell.Max.Y) / 2
	r := float64(min(cell.Dx(), cell.Dy()))/2 - 2
	shapes.Circle(dc, cx, cy, r, cat.Seed, color.RGBA{0, 0, 0, 255}, 1)
}
