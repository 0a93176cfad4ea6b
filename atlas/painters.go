package atlas

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/crittersim/spriteforge/shapes"
)

var cellOutline = color.RGBA{0, 0, 0, 255}

func cellCenter(cell image.Rectangle) (cx, cy float64) {
	return float64(cell.Min.X+cell.Max.X) / 2, float64(cell.Min.Y+cell.Max.Y) / 2
}

// PaintCreatureFrame draws one placeholder animation frame: a round
// tinted creature with eyes. Walk rows get a bounce bump on even
// frames so the placeholder animation visibly cycles.
func PaintCreatureFrame(dc *gg.Context, cell image.Rectangle, cat Category, frame int, _ *rand.Rand) {
	ox, oy := float64(cell.Min.X), float64(cell.Min.Y)
	shapes.Ellipse(dc, ox+24, oy+24, 16, 16, cat.Seed, cellOutline, 1)

	eyeY := oy + 20
	shapes.Ellipse(dc, ox+16, eyeY, 2, 2, color.Black, nil, 0)
	shapes.Ellipse(dc, ox+32, eyeY, 2, 2, color.Black, nil, 0)

	if cat.Name == "Walk" && frame%2 == 0 {
		shapes.Ellipse(dc, ox+24, oy+39, 4, 4, cat.Seed, cellOutline, 1)
	}
}

// PaintBiomeTile draws an isometric diamond filling the cell, shaded
// per variant. Forest tiles get a canopy dot.
func PaintBiomeTile(dc *gg.Context, cell image.Rectangle, cat Category, variant int, _ *rand.Rand) {
	cx, cy := cellCenter(cell)
	halfW := float64(cell.Dx())/2 - 0.5
	halfH := float64(cell.Dy())/2 - 0.5
	fill := shapes.Shade(cat.Seed, (variant-2)*10)
	shapes.Diamond(dc, cx, cy, halfW, halfH, fill, cellOutline, 1)
	if cat.Name == "Forest" {
		shapes.Ellipse(dc, cx, cy, 4, 4, color.RGBA{0, 100, 0, 255}, nil, 0)
	}
}

// PaintEmojiFace draws the expression face for this row/column of the
// emoji sheet.
func PaintEmojiFace(dc *gg.Context, cell image.Rectangle, cat Category, variant int, _ *rand.Rand) {
	name := emojiNames[cat.Row][variant]
	cx, cy := cellCenter(cell)
	shapes.Circle(dc, cx, cy, 12, emojiColors[name], cellOutline, 1)

	// Eyes
	switch name {
	case "sleepy", "tired":
		shapes.Line(dc, cx-7, cy-4, cx-3, cy-4, color.Black, 2)
		shapes.Line(dc, cx+3, cy-4, cx+7, cy-4, color.Black, 2)
	case "happy", "excited":
		for _, dx := range []float64{-5, 5} {
			dc.SetColor(color.Black)
			dc.SetLineWidth(2)
			dc.DrawEllipticalArc(cx+dx, cy-3, 3, 3, math.Pi, 2*math.Pi)
			dc.Stroke()
		}
	default:
		shapes.Ellipse(dc, cx-5, cy-4, 2, 2, color.Black, nil, 0)
		shapes.Ellipse(dc, cx+5, cy-4, 2, 2, color.Black, nil, 0)
	}

	// Mouth
	switch name {
	case "happy", "excited", "playing", "love":
		shapes.Mouth(dc, cx, cy+4, 6, 4, true, color.Black, 2)
	case "sad", "sick":
		shapes.Mouth(dc, cx, cy+7, 6, 4, false, color.Black, 2)
	case "angry":
		shapes.Line(dc, cx-6, cy+5, cx+6, cy+5, color.Black, 2)
	case "surprised", "confused":
		shapes.Ellipse(dc, cx, cy+6, 2, 3, color.Black, nil, 0)
	}
}

// PaintParticleCell draws the particle for this row/column of the
// particle sheet.
func PaintParticleCell(dc *gg.Context, cell image.Rectangle, cat Category, variant int, _ *rand.Rand) {
	name := particleNames[cat.Row][variant]
	c := particleColors[name]
	cx, cy := cellCenter(cell)

	switch name {
	case "spark":
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			shapes.Line(dc, cx, cy, cx+12*math.Cos(a), cy+12*math.Sin(a), c, 2)
		}
	case "smoke", "dust":
		for _, p := range [][3]float64{{0, 0, 6}, {-5, -5, 4}, {5, -5, 4}, {-5, 5, 4}, {5, 5, 4}} {
			shapes.Circle(dc, cx+p[0], cy+p[1], p[2], shapes.WithAlpha(c, 100), nil, 0)
		}
	case "bubble":
		shapes.Circle(dc, cx, cy, 10, shapes.WithAlpha(c, 50), shapes.WithAlpha(c, 200), 2)
		shapes.Circle(dc, cx-4, cy-6, 2, color.RGBA{255, 255, 255, 200}, nil, 0)
	case "star":
		shapes.Star(dc, cx, cy, 5, 10, 5, c)
	case "heart":
		shapes.Heart(dc, cx, cy, 8, c)
	case "music":
		shapes.Ellipse(dc, cx-3, cy+6, 4, 3, c, nil, 0)
		shapes.Line(dc, cx+1, cy+6, cx+1, cy-8, c, 2)
		shapes.Line(dc, cx+1, cy-8, cx+7, cy-5, c, 2)
	default:
		shapes.Circle(dc, cx, cy, 8, shapes.WithAlpha(c, 180), nil, 0)
	}
}

// PaintIcon draws the procedural UI icon shape for the category.
func PaintIcon(dc *gg.Context, cell image.Rectangle, cat Category, _ int, _ *rand.Rand) {
	cx, cy := cellCenter(cell)
	c := cat.Seed
	switch iconTypes[cat.Name] {
	case "food":
		shapes.Circle(dc, cx, cy+2, 8, c, cellOutline, 1)
		dc.SetColor(color.RGBA{139, 69, 19, 255})
		dc.DrawRectangle(cx-2, cy-10, 4, 6)
		dc.Fill()
	case "droplet":
		shapes.Droplet(dc, cx, cy, 8, 10, c, cellOutline, 1)
	case "lightning":
		shapes.Bolt(dc, cx, cy, 8, 10, c, cellOutline, 1)
	case "people":
		for _, dx := range []float64{-7, 7} {
			shapes.Circle(dc, cx+dx, cy-5, 3, c, cellOutline, 1)
			dc.SetColor(c)
			dc.DrawRectangle(cx+dx-2, cy-2, 4, 10)
			dc.Fill()
		}
	case "moon":
		shapes.Crescent(dc, cx, cy, 8, c, cellOutline, 1)
	case "speech":
		shapes.Ellipse(dc, cx, cy-3, 10, 7, c, cellOutline, 1)
		shapes.Polygon(dc, []shapes.Pt{{X: cx - 4, Y: cy + 2}, {X: cx, Y: cy + 2}, {X: cx - 6, Y: cy + 10}}, c, cellOutline, 1)
	case "gear":
		shapes.Gear(dc, cx, cy, 10, 8, c)
	case "exclamation":
		dc.SetColor(c)
		dc.DrawRectangle(cx-2, cy-10, 4, 14)
		dc.Fill()
		shapes.Circle(dc, cx, cy+8, 2, c, nil, 0)
	default:
		PaintSwatch(dc, cell, cat, 0, nil)
	}
}
