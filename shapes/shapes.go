// Package shapes is the shared primitive library used by both the scene
// compositor and the atlas painters. Helpers know nothing about world
// coordinates, atlas cells, or draw order; they take pixel-space
// parameters and draw through the gg context they are handed.
package shapes

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Pt is a pixel-space point.
type Pt struct {
	X, Y float64
}

// Polygon fills pts with fill and, when lw > 0, strokes the outline.
func Polygon(dc *gg.Context, pts []Pt, fill, outline color.Color, lw float64) {
	if len(pts) < 3 {
		return
	}
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	paint(dc, fill, outline, lw)
}

// Diamond draws the isometric tile diamond centered at (cx, cy).
func Diamond(dc *gg.Context, cx, cy, halfW, halfH float64, fill, outline color.Color, lw float64) {
	Polygon(dc, []Pt{
		{cx, cy - halfH},
		{cx + halfW, cy},
		{cx, cy + halfH},
		{cx - halfW, cy},
	}, fill, outline, lw)
}

// Circle draws a filled circle with an optional outline.
func Circle(dc *gg.Context, cx, cy, r float64, fill, outline color.Color, lw float64) {
	dc.DrawCircle(cx, cy, r)
	paint(dc, fill, outline, lw)
}

// Ellipse draws a filled axis-aligned ellipse with an optional outline.
func Ellipse(dc *gg.Context, cx, cy, rx, ry float64, fill, outline color.Color, lw float64) {
	dc.DrawEllipse(cx, cy, rx, ry)
	paint(dc, fill, outline, lw)
}

// Line strokes a single segment.
func Line(dc *gg.Context, x0, y0, x1, y1 float64, c color.Color, lw float64) {
	dc.SetColor(c)
	dc.SetLineWidth(lw)
	dc.DrawLine(x0, y0, x1, y1)
	dc.Stroke()
}

// Mouth strokes an elliptical arc for a cartoon mouth. A happy mouth
// bows downward on screen (smile), an unhappy one bows upward.
func Mouth(dc *gg.Context, cx, cy, rx, ry float64, happy bool, c color.Color, lw float64) {
	a1, a2 := 0.15*math.Pi, 0.85*math.Pi
	if !happy {
		a1, a2 = 1.15*math.Pi, 1.85*math.Pi
	}
	dc.SetColor(c)
	dc.SetLineWidth(lw)
	dc.DrawEllipticalArc(cx, cy, rx, ry, a1, a2)
	dc.Stroke()
}

// BodyStack draws the "cute" two-circle creature silhouette: a round
// body at (cx, groundY-bodyR) with a smaller head stacked above it.
// Returns the head center so callers can place the face.
func BodyStack(dc *gg.Context, cx, groundY, bodyR float64, fill, outline color.Color, lw float64) (headX, headY float64) {
	bodyY := groundY - bodyR
	headR := bodyR * 0.8
	headY = bodyY - bodyR - headR*0.4
	Circle(dc, cx, bodyY, bodyR, fill, outline, lw)
	Circle(dc, cx, headY, headR, fill, outline, lw)
	return cx, headY
}

// Star draws an n-pointed star alternating between outer and inner radius.
func Star(dc *gg.Context, cx, cy float64, n int, outer, inner float64, fill color.Color) {
	pts := make([]Pt, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi*float64(i)/float64(n) - math.Pi/2
		pts = append(pts, Pt{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	Polygon(dc, pts, fill, nil, 0)
}

// Heart draws a filled heart of roughly 2*size width.
func Heart(dc *gg.Context, cx, cy, size float64, fill color.Color) {
	dc.DrawCircle(cx-size*0.5, cy-size*0.35, size*0.55)
	dc.SetColor(fill)
	dc.Fill()
	dc.DrawCircle(cx+size*0.5, cy-size*0.35, size*0.55)
	dc.Fill()
	Polygon(dc, []Pt{
		{cx - size, cy - size*0.2},
		{cx + size, cy - size*0.2},
		{cx, cy + size},
	}, fill, nil, 0)
}

// Droplet draws a water-drop diamond (pointed top, rounded feel).
func Droplet(dc *gg.Context, cx, cy, halfW, halfH float64, fill, outline color.Color, lw float64) {
	Polygon(dc, []Pt{
		{cx, cy - halfH},
		{cx + halfW, cy},
		{cx, cy + halfH},
		{cx - halfW, cy},
	}, fill, outline, lw)
}

// Bolt draws a lightning-bolt polygon inside a box of the given size
// centered at (cx, cy).
func Bolt(dc *gg.Context, cx, cy, halfW, halfH float64, fill, outline color.Color, lw float64) {
	Polygon(dc, []Pt{
		{cx - halfW*0.5, cy - halfH},
		{cx + halfW*0.5, cy - halfH*0.2},
		{cx, cy - halfH*0.2},
		{cx + halfW*0.5, cy + halfH},
		{cx - halfW*0.5, cy + halfH*0.2},
		{cx, cy + halfH*0.2},
	}, fill, outline, lw)
}

// Crescent draws a moon as a closed polygon: the outer arc of the full
// disc joined to the inner arc of an offset cutting disc.
func Crescent(dc *gg.Context, cx, cy, r float64, fill, outline color.Color, lw float64) {
	const steps = 24
	innerCX, innerCY, innerR := cx+r*0.45, cy-r*0.3, r*0.85
	pts := make([]Pt, 0, steps*2+2)
	// Outer arc, lower-left sweep of the full disc.
	for i := 0; i <= steps; i++ {
		a := math.Pi*0.45 + 1.1*math.Pi*float64(i)/steps
		pts = append(pts, Pt{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	// Inner arc traced back along the cutting disc.
	for i := steps; i >= 0; i-- {
		a := math.Pi*0.55 + 0.9*math.Pi*float64(i)/steps
		pts = append(pts, Pt{innerCX + innerR*math.Cos(a), innerCY + innerR*math.Sin(a)})
	}
	Polygon(dc, pts, fill, outline, lw)
}

// Gear draws a toothed disc.
func Gear(dc *gg.Context, cx, cy, r float64, teeth int, fill color.Color) {
	Circle(dc, cx, cy, r*0.65, fill, nil, 0)
	for i := 0; i < teeth; i++ {
		a := 2 * math.Pi * float64(i) / float64(teeth)
		x := cx + r*0.85*math.Cos(a)
		y := cy + r*0.85*math.Sin(a)
		Circle(dc, x, y, r*0.2, fill, nil, 0)
	}
}

// RoundedPanel draws a rounded rectangle panel with an outline.
func RoundedPanel(dc *gg.Context, x, y, w, h, radius float64, fill, outline color.Color, lw float64) {
	dc.DrawRoundedRectangle(x, y, w, h, radius)
	paint(dc, fill, outline, lw)
}

// Label draws s with its baseline-left at (x, y) using the given face.
func Label(dc *gg.Context, s string, x, y float64, c color.Color, face font.Face) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(s, x, y)
}

// LabelCentered draws s centered on (x, y).
func LabelCentered(dc *gg.Context, s string, x, y float64, c color.Color, face font.Face) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

func paint(dc *gg.Context, fill, outline color.Color, lw float64) {
	if fill != nil {
		dc.SetColor(fill)
		if outline != nil && lw > 0 {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if outline != nil && lw > 0 {
		dc.SetColor(outline)
		dc.SetLineWidth(lw)
		dc.Stroke()
	} else if fill == nil {
		dc.ClearPath()
	}
}
