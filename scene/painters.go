package scene

import (
	"image/color"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/crittersim/spriteforge/shapes"
)

var (
	colOutline = color.RGBA{42, 42, 42, 255}
	colInk     = color.RGBA{26, 48, 9, 255}
	colWater   = color.RGBA{79, 195, 247, 255}
	colFoliage = color.RGBA{45, 80, 22, 255}
)

// RegisterDefaults installs the painter set for the mockup scene.
func RegisterDefaults(c *Compositor) {
	c.Register(KindTile, PaintTile)
	c.Register(KindTree, PaintTree)
	c.Register(KindCreature, PaintCreature)
	c.Register(KindResource, PaintResource)
	c.Register(KindParticle, PaintParticle)
	c.Register(KindUI, PaintUI)
}

// PaintTile draws a biome tile diamond. Traits: color (hex fill),
// biome (grass|desert texture).
func PaintTile(dc *gg.Context, at ScreenPoint, e Entity, rng *rand.Rand) {
	cx, cy := at.X, at.Y+16
	fill := shapes.ParseHex(e.Trait("color", "#4a8b54"))
	shapes.Diamond(dc, cx, cy, 32, 16, fill, colOutline, 0.5)

	switch e.Trait("biome", "grass") {
	case "grass":
		for i := 0; i < 3; i++ {
			bx := cx + float64(rng.Intn(21)-10)
			by := cy + float64(rng.Intn(11)-5)
			shapes.Line(dc, bx, by, bx, by-4, colFoliage, 1)
		}
	case "desert":
		for i := 0; i < 5; i++ {
			bx := cx + float64(rng.Intn(31)-15)
			by := cy + float64(rng.Intn(11)-5)
			shapes.Circle(dc, bx, by, 1, color.RGBA{212, 165, 116, 255}, nil, 0)
		}
	}
}

// PaintTree draws a cartoon tree: trunk plus stacked canopy circles.
func PaintTree(dc *gg.Context, at ScreenPoint, _ Entity, _ *rand.Rand) {
	shapes.RoundedPanel(dc, at.X-8, at.Y-40, 16, 40, 4, color.RGBA{101, 67, 33, 255}, colOutline, 2)
	for _, c := range []struct{ r, dy float64 }{{26, -38}, {22, -52}, {16, -62}} {
		shapes.Circle(dc, at.X, at.Y+c.dy, c.r, colFoliage, colInk, 2)
	}
}

// PaintCreature draws the cute two-circle creature with its emotion
// and action dressing. Traits: species, emotion, action.
func PaintCreature(dc *gg.Context, at ScreenPoint, e Entity, rng *rand.Rand) {
	var body color.RGBA
	var size float64
	switch e.Trait("species", "herbivore") {
	case "carnivore":
		body, size = color.RGBA{231, 76, 60, 255}, 24
	case "omnivore":
		body, size = color.RGBA{139, 105, 20, 255}, 22
	default: // herbivore
		body, size = color.RGBA{124, 179, 66, 255}, 21
	}
	emotion := e.Trait("emotion", "neutral")
	action := e.Trait("action", "")

	shapes.Ellipse(dc, at.X, at.Y+4, size*1.3, size*0.55, color.RGBA{0, 0, 0, 50}, nil, 0)
	cx, headY := shapes.BodyStack(dc, at.X, at.Y, size, body, colOutline, 3)

	// Spots are a genetic variation, present on roughly half of draws.
	if rng.Float64() > 0.5 {
		for i := 0; i < 3; i++ {
			sx := cx + float64(rng.Intn(21)-10)
			sy := at.Y - size - float64(rng.Intn(int(size)))
			shapes.Circle(dc, sx, sy, 3, color.RGBA{42, 42, 42, 80}, nil, 0)
		}
	}

	eyeR := size * 0.32
	pupilY := headY - 2.0
	switch emotion {
	case "scared":
		pupilY = headY - 4 // looking up
	case "sad":
		pupilY = headY + 1 // looking down
	}
	for _, dx := range []float64{-8, 8} {
		if action == "sleeping" {
			shapes.Line(dc, cx+dx-3, headY-2, cx+dx+3, headY-2, colOutline, 2)
			continue
		}
		shapes.Circle(dc, cx+dx, headY-2, eyeR, color.White, colOutline, 2)
		shapes.Circle(dc, cx+dx, pupilY, eyeR*0.5, color.Black, nil, 0)
		if emotion == "happy" {
			shapes.Circle(dc, cx+dx-1.5, pupilY-1.5, 1.5, color.White, nil, 0)
		}
	}

	mouthY := headY + size*0.35
	switch emotion {
	case "happy":
		shapes.Mouth(dc, cx, mouthY, 9, 6, true, colOutline, 3)
		shapes.Circle(dc, cx-size*0.8, mouthY-2, 4, color.RGBA{255, 107, 107, 120}, nil, 0)
		shapes.Circle(dc, cx+size*0.8, mouthY-2, 4, color.RGBA{255, 107, 107, 120}, nil, 0)
	case "sad":
		shapes.Mouth(dc, cx, mouthY+3, 9, 6, false, colOutline, 3)
		shapes.Droplet(dc, cx-size*0.7, mouthY-4, 2, 4, colWater, nil, 0)
	case "angry":
		shapes.Line(dc, cx-13, headY-10, cx-4, headY-7, colOutline, 3)
		shapes.Line(dc, cx+4, headY-7, cx+13, headY-10, colOutline, 3)
		shapes.Line(dc, cx-6, mouthY, cx+6, mouthY, colOutline, 3)
	}

	switch action {
	case "eating":
		shapes.Circle(dc, cx, mouthY+2, 4, color.RGBA{231, 76, 60, 255}, nil, 0)
	case "sleeping":
		face := basicfont.Face7x13
		shapes.Label(dc, "Z", cx+size+8, headY-8, colWater, face)
		shapes.Label(dc, "z", cx+size+16, headY-16, colWater, face)
		shapes.Label(dc, "z", cx+size+22, headY-23, colWater, face)
	case "talking":
		bx, by := cx+size+12, headY-38
		shapes.RoundedPanel(dc, bx, by, 64, 30, 8, color.White, colOutline, 2)
		shapes.Polygon(dc, []shapes.Pt{{X: bx + 4, Y: by + 26}, {X: bx + 14, Y: by + 26}, {X: bx - 4, Y: by + 40}}, color.White, colOutline, 2)
		shapes.Heart(dc, bx+20, by+15, 6, color.RGBA{231, 76, 60, 255})
		shapes.Heart(dc, bx+42, by+15, 6, color.RGBA{255, 150, 200, 255})
	}
}

// PaintResource draws a food or water source. Trait: resource
// (berries|water|cactus).
func PaintResource(dc *gg.Context, at ScreenPoint, e Entity, rng *rand.Rand) {
	switch e.Trait("resource", "berries") {
	case "water":
		shapes.Ellipse(dc, at.X, at.Y, 20, 10, shapes.WithAlpha(colWater, 180), color.RGBA{30, 136, 229, 255}, 2)
		dc.SetColor(color.RGBA{30, 136, 229, 120})
		dc.SetLineWidth(1)
		dc.DrawEllipse(at.X, at.Y, 25, 12)
		dc.Stroke()
	case "cactus":
		shapes.RoundedPanel(dc, at.X-10, at.Y-40, 20, 40, 6, colFoliage, colInk, 2)
		for i := 0; i < 8; i++ {
			sy := at.Y - 38 + float64(i)*5
			shapes.Line(dc, at.X-12, sy, at.X-15, sy, color.Black, 1)
			shapes.Line(dc, at.X+12, sy, at.X+15, sy, color.Black, 1)
		}
	default: // berries
		shapes.Circle(dc, at.X, at.Y-10, 15, colFoliage, colInk, 2)
		for i := 0; i < 5; i++ {
			bx := at.X + float64(rng.Intn(21)-10)
			by := at.Y - 10 + float64(rng.Intn(11)-5)
			shapes.Circle(dc, bx, by, 3, color.RGBA{231, 76, 60, 255}, color.RGBA{139, 0, 0, 255}, 1)
		}
	}
}

// PaintParticle draws a single effect particle. Trait: particle
// (rain|heart|sparkle).
func PaintParticle(dc *gg.Context, at ScreenPoint, e Entity, _ *rand.Rand) {
	switch e.Trait("particle", "sparkle") {
	case "rain":
		shapes.Line(dc, at.X, at.Y, at.X-5, at.Y+20, shapes.WithAlpha(colWater, 80), 1)
	case "heart":
		shapes.Heart(dc, at.X, at.Y, 6, color.RGBA{255, 100, 150, 255})
	default:
		shapes.Star(dc, at.X, at.Y, 4, 6, 2, color.RGBA{255, 255, 100, 255})
	}
}

// PaintUI draws screen-anchored overlays. Trait "ui" selects the
// widget: healthbar, needicon, hearts, panel, minimap, title, sun.
func PaintUI(dc *gg.Context, at ScreenPoint, e Entity, _ *rand.Rand) {
	face := basicfont.Face7x13
	switch e.Trait("ui", "") {
	case "healthbar":
		frac, err := strconv.ParseFloat(e.Trait("health", "0.75"), 64)
		if err != nil || frac < 0 || frac > 1 {
			frac = 0.75
		}
		shapes.RoundedPanel(dc, at.X-20, at.Y-80, 40, 6, 2, color.RGBA{231, 76, 60, 255}, colOutline, 1)
		shapes.RoundedPanel(dc, at.X-20, at.Y-80, 40*frac, 6, 2, color.RGBA{76, 175, 80, 255}, nil, 0)
	case "needicon":
		shapes.Circle(dc, at.X-30, at.Y-70, 8, color.RGBA{255, 152, 0, 255}, colOutline, 2)
		shapes.Circle(dc, at.X-30, at.Y-69, 4, color.RGBA{200, 80, 40, 255}, nil, 0)
	case "hearts":
		for i := 0; i < 3; i++ {
			f := float64(i)
			shapes.Heart(dc, at.X+10, at.Y-90-f*10, 6-f*1.5,
				shapes.WithAlpha(color.RGBA{231, 76, 60, 255}, uint8(255-f*70)))
		}
	case "panel":
		shapes.RoundedPanel(dc, at.X, at.Y, 350, 200, 8, shapes.WithAlpha(color.RGBA{255, 255, 255, 255}, 230), colOutline, 3)
		for i, line := range strings.Split(e.Trait("lines", ""), "\n") {
			shapes.Label(dc, line, at.X+20, at.Y+28+float64(i)*22, colOutline, face)
		}
	case "minimap":
		shapes.RoundedPanel(dc, at.X, at.Y, 150, 100, 6, shapes.WithAlpha(color.RGBA{245, 245, 245, 255}, 230), colOutline, 2)
		dc.SetColor(color.RGBA{74, 139, 84, 255})
		dc.DrawRectangle(at.X+10, at.Y+30, 60, 40)
		dc.Fill()
		dc.SetColor(color.RGBA{250, 214, 67, 255})
		dc.DrawRectangle(at.X+80, at.Y+30, 60, 40)
		dc.Fill()
		dc.SetColor(color.RGBA{220, 40, 40, 255})
		dc.SetLineWidth(2)
		dc.DrawRectangle(at.X+50, at.Y+40, 50, 20)
		dc.Stroke()
	case "title":
		text := e.Trait("text", "Creature Evolution Sim")
		w := float64(len(text))*7 + 24
		shapes.RoundedPanel(dc, at.X-w/2, at.Y-14, w, 28, 8, shapes.WithAlpha(color.RGBA{255, 255, 255, 255}, 200), colOutline, 1)
		shapes.LabelCentered(dc, text, at.X, at.Y, colOutline, face)
	case "sun":
		for a := 0; a < 360; a += 45 {
			rad := float64(a) * math.Pi / 180
			shapes.Line(dc,
				at.X+60*math.Cos(rad), at.Y+60*math.Sin(rad),
				at.X+80*math.Cos(rad), at.Y+80*math.Sin(rad),
				color.RGBA{255, 160, 0, 255}, 3)
		}
		shapes.Circle(dc, at.X, at.Y, 50, color.RGBA{255, 213, 79, 255}, color.RGBA{255, 160, 0, 255}, 3)
	}
}
