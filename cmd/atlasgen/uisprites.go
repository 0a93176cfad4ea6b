package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/crittersim/spriteforge/canvas"
	"github.com/crittersim/spriteforge/shapes"
)

var outlineBlack = color.RGBA{0, 0, 0, 255}

// generateUISprites writes the standalone (non-sheet) UI sprites:
// health bar components and the three speech bubble styles.
func generateUISprites(dir string) error {
	sprites := []struct {
		name string
		w, h int
		fn   func(dc *gg.Context, w, h int)
	}{
		{"health_bar_bg", 100, 20, healthBarBG},
		{"health_bar_fill", 100, 20, healthBarFill},
		{"health_bar_frame", 100, 20, healthBarFrame},
		{"speech_bubble", 128, 96, speechBubble},
		{"thought_bubble", 128, 96, thoughtBubble},
		{"shout_bubble", 128, 96, shoutBubble},
	}
	for _, s := range sprites {
		cv := canvas.New(s.w, s.h)
		s.fn(cv.Ctx(), s.w, s.h)
		path := filepath.Join(dir, s.name+".png")
		if err := cv.SavePNG(path); err != nil {
			return err
		}
		fmt.Println("Generated", path)
	}
	return nil
}

func healthBarBG(dc *gg.Context, w, h int) {
	dc.SetColor(color.RGBA{50, 50, 50, 255})
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
}

// healthBarFill is a green-to-red gradient; the HUD crops it to the
// current health fraction.
func healthBarFill(dc *gg.Context, w, h int) {
	for i := 0; i < w; i++ {
		t := float64(i) * 1.5
		dc.SetColor(color.RGBA{
			R: uint8(math.Min(255, t)),
			G: uint8(math.Max(0, 255-t)),
			A: 255,
		})
		dc.DrawRectangle(float64(i), 0, 1, float64(h))
		dc.Fill()
	}
}

func healthBarFrame(dc *gg.Context, w, h int) {
	dc.SetColor(color.RGBA{200, 200, 200, 255})
	dc.SetLineWidth(2)
	dc.DrawRectangle(1, 1, float64(w)-2, float64(h)-2)
	dc.Stroke()
}

func speechBubble(dc *gg.Context, _, _ int) {
	shapes.RoundedPanel(dc, 10, 10, 108, 60, 15, color.White, outlineBlack, 2)
	shapes.Polygon(dc, []shapes.Pt{{X: 30, Y: 65}, {X: 40, Y: 65}, {X: 25, Y: 85}}, color.White, outlineBlack, 2)
}

func thoughtBubble(dc *gg.Context, _, _ int) {
	fill := color.RGBA{240, 240, 255, 255}
	// Cloud puffs around the main body.
	puffs := [][3]float64{
		{20, 20, 7.5}, {30, 15, 9}, {50, 12, 10}, {70, 15, 9},
		{90, 20, 7.5}, {100, 30, 7.5}, {95, 45, 7.5}, {85, 55, 7.5},
		{65, 60, 7.5}, {45, 60, 7.5}, {25, 55, 7.5}, {15, 45, 7.5},
	}
	for _, p := range puffs {
		shapes.Circle(dc, p[0], p[1], p[2], fill, outlineBlack, 1)
	}
	shapes.Ellipse(dc, 64, 40, 49, 25, fill, nil, 0)
	// Trailing thought dots.
	for i, r := range []float64{4, 3, 2} {
		shapes.Circle(dc, 30, 75+float64(i)*10, r, fill, outlineBlack, 1)
	}
}

func shoutBubble(dc *gg.Context, _, _ int) {
	fill := color.RGBA{255, 240, 240, 255}
	pts := make([]shapes.Pt, 0, 20)
	for i := 0; i < 20; i++ {
		a := float64(i) / 20 * 2 * math.Pi
		r := 45.0
		if i%2 == 1 {
			r = 35
		}
		pts = append(pts, shapes.Pt{X: 64 + r*math.Cos(a), Y: 40 + r*math.Sin(a)*0.7})
	}
	shapes.Polygon(dc, pts, fill, outlineBlack, 2)
	shapes.Polygon(dc, []shapes.Pt{{X: 50, Y: 60}, {X: 60, Y: 60}, {X: 45, Y: 85}}, fill, outlineBlack, 2)
}
