// mockup renders the cartoon isometric concept scene for the creature
// evolution prototype: biome tiles, trees, creatures with emotions and
// actions, resources, weather, and the UI overlay pass.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/crittersim/spriteforge/canvas"
	"github.com/crittersim/spriteforge/scene"
)

const (
	sceneW = 1600
	sceneH = 1000
	// seed drives every cosmetic jitter in the render; rerunning with
	// the same seed reproduces the image byte for byte.
	seed = 42
)

func main() {
	out := flag.String("out", "assets", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("mockup: %v", err)
	}

	cv := canvas.New(sceneW, sceneH)
	drawSky(cv.Ctx())

	comp := scene.NewCompositor(scene.NewProjector(), seed)
	scene.RegisterDefaults(comp)
	comp.Render(cv, buildManifest())

	path := filepath.Join(*out, "mockup_isometric.png")
	if err := cv.SavePNG(path); err != nil {
		log.Fatalf("mockup: %v", err)
	}
	fmt.Println("Generated", path)
}

// drawSky paints the background gradient before any entity draws.
func drawSky(dc *gg.Context) {
	grad := gg.NewLinearGradient(0, 0, 0, sceneH)
	grad.AddColorStop(0, color.RGBA{135, 206, 235, 255})
	grad.AddColorStop(1, color.RGBA{200, 228, 245, 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, sceneW, sceneH)
	dc.Fill()
}

// buildManifest assembles the scene. Order here is insertion order;
// the compositor's depth sort decides what actually draws first.
func buildManifest() []scene.Entity {
	var m []scene.Entity

	// Forest biome (left), desert biome (right), transition strip.
	for x := 100.0; x < 600; x += 64 {
		for y := 100.0; y < 600; y += 64 {
			shade := "#4a8b54"
			if int(x+y)%128 == 0 {
				shade = "#3a7d44"
			}
			m = append(m, tile(x, y, shade, "grass"))
		}
	}
	for x := 700.0; x < 1200; x += 64 {
		for y := 100.0; y < 600; y += 64 {
			shade := "#fad643"
			if int(x+y)%128 == 0 {
				shade = "#f4d03f"
			}
			m = append(m, tile(x, y, shade, "desert"))
		}
	}
	for y := 100.0; y < 600; y += 64 {
		m = append(m, tile(632, y, "#8b9556", "grass"))
	}

	for _, p := range [][2]float64{{200, 200}, {350, 150}, {450, 300}, {250, 400}} {
		m = append(m, scene.Entity{Kind: scene.KindTree, Pos: scene.Point{X: p[0], Y: p[1]}})
	}

	m = append(m,
		creature(300, 350, "herbivore", "happy", "eating"),
		creature(400, 400, "herbivore", "happy", "talking"),
		creature(500, 250, "carnivore", "angry", ""),
		creature(150, 450, "omnivore", "sad", ""),
		creature(350, 500, "herbivore", "happy", "sleeping"),
		creature(900, 300, "herbivore", "scared", ""),
		creature(1000, 350, "carnivore", "happy", ""),
	)

	m = append(m,
		resource(250, 300, "berries"),
		resource(400, 200, "water"),
		resource(950, 400, "cactus"),
	)

	// Light rain over the forest half. Placement jitter is part of the
	// manifest, so it is seeded here, not inside a painter.
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 20; i++ {
		x := 100 + rng.Float64()*500
		y := 100 + rng.Float64()*500
		m = append(m, scene.Entity{
			Kind:   scene.KindParticle,
			Pos:    scene.Point{X: x, Y: y},
			Traits: map[string]string{"particle": "rain"},
		})
	}

	// UI overlay pass: drawn last regardless of position. The health
	// bar, need icon and hearts anchor to the talking creature's
	// projected point; the rest is fixed screen space.
	m = append(m,
		ui(400, 400, "world", map[string]string{"ui": "healthbar", "health": "0.75"}),
		ui(400, 400, "world", map[string]string{"ui": "needicon"}),
		ui(400, 400, "world", map[string]string{"ui": "hearts"}),
		ui(1400, 150, "screen", map[string]string{"ui": "sun"}),
		ui(1200, 750, "screen", map[string]string{"ui": "panel", "lines": "Selected: Happy Herbivore\nAge: 12 days\nHealth: 75%\nHunger: 30%\nThirst: 45%\nEnergy: 80%\nGenetics: Fast, Social\nCurrent: Socializing"}),
		ui(1430, 200, "screen", map[string]string{"ui": "minimap"}),
		ui(800, 50, "screen", map[string]string{"ui": "title", "text": "Creature Evolution Sim - Cartoon Isometric View"}),
	)

	return m
}

func tile(x, y float64, shade, biome string) scene.Entity {
	return scene.Entity{
		Kind:   scene.KindTile,
		Pos:    scene.Point{X: x, Y: y},
		Traits: map[string]string{"color": shade, "biome": biome},
	}
}

func creature(x, y float64, species, emotion, action string) scene.Entity {
	t := map[string]string{"species": species, "emotion": emotion}
	if action != "" {
		t["action"] = action
	}
	return scene.Entity{Kind: scene.KindCreature, Pos: scene.Point{X: x, Y: y}, Traits: t}
}

func resource(x, y float64, kind string) scene.Entity {
	return scene.Entity{
		Kind:   scene.KindResource,
		Pos:    scene.Point{X: x, Y: y},
		Traits: map[string]string{"resource": kind},
	}
}

func ui(x, y float64, space string, traits map[string]string) scene.Entity {
	traits["space"] = space
	return scene.Entity{Kind: scene.KindUI, Pos: scene.Point{X: x, Y: y}, Traits: traits}
}
