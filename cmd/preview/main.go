// preview opens a window over the generated assets: the terrain sheet
// tiled into a small demo map, creature frames cycling, and particle
// sprites floating above them. Arrow keys pan, +/- zooms.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/crittersim/spriteforge/view"
)

const (
	screenW = 1280
	screenH = 720
)

type game struct {
	cam      *view.Camera
	renderer *view.Renderer

	clock float64
	bob   *gween.Tween
	bobUp bool
	bobV  float64
}

func newGame(assetDir string) *game {
	cam := view.NewCamera(screenW, screenH)
	cam.CenterOn(10, 10)
	sheets := view.LoadSheets(assetDir)
	return &game{
		cam:      cam,
		renderer: view.NewRenderer(cam, sheets),
		bob:      gween.New(0, 12, 1.2, ease.InOutSine),
	}
}

func (g *game) Update() error {
	const dt = 1.0 / 60
	g.clock += dt

	pan := 6.0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.cam.Pan(-pan, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.cam.Pan(pan, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.cam.Pan(0, -pan)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.cam.Pan(0, pan)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.cam.SetZoom(g.cam.Zoom + 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.cam.SetZoom(g.cam.Zoom - 0.25)
	}

	// Ping-pong the particle bob between 0 and 12 pixels.
	v, done := g.bob.Update(dt)
	g.bobV = float64(v)
	if done {
		if g.bobUp {
			g.bob = gween.New(0, 12, 1.2, ease.InOutSine)
		} else {
			g.bob = gween.New(12, 0, 1.2, ease.InOutSine)
		}
		g.bobUp = !g.bobUp
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.clock, g.bobV)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("spriteforge preview  zoom %.2f  arrows pan, +/- zoom", g.cam.Zoom))
}

func (g *game) Layout(_, _ int) (int, int) { return screenW, screenH }

func main() {
	assets := flag.String("assets", "assets/sprites", "directory holding the generated sheets")
	flag.Parse()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("spriteforge preview")
	if err := ebiten.RunGame(newGame(*assets)); err != nil {
		log.Fatal(err)
	}
}
