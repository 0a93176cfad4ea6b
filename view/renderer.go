package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// demoBiomes is the checkerboard of biome rows shown by the preview.
var demoBiomes = []string{"Forest", "Forest", "Grassland", "Desert", "Desert", "Tundra", "Ocean"}

// Renderer draws the demo map and a few animated creatures using the
// generated sheets.
type Renderer struct {
	Cam    *Camera
	Sheets *Sheets

	MapW, MapH int
}

// NewRenderer creates a renderer over a small demo map.
func NewRenderer(cam *Camera, sheets *Sheets) *Renderer {
	return &Renderer{Cam: cam, Sheets: sheets, MapW: 24, MapH: 24}
}

// biomeAt picks the demo biome for a tile, deterministic per position.
func (r *Renderer) biomeAt(x, y int) string {
	return demoBiomes[(x/4+y/6)%len(demoBiomes)]
}

// Draw renders tiles back to front, then creatures, then floating
// particles. t is the animation clock in seconds; bob is an extra
// eased vertical offset for the particles.
func (r *Renderer) Draw(screen *ebiten.Image, t, bob float64) {
	tw := r.Cam.TileWidth
	minX, minY, maxX, maxY := r.Cam.VisibleTileRange(r.MapW, r.MapH)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			sx, sy := r.Cam.WorldToScreen(float64(x), float64(y))
			variants := r.Sheets.Terrain[r.biomeAt(x, y)]
			if len(variants) == 0 {
				r.drawFallbackTile(screen, sx, sy)
				continue
			}
			tile := variants[(x*7+y*13)%len(variants)]
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(r.Cam.Zoom, r.Cam.Zoom)
			op.GeoM.Translate(sx-float64(tw)/2*r.Cam.Zoom, sy)
			screen.DrawImage(tile, op)
		}
	}

	// A handful of creatures cycling their Walk frames in place.
	frame := int(t*8) % 8
	for i, pos := range [][2]float64{{8, 8}, {12, 10}, {10, 14}} {
		anim := []string{"Walk", "Idle", "Eat"}[i%3]
		frames := r.Sheets.Creature[anim]
		if len(frames) == 0 {
			continue
		}
		sx, sy := r.Cam.WorldToScreen(pos[0], pos[1])
		img := frames[frame%len(frames)]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.Cam.Zoom, r.Cam.Zoom)
		op.GeoM.Translate(sx-24*r.Cam.Zoom, sy-40*r.Cam.Zoom)
		screen.DrawImage(img, op)

		if heart := r.Sheets.Particles["heart"]; heart != nil {
			hop := &ebiten.DrawImageOptions{}
			hop.GeoM.Scale(r.Cam.Zoom, r.Cam.Zoom)
			hop.GeoM.Translate(sx+8*r.Cam.Zoom, sy-(60+bob)*r.Cam.Zoom)
			screen.DrawImage(heart, hop)
		}
	}
}

func (r *Renderer) drawFallbackTile(screen *ebiten.Image, sx, sy float64) {
	hw := float32(r.Cam.TileWidth) / 2 * float32(r.Cam.Zoom)
	hh := float32(r.Cam.TileHeight) / 2 * float32(r.Cam.Zoom)
	cx := float32(sx)
	cy := float32(sy) + hh
	clr := color.RGBA{255, 0, 255, 160}
	vector.StrokeLine(screen, cx, cy-hh, cx+hw, cy, 1, clr, false)
	vector.StrokeLine(screen, cx+hw, cy, cx, cy+hh, 1, clr, false)
	vector.StrokeLine(screen, cx, cy+hh, cx-hw, cy, 1, clr, false)
	vector.StrokeLine(screen, cx-hw, cy, cx, cy-hh, 1, clr, false)
}
