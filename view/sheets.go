package view

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/crittersim/spriteforge/atlas"
)

// Sheets holds the generated sprite sheets sliced into per-cell
// sub-images. Slicing reuses the same atlas.Grid rect math that laid
// the cells out, so reader and writer can never disagree about where
// a frame lives.
type Sheets struct {
	// Creature frames by animation name.
	Creature map[string][]*ebiten.Image
	// Terrain variants by biome name.
	Terrain map[string][]*ebiten.Image
	// Particles and emoji by cell name.
	Particles map[string]*ebiten.Image
	Emoji     map[string]*ebiten.Image
	// Icons by icon name.
	Icons map[string]*ebiten.Image
}

// LoadSheets loads every generated sheet from dir. Missing sheets are
// logged and skipped; the preview simply shows less.
func LoadSheets(dir string) *Sheets {
	s := &Sheets{
		Creature:  make(map[string][]*ebiten.Image),
		Terrain:   make(map[string][]*ebiten.Image),
		Particles: make(map[string]*ebiten.Image),
		Emoji:     make(map[string]*ebiten.Image),
		Icons:     make(map[string]*ebiten.Image),
	}

	if img := loadImage(filepath.Join(dir, "creature_atlas.png")); img != nil {
		sheet := atlas.CreatureSheet()
		for _, cat := range sheet.Grid.Categories {
			for v := 0; v < sheet.Grid.Variants; v++ {
				r, err := sheet.Grid.Rect(cat.Row, v)
				if err != nil {
					break
				}
				s.Creature[cat.Name] = append(s.Creature[cat.Name], img.SubImage(r).(*ebiten.Image))
			}
		}
	}

	if img := loadImage(filepath.Join(dir, "terrain_atlas.png")); img != nil {
		sheet := atlas.TerrainSheet()
		for _, cat := range sheet.Grid.Categories {
			for v := 0; v < sheet.Grid.Variants; v++ {
				r, err := sheet.Grid.Rect(cat.Row, v)
				if err != nil {
					break
				}
				s.Terrain[cat.Name] = append(s.Terrain[cat.Name], img.SubImage(r).(*ebiten.Image))
			}
		}
	}

	if img := loadImage(filepath.Join(dir, "particle_atlas.png")); img != nil {
		sliceNamed(img, atlas.ParticleSheet(), atlas.ParticleCellName, s.Particles)
	}
	if img := loadImage(filepath.Join(dir, "emoji_atlas.png")); img != nil {
		sliceNamed(img, atlas.EmojiSheet(), atlas.EmojiCellName, s.Emoji)
	}
	if img := loadImage(filepath.Join(dir, "icon_atlas.png")); img != nil {
		sheet := atlas.IconSheet()
		for _, cat := range sheet.Grid.Categories {
			r, err := sheet.Grid.Rect(cat.Row, 0)
			if err != nil {
				continue
			}
			s.Icons[cat.Name] = img.SubImage(r).(*ebiten.Image)
		}
	}

	log.Printf("Sheets: loaded %d creature anims, %d biomes, %d particles, %d emoji, %d icons",
		len(s.Creature), len(s.Terrain), len(s.Particles), len(s.Emoji), len(s.Icons))
	return s
}

// sliceNamed cuts a sheet whose cells carry individual names (emoji
// and particle sheets) into the destination map.
func sliceNamed(img *ebiten.Image, sheet atlas.Sheet, nameOf func(row, variant int) string, dst map[string]*ebiten.Image) {
	for _, cat := range sheet.Grid.Categories {
		for v := 0; v < sheet.Grid.Variants; v++ {
			r, err := sheet.Grid.Rect(cat.Row, v)
			if err != nil {
				break
			}
			dst[nameOf(cat.Row, v)] = img.SubImage(r).(*ebiten.Image)
		}
	}
}

func loadImage(path string) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: could not open sheet %s: %v", path, err)
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("Warning: could not decode sheet %s: %v", path, err)
		return nil
	}
	fmt.Println("  loaded", path)
	return ebiten.NewImageFromImage(img)
}
