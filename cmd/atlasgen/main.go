// atlasgen generates every placeholder sprite sheet and standalone UI
// sprite for the creature evolution prototype.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/crittersim/spriteforge/atlas"
)

const seed = 42

func main() {
	out := flag.String("out", "assets", "output directory")
	flag.Parse()

	spritesDir := filepath.Join(*out, "sprites")
	uiDir := filepath.Join(*out, "ui")
	for _, dir := range []string{spritesDir, uiDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("atlasgen: %v", err)
		}
	}

	// Sheets are independent of each other: a failure aborts only the
	// sheet it happened in.
	failed := 0
	for _, sheet := range atlas.AllSheets() {
		if err := generateSheet(spritesDir, sheet); err != nil {
			log.Printf("atlasgen: %s: %v", sheet.Name, err)
			failed++
		}
	}

	if err := generateUISprites(uiDir); err != nil {
		log.Printf("atlasgen: ui sprites: %v", err)
		failed++
	}

	if failed > 0 {
		log.Fatalf("atlasgen: %d generation(s) failed", failed)
	}
	fmt.Println("All placeholder sheets generated in", *out)
}

func generateSheet(dir string, sheet atlas.Sheet) error {
	cv := sheet.Grid.NewCanvas()
	if err := sheet.Grid.Generate(cv, sheet.Painters, seed); err != nil {
		return err
	}
	path := filepath.Join(dir, sheet.Name+".png")
	if err := cv.SavePNG(path); err != nil {
		return err
	}
	fmt.Println("Generated", path)
	return nil
}
