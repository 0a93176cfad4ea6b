package atlas

import "image/color"

// Sheet bundles a grid with the painters that fill it and the file
// name it is saved under.
type Sheet struct {
	Name     string
	Grid     Grid
	Painters map[string]Painter
}

// CreatureSheet is the creature animation sheet: one row per animation,
// eight frames each, 48px cells (384x384 total).
func CreatureSheet() Sheet {
	anims := []struct {
		name string
		tint color.RGBA
	}{
		{"Idle", color.RGBA{255, 200, 200, 255}},
		{"Walk", color.RGBA{200, 255, 200, 255}},
		{"Run", color.RGBA{200, 200, 255, 255}},
		{"Eat", color.RGBA{255, 255, 200, 255}},
		{"Sleep", color.RGBA{200, 200, 200, 255}},
		{"Talk", color.RGBA{255, 200, 255, 255}},
		{"Attack", color.RGBA{255, 100, 100, 255}},
		{"Death", color.RGBA{100, 100, 100, 255}},
	}
	g := Grid{Variants: 8, CellW: 48, CellH: 48}
	painters := make(map[string]Painter, len(anims))
	for i, a := range anims {
		g.Categories = append(g.Categories, Category{Name: a.name, Row: i, Seed: a.tint})
		painters[a.name] = PaintCreatureFrame
	}
	return Sheet{Name: "creature_atlas", Grid: g, Painters: painters}
}

// TerrainSheet is the biome tile sheet: one row per biome, four shade
// variants, 64x32 isometric diamond cells.
func TerrainSheet() Sheet {
	biomes := []struct {
		name string
		base color.RGBA
	}{
		{"Forest", color.RGBA{34, 139, 34, 255}},
		{"Desert", color.RGBA{237, 201, 175, 255}},
		{"Grassland", color.RGBA{124, 252, 0, 255}},
		{"Tundra", color.RGBA{230, 230, 250, 255}},
		{"Ocean", color.RGBA{0, 119, 190, 255}},
	}
	g := Grid{Variants: 4, CellW: 64, CellH: 32}
	painters := make(map[string]Painter, len(biomes))
	for i, b := range biomes {
		g.Categories = append(g.Categories, Category{Name: b.name, Row: i, Seed: b.base})
		painters[b.name] = PaintBiomeTile
	}
	return Sheet{Name: "terrain_atlas", Grid: g, Painters: painters}
}

// emojiNames groups the sixteen expression faces into four semantic
// rows of four, which keeps the classic 128x128 sheet footprint.
var emojiNames = [4][4]string{
	{"happy", "sad", "angry", "neutral"},
	{"sleepy", "hungry", "love", "sick"},
	{"eating", "drinking", "working", "playing"},
	{"surprised", "confused", "excited", "tired"},
}

var emojiColors = map[string]color.RGBA{
	"happy": {255, 220, 0, 255}, "sad": {100, 150, 255, 255},
	"angry": {255, 100, 100, 255}, "neutral": {200, 200, 200, 255},
	"sleepy": {180, 180, 255, 255}, "hungry": {255, 200, 100, 255},
	"love": {255, 150, 200, 255}, "sick": {150, 255, 150, 255},
	"eating": {255, 180, 100, 255}, "drinking": {100, 200, 255, 255},
	"working": {200, 150, 100, 255}, "playing": {255, 100, 255, 255},
	"surprised": {255, 255, 100, 255}, "confused": {200, 100, 255, 255},
	"excited": {255, 200, 0, 255}, "tired": {150, 150, 150, 255},
}

// EmojiSheet is the creature expression sheet: 4 rows x 4 faces, 32px.
func EmojiSheet() Sheet {
	rows := []string{"emotions", "states", "actions", "reactions"}
	g := Grid{Variants: 4, CellW: 32, CellH: 32}
	painters := make(map[string]Painter, len(rows))
	for i, name := range rows {
		g.Categories = append(g.Categories, Category{Name: name, Row: i, Seed: emojiColors[emojiNames[i][0]]})
		painters[name] = PaintEmojiFace
	}
	return Sheet{Name: "emoji_atlas", Grid: g, Painters: painters}
}

var particleNames = [4][4]string{
	{"spark", "smoke", "bubble", "leaf"},
	{"star", "heart", "music", "dust"},
	{"poison", "ice", "fire", "electric"},
	{"sweat", "anger", "confetti", "glow"},
}

var particleColors = map[string]color.RGBA{
	"spark": {255, 255, 100, 255}, "smoke": {150, 150, 150, 255},
	"bubble": {100, 200, 255, 255}, "leaf": {100, 200, 50, 255},
	"star": {255, 255, 255, 255}, "heart": {255, 100, 150, 255},
	"music": {200, 100, 255, 255}, "dust": {200, 180, 150, 255},
	"poison": {100, 255, 100, 255}, "ice": {200, 230, 255, 255},
	"fire": {255, 150, 50, 255}, "electric": {255, 255, 150, 255},
	"sweat": {150, 200, 255, 255}, "anger": {255, 100, 100, 255},
	"confetti": {255, 100, 255, 255}, "glow": {255, 255, 200, 255},
}

// ParticleSheet is the effect particle sheet: 4 rows x 4 types, 32px.
func ParticleSheet() Sheet {
	rows := []string{"basic", "effects", "status", "misc"}
	g := Grid{Variants: 4, CellW: 32, CellH: 32}
	painters := make(map[string]Painter, len(rows))
	for i, name := range rows {
		g.Categories = append(g.Categories, Category{Name: name, Row: i, Seed: particleColors[particleNames[i][0]]})
		painters[name] = PaintParticleCell
	}
	return Sheet{Name: "particle_atlas", Grid: g, Painters: painters}
}

// iconTypes maps each need/state icon to the procedural shape that
// draws it.
var iconTypes = map[string]string{
	"hunger": "food", "thirst": "droplet", "energy": "lightning",
	"social": "people", "sleeping": "moon", "eating": "food",
	"talking": "speech", "working": "gear", "alert": "exclamation",
}

// IconSheet is the UI need/state icon strip: one 32px cell per icon.
func IconSheet() Sheet {
	icons := []struct {
		name string
		c    color.RGBA
	}{
		{"hunger", color.RGBA{255, 150, 50, 255}},
		{"thirst", color.RGBA{100, 200, 255, 255}},
		{"energy", color.RGBA{255, 255, 100, 255}},
		{"social", color.RGBA{255, 100, 255, 255}},
		{"sleeping", color.RGBA{150, 150, 255, 255}},
		{"eating", color.RGBA{200, 150, 100, 255}},
		{"talking", color.RGBA{100, 255, 100, 255}},
		{"working", color.RGBA{255, 200, 100, 255}},
		{"alert", color.RGBA{255, 100, 100, 255}},
	}
	g := Grid{Variants: 1, CellW: 32, CellH: 32}
	painters := make(map[string]Painter, len(icons))
	for i, ic := range icons {
		g.Categories = append(g.Categories, Category{Name: ic.name, Row: i, Seed: ic.c})
		painters[ic.name] = PaintIcon
	}
	return Sheet{Name: "icon_atlas", Grid: g, Painters: painters}
}

// EmojiCellName returns the face name packed at (row, variant) of the
// emoji sheet, or "" outside the grid.
func EmojiCellName(row, variant int) string {
	if row < 0 || row >= len(emojiNames) || variant < 0 || variant >= len(emojiNames[row]) {
		return ""
	}
	return emojiNames[row][variant]
}

// ParticleCellName returns the particle name packed at (row, variant)
// of the particle sheet, or "" outside the grid.
func ParticleCellName(row, variant int) string {
	if row < 0 || row >= len(particleNames) || variant < 0 || variant >= len(particleNames[row]) {
		return ""
	}
	return particleNames[row][variant]
}

// AllSheets returns every placeholder sheet this tool generates.
func AllSheets() []Sheet {
	return []Sheet{CreatureSheet(), TerrainSheet(), EmojiSheet(), ParticleSheet(), IconSheet()}
}
