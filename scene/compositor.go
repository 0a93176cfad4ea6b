package scene

import (
	"image/color"
	"log"
	"math/rand"
	"sort"

	"github.com/fogleman/gg"

	"github.com/crittersim/spriteforge/canvas"
	"github.com/crittersim/spriteforge/shapes"
)

// Painter renders one entity at its projected point. Painters must not
// read global state; all cosmetic randomness comes from rng, which is
// scoped to this one call.
type Painter func(dc *gg.Context, at ScreenPoint, e Entity, rng *rand.Rand)

// DrawCall is one entry of the ordered draw plan.
type DrawCall struct {
	Entity Entity
	At     ScreenPoint
	// Index is the entity's manifest position. It doubles as the rng
	// stream id so re-renders with the same seed are identical.
	Index int
}

// Compositor turns a manifest into a depth-correct draw sequence.
type Compositor struct {
	Proj Projector
	// Seed is the base for per-entity cosmetic randomness. It never
	// influences depth keys or geometry.
	Seed int64

	painters map[Kind]Painter
	fallback Painter
}

// NewCompositor creates a compositor with the generic placeholder
// fallback registered and no kind painters.
func NewCompositor(proj Projector, seed int64) *Compositor {
	return &Compositor{
		Proj:     proj,
		Seed:     seed,
		painters: make(map[Kind]Painter),
		fallback: paintPlaceholder,
	}
}

// Register installs the painter for a kind, replacing any previous one.
func (c *Compositor) Register(k Kind, p Painter) { c.painters[k] = p }

// SetFallback replaces the painter used for kinds with no registration.
func (c *Compositor) SetFallback(p Painter) { c.fallback = p }

// Plan produces the ordered draw sequence for a manifest:
//
//  1. world entities, stable-sorted ascending by depth key (ties keep
//     manifest order), each projected exactly once;
//  2. UI entities in manifest order, always after every world entity.
//
// UI entities with trait space=screen use their position as raw pixels;
// otherwise the position is projected like a world point, which is how
// an overlay anchors to an entity's projected point.
func (c *Compositor) Plan(manifest []Entity) []DrawCall {
	world := make([]DrawCall, 0, len(manifest))
	ui := make([]DrawCall, 0, 8)
	for i, e := range manifest {
		call := DrawCall{Entity: e, Index: i}
		if e.Kind == KindUI && e.Trait("space", "world") == "screen" {
			call.At = ScreenPoint{X: e.Pos.X, Y: e.Pos.Y}
		} else {
			call.At = c.Proj.Project(e.Pos)
		}
		if e.Kind == KindUI {
			ui = append(ui, call)
		} else {
			world = append(world, call)
		}
	}
	sort.SliceStable(world, func(i, j int) bool {
		return DepthKey(world[i].Entity.Pos) < DepthKey(world[j].Entity.Pos)
	})
	return append(world, ui...)
}

// Render executes the plan for manifest onto cv. Entities whose kind
// has no registered painter are drawn with the fallback and logged,
// never silently dropped.
func (c *Compositor) Render(cv *canvas.Canvas, manifest []Entity) {
	dc := cv.Ctx()
	for _, call := range c.Plan(manifest) {
		p, ok := c.painters[call.Entity.Kind]
		if !ok {
			log.Printf("Warning: no painter for kind %q, using placeholder", call.Entity.Kind)
			p = c.fallback
		}
		rng := rand.New(rand.NewSource(c.Seed + int64(call.Index)*1000003))
		p(dc, call.At, call.Entity, rng)
	}
}

// paintPlaceholder is the generic fallback: a magenta disc, loud enough
// to spot in any render.
func paintPlaceholder(dc *gg.Context, at ScreenPoint, _ Entity, _ *rand.Rand) {
	shapes.Circle(dc, at.X, at.Y, 12, color.RGBA{255, 0, 255, 255}, color.RGBA{42, 42, 42, 255}, 2)
}
