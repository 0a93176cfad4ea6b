// Package scene composes world-space entity manifests into a single
// isometric render: project, depth-sort, dispatch painters, then draw
// screen-space UI overlays last.
package scene

import "fmt"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// ScreenPoint is a position in canvas pixels, derived from a Point by
// the projector and never mutated independently.
type ScreenPoint struct {
	X, Y float64
}

// Projector is the affine world-to-screen isometric transform:
//
//	sx = (x - y) * ScaleX + OriginX
//	sy = (x + y) * ScaleY + OriginY
//
// It is pure and total over finite inputs.
type Projector struct {
	ScaleX, ScaleY   float64
	OriginX, OriginY float64
}

// NewProjector returns the projector used by the mockup scene.
func NewProjector() Projector {
	return Projector{ScaleX: 0.5, ScaleY: 0.25, OriginX: 800, OriginY: 200}
}

// Project converts a world point to screen pixels.
func (p Projector) Project(w Point) ScreenPoint {
	return ScreenPoint{
		X: (w.X-w.Y)*p.ScaleX + p.OriginX,
		Y: (w.X+w.Y)*p.ScaleY + p.OriginY,
	}
}

// DepthKey orders world entities for isometric occlusion: smaller
// values are farther back and must be drawn first.
func DepthKey(p Point) float64 { return p.X + p.Y }

// Kind selects which painter handles an entity.
type Kind uint8

const (
	KindTile Kind = iota
	KindTree
	KindCreature
	KindResource
	KindParticle
	KindUI
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindTree:
		return "tree"
	case KindCreature:
		return "creature"
	case KindResource:
		return "resource"
	case KindParticle:
		return "particle"
	case KindUI:
		return "ui"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Entity is one manifest entry. It is immutable after creation: the
// compositor reads it, projects it, and paints it, nothing more.
//
// Trait keys in use: "species", "emotion", "action", "biome", "color",
// "resource", "particle", "ui", "space", and painter-specific extras.
type Entity struct {
	Kind   Kind
	Pos    Point
	Traits map[string]string
}

// Trait returns the named trait or def when unset.
func (e Entity) Trait(key, def string) string {
	if v, ok := e.Traits[key]; ok {
		return v
	}
	return def
}
