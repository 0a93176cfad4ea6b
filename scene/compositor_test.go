package scene

import (
	"math/rand"
	"testing"

	"github.com/fogleman/gg"

	"github.com/crittersim/spriteforge/canvas"
)

func testCompositor() *Compositor {
	return NewCompositor(NewProjector(), 1)
}

func kinds(plan []DrawCall) []Kind {
	out := make([]Kind, len(plan))
	for i, c := range plan {
		out[i] = c.Entity.Kind
	}
	return out
}

func TestPlan_DepthOrder(t *testing.T) {
	manifest := []Entity{
		{Kind: KindTile, Pos: Point{0, 0}},
		{Kind: KindCreature, Pos: Point{5, 5}},
		{Kind: KindTile, Pos: Point{10, 0}},
	}
	plan := testCompositor().Plan(manifest)
	if len(plan) != 3 {
		t.Fatalf("plan length = %d, want 3", len(plan))
	}
	// Depth keys are 0, 10, 10: the creature and second tile tie, so
	// manifest order breaks the tie.
	if plan[0].Entity.Pos != (Point{0, 0}) {
		t.Errorf("plan[0] = %v, want tile at (0,0)", plan[0].Entity.Pos)
	}
	if plan[1].Entity.Kind != KindCreature {
		t.Errorf("plan[1] kind = %v, want creature (tie broken by insertion order)", plan[1].Entity.Kind)
	}
	if plan[2].Entity.Pos != (Point{10, 0}) {
		t.Errorf("plan[2] = %v, want tile at (10,0)", plan[2].Entity.Pos)
	}
}

func TestPlan_OrderIndependentOfInsertion(t *testing.T) {
	a := Entity{Kind: KindTile, Pos: Point{0, 0}}
	b := Entity{Kind: KindCreature, Pos: Point{2, 3}}
	c := Entity{Kind: KindTile, Pos: Point{6, 4}}

	forward := testCompositor().Plan([]Entity{a, b, c})
	reversed := testCompositor().Plan([]Entity{c, b, a})

	for i := range forward {
		if forward[i].Entity.Pos != reversed[i].Entity.Pos {
			t.Errorf("position %d: forward %v != reversed %v",
				i, forward[i].Entity.Pos, reversed[i].Entity.Pos)
		}
	}
}

func TestPlan_StableTies(t *testing.T) {
	manifest := []Entity{
		{Kind: KindTile, Pos: Point{3, 2}, Traits: map[string]string{"tag": "first"}},
		{Kind: KindTile, Pos: Point{2, 3}, Traits: map[string]string{"tag": "second"}},
		{Kind: KindTile, Pos: Point{0, 5}, Traits: map[string]string{"tag": "third"}},
	}
	plan := testCompositor().Plan(manifest)
	for i, want := range []string{"first", "second", "third"} {
		if got := plan[i].Entity.Trait("tag", ""); got != want {
			t.Errorf("tie at plan[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestPlan_UIAlwaysLast(t *testing.T) {
	manifest := []Entity{
		{Kind: KindUI, Pos: Point{0, 0}, Traits: map[string]string{"ui": "healthbar"}},
		{Kind: KindTile, Pos: Point{50, 50}},
		{Kind: KindCreature, Pos: Point{0, 0}},
	}
	plan := testCompositor().Plan(manifest)
	got := kinds(plan)
	want := []Kind{KindCreature, KindTile, KindUI}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plan kinds = %v, want %v", got, want)
		}
	}
}

func TestPlan_UIAnchorsToProjectedPoint(t *testing.T) {
	comp := testCompositor()
	anchor := Point{400, 400}
	manifest := []Entity{
		{Kind: KindCreature, Pos: anchor},
		{Kind: KindUI, Pos: anchor, Traits: map[string]string{"ui": "healthbar"}},
	}
	plan := comp.Plan(manifest)
	if plan[1].At != comp.Proj.Project(anchor) {
		t.Errorf("anchored UI at %v, want projected %v", plan[1].At, comp.Proj.Project(anchor))
	}
}

func TestPlan_ScreenSpaceUI(t *testing.T) {
	manifest := []Entity{
		{Kind: KindUI, Pos: Point{1200, 50}, Traits: map[string]string{"ui": "panel", "space": "screen"}},
	}
	plan := testCompositor().Plan(manifest)
	if plan[0].At != (ScreenPoint{1200, 50}) {
		t.Errorf("screen-space UI at %v, want (1200, 50)", plan[0].At)
	}
}

func TestPlan_ProjectsEachEntityOnce(t *testing.T) {
	comp := testCompositor()
	e := Entity{Kind: KindTile, Pos: Point{7, 9}}
	plan := comp.Plan([]Entity{e})
	if want := comp.Proj.Project(e.Pos); plan[0].At != want {
		t.Errorf("stored screen point %v, want %v", plan[0].At, want)
	}
}

func TestRender_UnknownKindUsesFallback(t *testing.T) {
	comp := testCompositor()
	calls := 0
	comp.SetFallback(func(_ *gg.Context, _ ScreenPoint, _ Entity, _ *rand.Rand) {
		calls++
	})
	cv := canvas.New(64, 64)
	comp.Render(cv, []Entity{
		{Kind: KindTile, Pos: Point{0, 0}},
		{Kind: KindCreature, Pos: Point{1, 1}},
	})
	if calls != 2 {
		t.Errorf("fallback called %d times, want 2 (entities must not be dropped)", calls)
	}
}

func TestRender_DeterministicForSameSeed(t *testing.T) {
	proj := Projector{ScaleX: 0.5, ScaleY: 0.25, OriginX: 128, OriginY: 120}
	manifest := []Entity{
		{Kind: KindCreature, Pos: Point{20, 30}, Traits: map[string]string{"species": "herbivore", "emotion": "happy"}},
		{Kind: KindResource, Pos: Point{60, 10}, Traits: map[string]string{"resource": "berries"}},
	}
	render := func() []byte {
		comp := NewCompositor(proj, 7)
		RegisterDefaults(comp)
		cv := canvas.New(256, 256)
		comp.Render(cv, manifest)
		return cv.Image().Pix
	}
	a, b := render(), render()
	if len(a) != len(b) {
		t.Fatalf("pixel buffer sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("renders differ at byte %d", i)
		}
	}
}

func TestRender_SeedChangesOnlyCosmetics(t *testing.T) {
	manifest := []Entity{
		{Kind: KindTile, Pos: Point{5, 5}},
		{Kind: KindTile, Pos: Point{1, 1}},
	}
	p1 := NewCompositor(NewProjector(), 1).Plan(manifest)
	p2 := NewCompositor(NewProjector(), 99).Plan(manifest)
	for i := range p1 {
		if p1[i].Entity.Pos != p2[i].Entity.Pos || p1[i].At != p2[i].At {
			t.Errorf("seed changed plan entry %d: %v vs %v", i, p1[i], p2[i])
		}
	}
}
