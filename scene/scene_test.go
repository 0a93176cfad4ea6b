package scene

import "testing"

func TestProject_KnownPoints(t *testing.T) {
	p := NewProjector()
	cases := []struct {
		in           Point
		wantX, wantY float64
	}{
		{Point{0, 0}, 800, 200},
		{Point{400, 400}, 800, 400},
		{Point{100, 0}, 850, 225},
		{Point{0, 100}, 750, 225},
	}
	for _, c := range cases {
		got := p.Project(c.in)
		if got.X != c.wantX || got.Y != c.wantY {
			t.Errorf("Project(%v) = (%v, %v), want (%v, %v)", c.in, got.X, got.Y, c.wantX, c.wantY)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	p := Projector{ScaleX: 0.5, ScaleY: 0.25, OriginX: 800, OriginY: 200}
	in := Point{X: 123.456, Y: 789.012}
	a := p.Project(in)
	b := p.Project(in)
	if a != b {
		t.Errorf("Project called twice differs: %v vs %v", a, b)
	}
}

func TestDepthKey(t *testing.T) {
	if got := DepthKey(Point{X: 3, Y: 4}); got != 7 {
		t.Errorf("DepthKey(3,4) = %v, want 7", got)
	}
	near := DepthKey(Point{X: 10, Y: 10})
	far := DepthKey(Point{X: 1, Y: 2})
	if far >= near {
		t.Errorf("expected (1,2) to sort before (10,10): %v vs %v", far, near)
	}
}

func TestEntity_Trait(t *testing.T) {
	e := Entity{Traits: map[string]string{"species": "carnivore"}}
	if got := e.Trait("species", "herbivore"); got != "carnivore" {
		t.Errorf("Trait(species) = %q, want carnivore", got)
	}
	if got := e.Trait("emotion", "neutral"); got != "neutral" {
		t.Errorf("Trait(emotion) default = %q, want neutral", got)
	}
	var empty Entity
	if got := empty.Trait("anything", "fallback"); got != "fallback" {
		t.Errorf("Trait on nil map = %q, want fallback", got)
	}
}
