package shapes

import (
	"image/color"
	"testing"

	"github.com/fogleman/gg"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#7cb342", color.RGBA{124, 179, 66, 255}},
		{"2a2a2a", color.RGBA{42, 42, 42, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"nothex", color.RGBA{255, 0, 255, 255}},
		{"#fff", color.RGBA{255, 0, 255, 255}},
	}
	for _, c := range cases {
		if got := ParseHex(c.in); got != c.want {
			t.Errorf("ParseHex(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("Lerp(t=0.5) = %v, want {100 50 25 255}", mid)
	}
	// Out-of-range t clamps rather than extrapolating.
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp(t=2) = %v, want %v", got, b)
	}
}

func TestShade_Clamps(t *testing.T) {
	c := color.RGBA{250, 5, 128, 255}
	light := Shade(c, 20)
	if light.R != 255 || light.G != 25 || light.B != 148 {
		t.Errorf("Shade(+20) = %v", light)
	}
	dark := Shade(c, -20)
	if dark.R != 230 || dark.G != 0 || dark.B != 108 {
		t.Errorf("Shade(-20) = %v", dark)
	}
	if light.A != 255 || dark.A != 255 {
		t.Error("Shade must not touch alpha")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{1, 2, 3, 255}, 80)
	if c != (color.RGBA{1, 2, 3, 80}) {
		t.Errorf("WithAlpha = %v", c)
	}
}

func TestPolygon_DrawsWithinBounds(t *testing.T) {
	dc := gg.NewContext(40, 40)
	Polygon(dc, []Pt{{10, 10}, {30, 10}, {20, 30}}, color.RGBA{255, 0, 0, 255}, nil, 0)
	img := dc.Image()
	// Centroid painted, far corner untouched.
	if _, _, _, a := img.At(20, 15).RGBA(); a == 0 {
		t.Error("triangle interior not painted")
	}
	if _, _, _, a := img.At(2, 2).RGBA(); a != 0 {
		t.Error("pixel far outside triangle was painted")
	}
}

func TestPolygon_DegenerateIsNoop(t *testing.T) {
	dc := gg.NewContext(10, 10)
	Polygon(dc, []Pt{{1, 1}, {2, 2}}, color.RGBA{255, 0, 0, 255}, nil, 0)
	if _, _, _, a := dc.Image().At(1, 1).RGBA(); a != 0 {
		t.Error("two-point polygon painted pixels")
	}
}

func TestBodyStack_HeadAboveBody(t *testing.T) {
	dc := gg.NewContext(100, 100)
	hx, hy := BodyStack(dc, 50, 90, 20, color.RGBA{124, 179, 66, 255}, color.RGBA{42, 42, 42, 255}, 2)
	if hx != 50 {
		t.Errorf("head x = %v, want 50", hx)
	}
	if hy >= 70 {
		t.Errorf("head y = %v, want above the body center (< 70)", hy)
	}
}
