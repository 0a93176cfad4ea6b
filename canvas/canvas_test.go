package canvas

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePNG_WritesDecodableImage(t *testing.T) {
	dir := t.TempDir()
	c := New(64, 32)
	c.Ctx().SetColor(color.RGBA{10, 20, 30, 255})
	c.Ctx().DrawRectangle(0, 0, 64, 32)
	c.Ctx().Fill()

	path := filepath.Join(dir, "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("saved size = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
}

func TestSavePNG_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	c := New(8, 8)
	if err := c.SavePNG(filepath.Join(dir, "out.png")); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temp file %q left behind", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestSavePNG_FinalizeOnce(t *testing.T) {
	dir := t.TempDir()
	c := New(8, 8)
	if err := c.SavePNG(filepath.Join(dir, "a.png")); err != nil {
		t.Fatalf("first SavePNG: %v", err)
	}
	if err := c.SavePNG(filepath.Join(dir, "b.png")); err == nil {
		t.Error("second SavePNG succeeded, want error (canvas finalized once)")
	}
}

func TestSavePNG_UnwritableDestination(t *testing.T) {
	c := New(8, 8)
	err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "deep", "out.png"))
	if err == nil {
		t.Fatal("SavePNG into missing directory succeeded, want error")
	}
	// A failed save must not consume the canvas.
	if err := c.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Errorf("SavePNG after failed attempt: %v", err)
	}
}

func TestNew_TransparentAndSized(t *testing.T) {
	c := New(16, 9)
	w, h := c.Size()
	if w != 16 || h != 9 {
		t.Errorf("Size() = (%d, %d), want (16, 9)", w, h)
	}
	img := c.Image()
	if img.RGBAAt(8, 4).A != 0 {
		t.Error("fresh canvas is not transparent")
	}
}
