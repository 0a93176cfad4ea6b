package view

import (
	"math"
	"testing"
)

func TestCamera_RoundTrip(t *testing.T) {
	c := NewCamera(1280, 720)
	c.CenterOn(10, 10)
	c.SetZoom(1.5)

	for _, p := range [][2]float64{{0, 0}, {10, 10}, {3.5, 7.25}, {23, 1}} {
		sx, sy := c.WorldToScreen(p[0], p[1])
		wx, wy := c.ScreenToWorld(sx, sy)
		if math.Abs(wx-p[0]) > 1e-9 || math.Abs(wy-p[1]) > 1e-9 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", p[0], p[1], wx, wy)
		}
	}
}

func TestCamera_CenterOnCentersScreen(t *testing.T) {
	c := NewCamera(800, 600)
	c.CenterOn(5, 9)
	sx, sy := c.WorldToScreen(5, 9)
	if sx != 400 || sy != 300 {
		t.Errorf("centered tile at (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestCamera_SetZoomClamps(t *testing.T) {
	c := NewCamera(800, 600)
	c.SetZoom(100)
	if c.Zoom != c.MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", c.Zoom, c.MaxZoom)
	}
	c.SetZoom(0)
	if c.Zoom != c.MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", c.Zoom, c.MinZoom)
	}
}

func TestCamera_VisibleTileRangeClamped(t *testing.T) {
	c := NewCamera(800, 600)
	c.CenterOn(0, 0)
	minX, minY, maxX, maxY := c.VisibleTileRange(16, 16)
	if minX < 0 || minY < 0 {
		t.Errorf("range min (%d, %d) below zero", minX, minY)
	}
	if maxX > 15 || maxY > 15 {
		t.Errorf("range max (%d, %d) beyond map", maxX, maxY)
	}
	if minX > maxX || minY > maxY {
		t.Errorf("empty range (%d..%d, %d..%d)", minX, maxX, minY, maxY)
	}
}
