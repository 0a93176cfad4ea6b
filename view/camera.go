// Package view is a read-only preview layer over the generated assets:
// a camera, sheet slicing, and a live isometric draw of a demo biome
// map. It performs no simulation; it exists so the output of the
// generators can be inspected in context.
package view

import "math"

// Camera is the viewport into the preview's isometric world.
type Camera struct {
	X, Y    float64 // camera center in iso pixel space
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int

	TileWidth  int
	TileHeight int
}

// NewCamera creates a camera sized for the preview window.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:       1.0,
		MinZoom:    0.25,
		MaxZoom:    3.0,
		ScreenW:    screenW,
		ScreenH:    screenH,
		TileWidth:  64,
		TileHeight: 32,
	}
}

// Pan moves the camera by a pixel delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to the allowed range.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// CenterOn centers the camera on a world tile position.
func (c *Camera) CenterOn(wx, wy float64) {
	tw := float64(c.TileWidth)
	th := float64(c.TileHeight)
	c.X = (wx - wy) * (tw / 2)
	c.Y = (wx + wy) * (th / 2)
}

// WorldToScreen converts a world tile position to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	tw := float64(c.TileWidth)
	th := float64(c.TileHeight)
	isoX := (wx - wy) * (tw / 2)
	isoY := (wx + wy) * (th / 2)
	sx := (isoX-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (isoY-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts screen pixels back to world tile coordinates.
// It is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	tw := float64(c.TileWidth)
	th := float64(c.TileHeight)
	isoX := (sx-float64(c.ScreenW)/2)/c.Zoom + c.X
	isoY := (sy-float64(c.ScreenH)/2)/c.Zoom + c.Y
	wx := isoX/tw + isoY/th
	wy := isoY/th - isoX/tw
	return wx, wy
}

// VisibleTileRange returns the tile bounds that can appear on screen,
// padded and clamped to the map size.
func (c *Camera) VisibleTileRange(mapW, mapH int) (minX, minY, maxX, maxY int) {
	wx0, wy0 := c.ScreenToWorld(0, 0)
	wx1, wy1 := c.ScreenToWorld(float64(c.ScreenW), 0)
	wx2, wy2 := c.ScreenToWorld(0, float64(c.ScreenH))
	wx3, wy3 := c.ScreenToWorld(float64(c.ScreenW), float64(c.ScreenH))

	minXf := math.Min(math.Min(wx0, wx1), math.Min(wx2, wx3))
	minYf := math.Min(math.Min(wy0, wy1), math.Min(wy2, wy3))
	maxXf := math.Max(math.Max(wx0, wx1), math.Max(wx2, wx3))
	maxYf := math.Max(math.Max(wy0, wy1), math.Max(wy2, wy3))

	const pad = 2
	minX = int(math.Floor(minXf)) - pad
	minY = int(math.Floor(minYf)) - pad
	maxX = int(math.Ceil(maxXf)) + pad
	maxY = int(math.Ceil(maxYf)) + pad

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= mapW {
		maxX = mapW - 1
	}
	if maxY >= mapH {
		maxY = mapH - 1
	}
	return
}
