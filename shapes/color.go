package shapes

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses "#rrggbb" (or "rrggbb") into an opaque RGBA.
// Malformed input yields magenta, the traditional placeholder color.
func ParseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{255, 0, 255, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{255, 0, 255, 255}
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: uint8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

// Shade shifts each channel by delta, clamping to [0, 255]. Positive
// lightens, negative darkens. Used for per-variant tile shades.
func Shade(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{clampU8(int(c.R) + delta), clampU8(int(c.G) + delta), clampU8(int(c.B) + delta), c.A}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, a}
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
