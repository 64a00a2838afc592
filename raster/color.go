package raster

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Gray builds a Color with all three channels set to v.
func Gray(v uint8) Color { return Color{R: v, G: v, B: v} }

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Lerp blends linearly from c to o by t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}

// HSVToRGB converts hue in degrees [0, 360) with saturation and value in [0, 1].
// Channels are truncated, not rounded.
func HSVToRGB(h, s, v float64) Color {
	c := colorful.Hsv(h, s, v).Clamped()
	return Color{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255)}
}

// RGBToHSV returns hue in degrees [0, 360) with saturation and value in [0, 1].
func RGBToHSV(c Color) (h, s, v float64) {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return cf.Hsv()
}
