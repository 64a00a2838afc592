// Package raster provides an RGB framebuffer with immediate-mode drawing primitives.
//
// Coordinates outside the buffer are clipped silently: no primitive ever fails or panics
// because of its arguments.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned when a framebuffer is created with a non-positive dimension.
var ErrInvalidSize = errors.New("raster: width and height must be positive")

// FrameBuffer is a fixed-size grid of RGB triples stored row-major, 3 bytes per pixel.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint8
}

// New creates a black framebuffer of the given size.
func New(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(width, height int) *FrameBuffer {
	fb, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return fb
}

// Width returns the width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Stride returns the number of bytes per row.
func (fb *FrameBuffer) Stride() int { return fb.width * 3 }

// Pix returns the backing RGB bytes. Writes through the slice are visible immediately.
func (fb *FrameBuffer) Pix() []uint8 { return fb.pix }

// Bounds returns the buffer rectangle.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

func (fb *FrameBuffer) offset(x, y int) int {
	return (y*fb.width + x) * 3
}

// Clear sets every pixel to (r, g, b).
func (fb *FrameBuffer) Clear(r, g, b uint8) {
	p := fb.pix
	for i := 0; i < len(p); i += 3 {
		p[i] = r
		p[i+1] = g
		p[i+2] = b
	}
}

// ClearGray sets every pixel to (v, v, v).
func (fb *FrameBuffer) ClearGray(v uint8) {
	fb.Clear(v, v, v)
}

// ClearColor sets every pixel to c.
func (fb *FrameBuffer) ClearColor(c Color) {
	fb.Clear(c.R, c.G, c.B)
}

// Pixel sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (fb *FrameBuffer) Pixel(x, y int, r, g, b uint8) {
	if !fb.inBounds(x, y) {
		return
	}
	i := fb.offset(x, y)
	fb.pix[i] = r
	fb.pix[i+1] = g
	fb.pix[i+2] = b
}

// SetColor sets the pixel at (x, y) to c. Out-of-range coordinates are ignored.
func (fb *FrameBuffer) SetColor(x, y int, c Color) {
	fb.Pixel(x, y, c.R, c.G, c.B)
}

// At returns the pixel at (x, y); ok is false outside the buffer.
func (fb *FrameBuffer) At(x, y int) (c Color, ok bool) {
	if !fb.inBounds(x, y) {
		return Color{}, false
	}
	i := fb.offset(x, y)
	return Color{R: fb.pix[i], G: fb.pix[i+1], B: fb.pix[i+2]}, true
}

// Fill shades every pixel with the color returned by shade.
func (fb *FrameBuffer) Fill(shade func(x, y int) Color) {
	for y := 0; y < fb.height; y++ {
		row := fb.pix[y*fb.Stride() : (y+1)*fb.Stride()]
		for x := 0; x < fb.width; x++ {
			c := shade(x, y)
			row[x*3] = c.R
			row[x*3+1] = c.G
			row[x*3+2] = c.B
		}
	}
}

// fillRun writes color to the half-open span [x0, x1) of row y. Callers clip.
func (fb *FrameBuffer) fillRun(x0, x1, y int, r, g, b uint8) {
	i := fb.offset(x0, y)
	for x := x0; x < x1; x++ {
		fb.pix[i] = r
		fb.pix[i+1] = g
		fb.pix[i+2] = b
		i += 3
	}
}

// ToImage copies the buffer into a new opaque RGBA image.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	src := fb.pix
	dst := img.Pix
	for i, j := 0, 0; i < len(src); i, j = i+3, j+4 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xFF
	}
	return img
}

// CopyRGBA writes the buffer into dst as opaque colors, row-major.
// dst must hold at least Width*Height entries; extra entries are left alone.
func (fb *FrameBuffer) CopyRGBA(dst []color.RGBA) {
	n := fb.width * fb.height
	if len(dst) < n {
		return
	}
	for i := 0; i < n; i++ {
		j := i * 3
		dst[i] = color.RGBA{R: fb.pix[j], G: fb.pix[j+1], B: fb.pix[j+2], A: 0xFF}
	}
}
