package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFB(t *testing.T, w, h int) *FrameBuffer {
	t.Helper()
	fb, err := New(w, h)
	require.NoError(t, err)
	return fb
}

func pixel(t *testing.T, fb *FrameBuffer, x, y int) Color {
	t.Helper()
	c, ok := fb.At(x, y)
	require.True(t, ok, "(%d, %d) out of bounds", x, y)
	return c
}

// setPixels returns every pixel that differs from black.
func setPixels(fb *FrameBuffer) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if c, _ := fb.At(x, y); c != Black {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestNewIsBlack(t *testing.T) {
	fb := newFB(t, 100, 100)
	assert.Equal(t, 100, fb.Width())
	assert.Equal(t, 100, fb.Height())
	assert.Len(t, fb.Pix(), 100*100*3)
	assert.Empty(t, setPixels(fb))
}

func TestNewInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := New(sz[0], sz[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
	assert.Panics(t, func() { MustNew(0, 0) })
}

func TestClear(t *testing.T) {
	fb := newFB(t, 100, 100)
	fb.Clear(255, 128, 64)
	for _, p := range [][2]int{{0, 0}, {50, 50}, {99, 99}} {
		assert.Equal(t, RGB(255, 128, 64), pixel(t, fb, p[0], p[1]))
	}

	fb.ClearGray(128)
	assert.Equal(t, Gray(128), pixel(t, fb, 0, 0))
	assert.Equal(t, Gray(128), pixel(t, fb, 99, 99))

	fb.ClearColor(White)
	assert.Equal(t, White, pixel(t, fb, 42, 17))
}

func TestPixel(t *testing.T) {
	fb := newFB(t, 100, 100)
	fb.Pixel(5, 5, 255, 0, 0)
	assert.Equal(t, RGB(255, 0, 0), pixel(t, fb, 5, 5))
	assert.Equal(t, Black, pixel(t, fb, 4, 5))

	before := append([]uint8(nil), fb.Pix()...)
	fb.Pixel(-1, 5, 1, 2, 3)
	fb.Pixel(5, -1, 1, 2, 3)
	fb.Pixel(100, 5, 1, 2, 3)
	fb.Pixel(5, 100, 1, 2, 3)
	assert.Equal(t, before, fb.Pix(), "out-of-range writes must be ignored")

	_, ok := fb.At(100, 0)
	assert.False(t, ok)
}

func TestHorizontalLine(t *testing.T) {
	fb := newFB(t, 10, 10)
	fb.Line(2, 5, 7, 5, 255, 255, 255)

	got := setPixels(fb)
	assert.Len(t, got, 6)
	for x := 2; x <= 7; x++ {
		assert.True(t, got[[2]int{x, 5}], "x=%d should be set", x)
	}
	assert.Equal(t, Black, pixel(t, fb, 1, 5))
	assert.Equal(t, Black, pixel(t, fb, 8, 5))
}

func TestDiagonalLine(t *testing.T) {
	fb := newFB(t, 10, 10)
	fb.Line(0, 0, 9, 9, 255, 255, 255)

	got := setPixels(fb)
	assert.Len(t, got, 10)
	for i := 0; i < 10; i++ {
		assert.True(t, got[[2]int{i, i}])
	}
}

func TestLineEndpointsAndReversal(t *testing.T) {
	fb := newFB(t, 40, 40)
	fb.Line(3, 4, 31, 17, 9, 9, 9)
	assert.Equal(t, Gray(9), pixel(t, fb, 3, 4))
	assert.Equal(t, Gray(9), pixel(t, fb, 31, 17))

	rev := newFB(t, 40, 40)
	rev.Line(31, 17, 3, 4, 9, 9, 9)
	assert.Len(t, setPixels(rev), len(setPixels(fb)))
}

func TestLineClipsOffscreen(t *testing.T) {
	fb := newFB(t, 10, 10)
	assert.NotPanics(t, func() {
		fb.Line(-50, 5, 50, 5, 1, 1, 1)
		fb.Line(5, -50, 5, 50, 1, 1, 1)
		fb.Line(-20, -20, 30, 30, 1, 1, 1)
		fb.Line(-5, -5, -1, -9, 1, 1, 1)
	})
	assert.Equal(t, Gray(1), pixel(t, fb, 0, 5))
	assert.Equal(t, Gray(1), pixel(t, fb, 9, 5))
	assert.Equal(t, Gray(1), pixel(t, fb, 5, 0))
	assert.Equal(t, Gray(1), pixel(t, fb, 5, 9))
}

// bresenham walks the general algorithm with no fast paths.
func bresenham(x0, y0, x1, y1 int) map[[2]int]bool {
	out := make(map[[2]int]bool)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		out[[2]int{x0, y0}] = true
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func TestStraightLinesMatchBresenham(t *testing.T) {
	tests := []struct{ x0, y0, x1, y1 int }{
		{2, 5, 7, 5},
		{7, 5, 2, 5},
		{4, 1, 4, 18},
		{4, 18, 4, 1},
		{0, 0, 19, 0},
		{3, 3, 3, 3},
	}
	for _, tt := range tests {
		fb := newFB(t, 20, 20)
		fb.Line(tt.x0, tt.y0, tt.x1, tt.y1, 255, 255, 255)
		assert.Equal(t, bresenham(tt.x0, tt.y0, tt.x1, tt.y1), setPixels(fb), "%+v", tt)
	}
}

func TestRectOutline(t *testing.T) {
	fb := newFB(t, 10, 10)
	fb.Rect(2, 2, 5, 4, 255, 255, 255, false)

	for _, p := range [][2]int{{2, 2}, {6, 2}, {2, 5}, {6, 5}, {4, 2}, {2, 3}} {
		assert.Equal(t, White, pixel(t, fb, p[0], p[1]), "border %v", p)
	}
	assert.Equal(t, Black, pixel(t, fb, 4, 3), "interior must stay unset")
	assert.Equal(t, Black, pixel(t, fb, 7, 2))
	assert.Equal(t, Black, pixel(t, fb, 2, 6))
	// Perimeter of a 5x4 rectangle.
	assert.Len(t, setPixels(fb), 14)
}

func TestRectFill(t *testing.T) {
	fb := newFB(t, 10, 10)
	fb.Rect(2, 2, 5, 4, 10, 20, 30, true)

	got := setPixels(fb)
	assert.Len(t, got, 5*4)
	for y := 2; y < 6; y++ {
		for x := 2; x < 7; x++ {
			assert.Equal(t, RGB(10, 20, 30), pixel(t, fb, x, y))
		}
	}
}

func TestRectPartiallyOffscreen(t *testing.T) {
	fb := newFB(t, 10, 10)
	assert.NotPanics(t, func() {
		fb.Rect(-3, -3, 8, 8, 5, 5, 5, true)
		fb.Rect(8, 8, 10, 10, 5, 5, 5, true)
	})
	assert.Equal(t, Gray(5), pixel(t, fb, 0, 0))
	assert.Equal(t, Gray(5), pixel(t, fb, 4, 4))
	assert.Equal(t, Gray(5), pixel(t, fb, 9, 9))
	assert.Equal(t, Black, pixel(t, fb, 5, 5))
}

func TestCircleFill(t *testing.T) {
	fb := newFB(t, 100, 100)
	fb.Circle(50, 50, 10, 255, 0, 0, true)

	assert.Equal(t, RGB(255, 0, 0), pixel(t, fb, 50, 50))
	assert.Equal(t, RGB(255, 0, 0), pixel(t, fb, 55, 50))
	assert.Equal(t, RGB(255, 0, 0), pixel(t, fb, 60, 50))
	assert.Equal(t, Black, pixel(t, fb, 50, 35))
	assert.Equal(t, Black, pixel(t, fb, 58, 58))
}

func TestCircleOutline(t *testing.T) {
	fb := newFB(t, 100, 100)
	fb.Circle(50, 50, 10, 255, 255, 255, false)

	assert.Equal(t, Black, pixel(t, fb, 50, 50), "centre of an outline stays unset")
	assert.Equal(t, Black, pixel(t, fb, 55, 50))
	for _, p := range [][2]int{{60, 50}, {40, 50}, {50, 60}, {50, 40}} {
		assert.Equal(t, White, pixel(t, fb, p[0], p[1]), "ring point %v", p)
	}
	for p := range setPixels(fb) {
		dx, dy := p[0]-50, p[1]-50
		d2 := dx*dx + dy*dy
		assert.True(t, d2 >= 90 && d2 <= 110, "%v outside the ring band", p)
	}
}

func TestCircleOffscreen(t *testing.T) {
	fb := newFB(t, 100, 100)
	fb.Clear(1, 2, 3)
	before := append([]uint8(nil), fb.Pix()...)
	fb.Circle(-100, -100, 10, 255, 255, 255, true)
	fb.Circle(500, 50, 10, 255, 255, 255, false)
	assert.Equal(t, before, fb.Pix())
}

func TestCircleClippedAtEdge(t *testing.T) {
	fb := newFB(t, 20, 20)
	assert.NotPanics(t, func() { fb.Circle(0, 0, 5, 9, 9, 9, true) })
	assert.Equal(t, Gray(9), pixel(t, fb, 0, 0))
	assert.Equal(t, Gray(9), pixel(t, fb, 5, 0))
	assert.Equal(t, Black, pixel(t, fb, 5, 5))
}

func TestFill(t *testing.T) {
	fb := newFB(t, 4, 3)
	fb.Fill(func(x, y int) Color { return RGB(uint8(x), uint8(y), 7) })
	assert.Equal(t, RGB(3, 2, 7), pixel(t, fb, 3, 2))
	assert.Equal(t, RGB(0, 1, 7), pixel(t, fb, 0, 1))
}

func TestToImageAndCopyRGBA(t *testing.T) {
	fb := newFB(t, 3, 2)
	fb.Pixel(2, 1, 10, 20, 30)

	img := fb.ToImage()
	assert.Equal(t, fb.Bounds(), img.Bounds())
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, img.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))

	dst := make([]color.RGBA, 6)
	fb.CopyRGBA(dst)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, dst[5])

	short := make([]color.RGBA, 2)
	fb.CopyRGBA(short)
	assert.Equal(t, color.RGBA{}, short[0], "short destinations are left alone")
}

func TestHSVRoundTrip(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    Color
	}{
		{0, 1, 1, RGB(255, 0, 0)},
		{120, 1, 1, RGB(0, 255, 0)},
		{240, 1, 1, RGB(0, 0, 255)},
		{0, 0, 1, White},
		{0, 0, 0, Black},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HSVToRGB(tt.h, tt.s, tt.v))
	}

	h, s, v := RGBToHSV(RGB(0, 0, 255))
	assert.InDelta(t, 240, h, 1e-9)
	assert.InDelta(t, 1, s, 1e-9)
	assert.InDelta(t, 1, v, 1e-9)
}

func TestColorLerp(t *testing.T) {
	a, b := Black, White
	assert.Equal(t, a, a.Lerp(b, -1))
	assert.Equal(t, b, a.Lerp(b, 2))
	assert.Equal(t, Gray(128), a.Lerp(b, 0.5))
}
