package raster

// Line draws a segment from (x0, y0) to (x1, y1) inclusive.
//
// Horizontal and vertical segments are written as clipped runs; everything else goes
// through integer Bresenham with a per-point bounds check. Both paths produce the same
// pixels for straight segments.
func (fb *FrameBuffer) Line(x0, y0, x1, y1 int, r, g, b uint8) {
	if y0 == y1 {
		fb.hline(x0, x1, y0, r, g, b)
		return
	}
	if x0 == x1 {
		fb.vline(x0, y0, y1, r, g, b)
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Pixel(x0, y0, r, g, b)
		if x0 == x1 && y0 == y1 {
			return
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

func (fb *FrameBuffer) hline(x0, x1, y int, r, g, b uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= fb.height {
		return
	}
	start := max(0, x0)
	end := min(fb.width, x1+1)
	if start < end {
		fb.fillRun(start, end, y, r, g, b)
	}
}

func (fb *FrameBuffer) vline(x, y0, y1 int, r, g, b uint8) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x < 0 || x >= fb.width {
		return
	}
	start := max(0, y0)
	end := min(fb.height, y1+1)
	for y := start; y < end; y++ {
		i := fb.offset(x, y)
		fb.pix[i] = r
		fb.pix[i+1] = g
		fb.pix[i+2] = b
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
