package raster

// Rect draws the border of the w×h rectangle whose top-left corner is (x, y).
// With fill set, the interior inside the 1-pixel border is painted as well.
func (fb *FrameBuffer) Rect(x, y, w, h int, r, g, b uint8, fill bool) {
	right := x + w - 1
	bottom := y + h - 1

	fb.Line(x, y, right, y, r, g, b)           // top
	fb.Line(x, y, x, bottom, r, g, b)          // left
	fb.Line(right, y, right, bottom, r, g, b)  // right
	fb.Line(x, bottom, right, bottom, r, g, b) // bottom

	if !fill {
		return
	}
	xs := max(0, x+1)
	xe := min(fb.width, right)
	ys := max(0, y+1)
	ye := min(fb.height, bottom)
	if xs >= xe || ys >= ye {
		return
	}
	for row := ys; row < ye; row++ {
		fb.fillRun(xs, xe, row, r, g, b)
	}
}

// Circle draws a circle of the given radius centred at (cx, cy).
//
// Filled circles cover every point with dx²+dy² <= radius². Outlines cover the band
// radius²-radius <= dx²+dy² <= radius²+radius, which keeps the ring roughly one pixel wide
// and matches existing rendered output.
func (fb *FrameBuffer) Circle(cx, cy, radius int, r, g, b uint8, fill bool) {
	r2 := radius * radius

	xs := max(0, cx-radius)
	xe := min(fb.width, cx+radius+1)
	ys := max(0, cy-radius)
	ye := min(fb.height, cy+radius+1)
	if xs >= xe || ys >= ye {
		return
	}

	lo, hi := r2-radius, r2+radius
	for y := ys; y < ye; y++ {
		dy := y - cy
		dy2 := dy * dy
		for x := xs; x < xe; x++ {
			dx := x - cx
			d2 := dx*dx + dy2
			var hit bool
			if fill {
				hit = d2 <= r2
			} else {
				hit = d2 >= lo && d2 <= hi
			}
			if hit {
				i := fb.offset(x, y)
				fb.pix[i] = r
				fb.pix[i+1] = g
				fb.pix[i+2] = b
			}
		}
	}
}
