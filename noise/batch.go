package noise

// ValueBatch evaluates value noise at each (xs[i], ys[i]) using the Default cache.
func ValueBatch(xs, ys []float64, seed int64) []float64 {
	return Default.ValueBatch(xs, ys, seed)
}

// PerlinBatch evaluates gradient noise at each (xs[i], ys[i]) using the Default cache.
func PerlinBatch(xs, ys []float64, seed int64) []float64 {
	return Default.PerlinBatch(xs, ys, seed)
}

// ValueBatch evaluates value noise at each (xs[i], ys[i]).
// Only the first min(len(xs), len(ys)) points are evaluated.
// Results match Value at the same coordinates exactly.
func (c *Cache) ValueBatch(xs, ys []float64, seed int64) []float64 {
	table := c.ValueTable(seed, c.size)
	n := min(len(xs), len(ys))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = valueAt(table, xs[i], ys[i])
	}
	return out
}

// PerlinBatch evaluates gradient noise at each (xs[i], ys[i]).
// Only the first min(len(xs), len(ys)) points are evaluated.
func (c *Cache) PerlinBatch(xs, ys []float64, seed int64) []float64 {
	table := c.GradientTable(seed, c.size)
	n := min(len(xs), len(ys))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = perlinAt(table, xs[i], ys[i])
	}
	return out
}

// ValueGrid samples value noise for every pixel of a w×h grid.
// Pixel (px, py) maps to noise coordinate (px*scale+offX, py*scale+offY);
// the result is row-major: out[py*w+px].
func (c *Cache) ValueGrid(w, h int, scale, offX, offY float64, seed int64) []float64 {
	table := c.ValueTable(seed, c.size)
	return sampleGrid(w, h, scale, offX, offY, func(x, y float64) float64 {
		return valueAt(table, x, y)
	})
}

// PerlinGrid samples gradient noise for every pixel of a w×h grid.
// See ValueGrid for the coordinate mapping.
func (c *Cache) PerlinGrid(w, h int, scale, offX, offY float64, seed int64) []float64 {
	table := c.GradientTable(seed, c.size)
	return sampleGrid(w, h, scale, offX, offY, func(x, y float64) float64 {
		return perlinAt(table, x, y)
	})
}

// ValueGrid samples value noise over a pixel grid using the Default cache.
func ValueGrid(w, h int, scale, offX, offY float64, seed int64) []float64 {
	return Default.ValueGrid(w, h, scale, offX, offY, seed)
}

// PerlinGrid samples gradient noise over a pixel grid using the Default cache.
func PerlinGrid(w, h int, scale, offX, offY float64, seed int64) []float64 {
	return Default.PerlinGrid(w, h, scale, offX, offY, seed)
}

func sampleGrid(w, h int, scale, offX, offY float64, at func(x, y float64) float64) []float64 {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]float64, w*h)
	for py := 0; py < h; py++ {
		ny := float64(py)*scale + offY
		row := out[py*w : (py+1)*w]
		for px := range row {
			row[px] = at(float64(px)*scale+offX, ny)
		}
	}
	return out
}
