package noise

// Perlin returns classic 2D gradient noise mapped to [0, 1] using the Default cache.
func Perlin(x, y float64, seed int64) float64 {
	return Default.Perlin(x, y, seed)
}

// Perlin returns classic 2D gradient noise mapped to [0, 1].
func (c *Cache) Perlin(x, y float64, seed int64) float64 {
	return perlinAt(c.GradientTable(seed, c.size), x, y)
}

func perlinAt(t *GradientTable, x, y float64) float64 {
	size := t.Size()

	// Unit square and relative position in it
	x0, fx := lattice(x, size)
	y0, fy := lattice(y, size)
	x1 := x0 + 1
	y1 := y0 + 1

	u := fade(fx)
	v := fade(fy)

	g00 := t.Gradients[t.index(x0, y0, size)]
	g10 := t.Gradients[t.index(x1, y0, size)]
	g01 := t.Gradients[t.index(x0, y1, size)]
	g11 := t.Gradients[t.index(x1, y1, size)]

	d00 := g00.X*fx + g00.Y*fy
	d10 := g10.X*(fx-1) + g10.Y*fy
	d01 := g01.X*fx + g01.Y*(fy-1)
	d11 := g11.X*(fx-1) + g11.Y*(fy-1)

	d0 := lerp(d00, d10, u)
	d1 := lerp(d01, d11, u)
	result := lerp(d0, d1, v)

	return (result + 1) * 0.5
}

// index hashes a lattice corner to a gradient slot via double permutation lookup.
func (t *GradientTable) index(ix, iy, size int) int {
	return mod(t.Perm[mod(t.Perm[mod(ix, size)]+iy, size)], size)
}
