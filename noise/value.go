package noise

import "math"

// Value returns 2D value noise in [0, 1] at (x, y) using the Default cache.
func Value(x, y float64, seed int64) float64 {
	return Default.Value(x, y, seed)
}

// Value returns 2D value noise in [0, 1] at (x, y).
// Random values on the integer lattice are blended with smoothstep-weighted bilinear interpolation.
func (c *Cache) Value(x, y float64, seed int64) float64 {
	return valueAt(c.ValueTable(seed, c.size), x, y)
}

func valueAt(table ValueTable, x, y float64) float64 {
	size := len(table)

	// Lattice cell
	x0, fx := lattice(x, size)
	y0, fy := lattice(y, size)
	x1 := x0 + 1
	y1 := y0 + 1

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	v00 := table[valueIndex(x0, y0, size)]
	v10 := table[valueIndex(x1, y0, size)]
	v01 := table[valueIndex(x0, y1, size)]
	v11 := table[valueIndex(x1, y1, size)]

	v0 := lerp(v00, v10, sx)
	v1 := lerp(v01, v11, sx)
	return lerp(v0, v1, sy)
}

// lattice splits x into its cell coordinate, reduced mod size, and the offset within
// the cell. The floor stays in float space so coordinates beyond the int range do
// not overflow.
func lattice(x float64, size int) (cell int, frac float64) {
	fl := math.Floor(x)
	m := math.Mod(fl, float64(size))
	if m < 0 {
		m += float64(size)
	}
	return int(m), x - fl
}

// valueIndex hashes a lattice corner to a table slot.
func valueIndex(ix, iy, size int) int {
	return mod(mod(ix, size)*57+mod(iy, size)*113, size)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// mod returns the non-negative remainder of a/b (Go's % keeps the sign of a).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
