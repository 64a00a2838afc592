// Package noise provides deterministic 2D value noise and gradient (Perlin) noise
// backed by memoized lookup tables.
package noise

import (
	"math"
	"math/rand"
	"sync"
)

// Defaults used when a seed or table size is not given explicitly.
const (
	DefaultSeed int64 = 42
	DefaultSize       = 256
)

// tableKind distinguishes the two table families stored in a Cache.
type tableKind uint8

const (
	kindValueTable tableKind = iota
	kindGradientTable
)

type tableKey struct {
	kind tableKind
	seed int64
	size int
}

// ValueTable holds size pseudo-random values in [0, 1).
type ValueTable []float64

// Gradient is a unit vector on the lattice.
type Gradient struct {
	X, Y float64
}

// GradientTable holds a doubled permutation and evenly spaced unit gradients.
type GradientTable struct {
	// Perm has length 2*Size: a shuffled 0..Size-1 range followed by a copy of itself.
	Perm      []int
	Gradients []Gradient
}

// Size returns the number of gradients in the table.
func (t *GradientTable) Size() int {
	return len(t.Gradients)
}

// Cache memoizes noise tables keyed by (kind, seed, size).
// Entries are created on first request and never evicted.
type Cache struct {
	mu     sync.Mutex
	size   int
	tables map[tableKey]any
}

// NewCache creates an empty cache whose evaluators use tables of the given size.
// A non-positive size selects DefaultSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	return &Cache{
		size:   size,
		tables: make(map[tableKey]any),
	}
}

// Default is the process-wide cache used by the package-level functions.
var Default = NewCache(DefaultSize)

// Size returns the table size used by the cache's evaluators.
func (c *Cache) Size() int {
	return c.size
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}

// ValueTable returns the value-noise table for (seed, size), generating it on first use.
func (c *Cache) ValueTable(seed int64, size int) ValueTable {
	if size <= 0 {
		size = DefaultSize
	}
	key := tableKey{kind: kindValueTable, seed: seed, size: size}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[key]; ok {
		return t.(ValueTable)
	}
	t := newValueTable(seed, size)
	c.tables[key] = t
	return t
}

// GradientTable returns the gradient table for (seed, size), generating it on first use.
func (c *Cache) GradientTable(seed int64, size int) *GradientTable {
	if size <= 0 {
		size = DefaultSize
	}
	key := tableKey{kind: kindGradientTable, seed: seed, size: size}

	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tables[key]; ok {
		return t.(*GradientTable)
	}
	t := newGradientTable(seed, size)
	c.tables[key] = t
	return t
}

// ValueTableFor returns a value-noise table from the Default cache.
func ValueTableFor(seed int64, size int) ValueTable {
	return Default.ValueTable(seed, size)
}

// GradientTableFor returns a gradient table from the Default cache.
func GradientTableFor(seed int64, size int) *GradientTable {
	return Default.GradientTable(seed, size)
}

func newValueTable(seed int64, size int) ValueTable {
	rng := rand.New(rand.NewSource(seed))
	t := make(ValueTable, size)
	for i := range t {
		t[i] = rng.Float64()
	}
	return t
}

func newGradientTable(seed int64, size int) *GradientTable {
	rng := rand.New(rand.NewSource(seed))

	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}

	// Shuffle
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	// Duplicate
	doubled := make([]int, 2*size)
	copy(doubled, perm)
	copy(doubled[size:], perm)

	grads := make([]Gradient, size)
	for i := range grads {
		angle := 2 * math.Pi * float64(i) / float64(size)
		grads[i] = Gradient{X: math.Cos(angle), Y: math.Sin(angle)}
	}

	return &GradientTable{Perm: doubled, Gradients: grads}
}
