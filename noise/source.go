package noise

import (
	"fmt"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a 2D noise field sampled in [0, 1].
type Source interface {
	At(x, y float64) float64
}

// Kind selects a noise source implementation.
type Kind int

const (
	KindValue   Kind = iota // lattice value noise
	KindPerlin              // classic gradient noise
	KindSimplex             // OpenSimplex
	KindOctave              // multi-octave Perlin (alpha/beta/n form)
)

var kindNames = []string{"value", "perlin", "simplex", "octave"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every available source kind.
func Kinds() []Kind {
	return []Kind{KindValue, KindPerlin, KindSimplex, KindOctave}
}

// ParseKind maps a name like "perlin" to its Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown noise kind %q", s)
}

// NewSource creates a source of the given kind from the Default cache.
func NewSource(kind Kind, seed int64) Source {
	return Default.NewSource(kind, seed)
}

// NewSource creates a source of the given kind. Value and Perlin sources share this cache.
func (c *Cache) NewSource(kind Kind, seed int64) Source {
	switch kind {
	case KindPerlin:
		return c.NewPerlinSource(seed)
	case KindSimplex:
		return NewSimplexSource(seed)
	case KindOctave:
		return NewOctavePerlinSource(2, 2, 3, seed)
	default:
		return c.NewValueSource(seed)
	}
}

// ValueSource samples value noise from a fixed table.
type ValueSource struct {
	table ValueTable
}

// NewValueSource binds a value-noise source to the cache's table for seed.
func (c *Cache) NewValueSource(seed int64) *ValueSource {
	return &ValueSource{table: c.ValueTable(seed, c.size)}
}

func (s *ValueSource) At(x, y float64) float64 { return valueAt(s.table, x, y) }

// PerlinSource samples gradient noise from a fixed table.
type PerlinSource struct {
	table *GradientTable
}

// NewPerlinSource binds a gradient-noise source to the cache's table for seed.
func (c *Cache) NewPerlinSource(seed int64) *PerlinSource {
	return &PerlinSource{table: c.GradientTable(seed, c.size)}
}

func (s *PerlinSource) At(x, y float64) float64 { return perlinAt(s.table, x, y) }

// SimplexSource wraps OpenSimplex noise.
type SimplexSource struct {
	noise opensimplex.Noise
}

// NewSimplexSource creates an OpenSimplex source.
func NewSimplexSource(seed int64) *SimplexSource {
	return &SimplexSource{noise: opensimplex.New(seed)}
}

func (s *SimplexSource) At(x, y float64) float64 {
	return unit(s.noise.Eval2(x, y))
}

// OctavePerlinSource wraps a multi-octave Perlin generator.
type OctavePerlinSource struct {
	noise *perlin.Perlin
}

// NewOctavePerlinSource creates a source summing n octaves; alpha is the amplitude
// divisor and beta the frequency multiplier per octave.
func NewOctavePerlinSource(alpha, beta float64, n int32, seed int64) *OctavePerlinSource {
	return &OctavePerlinSource{noise: perlin.NewPerlin(alpha, beta, n, seed)}
}

func (s *OctavePerlinSource) At(x, y float64) float64 {
	return unit(s.noise.Noise2D(x, y))
}

// FBM sums octaves of src, each scaled in frequency by lacunarity and in amplitude by gain,
// and normalizes the result back to [0, 1].
func FBM(src Source, x, y float64, octaves int, lacunarity, gain float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		total += src.At(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}
	if maxValue == 0 {
		return 0
	}
	return total / maxValue
}

// unit maps [-1, 1] to [0, 1], clamping stray values.
func unit(n float64) float64 {
	v := (n + 1) * 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
