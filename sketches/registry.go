// Package sketches holds the bundled demo sketches and a registry to look them up by name.
package sketches

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pthm-cable/kanvas/config"
	"github.com/pthm-cable/kanvas/noise"
	"github.com/pthm-cable/kanvas/sketch"
)

// ErrUnknownSketch is returned by New for names not in the registry.
var ErrUnknownSketch = errors.New("sketches: unknown sketch")

// Env carries the settings sketches are built from.
type Env struct {
	Seed  int64
	Noise *noise.Cache
}

// EnvFromConfig builds an Env, reusing noise.Default for the default table size.
func EnvFromConfig(cfg *config.Config) Env {
	env := Env{Seed: noise.DefaultSeed, Noise: noise.Default}
	if cfg == nil {
		return env
	}
	env.Seed = cfg.Noise.Seed
	if cfg.Noise.TableSize != noise.Default.Size() {
		env.Noise = noise.NewCache(cfg.Noise.TableSize)
	}
	return env
}

type entry struct {
	description string
	build       func(env Env) sketch.Sketch
}

var registry = map[string]entry{
	"demo":      {"five orbiting colour-cycling circles", func(Env) sketch.Sketch { return Demo() }},
	"shapes":    {"a line, an outlined rect and an outlined circle", func(Env) sketch.Sketch { return Shapes() }},
	"orbit":     {"a circle orbiting the centre", func(Env) sketch.Sketch { return Orbit() }},
	"line":      {"a line swaying around the middle", func(Env) sketch.Sketch { return OscillatingLine() }},
	"tree":      {"a swaying fractal tree", func(Env) sketch.Sketch { return Tree(DefaultTreeDepth) }},
	"noise":     {"value noise (left) against Perlin noise (right)", func(e Env) sketch.Sketch { return NewNoiseDemo(e) }},
	"noiseflow": {"a strip of Perlin noise flowing sideways", func(e Env) sketch.Sketch { return NoiseFlow(e) }},
	"simplex":   {"value, Perlin, OpenSimplex and octave Perlin quadrants", func(e Env) sketch.Sketch { return NewSourceGrid(e) }},
	"particles": {"bouncing particles in an ECS world", func(e Env) sketch.Sketch { return NewParticles(e, DefaultParticleCount) }},
}

// Names returns the registered sketch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the one-line description of a sketch.
func Describe(name string) string {
	return registry[name].description
}

// New builds the named sketch using settings from cfg. A nil cfg uses defaults.
func New(name string, cfg *config.Config) (sketch.Sketch, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSketch, name)
	}
	return e.build(EnvFromConfig(cfg)), nil
}
