package sketches

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/kanvas/config"
	"github.com/pthm-cable/kanvas/noise"
	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/renderer/headless"
	"github.com/pthm-cable/kanvas/sketch"
)

func runFrames(t *testing.T, sk sketch.Sketch, w, h, frames int) (*sketch.Driver, *headless.Presenter) {
	t.Helper()
	p := headless.NewPresenter()
	d, err := sketch.New(sk, sketch.Options{
		Width:     w,
		Height:    h,
		TargetFPS: 1000,
		MaxFrames: frames,
		Presenter: p,
	})
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background()))
	return d, p
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.IsNonDecreasing(t, names)
	for _, want := range []string{"demo", "line", "noise", "noiseflow", "orbit", "particles", "shapes", "simplex", "tree"} {
		assert.Contains(t, names, want)
		assert.NotEmpty(t, Describe(want))
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("nope", nil)
	assert.True(t, errors.Is(err, ErrUnknownSketch))
}

func TestEveryRegisteredSketchRuns(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			sk, err := New(name, nil)
			require.NoError(t, err)
			_, p := runFrames(t, sk, 120, 90, 3)
			assert.Equal(t, 3, p.Frames())
		})
	}
}

func TestEnvFromConfig(t *testing.T) {
	env := EnvFromConfig(nil)
	assert.Equal(t, noise.DefaultSeed, env.Seed)
	assert.Same(t, noise.Default, env.Noise)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Noise.Seed = 7
	cfg.Noise.TableSize = 64
	env = EnvFromConfig(cfg)
	assert.Equal(t, int64(7), env.Seed)
	assert.Equal(t, 64, env.Noise.Size())
}

func TestShapesPixels(t *testing.T) {
	_, p := runFrames(t, Shapes(), 400, 300, 1)
	fb := p.Last()

	at := func(x, y int) raster.Color {
		c, ok := fb.At(x, y)
		require.True(t, ok)
		return c
	}
	assert.Equal(t, raster.White, at(10, 10))
	assert.Equal(t, raster.RGB(255, 0, 0), at(20, 20))
	assert.Equal(t, raster.RGB(255, 0, 0), at(119, 79))
	assert.Equal(t, raster.Black, at(60, 50))
	assert.Equal(t, raster.RGB(0, 255, 0), at(250, 150))
}

func TestNoiseDemoStopsLooping(t *testing.T) {
	env := Env{Seed: 42, Noise: noise.NewCache(noise.DefaultSize)}
	demo := NewNoiseDemo(env)
	d, p := runFrames(t, demo, 40, 20, 2)
	assert.False(t, d.IsLooping())

	fb := p.Last()
	left, _ := fb.At(5, 7)
	right, _ := fb.At(30, 7)
	assert.Equal(t, raster.Gray(shade(env.Noise.Value(5*demo.Scale, 7*demo.Scale, 42))), left)
	assert.Equal(t, raster.Gray(shade(env.Noise.Perlin(30*demo.Scale, 7*demo.Scale, 42))), right)
}

func TestSourceGridQuadrants(t *testing.T) {
	env := Env{Seed: 3, Noise: noise.NewCache(noise.DefaultSize)}
	grid := NewSourceGrid(env)
	fb := raster.MustNew(40, 40)
	grid.Setup(fb)

	simplex := env.Noise.NewSource(noise.KindSimplex, 3)
	c, _ := fb.At(5, 30)
	assert.Equal(t, raster.Gray(shade(simplex.At(5*grid.Scale, 30*grid.Scale))), c)

	divider, _ := fb.At(20, 3)
	assert.Equal(t, raster.White, divider)
}

func TestNoiseFlowGuides(t *testing.T) {
	_, p := runFrames(t, NoiseFlow(EnvFromConfig(nil)), 200, 50, 1)
	fb := p.Last()

	for _, x := range []int{50, 149} {
		c, _ := fb.At(x, 10)
		assert.Equal(t, raster.RGB(255, 0, 0), c, "guide at x=%d", x)
	}
	outside, _ := fb.At(10, 10)
	assert.Equal(t, raster.Black, outside)
}

func TestBranchStopsAtDepthAndLength(t *testing.T) {
	fb := raster.MustNew(20, 20)
	Branch(fb, 10, 10, 1, 0, 5)
	Branch(fb, 10, 10, 10, 0, 0)
	for _, v := range fb.Pix() {
		require.Zero(t, v)
	}

	Branch(fb, 0, 10, 5, 0, 1)
	c, _ := fb.At(5, 10)
	r, g, b := branchColor(1)
	assert.Equal(t, raster.RGB(r, g, b), c)
}

func TestBranchColor(t *testing.T) {
	r, g, b := branchColor(DefaultTreeDepth)
	assert.Equal(t, []uint8{160, 80, 40}, []uint8{r, g, b})
	r, g, _ = branchColor(1)
	assert.Equal(t, []uint8{55, 255}, []uint8{r, g})
}

func TestCycleRange(t *testing.T) {
	assert.Equal(t, uint8(127), cycle(0))
	assert.Equal(t, uint8(254), cycle(1.5707963267948966))
	assert.Equal(t, uint8(0), cycle(-1.5707963267948966))
}

func TestParticlesSpawnAndDraw(t *testing.T) {
	ps := NewParticles(Env{Seed: 1}, 10)
	_, p := runFrames(t, ps, 100, 80, 2)
	assert.Equal(t, 10, ps.Count())

	lit := 0
	for _, v := range p.Last().Pix() {
		if v != 0 {
			lit++
		}
	}
	assert.Positive(t, lit)
}
