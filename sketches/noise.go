package sketches

import (
	"github.com/pthm-cable/kanvas/mathutil"
	"github.com/pthm-cable/kanvas/noise"
	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/sketch"
)

// NoiseDemo renders value noise on the left half and Perlin noise on the right once,
// then stops looping.
type NoiseDemo struct {
	env   Env
	Scale float64
	ctrl  sketch.Controller
}

// NewNoiseDemo creates the static noise comparison.
func NewNoiseDemo(env Env) *NoiseDemo {
	return &NoiseDemo{env: env, Scale: 0.02}
}

// Attach implements sketch.Attacher.
func (s *NoiseDemo) Attach(c sketch.Controller) { s.ctrl = c }

// Setup implements sketch.Sketch.
func (s *NoiseDemo) Setup(fb *raster.FrameBuffer) {
	fb.ClearGray(0)
	half := fb.Width() / 2
	fb.Fill(func(x, y int) raster.Color {
		nx, ny := float64(x)*s.Scale, float64(y)*s.Scale
		var v float64
		if x < half {
			v = s.env.Noise.Value(nx, ny, s.env.Seed)
		} else {
			v = s.env.Noise.Perlin(nx, ny, s.env.Seed)
		}
		return raster.Gray(shade(v))
	})
	if s.ctrl != nil {
		s.ctrl.NoLoop()
	}
}

// Draw implements sketch.Sketch. The image is static.
func (s *NoiseDemo) Draw(*raster.FrameBuffer, int, float64) {}

// NoiseFlow scrolls a centred strip of Perlin noise between two red guides.
func NoiseFlow(env Env) sketch.Sketch {
	const (
		scale      = 0.05
		speed      = 0.01
		stripWidth = 100
	)
	return sketch.Funcs{
		SetupFunc: clearBlack,
		DrawFunc: func(fb *raster.FrameBuffer, frame int, _ float64) {
			fb.ClearGray(0)
			offset := float64(frame) * speed
			left := fb.Width()/2 - stripWidth/2
			right := fb.Width()/2 + stripWidth/2

			for x := left; x < right; x++ {
				for y := 0; y < fb.Height(); y++ {
					v := env.Noise.Perlin(float64(x)*scale+offset, float64(y)*scale, env.Seed)
					g := shade(v)
					fb.Pixel(x, y, g, g, g)
				}
			}
			fb.Line(left, 0, left, fb.Height()-1, 255, 0, 0)
			fb.Line(right-1, 0, right-1, fb.Height()-1, 255, 0, 0)
		},
	}
}

// SourceGrid shows each noise.Kind in its own quadrant, drawn once.
type SourceGrid struct {
	env     Env
	Scale   float64
	Octaves int
	ctrl    sketch.Controller
}

// NewSourceGrid creates the four-way noise comparison.
func NewSourceGrid(env Env) *SourceGrid {
	return &SourceGrid{env: env, Scale: 0.03, Octaves: 1}
}

// Attach implements sketch.Attacher.
func (s *SourceGrid) Attach(c sketch.Controller) { s.ctrl = c }

// Setup implements sketch.Sketch.
func (s *SourceGrid) Setup(fb *raster.FrameBuffer) {
	kinds := noise.Kinds()
	sources := make([]noise.Source, len(kinds))
	for i, k := range kinds {
		sources[i] = s.env.Noise.NewSource(k, s.env.Seed)
	}
	halfW, halfH := max(1, fb.Width()/2), max(1, fb.Height()/2)

	fb.Fill(func(x, y int) raster.Color {
		q := min(x/halfW, 1) + 2*min(y/halfH, 1)
		v := noise.FBM(sources[q], float64(x)*s.Scale, float64(y)*s.Scale, s.Octaves, 2, 0.5)
		return raster.Gray(shade(v))
	})
	fb.Line(halfW, 0, halfW, fb.Height()-1, 255, 255, 255)
	fb.Line(0, halfH, fb.Width()-1, halfH, 255, 255, 255)

	if s.ctrl != nil {
		s.ctrl.NoLoop()
	}
}

// Draw implements sketch.Sketch. The image is static.
func (s *SourceGrid) Draw(*raster.FrameBuffer, int, float64) {}

// shade maps a noise sample in [0, 1] to a grey level, truncating like the
// integer conversion of v*255.
func shade(v float64) uint8 {
	return uint8(mathutil.Constrain(v, 0, 1) * 255)
}
