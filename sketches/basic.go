package sketches

import (
	"math"

	"github.com/pthm-cable/kanvas/mathutil"
	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/sketch"
)

// Shapes draws one of each primitive.
func Shapes() sketch.Sketch {
	return sketch.Funcs{
		SetupFunc: clearBlack,
		DrawFunc: func(fb *raster.FrameBuffer, _ int, _ float64) {
			fb.ClearGray(0)
			fb.Line(10, 10, fb.Width()-10, fb.Height()-10, 255, 255, 255)
			fb.Rect(20, 20, 100, 60, 255, 0, 0, false)
			fb.Circle(fb.Width()/2, fb.Height()/2, 50, 0, 255, 0, false)
		},
	}
}

// Orbit moves a cyan ring around the centre.
func Orbit() sketch.Sketch {
	const radius = 80
	return sketch.Funcs{
		SetupFunc: clearBlack,
		DrawFunc: func(fb *raster.FrameBuffer, frame int, _ float64) {
			fb.ClearGray(0)
			cx, cy := fb.Width()/2, fb.Height()/2
			angle := float64(frame) * 0.05
			x := cx + int(radius*math.Cos(angle))
			y := cy + int(radius*math.Sin(angle))
			fb.Circle(x, y, 10, 0, 200, 255, false)
			fb.Circle(cx, cy, 3, 255, 255, 255, false)
		},
	}
}

// OscillatingLine draws a yellow line whose right end sways up and down.
func OscillatingLine() sketch.Sketch {
	return sketch.Funcs{
		SetupFunc: clearBlack,
		DrawFunc: func(fb *raster.FrameBuffer, frame int, _ float64) {
			fb.ClearGray(0)
			midY := fb.Height() / 2
			offset := int(20 * math.Sin(float64(frame)*0.1))
			fb.Line(0, midY, fb.Width(), midY+offset, 255, 255, 0)
		},
	}
}

// Demo spins five colour-cycling discs around a white centre.
func Demo() sketch.Sketch {
	const (
		count  = 5
		orbit  = 80
		radius = 30
	)
	bg := raster.RGB(30, 30, 40)
	return sketch.Funcs{
		SetupFunc: func(fb *raster.FrameBuffer) { fb.ClearColor(bg) },
		DrawFunc: func(fb *raster.FrameBuffer, frame int, _ float64) {
			fb.ClearColor(bg)
			cx, cy := fb.Width()/2, fb.Height()/2
			t := float64(frame)
			for i := 0; i < count; i++ {
				fi := float64(i)
				angle := t*0.02 + fi*(2*math.Pi/count)
				x := int(float64(cx) + math.Cos(angle)*orbit)
				y := int(float64(cy) + math.Sin(angle)*orbit)
				r := cycle(t*0.05 + fi)
				g := cycle(t*0.05 + fi + 2)
				b := cycle(t*0.05 + fi + 4)
				fb.Circle(x, y, radius, r, g, b, true)
			}
			fb.Circle(cx, cy, 20, 255, 255, 255, true)
		},
	}
}

// cycle maps sin(phase) onto 0..254.
func cycle(phase float64) uint8 {
	return uint8(mathutil.MapRange(math.Sin(phase), -1, 1, 0, 254))
}

func clearBlack(fb *raster.FrameBuffer) { fb.ClearGray(0) }
