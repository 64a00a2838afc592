package sketches

import (
	"math"

	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/sketch"
)

// DefaultTreeDepth is the recursion depth of the tree sketch.
const DefaultTreeDepth = 8

const (
	branchAngle  = 0.6
	branchShrink = 0.7
)

// Tree draws a recursive binary tree rooted at the bottom centre that sways with time.
func Tree(depth int) sketch.Sketch {
	return sketch.Funcs{
		SetupFunc: clearBlack,
		DrawFunc: func(fb *raster.FrameBuffer, frame int, _ float64) {
			fb.ClearGray(0)
			sway := 0.3 * math.Sin(float64(frame)*0.03)
			Branch(fb, fb.Width()/2, fb.Height()-10, fb.Height()/3, -math.Pi/2+sway, depth)
		},
	}
}

// Branch draws one branch from (x, y) and recurses into two shorter children.
// Deep levels are brown, shallow ones green.
func Branch(fb *raster.FrameBuffer, x, y, length int, angle float64, depth int) {
	if depth <= 0 || length < 2 {
		return
	}
	x2 := x + int(math.Cos(angle)*float64(length))
	y2 := y + int(math.Sin(angle)*float64(length))

	r, g, b := branchColor(depth)
	fb.Line(x, y, x2, y2, r, g, b)

	next := int(float64(length) * branchShrink)
	Branch(fb, x2, y2, next, angle-branchAngle, depth-1)
	Branch(fb, x2, y2, next, angle+branchAngle, depth-1)
}

func branchColor(depth int) (r, g, b uint8) {
	rv := min(200, 40+depth*15)
	gv := min(255, max(0, 80+(DefaultTreeDepth-depth)*25))
	return uint8(rv), uint8(gv), 40
}
