package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kanvas/components"
	"github.com/pthm-cable/kanvas/raster"
)

// RenderSystem draws every particle as a filled circle.
type RenderSystem struct {
	filter ecs.Filter3[components.Position, components.Body, components.Tint]
}

// NewRenderSystem creates a render system over w.
func NewRenderSystem(w *ecs.World) *RenderSystem {
	return &RenderSystem{
		filter: *ecs.NewFilter3[components.Position, components.Body, components.Tint](w),
	}
}

// Draw renders the particles into fb.
func (s *RenderSystem) Draw(fb *raster.FrameBuffer) {
	query := s.filter.Query()
	for query.Next() {
		pos, body, tint := query.Get()
		fb.Circle(
			int(math.Round(pos.X)),
			int(math.Round(pos.Y)),
			int(math.Round(body.Radius)),
			tint.R, tint.G, tint.B,
			true,
		)
	}
}
