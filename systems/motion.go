// Package systems contains ECS systems for particle sketches.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kanvas/components"
)

// Bounds is the area particles are confined to.
type Bounds struct {
	Width, Height float64
}

// MotionSystem moves particles by their velocity and reflects them off the bounds.
type MotionSystem struct {
	filter ecs.Filter3[components.Position, components.Velocity, components.Body]
	bounds Bounds
}

// NewMotionSystem creates a motion system over w.
func NewMotionSystem(w *ecs.World, bounds Bounds) *MotionSystem {
	return &MotionSystem{
		filter: *ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		bounds: bounds,
	}
}

// Update advances every particle by dt seconds.
func (s *MotionSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, body := query.Get()

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt

		pos.X, vel.X = reflect(pos.X, vel.X, body.Radius, s.bounds.Width-body.Radius)
		pos.Y, vel.Y = reflect(pos.Y, vel.Y, body.Radius, s.bounds.Height-body.Radius)
	}
}

// reflect folds p back into [lo, hi] and points v inwards when it left.
func reflect(p, v, lo, hi float64) (float64, float64) {
	if hi < lo {
		return (lo + hi) / 2, v
	}
	switch {
	case p < lo:
		p = min(2*lo-p, hi)
		if v < 0 {
			v = -v
		}
	case p > hi:
		p = max(2*hi-p, lo)
		if v > 0 {
			v = -v
		}
	}
	return p, v
}
