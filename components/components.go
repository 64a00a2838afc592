// Package components defines ECS components for particle sketches.
package components

// Position is a particle centre in framebuffer pixels.
type Position struct {
	X, Y float64
}

// Velocity is in pixels per second.
type Velocity struct {
	X, Y float64
}

// Body holds physical properties of a particle.
type Body struct {
	Radius float64
}

// Tint is the fill colour of a particle.
type Tint struct {
	R, G, B uint8
}
