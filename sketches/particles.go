package sketches

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kanvas/components"
	"github.com/pthm-cable/kanvas/raster"
	"github.com/pthm-cable/kanvas/systems"
)

// DefaultParticleCount is the number of particles the registry spawns.
const DefaultParticleCount = 48

// maxStep caps the simulated time per frame so a stall does not tunnel particles.
const maxStep = 0.1

// Particles keeps bouncing discs in an ECS world.
type Particles struct {
	count int
	rng   *rand.Rand

	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Tint]
	motion *systems.MotionSystem
	render *systems.RenderSystem
}

// NewParticles creates a particle sketch; the world is populated in Setup.
func NewParticles(env Env, count int) *Particles {
	world := ecs.NewWorld()
	return &Particles{
		count:  count,
		rng:    rand.New(rand.NewSource(env.Seed)),
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Tint](world),
		render: systems.NewRenderSystem(world),
	}
}

// Setup implements sketch.Sketch.
func (p *Particles) Setup(fb *raster.FrameBuffer) {
	fb.ClearGray(0)
	w, h := float64(fb.Width()), float64(fb.Height())
	p.motion = systems.NewMotionSystem(p.world, systems.Bounds{Width: w, Height: h})

	for i := 0; i < p.count; i++ {
		radius := 3 + p.rng.Float64()*9
		angle := p.rng.Float64() * 2 * math.Pi
		speed := 40 + p.rng.Float64()*80
		tint := raster.HSVToRGB(float64(i)*360/float64(max(p.count, 1)), 0.8, 1)

		p.mapper.NewEntity(
			&components.Position{X: radius + p.rng.Float64()*max(0, w-2*radius), Y: radius + p.rng.Float64()*max(0, h-2*radius)},
			&components.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			&components.Body{Radius: radius},
			&components.Tint{R: tint.R, G: tint.G, B: tint.B},
		)
	}
}

// Draw implements sketch.Sketch.
func (p *Particles) Draw(fb *raster.FrameBuffer, _ int, deltaMillis float64) {
	fb.ClearGray(0)
	p.motion.Update(min(deltaMillis/1000, maxStep))
	p.render.Draw(fb)
}

// Count returns the number of live particles.
func (p *Particles) Count() int {
	filter := ecs.NewFilter1[components.Position](p.world)
	query := filter.Query()
	n := query.Count()
	query.Close()
	return n
}
