package seedling

import (
	"math"
	"math/rand/v2"
)

// Range is an inclusive range of float64 values sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// particle holds per-particle simulation state. Unexported; managed by ParticleEmitter.
type particle struct {
	pos, vel   Vec3
	life       float64 // remaining lifetime in seconds
	maxLife    float64 // initial lifetime (for computing t)
	startSize  float64
	endSize    float64
	size       float64
	startAlpha float64
	endAlpha   float64
	alpha      float64
	color      Color
}

// EmitterConfig controls how particles are spawned and behave. Distances are
// in world units.
type EmitterConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int
	// EmitRate is the number of particles spawned per second.
	EmitRate float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial particle speeds in units per second.
	Speed Range
	// Angle is the range of emission angles in radians in the XY plane,
	// measured counterclockwise from +X.
	Angle Range
	// Area is the extent of the box around the emitter that particles spawn in.
	Area Vec3
	// StartSize is the range of particle edge lengths at birth, interpolated
	// to EndSize over lifetime.
	StartSize Range
	EndSize   Range
	// StartAlpha is the range of alpha values at birth, interpolated to
	// EndAlpha over lifetime.
	StartAlpha Range
	EndAlpha   Range
	// Gravity is the constant acceleration applied to all particles.
	Gravity Vec3
	// StartColor is the tint at birth, interpolated to EndColor over lifetime.
	StartColor Color
	EndColor   Color
}

// ParticleEmitter manages a pool of particles with CPU-based simulation.
// Particles live in world space: once emitted they no longer follow the
// emitter node.
type ParticleEmitter struct {
	config    EmitterConfig
	particles []particle
	alive     int
	emitAccum float64
	active    bool
	// origin is the emitter's last known world position, set by
	// World.UpdateParticles.
	origin Vec3
}

// NewParticleEmitter creates a stopped emitter with a preallocated pool.
func NewParticleEmitter(cfg EmitterConfig) *ParticleEmitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	return &ParticleEmitter{
		config:    cfg,
		particles: make([]particle, max),
	}
}

// Start begins emitting particles.
func (e *ParticleEmitter) Start() {
	e.active = true
}

// Stop stops emitting new particles. Existing particles continue to live out.
func (e *ParticleEmitter) Stop() {
	e.active = false
}

// Reset stops emitting and kills all alive particles.
func (e *ParticleEmitter) Reset() {
	e.active = false
	e.alive = 0
	e.emitAccum = 0
}

// IsActive reports whether the emitter is currently emitting new particles.
func (e *ParticleEmitter) IsActive() bool {
	return e.active
}

// AliveCount returns the number of alive particles.
func (e *ParticleEmitter) AliveCount() int {
	return e.alive
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *ParticleEmitter) Config() *EmitterConfig {
	return &e.config
}

// update advances particle simulation by dt seconds.
func (e *ParticleEmitter) update(dt float64) {
	g := e.config.Gravity.Mul(dt)

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}

		p.vel = p.vel.Add(g)
		p.pos = p.pos.Add(p.vel.Mul(dt))

		t := 1 - p.life/p.maxLife
		p.size = lerp(p.startSize, p.endSize, t)
		p.alpha = lerp(p.startAlpha, p.endAlpha, t)
		p.color = lerpColor(e.config.StartColor, e.config.EndColor, t)

		i++
	}

	if e.active && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * dt
		for e.emitAccum >= 1.0 {
			e.emitAccum -= 1.0
			if e.alive < len(e.particles) {
				e.spawnParticle()
			}
		}
	}
}

// spawnParticle initializes the particle at slot e.alive and increments alive.
func (e *ParticleEmitter) spawnParticle() {
	p := &e.particles[e.alive]

	angle := e.config.Angle.Random()
	speed := e.config.Speed.Random()
	p.vel = Vec3{math.Cos(angle) * speed, math.Sin(angle) * speed, 0}

	a := e.config.Area.Mul(0.5)
	p.pos = e.origin.Add(Vec3{
		Range{-a.X, a.X}.Random(),
		Range{-a.Y, a.Y}.Random(),
		Range{-a.Z, a.Z}.Random(),
	})

	p.life = e.config.Lifetime.Random()
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life

	p.startSize = e.config.StartSize.Random()
	p.endSize = e.config.EndSize.Random()
	p.size = p.startSize

	p.startAlpha = e.config.StartAlpha.Random()
	p.endAlpha = e.config.EndAlpha.Random()
	p.alpha = p.startAlpha
	p.color = e.config.StartColor

	e.alive++
}

// eachParticle calls fn for every alive particle with its world bounds and
// tint, alpha applied.
func (e *ParticleEmitter) eachParticle(fn func(b Bounds, c Color)) {
	for i := 0; i < e.alive; i++ {
		p := &e.particles[i]
		half := Vec3{p.size / 2, p.size / 2, p.size / 2}
		c := p.color
		c.A *= clamp01(p.alpha)
		fn(Bounds{Min: p.pos.Sub(half), Max: p.pos.Add(half)}, c)
	}
}

func lerpColor(a, b Color, t float64) Color {
	return Color{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t), lerp(a.A, b.A, t)}
}
