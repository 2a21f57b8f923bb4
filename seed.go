package seedling

import "math"

// SeedBody is the visual the seed controller floats and plants.
type SeedBody interface {
	WorldPosition() Vec3
	SetWorldPosition(p Vec3)
	SetActive(active bool)
}

// Light is a light source with adjustable intensity.
type Light interface {
	SetIntensity(v float64)
}

// SeedController animates the seed: an idle floating bob, a glow and the
// planting descent after which the seed disappears.
type SeedController struct {
	Body   Optional[SeedBody]
	Light  Optional[Light]
	Ground Optional[Vec3]

	FloatSpeed        float64
	FloatAmplitude    float64
	GlowIntensity     float64
	GlowDuration      float64
	PlantDuration     float64
	LightFadeDuration float64

	start    Vec3
	floating bool
	bobbing  bool
	planted  bool
	clock    float64
}

// NewSeedController creates a controller with the default timings.
func NewSeedController() *SeedController {
	return &SeedController{
		FloatSpeed:        1,
		FloatAmplitude:    0.3,
		GlowIntensity:     2,
		GlowDuration:      1,
		PlantDuration:     2,
		LightFadeDuration: 0.5,
	}
}

// Init records the resting position, switches the light off and starts
// floating.
func (c *SeedController) Init() {
	c.Body.Do(func(b SeedBody) { c.start = b.WorldPosition() })
	c.Light.Do(func(l Light) { l.SetIntensity(0) })
	c.floating = true
}

// Planted reports whether the seed has been planted or hidden.
func (c *SeedController) Planted() bool {
	return c.planted
}

// Float returns the idle bob task. It runs until the seed is planted or hidden.
func (c *SeedController) Float() Task {
	c.bobbing = true
	return TaskFunc(func(dt float64) bool {
		if !c.floating {
			c.bobbing = false
			return true
		}
		c.clock += dt
		y := c.start.Y + math.Sin(c.clock*c.FloatSpeed)*c.FloatAmplitude
		c.Body.Do(func(b SeedBody) { b.SetWorldPosition(Vec3{c.start.X, y, c.start.Z}) })
		return false
	})
}

// Glow fades the seed light up to GlowIntensity. Without a light it does nothing.
func (c *SeedController) Glow() Task {
	l, ok := c.Light.Get()
	if !ok {
		return nil
	}
	return NewTween(0, c.GlowIntensity, c.GlowDuration, l.SetIntensity, nil)
}

// Plant stops floating, lowers the seed onto the ground (or y = 0 when no
// ground is set), fades its light out and hides it.
func (c *SeedController) Plant() Task {
	return Defer(func() Task {
		c.floating = false
		b, ok := c.Body.Get()
		if !ok {
			logf("plant seed: no seed body")
			c.planted = true
			return nil
		}
		from := b.WorldPosition()
		to := Vec3{from.X, 0, from.Z}
		c.Ground.Do(func(g Vec3) { to = g })

		var lightFade Task
		c.Light.Do(func(l Light) {
			lightFade = NewTween(c.GlowIntensity, 0, c.LightFadeDuration, l.SetIntensity, nil)
		})
		return Sequence(
			NewTween(0, 1, c.PlantDuration, func(t float64) {
				b.SetWorldPosition(Vec3{lerp(from.X, to.X, t), lerp(from.Y, to.Y, t), lerp(from.Z, to.Z, t)})
			}, nil),
			lightFade,
			Do(c.Hide),
		)
	})
}

// Hide stops floating and deactivates the seed at once.
func (c *SeedController) Hide() {
	c.floating = false
	c.planted = true
	c.Body.Do(func(b SeedBody) { b.SetActive(false) })
}

// Restore undoes a plant or hide: the seed is shown unlit at its resting
// position and floats again. It reports whether no Float task is left running,
// in which case the caller must start a new one.
func (c *SeedController) Restore() bool {
	c.planted = false
	c.floating = true
	c.clock = 0
	c.Body.Do(func(b SeedBody) {
		b.SetActive(true)
		b.SetWorldPosition(c.start)
	})
	c.Light.Do(func(l Light) { l.SetIntensity(0) })
	return !c.bobbing
}
