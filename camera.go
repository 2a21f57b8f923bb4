package seedling

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// followRate is the tick rate a follow lerp is expressed at.
const followRate = 60

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps world space onto the screen with an orthographic side view:
// world X goes right, world Y goes up and Z only affects draw order.
type Camera struct {
	// X and Y are the world point shown at the screen center.
	X, Y float64
	// PixelsPerUnit is the zoom factor.
	PixelsPerUnit float64

	// CullEnabled skips boxes whose bounds lie outside the visible area.
	CullEnabled bool

	// Framing keeps the followed bounds in view: the camera never goes below
	// RestY, and zooms out (down to MinPixelsPerUnit) when the bounds plus
	// Margin on each side no longer fit the screen height.
	RestY            float64
	MinPixelsPerUnit float64
	Margin           float64

	followTarget func() (Bounds, bool)
	followLerp   float64
	basePPU      float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on (x, y) at the given zoom. y is also
// the rest height used while following.
func NewCamera(x, y, pixelsPerUnit float64) *Camera {
	return &Camera{
		X:                x,
		Y:                y,
		PixelsPerUnit:    pixelsPerUnit,
		CullEnabled:      true,
		RestY:            y,
		MinPixelsPerUnit: pixelsPerUnit / 4,
		Margin:           1,
		basePPU:          pixelsPerUnit,
	}
}

// Follow makes the camera frame the bounds returned by target every update.
// lerp is the share of the remaining distance covered per 1/60 s, whatever
// the tick rate. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
// target reports false when there is nothing to frame, and the camera then
// drifts back to its rest position and zoom.
func (c *Camera) Follow(target func() (Bounds, bool), lerp float64) {
	c.followTarget = target
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A running follow is stopped.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.followTarget = nil
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Update advances follow and scroll animations for a screen of the given size.
func (c *Camera) Update(dt float64, w, h int) {
	if c.followTarget != nil {
		tx, ty, tz := 0.0, c.RestY, c.basePPU
		if b, ok := c.followTarget(); ok {
			tx, ty, tz = c.frame(b, h)
		}
		k := 1 - math.Pow(1-c.followLerp, dt*followRate)
		c.X += (tx - c.X) * k
		c.Y += (ty - c.Y) * k
		c.PixelsPerUnit += (tz - c.PixelsPerUnit) * k
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}
}

// frame returns the camera position and zoom that keep b in view.
func (c *Camera) frame(b Bounds, h int) (x, y, ppu float64) {
	ppu = c.basePPU
	if need := b.Size().Y + 2*c.Margin; need > 0 && float64(h)/need < ppu {
		ppu = math.Max(c.MinPixelsPerUnit, float64(h)/need)
	}
	y = math.Max(c.RestY, b.Center().Y)
	return b.Center().X, y, ppu
}

// WorldToScreen converts a world point to screen pixels for a screen of the
// given size.
func (c *Camera) WorldToScreen(p Vec3, w, h int) (float64, float64) {
	return float64(w)/2 + (p.X-c.X)*c.PixelsPerUnit,
		float64(h)/2 - (p.Y-c.Y)*c.PixelsPerUnit
}

// ScreenToWorld converts screen pixels to a world point on the z = 0 plane.
func (c *Camera) ScreenToWorld(sx, sy float64, w, h int) Vec3 {
	return Vec3{
		X: c.X + (sx-float64(w)/2)/c.PixelsPerUnit,
		Y: c.Y - (sy-float64(h)/2)/c.PixelsPerUnit,
	}
}

// VisibleBounds returns the world-space area shown on a screen of the given
// size. Z spans everything.
func (c *Camera) VisibleBounds(w, h int) Bounds {
	hw := float64(w) / 2 / c.PixelsPerUnit
	hh := float64(h) / 2 / c.PixelsPerUnit
	return Bounds{
		Min: Vec3{c.X - hw, c.Y - hh, math.Inf(-1)},
		Max: Vec3{c.X + hw, c.Y + hh, math.Inf(1)},
	}
}

// shouldCull reports whether b lies entirely outside the visible area.
func (c *Camera) shouldCull(b Bounds, w, h int) bool {
	if !c.CullEnabled {
		return false
	}
	v := c.VisibleBounds(w, h)
	return b.Max.X < v.Min.X || b.Min.X > v.Max.X || b.Max.Y < v.Min.Y || b.Min.Y > v.Max.Y
}
