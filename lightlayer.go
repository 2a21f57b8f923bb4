package seedling

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// lightSpot is a light source in screen space.
type lightSpot struct {
	x, y      float64
	radius    float64
	intensity float64
}

// LightLayer darkens the frame everywhere except around glowing nodes. It
// fills an offscreen image with darkness derived from the ambient light and
// erases a feathered circle at each light, then draws the result over the
// scene.
type LightLayer struct {
	// MaxDarkness is the layer opacity under zero flat ambient light.
	MaxDarkness float64
	// RadiusPerIntensity converts a node's light intensity into a radius in
	// world units.
	RadiusPerIntensity float64

	img         *ebiten.Image
	circleCache map[int]*ebiten.Image // cached circle textures keyed by quantized radius
	imgOp       ebiten.DrawImageOptions
}

// NewLightLayer creates a light layer with the default darkness and radius.
func NewLightLayer() *LightLayer {
	return &LightLayer{MaxDarkness: 0.85, RadiusPerIntensity: 1.5}
}

// Darkness returns the layer opacity for l. Skybox light never darkens; flat
// light darkens in proportion to how dim it is.
func (ll *LightLayer) Darkness(l Lighting) float64 {
	if l.AmbientMode == AmbientSkybox {
		return 0
	}
	return clamp01(ll.MaxDarkness * (1 - clamp01(l.AmbientIntensity)))
}

// Draw renders the layer over screen. Nothing is drawn when the lighting
// implies no darkness.
func (ll *LightLayer) Draw(screen *ebiten.Image, l Lighting, spots []lightSpot) {
	a := ll.Darkness(l)
	if a <= 0 {
		return
	}
	b := screen.Bounds()
	if ll.img == nil || ll.img.Bounds().Dx() != b.Dx() || ll.img.Bounds().Dy() != b.Dy() {
		if ll.img != nil {
			ll.img.Deallocate()
		}
		ll.img = ebiten.NewImage(b.Dx(), b.Dy())
	}

	target := ll.img
	target.Clear()
	target.Fill(color.NRGBA{A: uint8(a * 255)})

	op := &ll.imgOp
	for _, s := range spots {
		if s.radius <= 0 || s.intensity <= 0 {
			continue
		}
		circle := ll.getCircle(s.radius)
		sz := float64(circle.Bounds().Dx())
		op.GeoM.Reset()
		op.GeoM.Scale(2*s.radius/sz, 2*s.radius/sz)
		op.GeoM.Translate(s.x-s.radius, s.y-s.radius)
		k := float32(clamp01(s.intensity))
		op.ColorScale.Reset()
		op.ColorScale.Scale(k, k, k, k)
		op.Blend = ebiten.BlendDestinationOut
		target.DrawImage(circle, op)
	}

	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Blend = ebiten.BlendSourceOver
	screen.DrawImage(target, op)
}

// getCircle returns a cached circle texture for the given radius, generating
// one if it doesn't exist. Radius is quantized to the nearest integer to
// avoid generating separate textures for tiny differences.
func (ll *LightLayer) getCircle(radius float64) *ebiten.Image {
	key := int(math.Ceil(radius))
	if key < 1 {
		key = 1
	}
	if ll.circleCache == nil {
		ll.circleCache = make(map[int]*ebiten.Image)
	}
	if img, ok := ll.circleCache[key]; ok {
		return img
	}
	size := 2 * key
	img := ebiten.NewImage(size, size)
	img.WritePixels(circlePixels(float64(key)))
	ll.circleCache[key] = img
	return img
}

// Dispose releases the images owned by the layer.
func (ll *LightLayer) Dispose() {
	if ll.img != nil {
		ll.img.Deallocate()
		ll.img = nil
	}
	for _, img := range ll.circleCache {
		img.Deallocate()
	}
	ll.circleCache = nil
}

// circlePixels returns the premultiplied RGBA pixels of a feathered white
// circle with the given radius, using smoothstep falloff.
func circlePixels(radius float64) []byte {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	pix := make([]byte, size*size*4)
	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			a := uint8(falloff(math.Sqrt(dx*dx+dy*dy)/radius) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}

// falloff is 1 at the center (d = 0) and 0 at and beyond the edge (d = 1).
func falloff(d float64) float64 {
	if d >= 1 {
		return 0
	}
	t := 1 - d
	return t * t * (3 - 2*t)
}
