package seedling

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// drawCommand is a single box emitted during traversal.
type drawCommand struct {
	bounds    Bounds
	color     Color
	glow      float64
	zIndex    int
	treeOrder int
}

// Renderer draws a World: the backdrop from the current lighting, every
// active box, light halos, the caption and the fade overlay on top.
type Renderer struct {
	World  *World
	Camera *Camera

	// Lights darkens dim scenes around glowing nodes. Nil disables it.
	Lights *LightLayer

	face     *text.GoTextFace
	commands []drawCommand
	spots    []lightSpot
}

// NewRenderer creates a renderer for w using the Go Regular font.
func NewRenderer(w *World) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load caption font: %w", err)
	}
	return &Renderer{
		World:  w,
		Camera: NewCamera(0, 2, 60),
		Lights: NewLightLayer(),
		face:   &text.GoTextFace{Source: src, Size: 26},
	}, nil
}

// Draw renders the world onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	l := r.World.Lighting()
	screen.Fill(backdrop(l).RGBA())

	r.collect()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, cmd := range r.commands {
		if r.Camera.shouldCull(cmd.bounds, sw, sh) {
			continue
		}
		r.drawBox(screen, cmd, l, sw, sh)
	}
	if r.Lights != nil {
		r.Lights.Draw(screen, l, r.lightSpots(sw, sh))
	}

	r.drawCaption(screen, sw, sh)

	if f := r.World.Fade; f != nil && f.Alpha > 0 {
		c := f.Color
		c.A *= clamp01(f.Alpha)
		vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), c.RGBA(), false)
	}
}

// collect walks the active tree and builds the sorted command list. Commands
// are ordered by ZIndex, then by tree order.
func (r *Renderer) collect() {
	r.commands = r.commands[:0]
	order := 0
	root := r.World.Root()
	walkActive(root, Vec3{}, 1, func(n *Node, wp Vec3, ws float64) {
		if n.Emitter != nil {
			z := inheritedZ(n)
			n.Emitter.eachParticle(func(b Bounds, c Color) {
				order++
				r.commands = append(r.commands, drawCommand{bounds: b, color: c, zIndex: z, treeOrder: order})
			})
			return
		}
		if n.Type != NodeTypeBox {
			return
		}
		order++
		c := wp.Add(n.Offset.Mul(ws))
		half := n.Size.Mul(math.Abs(ws) / 2)
		r.commands = append(r.commands, drawCommand{
			bounds:    Bounds{Min: c.Sub(half), Max: c.Add(half)},
			color:     n.Color,
			glow:      n.Intensity,
			zIndex:    inheritedZ(n),
			treeOrder: order,
		})
	})
	slices.SortStableFunc(r.commands, func(a, b drawCommand) int {
		if a.zIndex != b.zIndex {
			return a.zIndex - b.zIndex
		}
		return a.treeOrder - b.treeOrder
	})
}

// lightSpots converts every glowing box into a screen-space light.
func (r *Renderer) lightSpots(sw, sh int) []lightSpot {
	r.spots = r.spots[:0]
	for _, cmd := range r.commands {
		if cmd.glow <= 0 {
			continue
		}
		x, y := r.Camera.WorldToScreen(cmd.bounds.Center(), sw, sh)
		r.spots = append(r.spots, lightSpot{
			x:         x,
			y:         y,
			radius:    cmd.glow * r.Lights.RadiusPerIntensity * r.Camera.PixelsPerUnit,
			intensity: clamp01(cmd.glow),
		})
	}
	return r.spots
}

// inheritedZ returns the ZIndex of the nearest node (n or an ancestor) that
// sets one.
func inheritedZ(n *Node) int {
	for p := n; p != nil; p = p.Parent {
		if p.ZIndex != 0 {
			return p.ZIndex
		}
	}
	return 0
}

func (r *Renderer) drawBox(screen *ebiten.Image, cmd drawCommand, l Lighting, sw, sh int) {
	x0, y0 := r.Camera.WorldToScreen(Vec3{cmd.bounds.Min.X, cmd.bounds.Max.Y, 0}, sw, sh)
	x1, y1 := r.Camera.WorldToScreen(Vec3{cmd.bounds.Max.X, cmd.bounds.Min.Y, 0}, sw, sh)

	if cmd.glow > 0 {
		cx, cy := (x0+x1)/2, (y0+y1)/2
		radius := math.Max(x1-x0, y1-y0) * (1 + cmd.glow)
		halo := Color{cmd.color.R, cmd.color.G, cmd.color.B, clamp01(0.15 * cmd.glow)}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), halo.RGBA(), true)
	}

	c := shade(cmd.color, l)
	if cmd.glow > 0 {
		c = cmd.color
	}
	w, h := math.Max(x1-x0, 1), math.Max(y1-y0, 1)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(w), float32(h), c.RGBA(), false)
}

func (r *Renderer) drawCaption(screen *ebiten.Image, sw, sh int) {
	c := r.World.Caption
	if c == nil || c.Text == "" || c.Alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(sw)/2, float64(sh)*0.12)
	op.ColorScale.ScaleAlpha(float32(clamp01(c.Alpha)))
	op.LineSpacing = r.face.Size * 1.5
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, c.Text, r.face, op)
}

// backdrop returns the clear color implied by the lighting: the fog color
// when fog is on, otherwise the ambient color scaled by its intensity.
func backdrop(l Lighting) Color {
	if l.Fog {
		return Color{l.FogColor.R, l.FogColor.G, l.FogColor.B, 1}
	}
	k := l.AmbientIntensity
	return Color{l.AmbientColor.R * k, l.AmbientColor.G * k, l.AmbientColor.B * k, 1}
}

// shade tints c by the ambient light. Flat ambient light dims colors by its
// intensity; skybox light leaves them as authored.
func shade(c Color, l Lighting) Color {
	if l.AmbientMode == AmbientSkybox {
		return c
	}
	k := 0.4 + 0.6*clamp01(l.AmbientIntensity)
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}
