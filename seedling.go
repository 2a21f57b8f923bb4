package seedling

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default tint (no color modification).
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the fade overlay color used by the dark transition.
	ColorBlack = Color{0, 0, 0, 1}
)

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec3 is a 3D vector used for positions, offsets and sizes. Y points up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Bounds is an axis-aligned box in world space.
type Bounds struct {
	Min, Max Vec3
}

// BoundsAt returns a zero-size box located at p.
func BoundsAt(p Vec3) Bounds {
	return Bounds{Min: p, Max: p}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec3 {
	return Vec3{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2, (b.Min.Z + b.Max.Z) / 2}
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Encapsulate returns the smallest box containing both b and o.
func (b Bounds) Encapsulate(o Bounds) Bounds {
	return Bounds{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Anchor selects the point of a growable object that stays fixed in world
// space while its scale changes.
type Anchor uint8

const (
	AnchorUnset  Anchor = iota // use the controller default (or the sticky anchor for GrowMore)
	AnchorPivot                // the object's own origin
	AnchorCenter               // center of the combined visual bounds
	AnchorBottom               // bounds center horizontally, bounds minimum vertically
)

// String returns the lowercase anchor name used in scripts and config.
func (a Anchor) String() string {
	switch a {
	case AnchorPivot:
		return "pivot"
	case AnchorCenter:
		return "center"
	case AnchorBottom:
		return "bottom"
	default:
		return "unset"
	}
}

// ParseAnchor converts a script/config name into an Anchor. Unknown and empty
// names map to AnchorUnset.
func ParseAnchor(s string) Anchor {
	switch s {
	case "pivot":
		return AnchorPivot
	case "center":
		return AnchorCenter
	case "bottom":
		return AnchorBottom
	default:
		return AnchorUnset
	}
}

// AnchorPoint returns the world-space point that anchor a refers to, given an
// object's combined bounds and its transform position.
func AnchorPoint(a Anchor, bounds Bounds, position Vec3) Vec3 {
	switch a {
	case AnchorCenter:
		return bounds.Center()
	case AnchorBottom:
		c := bounds.Center()
		return Vec3{c.X, bounds.Min.Y, c.Z}
	default:
		return position
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
