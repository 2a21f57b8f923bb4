package seedling

// Default growth timings.
const (
	DefaultGrowthDuration  = 2.0
	DefaultFadeOutDuration = 0.5
	DefaultGrowMoreScale   = 0.3
)

// GrowthController manages the single "current growable object" slot. It
// grows a new object from a prefab, replaces the current one in place, or
// grows the current one further, keeping the object's anchor point fixed in
// world space while its scale changes.
//
// Only one operation should run against the slot at a time; overlapping
// operations are a caller error and it is undefined which one wins.
type GrowthController struct {
	spawner Spawner

	// GrowthDuration is the length of every scale-up, in seconds.
	GrowthDuration float64
	// FadeOutDuration is how long Grow shrinks the previous object before
	// destroying it.
	FadeOutDuration float64
	// ScaleMultiplier is applied to every start and target scale.
	ScaleMultiplier float64
	// DefaultAnchor is used by Grow and ReplaceTree when no anchor is given.
	DefaultAnchor Anchor

	current Visual
	anchor  Anchor
}

// NewGrowthController creates a controller that spawns objects through s.
func NewGrowthController(s Spawner) *GrowthController {
	return &GrowthController{
		spawner:         s,
		GrowthDuration:  DefaultGrowthDuration,
		FadeOutDuration: DefaultFadeOutDuration,
		ScaleMultiplier: 1,
		DefaultAnchor:   AnchorBottom,
	}
}

// Current returns the current object, or nil.
func (g *GrowthController) Current() Visual {
	return g.current
}

// Anchor returns the sticky anchor of the current object.
func (g *GrowthController) Anchor() Anchor {
	return g.anchor
}

func (g *GrowthController) resolve(a Anchor) Anchor {
	if a != AnchorUnset {
		return a
	}
	if g.DefaultAnchor != AnchorUnset {
		return g.DefaultAnchor
	}
	return AnchorPivot
}

// Grow replaces the slot with a new object spawned from prefab at position.
// An existing object is first shrunk to zero over FadeOutDuration and
// destroyed, so two objects are never visible together. The new object
// starts at startScale and scales up to targetScale with its anchor point
// held at position. An empty prefab is logged and the task does nothing.
func (g *GrowthController) Grow(prefab string, position Vec3, targetScale, startScale float64, anchor Anchor) Task {
	return Defer(func() Task {
		if prefab == "" {
			logf("grow: no prefab given")
			return nil
		}
		if g.spawner == nil {
			logf("grow: no spawner set")
			return nil
		}
		var fade Task
		if g.current != nil {
			fade = g.fadeOut(g.current)
		}
		return Sequence(fade, Defer(func() Task {
			a := g.resolve(anchor)
			v := g.spawner.Spawn(prefab, position, startScale*g.ScaleMultiplier)
			if v == nil {
				return nil
			}
			g.current, g.anchor = v, a
			return g.scaleUp(v, position, startScale, targetScale, a, g.GrowthDuration)
		}))
	})
}

// ReplaceTree swaps the current object for one spawned from prefab. The
// anchor point of the old object is measured before it is destroyed (at once,
// without a fade) and the new object grows from startScale to targetScale
// with its anchor held at that point. Without a current object it logs a
// warning and does nothing.
func (g *GrowthController) ReplaceTree(prefab string, targetScale, startScale float64, anchor Anchor) Task {
	return Defer(func() Task {
		old := g.current
		if old == nil {
			logf("replace tree: no current object to replace")
			return nil
		}
		if prefab == "" || g.spawner == nil {
			logf("replace tree: no prefab or spawner")
			return nil
		}
		a := g.resolve(anchor)
		at := AnchorPoint(a, old.WorldBounds(), old.WorldPosition())
		old.Destroy()
		g.current = nil

		v := g.spawner.Spawn(prefab, at, startScale*g.ScaleMultiplier)
		if v == nil {
			return nil
		}
		g.current, g.anchor = v, a
		return g.scaleUp(v, at, startScale, targetScale, a, g.GrowthDuration)
	})
}

// GrowMore scales the current object up by additional (DefaultGrowMoreScale
// when zero). The object's sticky anchor is used unless anchor is set. Bounds
// are re-measured every tick and the object shifted so the anchor point stays
// where it was when the growth started. Without a current object it logs a
// warning and does nothing.
func (g *GrowthController) GrowMore(additional float64, anchor Anchor) Task {
	return Defer(func() Task {
		v := g.current
		if v == nil {
			logf("grow more: no current object")
			return nil
		}
		if additional == 0 {
			additional = DefaultGrowMoreScale
		}
		a := anchor
		if a == AnchorUnset {
			a = g.anchor
		}
		start := v.LocalScale()
		fixed := AnchorPoint(a, v.WorldBounds(), v.WorldPosition())
		return NewTween(start, start+additional, g.GrowthDuration, func(s float64) {
			v.SetLocalScale(s)
			if a == AnchorPivot || a == AnchorUnset {
				return
			}
			pos := v.WorldPosition()
			drift := AnchorPoint(a, v.WorldBounds(), pos).Sub(fixed)
			v.SetWorldPosition(pos.Sub(drift))
		}, nil)
	})
}

// Place destroys the current object and puts prefab at its final scale in a
// single step, anchored at position. The resume logic uses it to synthesize a
// tree that earlier stages would have grown.
func (g *GrowthController) Place(prefab string, position Vec3, scale float64, anchor Anchor) {
	if prefab == "" || g.spawner == nil {
		logf("place: no prefab or spawner")
		return
	}
	if g.current != nil {
		g.current.Destroy()
		g.current = nil
	}
	a := g.resolve(anchor)
	v := g.spawner.Spawn(prefab, position, scale*g.ScaleMultiplier)
	if v == nil {
		return
	}
	g.current, g.anchor = v, a
	g.scaleUp(v, position, scale, scale, a, 0).Resume(0)
}

// Clear destroys the current object without any animation.
func (g *GrowthController) Clear() {
	if g.current != nil {
		g.current.Destroy()
		g.current = nil
	}
}

// scaleUp measures the anchor offset once at unit scale (the only
// scale-independent measurement), then interpolates the scale and keeps
// position = at - offset*scale so the anchor point stays on at.
func (g *GrowthController) scaleUp(v Visual, at Vec3, startScale, targetScale float64, a Anchor, duration float64) *Tween {
	m := g.ScaleMultiplier
	v.SetLocalScale(1)
	pos := v.WorldPosition()
	offset := AnchorPoint(a, v.WorldBounds(), pos).Sub(pos)
	v.SetLocalScale(startScale * m)

	return NewTween(startScale, targetScale, duration, func(s float64) {
		v.SetLocalScale(s * m)
		if a != AnchorPivot {
			v.SetWorldPosition(at.Sub(offset.Mul(s * m)))
		}
	}, nil)
}

// fadeOut shrinks v to zero and destroys it.
func (g *GrowthController) fadeOut(v Visual) Task {
	return NewTween(v.LocalScale(), 0, g.FadeOutDuration, v.SetLocalScale, func() {
		v.Destroy()
		if g.current == v {
			g.current = nil
		}
	})
}
