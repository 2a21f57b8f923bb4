package seedling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween interpolates a scalar from From to To over Duration seconds of tick
// time. Progress is driven by a gween tween running from 0 to 1 with the
// configured easing (linear by default); the written value is computed in
// float64 so the endpoints are exact: the first resume writes From and the
// final resume writes To, no matter how ticks quantize the elapsed time.
//
// Tween implements Task. A cancelled tween (one that simply stops being
// resumed) leaves whatever value it last wrote.
type Tween struct {
	From, To   float64
	Duration   float64
	OnUpdate   func(value float64)
	OnComplete func()

	// Done is set once the final value has been written.
	Done bool

	tw    *gween.Tween
	value float64
}

// NewTween creates a linear tween. onUpdate receives every written value,
// including the final one; onComplete runs after the final write. Either
// callback may be nil.
func NewTween(from, to, duration float64, onUpdate func(float64), onComplete func()) *Tween {
	t := &Tween{
		From:       from,
		To:         to,
		Duration:   duration,
		OnUpdate:   onUpdate,
		OnComplete: onComplete,
		value:      from,
	}
	if duration > 0 {
		t.tw = gween.New(0, 1, float32(duration), ease.Linear)
	}
	return t
}

// WithEase replaces the easing function and returns the tween for chaining.
// Must be called before the first Resume.
func (t *Tween) WithEase(fn ease.TweenFunc) *Tween {
	if t.tw != nil && fn != nil {
		t.tw = gween.New(0, 1, float32(t.Duration), fn)
	}
	return t
}

// Value returns the last written value.
func (t *Tween) Value() float64 {
	return t.value
}

// Resume advances the tween by dt seconds.
func (t *Tween) Resume(dt float64) bool {
	if t.Done {
		return true
	}
	if t.tw == nil {
		t.finish()
		return true
	}
	p, finished := t.tw.Update(float32(dt))
	if finished {
		t.finish()
		return true
	}
	t.write(lerp(t.From, t.To, float64(p)))
	return false
}

func (t *Tween) write(v float64) {
	t.value = v
	if t.OnUpdate != nil {
		t.OnUpdate(v)
	}
}

func (t *Tween) finish() {
	t.write(t.To)
	t.Done = true
	t.tw = nil
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// --- Convenience constructors ---

// AlphaTarget is anything whose opacity can be set, such as a text label's
// canvas group or a full-screen fade panel.
type AlphaTarget interface {
	SetAlpha(a float64)
}

// TweenAlpha fades target from one opacity to another.
func TweenAlpha(target AlphaTarget, from, to, duration float64) *Tween {
	return NewTween(from, to, duration, target.SetAlpha, nil)
}

// TweenScale scales v uniformly from its current local scale to the given value.
func TweenScale(v Visual, to, duration float64) *Tween {
	return NewTween(v.LocalScale(), to, duration, v.SetLocalScale, nil)
}
