package seedling

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenFirstResumeWritesFrom(t *testing.T) {
	var got []float64
	tw := NewTween(2, 10, 1, func(v float64) { got = append(got, v) }, nil)

	if tw.Resume(0) {
		t.Fatal("tween finished on first resume")
	}
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("writes = %v, want [2]", got)
	}
}

func TestTweenEndpointsExact(t *testing.T) {
	var last float64
	completed := 0
	tw := NewTween(2, 10, 1, func(v float64) { last = v }, func() {
		completed++
		if last != 10 {
			t.Errorf("onComplete saw value %f, want 10", last)
		}
	})

	// Exact quarters avoid float32 accumulation drift.
	tw.Resume(0)
	for i := 0; i < 3; i++ {
		if tw.Resume(0.25) {
			t.Fatalf("finished early at step %d", i)
		}
	}
	if !tw.Resume(0.25) {
		t.Fatal("expected finish after full duration")
	}
	if last != 10 || tw.Value() != 10 {
		t.Errorf("final value = %f, want exactly 10", last)
	}
	if !tw.Done {
		t.Error("Done not set")
	}
	if completed != 1 {
		t.Errorf("onComplete called %d times, want 1", completed)
	}
	// Resuming a finished tween writes nothing more.
	tw.Resume(0.25)
	if completed != 1 {
		t.Errorf("onComplete called again after finish")
	}
}

func TestTweenOvershootingTickWritesTarget(t *testing.T) {
	var last float64
	tw := NewTween(0, 1, 1, func(v float64) { last = v }, nil)
	tw.Resume(0)
	tw.Resume(0.75)
	if !tw.Resume(0.75) {
		t.Fatal("expected finish")
	}
	if last != 1 {
		t.Errorf("last = %f, want exactly 1", last)
	}
}

func TestTweenMidpointLinear(t *testing.T) {
	var last float64
	tw := NewTween(-4, 4, 2, func(v float64) { last = v }, nil)
	tw.Resume(0)
	tw.Resume(0.5)
	if math.Abs(last-(-2)) > 1e-6 {
		t.Errorf("at t=0.5 value = %f, want -2", last)
	}
	tw.Resume(0.5)
	if math.Abs(last) > 1e-6 {
		t.Errorf("at t=1 value = %f, want 0", last)
	}
}

func TestTweenNonPositiveDurationFinishesImmediately(t *testing.T) {
	for _, d := range []float64{0, -1} {
		var last float64
		done := false
		tw := NewTween(3, 7, d, func(v float64) { last = v }, func() { done = true })
		if !tw.Resume(0) {
			t.Fatalf("duration %v: not finished on first resume", d)
		}
		if last != 7 || !done {
			t.Errorf("duration %v: last = %f done = %v, want 7 true", d, last, done)
		}
	}
}

func TestTweenWithEase(t *testing.T) {
	var last float64
	tw := NewTween(0, 4, 1, func(v float64) { last = v }, nil).WithEase(ease.InQuad)
	tw.Resume(0)
	tw.Resume(0.5)
	// InQuad at half time is a quarter of the way.
	if math.Abs(last-1) > 1e-6 {
		t.Errorf("value = %f, want 1", last)
	}
	tw.Resume(0.5)
	if last != 4 {
		t.Errorf("final = %f, want 4", last)
	}
}

func TestTweenAlpha(t *testing.T) {
	p := &Panel{}
	tw := TweenAlpha(p, 0, 1, 0.5)
	tw.Resume(0)
	tw.Resume(0.25)
	if math.Abs(p.Alpha-0.5) > 1e-6 {
		t.Errorf("Alpha = %f, want 0.5", p.Alpha)
	}
	tw.Resume(0.25)
	if p.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", p.Alpha)
	}
}

func TestTweenScaleFromCurrent(t *testing.T) {
	n := NewContainer("scale")
	n.Scale = 2
	tw := TweenScale(n, 4, 1)
	tw.Resume(0)
	if n.Scale != 2 {
		t.Errorf("Scale = %f, want 2 on start", n.Scale)
	}
	tw.Resume(0.5)
	tw.Resume(0.5)
	if n.Scale != 4 {
		t.Errorf("Scale = %f, want 4", n.Scale)
	}
}

func TestTweenOnScheduler(t *testing.T) {
	s := NewScheduler()
	var last float64
	s.Go(NewTween(0, 1, 1, func(v float64) { last = v }, nil))
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	s.Tick(0.5)
	s.Tick(0.5)
	if last != 1 {
		t.Errorf("last = %f, want 1", last)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after finish, want 0", s.Len())
	}
}
