package seedling

import "testing"

func newTestRenderer(w *World) *Renderer {
	return &Renderer{World: w, Camera: NewCamera(0, 0, 100), Lights: NewLightLayer()}
}

func TestCollectSortsByInheritedZ(t *testing.T) {
	w := NewWorld()
	back := NewContainer("back")
	back.ZIndex = -1
	back.AddChild(NewBox("b1", Vec3{}, Vec3{1, 1, 1}, ColorWhite))
	front := NewBox("front", Vec3{}, Vec3{1, 1, 1}, ColorWhite)
	front.ZIndex = 2
	mid := NewBox("mid", Vec3{}, Vec3{1, 1, 1}, ColorWhite)
	hidden := NewBox("hidden", Vec3{}, Vec3{1, 1, 1}, ColorWhite)
	hidden.Active = false
	w.Root().AddChild(front)
	w.Root().AddChild(mid)
	w.Root().AddChild(back)
	w.Root().AddChild(hidden)

	r := newTestRenderer(w)
	r.collect()
	if len(r.commands) != 3 {
		t.Fatalf("commands = %d, want 3", len(r.commands))
	}
	want := []int{-1, 0, 2}
	for i, cmd := range r.commands {
		if cmd.zIndex != want[i] {
			t.Errorf("command %d z = %d, want %d", i, cmd.zIndex, want[i])
		}
	}
}

func TestCollectAppliesWorldTransform(t *testing.T) {
	w := NewWorld()
	parent := NewContainer("p")
	parent.SetPosition(Vec3{2, 0, 0})
	parent.Scale = 2
	parent.AddChild(NewBox("b", Vec3{0, 0.5, 0}, Vec3{1, 1, 1}, ColorWhite))
	w.Root().AddChild(parent)

	r := newTestRenderer(w)
	r.collect()
	b := r.commands[0].bounds
	if !vecNear(b.Min, Vec3{1, 0, -1}) || !vecNear(b.Max, Vec3{3, 2, 1}) {
		t.Errorf("bounds = %+v", b)
	}
}

func TestCollectIncludesParticles(t *testing.T) {
	w := NewWorld()
	e := NewEmitter("e", defaultTestConfig(10))
	e.Emitter.Start()
	w.Root().AddChild(e)
	w.UpdateParticles(0.05)

	r := newTestRenderer(w)
	r.collect()
	if len(r.commands) != e.Emitter.AliveCount() || len(r.commands) == 0 {
		t.Errorf("commands = %d, alive = %d", len(r.commands), e.Emitter.AliveCount())
	}
}

func TestLightSpotsFromGlowingBoxes(t *testing.T) {
	w := NewWorld()
	seed := NewBox("seed", Vec3{}, Vec3{0.2, 0.2, 0.2}, ColorWhite)
	seed.SetPosition(Vec3{1, 1, 0})
	seed.Intensity = 2
	w.Root().AddChild(seed)
	w.Root().AddChild(NewBox("plain", Vec3{}, Vec3{1, 1, 1}, ColorWhite))

	r := newTestRenderer(w)
	r.collect()
	spots := r.lightSpots(800, 600)
	if len(spots) != 1 {
		t.Fatalf("spots = %d, want 1", len(spots))
	}
	s := spots[0]
	if !near(s.x, 500) || !near(s.y, 200) {
		t.Errorf("spot at (%f, %f), want (500, 200)", s.x, s.y)
	}
	if !near(s.radius, 300) || s.intensity != 1 {
		t.Errorf("radius %f intensity %f", s.radius, s.intensity)
	}
}

func TestBackdropAndShade(t *testing.T) {
	dark := DarkLighting()
	if got := backdrop(dark); !near(got.R, 0.03) || got.A != 1 {
		t.Errorf("dark backdrop = %+v", got)
	}
	if got := backdrop(MeadowLighting()); got != (Color{0.8, 0.9, 1, 1}) {
		t.Errorf("meadow backdrop = %+v, want the fog color", got)
	}

	c := Color{1, 0.5, 0, 1}
	if got := shade(c, MeadowLighting()); got != c {
		t.Errorf("skybox shade = %+v, want unchanged", got)
	}
	got := shade(c, dark)
	if !near(got.R, 0.58) || !near(got.G, 0.29) || got.A != 1 {
		t.Errorf("flat shade = %+v", got)
	}
}
