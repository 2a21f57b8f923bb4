package seedling

import (
	"strings"
	"testing"
)

func TestDefaultScript(t *testing.T) {
	s := DefaultScript()
	if len(s.Stages) != 17 {
		t.Fatalf("stages = %d, want 17", len(s.Stages))
	}
	for i, st := range s.Stages {
		if st.Terminal != (i == 16) {
			t.Errorf("stage %d terminal = %v", i, st.Terminal)
		}
		if st.Name == "" || len(st.Steps) == 0 {
			t.Errorf("stage %d is empty: %+v", i, st)
		}
	}
	if s.Resume.SeedPlantedFrom != 6 {
		t.Errorf("seedPlantedFrom = %d, want 6", s.Resume.SeedPlantedFrom)
	}
	b, ok := s.Resume.Band(15)
	if !ok || b.Prefab != PrefabHuge || b.Environment != "meadow" || !b.Music {
		t.Errorf("band for stage 15 = %+v, %v", b, ok)
	}
	if _, ok := s.Resume.Band(7); ok {
		t.Error("stage 7 should have no resume band")
	}
}

func TestDefaultScriptYAMLIsACopy(t *testing.T) {
	a := DefaultScriptYAML()
	a[0] = 'X'
	if DefaultScriptYAML()[0] == 'X' {
		t.Error("DefaultScriptYAML shares the embedded bytes")
	}
}

func TestResumeBandContains(t *testing.T) {
	closed := ResumeBand{From: 8, To: 10}
	open := ResumeBand{From: 14}
	for _, tt := range []struct {
		b    ResumeBand
		n    int
		want bool
	}{
		{closed, 7, false},
		{closed, 8, true},
		{closed, 9, true},
		{closed, 10, false},
		{open, 13, false},
		{open, 14, true},
		{open, 99, true},
	} {
		if got := tt.b.Contains(tt.n); got != tt.want {
			t.Errorf("%+v.Contains(%d) = %v, want %v", tt.b, tt.n, got, tt.want)
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no stages", "stages: []", "no stages"},
		{"terminal not last", `
stages:
  - { name: a, terminal: true, steps: [ { wait: 1 } ] }
  - { name: b, steps: [ { wait: 1 } ] }
`, "stage 0: only the last stage"},
		{"two actions", `
stages:
  - { name: a, steps: [ { wait: 1, hide: true } ] }
`, "stage 0 step 0: step has 2 actions"},
		{"no action", `
stages:
  - { name: a, steps: [ {} ] }
`, "no action"},
		{"negative wait", `
stages:
  - { name: a, steps: [ { wait: -1 } ] }
`, "negative wait"},
		{"grow without prefab", `
stages:
  - { name: a, steps: [ { grow: { target: 1 } } ] }
`, "grow: no prefab"},
		{"replace bad anchor", `
stages:
  - { name: a, steps: [ { replace: { prefab: x, target: 1, anchor: left } } ] }
`, "unknown anchor"},
		{"unknown environment", `
stages:
  - { name: a, steps: [ { environment: desert } ] }
`, "unknown environment"},
		{"music with two actions", `
stages:
  - { name: a, steps: [ { music: { play: true, stop: true } } ] }
`, "music: set exactly one"},
		{"fade color", `
stages:
  - { name: a, steps: [ { fade: { from: 0, to: 1, duration: 1, color: red } } ] }
`, "unknown color"},
		{"seed action", `
stages:
  - { name: a, steps: [ { seed: water } ] }
`, "unknown seed action"},
		{"nested async", `
stages:
  - { name: a, steps: [ { async: { seed: water } } ] }
`, "async: unknown seed action"},
		{"nested parallel", `
stages:
  - name: a
    steps:
      - parallel:
          - { wait: 1 }
          - { environment: desert }
`, "parallel 1: unknown environment"},
		{"resume out of range", `
stages:
  - { name: a, steps: [ { wait: 1 } ] }
resume:
  bands: [ { from: 3 } ]
`, "from 3 out of range"},
		{"resume without scale", `
stages:
  - { name: a, steps: [ { wait: 1 } ] }
  - { name: b, steps: [ { wait: 1 } ] }
resume:
  bands: [ { from: 1, prefab: sprout } ]
`, "positive scale"},
		{"resume empty range", `
stages:
  - { name: a, steps: [ { wait: 1 } ] }
  - { name: b, steps: [ { wait: 1 } ] }
resume:
  bands: [ { from: 1, to: 1 } ]
`, "empty range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	if _, err := LoadScript("does-not-exist.yaml"); err == nil {
		t.Error("expected an error")
	}
}

func wait(s float64) *float64 { return &s }

func TestCompileParallelWaitsForAll(t *testing.T) {
	d, _, _ := newGardenDirector(t, DefaultConfig())
	task := d.compile(Step{Parallel: []Step{{Wait: wait(1)}, {Wait: wait(2)}}})
	h := d.Scheduler().Go(task)
	tickFor(d.Scheduler(), 1.5, nil)
	if h.Done() {
		t.Fatal("parallel finished before its longest step")
	}
	tickFor(d.Scheduler(), 0.5, nil)
	if !h.Done() {
		t.Error("parallel should be done after 2s")
	}
}

func TestCompileAsyncDoesNotWait(t *testing.T) {
	d, _, _ := newGardenDirector(t, DefaultConfig())
	task := d.compile(Step{Async: &Step{Wait: wait(5)}})
	if !task.Resume(0) {
		t.Error("async step should finish at once")
	}
	if d.Scheduler().Len() != 1 {
		t.Errorf("running tasks = %d, want the detached wait", d.Scheduler().Len())
	}
}

func TestCompileFade(t *testing.T) {
	d, w, _ := newGardenDirector(t, DefaultConfig())
	d.Scheduler().Go(d.compile(Step{Fade: &FadeStep{From: 0, To: 1, Duration: 1, Color: "white"}}))
	tickFor(d.Scheduler(), 0.5, nil)
	if w.Fade.Color != ColorWhite || !near(w.Fade.Alpha, 0.5) {
		t.Errorf("overlay = %+v, want white at 0.5", *w.Fade)
	}
	tickFor(d.Scheduler(), 0.5, nil)
	if w.Fade.Alpha != 1 {
		t.Errorf("alpha = %f, want 1", w.Fade.Alpha)
	}
}

func TestCompileMusicUsesConfiguredVolume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Music.Volume = 0.7
	d, _, m := newGardenDirector(t, cfg)

	d.compile(Step{Music: &MusicStep{Play: true}}).Resume(0)
	if !m.playing || m.volume != 0.7 {
		t.Errorf("music = %+v, want playing at 0.7", *m)
	}
	d.compile(Step{Music: &MusicStep{Play: true, Volume: 0.2}}).Resume(0)
	if m.volume != 0.2 {
		t.Errorf("volume = %g, want 0.2", m.volume)
	}
	d.compile(Step{Music: &MusicStep{Stop: true}}).Resume(0)
	if m.playing {
		t.Error("music should be stopped")
	}
}

func TestCompileGrowUsesTreeOrigin(t *testing.T) {
	d, _, _ := newGardenDirector(t, DefaultConfig())
	d.TreeOrigin = Vec3{2, 0, 0}
	d.Scheduler().Go(d.compile(Step{Grow: &GrowStep{Prefab: PrefabSprout, Target: 1, Anchor: "bottom"}}))
	tickFor(d.Scheduler(), 2, nil)
	n := currentNode(t, d)
	b := n.WorldBounds()
	if !near(b.Min.Y, 0) || !near((b.Min.X+b.Max.X)/2, 2) {
		t.Errorf("bounds = %+v, want bottom-center at (2, 0)", b)
	}
}
