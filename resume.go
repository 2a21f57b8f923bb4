package seedling

import "fmt"

// ResumeTable describes the world state each stage implies when the stages
// before it never ran.
type ResumeTable struct {
	// SeedPlantedFrom is the first stage at which the seed is already gone.
	// Zero disables hiding the seed.
	SeedPlantedFrom int          `yaml:"seedPlantedFrom"`
	Bands           []ResumeBand `yaml:"bands"`
}

// ResumeBand covers the stages in [From, To). A zero To leaves the band open.
type ResumeBand struct {
	From int `yaml:"from"`
	To   int `yaml:"to,omitempty"`

	// Prefab is placed at Scale on the tree origin.
	Prefab string  `yaml:"prefab,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
	Anchor string  `yaml:"anchor,omitempty"`

	// Environment forces "meadow" or "dark" with no transition.
	Environment string `yaml:"environment,omitempty"`
	// Music starts the background track unless it is already playing.
	Music bool `yaml:"music,omitempty"`
}

// Contains reports whether stage n falls in the band.
func (b ResumeBand) Contains(n int) bool {
	return n >= b.From && (b.To == 0 || n < b.To)
}

// Band returns the first band containing stage n.
func (r ResumeTable) Band(n int) (ResumeBand, bool) {
	for _, b := range r.Bands {
		if b.Contains(n) {
			return b, true
		}
	}
	return ResumeBand{}, false
}

func (r ResumeTable) validate(stages int) error {
	for i, b := range r.Bands {
		if b.From < 0 || b.From >= stages {
			return fmt.Errorf("resume band %d: from %d out of range", i, b.From)
		}
		if b.To != 0 && b.To <= b.From {
			return fmt.Errorf("resume band %d: empty range [%d, %d)", i, b.From, b.To)
		}
		if b.Prefab != "" && b.Scale <= 0 {
			return fmt.Errorf("resume band %d: prefab needs a positive scale", i)
		}
		if !validAnchorName(b.Anchor) {
			return fmt.Errorf("resume band %d: unknown anchor %q", i, b.Anchor)
		}
		if b.Environment != "" && b.Environment != "meadow" && b.Environment != "dark" {
			return fmt.Errorf("resume band %d: unknown environment %q", i, b.Environment)
		}
	}
	return nil
}

// prepare puts every persistent slot into the state the stages before n
// leave behind, whatever ran before the jump. Detached tasks and the text are
// cut, slots a band does not name fall back to their initial state, and
// objects are placed at their final scale in one step.
func (d *Director) prepare(n int) {
	for _, h := range d.async {
		h.Cancel()
	}
	d.async = d.async[:0]
	d.Text.Reset()

	r := d.script.Resume
	if r.SeedPlantedFrom > 0 && n >= r.SeedPlantedFrom {
		d.Seed.Hide()
	} else if d.Seed.Restore() {
		d.sched.Go(d.Seed.Float())
	}

	b, ok := r.Band(n)
	if d.debug && ok {
		debugf("resume stage %d: band [%d, %d) prefab %q", n, b.From, b.To, b.Prefab)
	}
	if b.Environment == "meadow" {
		d.Env.ForceState(EnvironmentMeadow)
	} else {
		d.Env.ForceState(EnvironmentDark)
	}

	if ok && b.Prefab != "" {
		d.Growth.Place(b.Prefab, d.TreeOrigin, b.Scale, ParseAnchor(b.Anchor))
	} else {
		d.Growth.Clear()
	}

	d.Music.Do(func(m Music) {
		switch {
		case !b.Music:
			if m.IsPlaying() {
				m.Stop()
			}
		case m.IsPlaying():
			m.SetVolume(d.musicVolume)
		default:
			PlayMusic(m, d.musicVolume)
		}
	})
}
