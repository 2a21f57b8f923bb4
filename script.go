package seedling

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is the declarative stage table. Each stage is a list of steps run in
// order; the sequencer opens the advance gate when the last one finishes.
type Script struct {
	Stages []StageDef   `yaml:"stages"`
	Resume ResumeTable `yaml:"resume"`
}

// StageDef describes one stage.
type StageDef struct {
	Name     string `yaml:"name"`
	Terminal bool   `yaml:"terminal,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Step is a single script action. Exactly one field must be set.
type Step struct {
	// Log prints a line to the logger.
	Log string `yaml:"log,omitempty"`
	// Wait pauses for the given seconds.
	Wait *float64 `yaml:"wait,omitempty"`

	Show     *ShowStep `yaml:"show,omitempty"`
	Hide     bool      `yaml:"hide,omitempty"`
	HideWait bool      `yaml:"hideWait,omitempty"`

	Grow     *GrowStep     `yaml:"grow,omitempty"`
	Replace  *GrowStep     `yaml:"replace,omitempty"`
	GrowMore *GrowMoreStep `yaml:"growMore,omitempty"`

	// Environment transitions to "meadow" or "dark".
	Environment string     `yaml:"environment,omitempty"`
	Music       *MusicStep `yaml:"music,omitempty"`
	Fade        *FadeStep  `yaml:"fade,omitempty"`
	// Seed runs "glow", "plant" or "hide" on the seed.
	Seed string `yaml:"seed,omitempty"`

	// Async starts the nested step without waiting for it.
	Async *Step `yaml:"async,omitempty"`
	// Parallel runs the nested steps together and waits for all of them.
	Parallel []Step `yaml:"parallel,omitempty"`
}

// ShowStep shows a message. A positive Hold fades it out after that many
// seconds.
type ShowStep struct {
	Text string  `yaml:"text"`
	Hold float64 `yaml:"hold,omitempty"`
}

// GrowStep grows a new object (grow) or replaces the current one (replace).
// Position is only used by grow and defaults to the tree origin.
type GrowStep struct {
	Prefab   string  `yaml:"prefab"`
	Target   float64 `yaml:"target"`
	Start    float64 `yaml:"start,omitempty"`
	Anchor   string  `yaml:"anchor,omitempty"`
	Position *Vec3   `yaml:"position,omitempty"`
}

// GrowMoreStep grows the current object further.
type GrowMoreStep struct {
	Amount float64 `yaml:"amount,omitempty"`
	Anchor string  `yaml:"anchor,omitempty"`
}

// MusicStep controls the background music. Exactly one of Play, FadeOut or
// Stop is meaningful.
type MusicStep struct {
	Play    bool    `yaml:"play,omitempty"`
	Volume  float64 `yaml:"volume,omitempty"`
	FadeOut float64 `yaml:"fadeOut,omitempty"`
	Stop    bool    `yaml:"stop,omitempty"`
}

// FadeStep fades the full-screen overlay.
type FadeStep struct {
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Duration float64 `yaml:"duration"`
	// Color is "black" or "white"; empty keeps the current overlay color.
	Color string `yaml:"color,omitempty"`
}

// LoadScript reads and validates a YAML stage script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML stage script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// Validate checks the stage table and the resume table.
func (s *Script) Validate() error {
	if len(s.Stages) == 0 {
		return errors.New("no stages")
	}
	for i, st := range s.Stages {
		if st.Terminal && i != len(s.Stages)-1 {
			return fmt.Errorf("stage %d: only the last stage may be terminal", i)
		}
		for j, step := range st.Steps {
			if err := step.validate(); err != nil {
				return fmt.Errorf("stage %d step %d: %w", i, j, err)
			}
		}
	}
	return s.Resume.validate(len(s.Stages))
}

func (s *Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Log != "",
		s.Wait != nil,
		s.Show != nil,
		s.Hide,
		s.HideWait,
		s.Grow != nil,
		s.Replace != nil,
		s.GrowMore != nil,
		s.Environment != "",
		s.Music != nil,
		s.Fade != nil,
		s.Seed != "",
		s.Async != nil,
		s.Parallel != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (s *Step) validate() error {
	switch n := s.actions(); {
	case n == 0:
		return errors.New("step has no action")
	case n > 1:
		return fmt.Errorf("step has %d actions, want 1", n)
	}
	switch {
	case s.Wait != nil && *s.Wait < 0:
		return fmt.Errorf("negative wait %g", *s.Wait)
	case s.Grow != nil:
		return s.Grow.validate("grow")
	case s.Replace != nil:
		return s.Replace.validate("replace")
	case s.GrowMore != nil:
		if !validAnchorName(s.GrowMore.Anchor) {
			return fmt.Errorf("growMore: unknown anchor %q", s.GrowMore.Anchor)
		}
	case s.Environment != "":
		if s.Environment != "meadow" && s.Environment != "dark" {
			return fmt.Errorf("unknown environment %q", s.Environment)
		}
	case s.Music != nil:
		m := s.Music
		n := 0
		for _, set := range []bool{m.Play, m.FadeOut > 0, m.Stop} {
			if set {
				n++
			}
		}
		if n != 1 {
			return errors.New("music: set exactly one of play, fadeOut or stop")
		}
	case s.Fade != nil:
		if s.Fade.Color != "" && s.Fade.Color != "black" && s.Fade.Color != "white" {
			return fmt.Errorf("fade: unknown color %q", s.Fade.Color)
		}
	case s.Seed != "":
		if s.Seed != "glow" && s.Seed != "plant" && s.Seed != "hide" {
			return fmt.Errorf("unknown seed action %q", s.Seed)
		}
	case s.Async != nil:
		if err := s.Async.validate(); err != nil {
			return fmt.Errorf("async: %w", err)
		}
	case s.Parallel != nil:
		if len(s.Parallel) == 0 {
			return errors.New("parallel: no steps")
		}
		for i := range s.Parallel {
			if err := s.Parallel[i].validate(); err != nil {
				return fmt.Errorf("parallel %d: %w", i, err)
			}
		}
	}
	return nil
}

func (g *GrowStep) validate(op string) error {
	if g.Prefab == "" {
		return fmt.Errorf("%s: no prefab", op)
	}
	if g.Target <= 0 {
		return fmt.Errorf("%s: target scale must be positive", op)
	}
	if !validAnchorName(g.Anchor) {
		return fmt.Errorf("%s: unknown anchor %q", op, g.Anchor)
	}
	return nil
}

func validAnchorName(s string) bool {
	return s == "" || ParseAnchor(s) != AnchorUnset
}

// --- Compilation ---

// stages turns the script into sequencer stages bound to d's controllers.
// Steps are compiled each time a stage launches, since tasks carry state.
func (d *Director) stages() []Stage {
	out := make([]Stage, len(d.script.Stages))
	for i := range d.script.Stages {
		def := d.script.Stages[i]
		out[i] = Stage{
			Name:     def.Name,
			Terminal: def.Terminal,
			Build: func() Task {
				steps := make([]Task, 0, len(def.Steps))
				for _, st := range def.Steps {
					steps = append(steps, d.compile(st))
				}
				return Sequence(steps...)
			},
		}
	}
	return out
}

// compile builds the task for a single validated step. Steps whose
// collaborator is missing are logged and compile to nil, which Sequence
// and Parallel skip.
func (d *Director) compile(s Step) Task {
	switch {
	case s.Log != "":
		msg := s.Log
		return Do(func() { logf("%s", msg) })
	case s.Wait != nil:
		return Wait(*s.Wait)
	case s.Show != nil:
		text, hold := s.Show.Text, s.Show.Hold
		return Do(func() { d.Text.Show(text, hold) })
	case s.Hide:
		return Do(d.Text.Hide)
	case s.HideWait:
		return d.Text.HideAwait()
	case s.Grow != nil:
		g := s.Grow
		pos := d.TreeOrigin
		if g.Position != nil {
			pos = *g.Position
		}
		return d.Growth.Grow(g.Prefab, pos, g.Target, g.Start, ParseAnchor(g.Anchor))
	case s.Replace != nil:
		g := s.Replace
		return d.Growth.ReplaceTree(g.Prefab, g.Target, g.Start, ParseAnchor(g.Anchor))
	case s.GrowMore != nil:
		return d.Growth.GrowMore(s.GrowMore.Amount, ParseAnchor(s.GrowMore.Anchor))
	case s.Environment == "meadow":
		return d.Env.TransitionToMeadow()
	case s.Environment == "dark":
		return d.Env.TransitionToDark()
	case s.Music != nil:
		return d.compileMusic(*s.Music)
	case s.Fade != nil:
		return d.compileFade(*s.Fade)
	case s.Seed == "glow":
		return d.Seed.Glow()
	case s.Seed == "plant":
		return d.Seed.Plant()
	case s.Seed == "hide":
		return Do(d.Seed.Hide)
	case s.Async != nil:
		inner := *s.Async
		return Do(func() { d.goAsync(d.compile(inner)) })
	case s.Parallel != nil:
		tasks := make([]Task, len(s.Parallel))
		for i, st := range s.Parallel {
			tasks[i] = d.compile(st)
		}
		return Parallel(tasks...)
	}
	return nil
}

func (d *Director) compileMusic(m MusicStep) Task {
	music, ok := d.Music.Get()
	if !ok {
		return Do(func() { logf("music: no track loaded") })
	}
	switch {
	case m.Play:
		vol := m.Volume
		if vol == 0 {
			vol = d.musicVolume
		}
		return Do(func() { PlayMusic(music, vol) })
	case m.FadeOut > 0:
		return FadeOutMusic(music, m.FadeOut)
	case m.Stop:
		return Do(music.Stop)
	}
	return nil
}

func (d *Director) compileFade(f FadeStep) Task {
	o, ok := d.Env.Overlay.Get()
	if !ok {
		return Do(func() { logf("fade: no overlay") })
	}
	var setColor Task
	switch f.Color {
	case "black":
		setColor = Do(func() { o.SetColor(ColorBlack) })
	case "white":
		setColor = Do(func() { o.SetColor(ColorWhite) })
	}
	return Sequence(setColor, TweenAlpha(o, f.From, f.To, f.Duration))
}
