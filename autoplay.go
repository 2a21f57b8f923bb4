package seedling

import (
	"encoding/json"
	"fmt"
	"os"
)

// autoplayStep represents a single action in an autoplay script.
type autoplayStep struct {
	Action string `json:"action"`
	Frames int    `json:"frames,omitempty"`
	Stage  int    `json:"stage,omitempty"`
	Label  string `json:"label,omitempty"`
}

// autoplayScript is the top-level JSON structure for an autoplay script.
type autoplayScript struct {
	Steps []autoplayStep `json:"steps"`
}

// Autoplay drives a Director without a keyboard. Steps run one per frame:
//
//	{"action": "advance"}            wait for the gate to open, then advance
//	{"action": "wait", "frames": N}  do nothing for N frames
//	{"action": "jump", "stage": N}   resume at stage N
//	{"action": "screenshot", "label": "x"}
type Autoplay struct {
	// OnScreenshot receives screenshot labels. Run points it at its
	// screenshot queue.
	OnScreenshot func(label string)

	steps     []autoplayStep
	cursor    int
	waitCount int
	done      bool
}

// ParseAutoplay parses a JSON autoplay script.
func ParseAutoplay(jsonData []byte) (*Autoplay, error) {
	var script autoplayScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse autoplay script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse autoplay script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "advance", "wait", "jump", "screenshot":
		default:
			return nil, fmt.Errorf("parse autoplay script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Autoplay{steps: script.Steps}, nil
}

// LoadAutoplay reads a JSON autoplay script from path.
func LoadAutoplay(path string) (*Autoplay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load autoplay script: %w", err)
	}
	return ParseAutoplay(data)
}

// Done reports whether all steps have been executed.
func (a *Autoplay) Done() bool {
	return a.done
}

// Step advances the autoplay by one frame. Call it once per tick after
// Director.Update.
func (a *Autoplay) Step(d *Director) {
	if a.done {
		return
	}
	if a.waitCount > 0 {
		a.waitCount--
		return
	}
	if a.cursor >= len(a.steps) {
		a.done = true
		return
	}

	st := a.steps[a.cursor]
	switch st.Action {
	case "advance":
		// Hold on this step until the gate accepts the advance.
		if !d.Advance() {
			return
		}
	case "wait":
		if st.Frames > 0 {
			a.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "jump":
		d.Sequencer.JumpTo(st.Stage)
	case "screenshot":
		if a.OnScreenshot != nil {
			a.OnScreenshot(st.Label)
		}
	}
	a.cursor++

	if a.cursor >= len(a.steps) && a.waitCount == 0 {
		a.done = true
	}
}
