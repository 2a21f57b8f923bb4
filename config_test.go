package seedling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Music.Volume != DefaultMusicVolume {
		t.Errorf("music volume = %g, want %g", cfg.Music.Volume, DefaultMusicVolume)
	}
	if cfg.Growth.DefaultAnchor != "bottom" {
		t.Errorf("default anchor = %q, want bottom", cfg.Growth.DefaultAnchor)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
startStage: 12
advanceKey: Enter
growth:
  duration: 4
  origin: { x: 1, y: 0, z: 2 }
music:
  volume: 0.5
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.StartStage != 12 || cfg.AdvanceKey != "Enter" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Growth.Duration != 4 || cfg.Growth.Origin == nil || *cfg.Growth.Origin != (Vec3{1, 0, 2}) {
		t.Errorf("growth = %+v", cfg.Growth)
	}
	// Untouched fields keep their defaults.
	if cfg.Growth.FadeOutDuration != DefaultFadeOutDuration || cfg.Window.Width != 1280 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Music.Volume != 0.5 {
		t.Errorf("volume = %g, want 0.5", cfg.Music.Volume)
	}
}

func TestParseConfigEnvironmentWins(t *testing.T) {
	t.Setenv("SEEDLING_START_STAGE", "14")
	t.Setenv("SEEDLING_DEBUG", "true")
	t.Setenv("SEEDLING_MUSIC", "assets/bgm.ogg")

	cfg, err := ParseConfig([]byte("startStage: 3\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.StartStage != 14 || !cfg.Debug || cfg.Music.Path != "assets/bgm.ogg" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative stage", "startStage: -1", "startStage"},
		{"bad key", "advanceKey: NoSuchKey", "advance key"},
		{"zero multiplier", "growth: { scaleMultiplier: 0 }", "scaleMultiplier"},
		{"bad anchor", "growth: { defaultAnchor: sideways }", "defaultAnchor"},
		{"loud music", "music: { volume: 2 }", "volume"},
		{"window", "window: { width: 0 }", "window size"},
		{"syntax", "growth: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg.Window.Title != "seedling" {
		t.Errorf("title = %q", cfg.Window.Title)
	}

	path := filepath.Join(t.TempDir(), "seedling.yaml")
	if err := os.WriteFile(path, []byte("window: { title: garden }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Title != "garden" || cfg.Window.Height != 720 {
		t.Errorf("window = %+v", cfg.Window)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseKey(t *testing.T) {
	for _, name := range []string{"Space", "Enter", "ArrowRight"} {
		if _, err := ParseKey(name); err != nil {
			t.Errorf("ParseKey(%q): %v", name, err)
		}
	}
	if _, err := ParseKey("Banana"); err == nil {
		t.Error("expected an error for an unknown key")
	}
}

func TestKeyInputPoll(t *testing.T) {
	key, err := ParseKey("Space")
	if err != nil {
		t.Fatal(err)
	}
	down := false
	in := &KeyInput{Key: key, pressed: func(k ebiten.Key) bool { return k == key && down }}
	if in.Poll() {
		t.Error("Poll reported a press with no key down")
	}
	down = true
	if !in.Poll() {
		t.Error("Poll missed the press")
	}
	var nilInput *KeyInput
	if nilInput.Poll() {
		t.Error("nil input reported a press")
	}
}
