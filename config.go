package seedling

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a seedling run. It is loaded from YAML and
// then overridden by SEEDLING_* environment variables.
type Config struct {
	Window WindowConfig `yaml:"window"`

	// StartStage is the stage to begin at. Zero starts normally; a positive
	// value resumes at that stage with the world state it implies.
	StartStage int  `yaml:"startStage" env:"SEEDLING_START_STAGE"`
	Debug      bool `yaml:"debug" env:"SEEDLING_DEBUG"`
	// AdvanceKey is the ebiten key name that advances the narrative.
	AdvanceKey string `yaml:"advanceKey" env:"SEEDLING_ADVANCE_KEY"`
	// Script is a stage script path. Empty uses the embedded default.
	Script string `yaml:"script" env:"SEEDLING_SCRIPT"`
	// ScreenshotDir is where captured frames are written.
	ScreenshotDir string `yaml:"screenshotDir" env:"SEEDLING_SCREENSHOT_DIR"`

	Growth      GrowthConfig      `yaml:"growth"`
	Environment EnvironmentConfig `yaml:"environment"`
	Text        TextConfig        `yaml:"text"`
	Music       MusicConfig       `yaml:"music"`
}

// WindowConfig controls the ebiten window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// GrowthConfig configures the growth controller.
type GrowthConfig struct {
	Duration        float64 `yaml:"duration"`
	FadeOutDuration float64 `yaml:"fadeOutDuration"`
	ScaleMultiplier float64 `yaml:"scaleMultiplier"`
	DefaultAnchor   string  `yaml:"defaultAnchor"`
	// Origin is where trees are grown. Nil keeps the origin the bindings
	// provide.
	Origin *Vec3 `yaml:"origin,omitempty"`
}

// EnvironmentConfig configures the environment controller.
type EnvironmentConfig struct {
	FadeDuration float64  `yaml:"fadeDuration"`
	SettleDelay  float64  `yaml:"settleDelay"`
	Dark         Lighting `yaml:"dark"`
	Meadow       Lighting `yaml:"meadow"`
}

// TextConfig configures the text presenter.
type TextConfig struct {
	FadeDuration float64 `yaml:"fadeDuration"`
}

// MusicConfig configures background music.
type MusicConfig struct {
	// Path is an .ogg or .mp3 file. Empty runs without music.
	Path   string  `yaml:"path" env:"SEEDLING_MUSIC"`
	Volume float64 `yaml:"volume"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "seedling",
			Width:  1280,
			Height: 720,
			TPS:    60,
		},
		AdvanceKey:    "Space",
		ScreenshotDir: DefaultScreenshotDir,
		Growth: GrowthConfig{
			Duration:        DefaultGrowthDuration,
			FadeOutDuration: DefaultFadeOutDuration,
			ScaleMultiplier: 1,
			DefaultAnchor:   "bottom",
		},
		Environment: EnvironmentConfig{
			FadeDuration: DefaultEnvironmentFade,
			SettleDelay:  DefaultSettleDelay,
			Dark:         DarkLighting(),
			Meadow:       MeadowLighting(),
		},
		Text:  TextConfig{FadeDuration: DefaultTextFade},
		Music: MusicConfig{Volume: DefaultMusicVolume},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig, applies
// environment overrides and validates the result. An empty path skips the
// file.
func LoadConfig(path string) (Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		data = b
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML data on top of DefaultConfig, applies environment
// overrides and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.StartStage < 0 {
		return fmt.Errorf("startStage must not be negative, got %d", c.StartStage)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if _, err := ParseKey(c.AdvanceKey); err != nil {
		return err
	}
	if c.Growth.Duration < 0 || c.Growth.FadeOutDuration < 0 {
		return fmt.Errorf("growth durations must not be negative")
	}
	if c.Growth.ScaleMultiplier <= 0 {
		return fmt.Errorf("growth scaleMultiplier must be positive, got %g", c.Growth.ScaleMultiplier)
	}
	if c.Growth.DefaultAnchor != "" && ParseAnchor(c.Growth.DefaultAnchor) == AnchorUnset {
		return fmt.Errorf("unknown growth defaultAnchor %q", c.Growth.DefaultAnchor)
	}
	if c.Environment.FadeDuration < 0 || c.Environment.SettleDelay < 0 {
		return fmt.Errorf("environment durations must not be negative")
	}
	if c.Text.FadeDuration < 0 {
		return fmt.Errorf("text fadeDuration must not be negative")
	}
	if c.Music.Volume < 0 || c.Music.Volume > 1 {
		return fmt.Errorf("music volume must be within [0, 1], got %g", c.Music.Volume)
	}
	return nil
}
