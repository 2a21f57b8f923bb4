package seedling

// EnvironmentState is the active environment.
type EnvironmentState uint8

const (
	EnvironmentDark   EnvironmentState = iota // black void with flat dim ambient light
	EnvironmentMeadow                         // bright skybox, fog and meadow props
)

// String returns the lowercase state name used in scripts.
func (s EnvironmentState) String() string {
	if s == EnvironmentMeadow {
		return "meadow"
	}
	return "dark"
}

// AmbientMode selects where ambient light comes from.
type AmbientMode string

const (
	AmbientFlat   AmbientMode = "flat"
	AmbientSkybox AmbientMode = "skybox"
)

// FogMode selects the fog falloff.
type FogMode string

const (
	FogLinear FogMode = "linear"
)

// Lighting is the full set of renderer lighting parameters owned by the
// environment controller. It is applied as one value; the renderer never
// sees a partially updated set.
type Lighting struct {
	Skybox           string      `yaml:"skybox"`
	AmbientIntensity float64     `yaml:"ambientIntensity"`
	AmbientMode      AmbientMode `yaml:"ambientMode"`
	AmbientColor     Color       `yaml:"ambientColor"`
	Fog              bool        `yaml:"fog"`
	FogColor         Color       `yaml:"fogColor"`
	FogMode          FogMode     `yaml:"fogMode"`
	FogStart         float64     `yaml:"fogStart"`
	FogEnd           float64     `yaml:"fogEnd"`
}

// DarkLighting returns the default dark preset: no skybox, dim flat ambient
// light and no fog.
func DarkLighting() Lighting {
	return Lighting{
		AmbientIntensity: 0.3,
		AmbientMode:      AmbientFlat,
		AmbientColor:     Color{0.1, 0.1, 0.1, 1},
	}
}

// MeadowLighting returns the default meadow preset: skybox ambient light and
// pale blue linear fog between 50 and 200 units.
func MeadowLighting() Lighting {
	return Lighting{
		Skybox:           "meadow",
		AmbientIntensity: 1.0,
		AmbientMode:      AmbientSkybox,
		AmbientColor:     Color{1, 1, 1, 1},
		Fog:              true,
		FogColor:         Color{0.8, 0.9, 1, 1},
		FogMode:          FogLinear,
		FogStart:         50,
		FogEnd:           200,
	}
}

// LightingTarget applies a lighting parameter set to the renderer.
type LightingTarget interface {
	ApplyLighting(l Lighting)
}

// Overlay is the opaque full-screen panel that masks environment swaps.
type Overlay interface {
	AlphaTarget
	SetColor(c Color)
}

// Default environment timings.
const (
	DefaultEnvironmentFade = 3.0
	DefaultSettleDelay     = 0.3
)

// EnvironmentController owns the two-state environment. Transitions fade the
// overlay in, swap visuals and lighting while the screen is covered, and fade
// the overlay out, strictly in that order. Unset references are skipped.
type EnvironmentController struct {
	DarkBackground Optional[Toggle]
	Ground         Optional[Toggle]
	Meadow         Optional[Toggle]
	Wind           Optional[Toggle]
	// Transient is the growable object container. The dark transition hides
	// it; the meadow and ForceState show it again.
	Transient Optional[Toggle]

	Overlay Optional[Overlay]
	Lights  Optional[LightingTarget]

	FadeDuration float64
	SettleDelay  float64

	DarkPreset   Lighting
	MeadowPreset Lighting

	state    EnvironmentState
	lighting Lighting
}

// NewEnvironmentController creates a controller with the default presets and
// timings. Wire its optional references before calling Init.
func NewEnvironmentController() *EnvironmentController {
	return &EnvironmentController{
		FadeDuration: DefaultEnvironmentFade,
		SettleDelay:  DefaultSettleDelay,
		DarkPreset:   DarkLighting(),
		MeadowPreset: MeadowLighting(),
	}
}

// Init hides the meadow visuals and applies the dark lighting.
func (e *EnvironmentController) Init() {
	e.Meadow.Do(func(t Toggle) { t.SetActive(false) })
	e.Wind.Do(func(t Toggle) { t.SetActive(false) })
	e.applyDark()
}

// State returns the active environment.
func (e *EnvironmentController) State() EnvironmentState {
	return e.state
}

// Lighting returns the last lighting set applied.
func (e *EnvironmentController) Lighting() Lighting {
	return e.lighting
}

// TransitionToMeadow fades the overlay in, swaps to the meadow while the
// screen is covered, holds for SettleDelay and fades the overlay out.
func (e *EnvironmentController) TransitionToMeadow() Task {
	return Sequence(
		e.FadeOverlay(0, 1, e.FadeDuration),
		Do(e.swapToMeadow),
		Wait(e.SettleDelay),
		e.FadeOverlay(1, 0, e.FadeDuration),
	)
}

// TransitionToDark forces the overlay black, fades it in, hides the meadow
// and the transient growable object, restores the dark backdrop and lighting,
// fades the overlay out and turns the overlay white again.
func (e *EnvironmentController) TransitionToDark() Task {
	return Sequence(
		Do(func() { e.setOverlayColor(ColorBlack) }),
		e.FadeOverlay(0, 1, e.FadeDuration),
		Do(e.swapToDark),
		e.FadeOverlay(1, 0, e.FadeDuration),
		Do(func() { e.setOverlayColor(ColorWhite) }),
	)
}

// ForceState switches to s at once, with no fade. The overlay is cleared and
// turned white, the growable container shown, and in the dark the ground
// marker is shown, whatever transition was cut short. Used when resuming.
func (e *EnvironmentController) ForceState(s EnvironmentState) {
	if s == EnvironmentMeadow {
		e.swapToMeadow()
	} else {
		e.swapToDark()
		e.Ground.Do(func(t Toggle) { t.SetActive(true) })
	}
	e.Transient.Do(func(t Toggle) { t.SetActive(true) })
	e.Overlay.Do(func(o Overlay) {
		o.SetColor(ColorWhite)
		o.SetAlpha(0)
	})
}

// FadeOverlay fades the overlay opacity. Without an overlay the step is
// skipped entirely.
func (e *EnvironmentController) FadeOverlay(from, to, duration float64) Task {
	o, ok := e.Overlay.Get()
	if !ok {
		return nil
	}
	return TweenAlpha(o, from, to, duration)
}

func (e *EnvironmentController) setOverlayColor(c Color) {
	e.Overlay.Do(func(o Overlay) { o.SetColor(c) })
}

func (e *EnvironmentController) swapToMeadow() {
	e.Transient.Do(func(t Toggle) { t.SetActive(true) })
	e.DarkBackground.Do(func(t Toggle) { t.SetActive(false) })
	e.Meadow.Do(func(t Toggle) { t.SetActive(true) })
	e.Wind.Do(func(t Toggle) { t.SetActive(true) })
	e.Ground.Do(func(t Toggle) { t.SetActive(false) })
	e.state = EnvironmentMeadow
	e.apply(e.MeadowPreset)
}

func (e *EnvironmentController) swapToDark() {
	e.Meadow.Do(func(t Toggle) { t.SetActive(false) })
	e.Wind.Do(func(t Toggle) { t.SetActive(false) })
	e.Transient.Do(func(t Toggle) { t.SetActive(false) })
	e.DarkBackground.Do(func(t Toggle) { t.SetActive(true) })
	e.applyDark()
}

func (e *EnvironmentController) applyDark() {
	e.state = EnvironmentDark
	e.apply(e.DarkPreset)
}

func (e *EnvironmentController) apply(l Lighting) {
	e.lighting = l
	e.Lights.Do(func(t LightingTarget) { t.ApplyLighting(l) })
}
