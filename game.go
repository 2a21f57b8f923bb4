package seedling

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds the window and runtime options for Run.
type RunConfig struct {
	Window WindowConfig
	// AdvanceKey is the ebiten key name that advances the narrative.
	AdvanceKey string
	// Debug draws the HUD.
	Debug bool
	// Autoplay, when set, drives advances instead of the keyboard and quits
	// once the script and the sequence are both finished.
	Autoplay *Autoplay
	// ScreenshotDir receives autoplay screenshots and, in debug mode, F12
	// captures.
	ScreenshotDir string
}

// errAutoplayDone ends the game loop after an autoplay run.
var errAutoplayDone = errors.New("autoplay finished")

// game implements ebiten.Game around a Director.
type game struct {
	director *Director
	renderer *Renderer
	input    *KeyInput
	autoplay *Autoplay
	hud      *HUD
	shots    *Screenshots
	dt       float64
	width    int
	height   int
}

// Update runs one tick: input first, then the director, then autoplay.
func (g *game) Update() error {
	if g.autoplay == nil && g.input.Poll() {
		g.director.RequestAdvance()
	}
	g.director.Update(g.dt)
	g.renderer.World.UpdateParticles(g.dt)
	g.renderer.Camera.Update(g.dt, g.width, g.height)
	if g.autoplay != nil {
		g.autoplay.Step(g.director)
		if g.autoplay.Done() && g.director.Finished() {
			return errAutoplayDone
		}
	}
	if g.hud != nil {
		g.hud.Update(g.dt, g.director)
		if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
			g.shots.Queue(fmt.Sprintf("stage-%d", g.director.Stage()))
		}
	}
	return nil
}

// Draw renders the world and, in debug mode, the HUD.
func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	// Captured before the HUD is drawn.
	g.shots.Flush(screen)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window drawing w and drives d once per tick with a fixed
// delta of 1/TPS. It starts d if it has not been started and blocks until the
// window is closed or an autoplay run completes.
func Run(d *Director, w *World, cfg RunConfig) error {
	key, err := ParseKey(cfg.AdvanceKey)
	if err != nil {
		return err
	}
	r, err := NewRenderer(w)
	if err != nil {
		return err
	}
	r.Camera.Follow(d.TreeBounds, 0.05)
	tps := cfg.Window.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &game{
		director: d,
		renderer: r,
		input:    NewKeyInput(key),
		autoplay: cfg.Autoplay,
		shots:    NewScreenshots(cfg.ScreenshotDir),
		dt:       1 / float64(tps),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
	if g.autoplay != nil {
		g.autoplay.OnScreenshot = g.shots.Queue
	}
	if cfg.Debug {
		g.hud = NewHUD()
		w.SetDebugMode(true)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(tps)

	d.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errAutoplayDone) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
