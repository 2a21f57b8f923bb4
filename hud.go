package seedling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD is the debug overlay: FPS, TPS, the current stage and the gate state.
// The text is refreshed every ~0.5 seconds.
type HUD struct {
	img        *ebiten.Image
	lastUpdate float64
	line       string
}

// NewHUD creates a debug HUD.
func NewHUD() *HUD {
	// 220x64 is enough for four lines of debug text.
	return &HUD{img: ebiten.NewImage(220, 64), lastUpdate: 0.5}
}

// Update refreshes the HUD text from d.
func (h *HUD) Update(dt float64, d *Director) {
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0
	h.line = hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), d)

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.line)
}

// Draw draws the HUD in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}

func hudText(fps, tps float64, d *Director) string {
	gate := "closed"
	switch {
	case d.Finished():
		gate = "finished"
	case d.Sequencer.CanProgress():
		gate = "open"
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStage: %d %s\nGate: %s",
		fps, tps, d.Stage(), d.Sequencer.StageName(d.Stage()), gate)
}
