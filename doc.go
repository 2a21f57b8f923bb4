// Package seedling is a stage-sequencing narrative engine for [Ebitengine].
//
// A narrative is a fixed list of stages. Each stage runs a short timed script
// (show a message, grow a tree, change the environment, play music) and then
// holds until the player presses the advance key. Seedling provides the
// scheduler those scripts run on, the controllers they drive, a YAML stage
// script format and a small ebiten runtime to show it all.
//
// # Quick start
//
// The simplest way to get started is [Run] with the built-in garden world and
// the embedded default script:
//
//	cfg, _ := seedling.LoadConfig("")
//	world := seedling.NewGardenWorld()
//	d := seedling.NewDirector(cfg, nil, seedling.GardenBindings(world, nil))
//	seedling.Run(d, world, seedling.RunConfig{Window: cfg.Window, AdvanceKey: "Space"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Director.Update] once per tick with the tick duration:
//
//	func (g *Game) Update() error {
//		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
//			g.director.RequestAdvance()
//		}
//		g.director.Update(1.0 / 60)
//		return nil
//	}
//
// # Tasks
//
// Every timed effect is a [Task]: a small state machine resumed once per tick
// with the elapsed seconds. Tasks compose with [Sequence], [Parallel], [Wait],
// [Do] and [Defer], and run on a [Scheduler]. There are no goroutines; all
// state is touched from the game loop only.
//
// # Controllers
//
// [GrowthController] keeps a single growable object and scales it with an
// anchor point held fixed. [EnvironmentController] switches between the dark
// void and the meadow behind a full-screen fade. [TextPresenter] shows one
// message at a time. [SeedController] floats, lights and plants the seed.
// Music is any [Music]; [PlayerMusic] wraps an ebiten audio player.
//
// Collaborators are optional: a controller whose target is missing logs a
// warning and skips the step, so a narrative always runs to the end.
//
// # Stages
//
// [Sequencer] launches stages and owns the advance gate. The gate opens only
// when a stage's task has finished; advance requests while it is closed are
// dropped. [Sequencer.JumpTo] resumes at any stage, first rebuilding the
// world state earlier stages would have left from the script's resume table.
//
// Stage scripts are YAML ([Script]); [DefaultScript] returns the embedded
// seventeen-stage garden narrative.
//
// [Ebitengine]: https://ebitengine.org
package seedling
