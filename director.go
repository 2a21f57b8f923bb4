package seedling

// Bindings are the external collaborators a Director drives. Any of them may
// be left nil; the controllers skip what is missing.
type Bindings struct {
	Spawner    Spawner
	TreeOrigin Vec3

	Label     TextTarget
	TextGroup AlphaTarget

	Overlay Overlay
	Lights  LightingTarget
	Music   Music

	DarkBackground Toggle
	Ground         Toggle
	Meadow         Toggle
	Wind           Toggle
	// Trees is the container growable objects are spawned into.
	Trees Toggle

	SeedBody  SeedBody
	SeedLight Light
	// SeedGround is where the planted seed comes to rest. Nil lowers it to y = 0.
	SeedGround *Vec3
}

// Director wires the controllers to their collaborators and to a single
// scheduler, compiles the stage script and drives the whole sequence from
// Update.
type Director struct {
	Sequencer *Sequencer
	Growth    *GrowthController
	Env       *EnvironmentController
	Text      *TextPresenter
	Seed      *SeedController
	Music     Optional[Music]

	// TreeOrigin is where grow steps and resumed trees are placed.
	TreeOrigin Vec3

	sched       *Scheduler
	async       []*Handle
	script      *Script
	startStage  int
	musicVolume float64
	debug       bool
	pending     bool
	started     bool
}

// NewDirector builds every controller from cfg and b and compiles script. A
// nil script uses the embedded default.
func NewDirector(cfg Config, script *Script, b Bindings) *Director {
	if script == nil {
		script = DefaultScript()
	}
	sched := NewScheduler()

	growth := NewGrowthController(b.Spawner)
	growth.GrowthDuration = cfg.Growth.Duration
	growth.FadeOutDuration = cfg.Growth.FadeOutDuration
	growth.ScaleMultiplier = cfg.Growth.ScaleMultiplier
	growth.DefaultAnchor = ParseAnchor(cfg.Growth.DefaultAnchor)

	env := NewEnvironmentController()
	env.FadeDuration = cfg.Environment.FadeDuration
	env.SettleDelay = cfg.Environment.SettleDelay
	env.DarkPreset = cfg.Environment.Dark
	env.MeadowPreset = cfg.Environment.Meadow
	env.DarkBackground = Maybe(b.DarkBackground)
	env.Ground = Maybe(b.Ground)
	env.Meadow = Maybe(b.Meadow)
	env.Wind = Maybe(b.Wind)
	env.Transient = Maybe(b.Trees)
	env.Overlay = Maybe(b.Overlay)
	env.Lights = Maybe(b.Lights)

	text := NewTextPresenter(sched)
	text.FadeDuration = cfg.Text.FadeDuration
	text.Label = Maybe(b.Label)
	text.Group = Maybe(b.TextGroup)

	seed := NewSeedController()
	seed.Body = Maybe(b.SeedBody)
	seed.Light = Maybe(b.SeedLight)
	if b.SeedGround != nil {
		seed.Ground = Some(*b.SeedGround)
	}

	origin := b.TreeOrigin
	if cfg.Growth.Origin != nil {
		origin = *cfg.Growth.Origin
	}

	d := &Director{
		Growth:      growth,
		Env:         env,
		Text:        text,
		Seed:        seed,
		Music:       Maybe(b.Music),
		TreeOrigin:  origin,
		sched:       sched,
		script:      script,
		startStage:  cfg.StartStage,
		musicVolume: cfg.Music.Volume,
		debug:       cfg.Debug,
	}
	d.Sequencer = NewSequencer(sched, d.stages())
	d.Sequencer.Prepare = d.prepare
	d.Sequencer.SetDebugMode(cfg.Debug)
	return d
}

// Scheduler returns the scheduler every controller runs on.
func (d *Director) Scheduler() *Scheduler {
	return d.sched
}

// Script returns the compiled stage script.
func (d *Director) Script() *Script {
	return d.script
}

// Start initializes the controllers and launches the configured start stage.
// Calling it again has no effect.
func (d *Director) Start() {
	if d.started {
		return
	}
	d.started = true
	d.Text.Init()
	d.Env.Init()
	d.Seed.Init()
	d.sched.Go(d.Seed.Float())
	d.Sequencer.Start(d.startStage)
}

// Update advances all running tasks by dt seconds and then consumes a pending
// advance request.
func (d *Director) Update(dt float64) {
	d.sched.Tick(dt)
	if d.pending {
		d.pending = false
		d.Sequencer.Advance()
	}
}

// RequestAdvance queues an advance for the next Update. A request made while
// the gate is closed is dropped.
func (d *Director) RequestAdvance() {
	d.pending = true
}

// Advance consumes an advance at once. It reports whether the gate was open.
func (d *Director) Advance() bool {
	return d.Sequencer.Advance()
}

// Stage returns the current stage index.
func (d *Director) Stage() int {
	return d.Sequencer.Stage()
}

// Finished reports whether the terminal stage has completed.
func (d *Director) Finished() bool {
	return d.Sequencer.Finished()
}

// TreeBounds returns the world bounds of the current growable object. It
// reports false when there is none or when it is hidden.
func (d *Director) TreeBounds() (Bounds, bool) {
	v := d.Growth.Current()
	if v == nil {
		return Bounds{}, false
	}
	if h, ok := v.(interface{ ActiveInHierarchy() bool }); ok && !h.ActiveInHierarchy() {
		return Bounds{}, false
	}
	return v.WorldBounds(), true
}

// goAsync starts t detached from the stage task. A jump cancels it along with
// the stage.
func (d *Director) goAsync(t Task) {
	live := d.async[:0]
	for _, h := range d.async {
		if !h.Done() {
			live = append(live, h)
		}
	}
	d.async = append(live, d.sched.Go(t))
}
