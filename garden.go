package seedling

// Placeholder palette for the garden world.
var (
	colorBark    = Color{0.45, 0.3, 0.18, 1}
	colorLeaf    = Color{0.3, 0.65, 0.3, 1}
	colorLeafDim = Color{0.22, 0.5, 0.25, 1}
	colorGrass   = Color{0.45, 0.75, 0.35, 1}
	colorSoil    = Color{0.25, 0.18, 0.12, 1}
	colorSeed    = Color{0.95, 0.85, 0.5, 1}
	colorVoid    = Color{0.02, 0.02, 0.04, 1}
	colorWind    = Color{1, 1, 1, 0.35}
)

// Tree prefab identifiers used by the default script.
const (
	PrefabSprout = "sprout"
	PrefabSmall  = "small"
	PrefabMedium = "medium"
	PrefabLarge  = "large"
	PrefabHuge   = "huge"
)

// gusts returns an emitter blowing pale streaks across the meadow from the
// left edge of the view.
func gusts() *Node {
	e := NewEmitter("gusts", EmitterConfig{
		MaxParticles: 96,
		EmitRate:     14,
		Lifetime:     Range{3, 5},
		Speed:        Range{3, 5},
		Angle:        Range{-0.08, 0.12},
		Area:         Vec3{0, 8, 2},
		StartSize:    Range{0.04, 0.08},
		EndSize:      Range{0.02, 0.04},
		StartAlpha:   Range{0.5, 0.8},
		EndAlpha:     Range{0, 0},
		Gravity:      Vec3{0.4, -0.1, 0},
		StartColor:   colorWind,
		EndColor:     colorLeaf,
	})
	e.SetPosition(Vec3{-12, 4, 0})
	e.Emitter.Start()
	return e
}

// treePrefab builds a tree whose origin sits at the base of the trunk. Sizes
// are at unit scale.
func treePrefab(name string, trunkH, trunkW, canopy float64, leaf Color) *Node {
	root := NewContainer(name)
	trunk := NewBox("trunk", Vec3{0, trunkH / 2, 0}, Vec3{trunkW, trunkH, trunkW}, colorBark)
	root.AddChild(trunk)
	if canopy > 0 {
		crown := NewBox("canopy", Vec3{0, trunkH + canopy/2, 0}, Vec3{canopy, canopy, canopy}, leaf)
		root.AddChild(crown)
	}
	return root
}

// NewGardenWorld builds the default scene: a dark backdrop, a ground marker,
// the meadow and wind props (inactive), a glowing seed above the ground, an
// empty container for trees and the five tree prefabs.
func NewGardenWorld() *World {
	w := NewWorld()
	root := w.Root()

	dark := NewBox("dark_background", Vec3{0, 0, 10}, Vec3{40, 24, 0}, colorVoid)
	dark.ZIndex = -10
	root.AddChild(dark)

	meadow := NewContainer("meadow")
	meadow.ZIndex = -5
	meadow.AddChild(NewBox("grass", Vec3{0, -2, 0}, Vec3{40, 4, 4}, colorGrass))
	meadow.Active = false
	root.AddChild(meadow)

	wind := NewContainer("wind")
	for i, x := range []float64{-6, -1.5, 3, 7} {
		streak := NewBox("streak", Vec3{x, 3 + float64(i%2)*1.5, 0}, Vec3{1.6, 0.05, 0.05}, colorWind)
		wind.AddChild(streak)
	}
	wind.AddChild(gusts())
	wind.ZIndex = 5
	wind.Active = false
	root.AddChild(wind)

	ground := NewBox("ground", Vec3{0, -0.05, 0}, Vec3{1.2, 0.1, 1.2}, colorSoil)
	root.AddChild(ground)

	trees := NewContainer("trees")
	root.AddChild(trees)
	w.SetSpawnParent(trees)

	seed := NewBox("seed", Vec3{}, Vec3{0.25, 0.35, 0.25}, colorSeed)
	seed.SetPosition(Vec3{0, 1.5, 0})
	seed.ZIndex = 10
	root.AddChild(seed)

	w.RegisterPrefab(PrefabSprout, treePrefab(PrefabSprout, 0.6, 0.08, 0.3, colorLeaf))
	w.RegisterPrefab(PrefabSmall, treePrefab(PrefabSmall, 0.8, 0.15, 0.6, colorLeaf))
	w.RegisterPrefab(PrefabMedium, treePrefab(PrefabMedium, 1.0, 0.2, 0.9, colorLeaf))
	w.RegisterPrefab(PrefabLarge, treePrefab(PrefabLarge, 1.2, 0.25, 1.2, colorLeafDim))
	w.RegisterPrefab(PrefabHuge, treePrefab(PrefabHuge, 1.0, 0.3, 1.4, colorLeafDim))
	return w
}

// GardenBindings binds a world built by NewGardenWorld to a director. Nodes
// missing from the world are left unbound. music may be nil.
func GardenBindings(w *World, music Music) Bindings {
	b := Bindings{
		Spawner:   w,
		Label:     w.Caption,
		TextGroup: w.Caption,
		Overlay:   w.Fade,
		Lights:    w,
		Music:     music,
	}
	if n := w.Find("dark_background"); n != nil {
		b.DarkBackground = n
	}
	if n := w.Find("ground"); n != nil {
		b.Ground = n
		origin := n.WorldPosition()
		b.TreeOrigin = origin
		b.SeedGround = &origin
	}
	if n := w.Find("meadow"); n != nil {
		b.Meadow = n
	}
	if n := w.Find("wind"); n != nil {
		b.Wind = n
	}
	if n := w.Find("trees"); n != nil {
		b.Trees = n
	}
	if n := w.Find("seed"); n != nil {
		b.SeedBody = n
		b.SeedLight = n
	}
	return b
}
