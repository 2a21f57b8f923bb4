package seedling

// Visual is a handle to a spawned visual object. The growth controller only
// needs to move, scale, measure and destroy it.
type Visual interface {
	WorldPosition() Vec3
	SetWorldPosition(p Vec3)
	LocalScale() float64
	SetLocalScale(s float64)
	WorldBounds() Bounds
	Destroy()
}

// Spawner creates visual objects from prefab identifiers. Spawn returns nil
// when the prefab cannot be instantiated.
type Spawner interface {
	Spawn(prefab string, position Vec3, scale float64) Visual
}

// Toggle is anything that can be switched on and off, such as an environment
// backdrop or the container holding the growable object.
type Toggle interface {
	SetActive(active bool)
}

// Panel is a full-screen color panel with variable opacity. The environment
// controller fades it to mask state swaps.
type Panel struct {
	Color Color
	Alpha float64
}

// SetAlpha sets the panel opacity.
func (p *Panel) SetAlpha(a float64) { p.Alpha = a }

// SetColor sets the panel color.
func (p *Panel) SetColor(c Color) { p.Color = c }

// Caption is a single line (or paragraph) of on-screen text with opacity.
type Caption struct {
	Text  string
	Alpha float64
}

// SetText replaces the caption text.
func (c *Caption) SetText(s string) { c.Text = s }

// SetAlpha sets the caption opacity.
func (c *Caption) SetAlpha(a float64) { c.Alpha = a }

// World is the top-level object that owns the node tree, the prefab registry,
// the fade panel, the caption and the applied lighting. It implements Spawner
// and LightingTarget and is what the ebiten renderer draws.
type World struct {
	root        *Node
	spawnParent *Node
	prefabs     map[string]*Node
	debug       bool

	// Fade is the full-screen overlay used by environment transitions.
	Fade *Panel
	// Caption is the narrative text slot.
	Caption *Caption

	lighting Lighting
}

// NewWorld creates a world with a pre-created root container.
func NewWorld() *World {
	root := NewContainer("root")
	return &World{
		root:        root,
		spawnParent: root,
		prefabs:     make(map[string]*Node),
		Fade:        &Panel{Color: ColorWhite},
		Caption:     &Caption{},
	}
}

// Root returns the world's root container node.
func (w *World) Root() *Node {
	return w.root
}

// Find returns the first node with the given name, or nil.
func (w *World) Find(name string) *Node {
	return w.root.Find(name)
}

// RegisterPrefab stores a template that Spawn clones for the given id. The
// template itself is never added to the tree.
func (w *World) RegisterPrefab(id string, template *Node) {
	w.prefabs[id] = template
}

// HasPrefab reports whether id is registered.
func (w *World) HasPrefab(id string) bool {
	_, ok := w.prefabs[id]
	return ok
}

// SetSpawnParent sets the node spawned objects are attached to. A nil parent
// resets it to the root.
func (w *World) SetSpawnParent(n *Node) {
	if n == nil {
		n = w.root
	}
	w.spawnParent = n
}

// Spawn clones the prefab registered under id, names the clone after the
// prefab, attaches it to the spawn parent, places its origin at position and
// sets its local scale. Unknown ids are logged and return nil.
func (w *World) Spawn(id string, position Vec3, scale float64) Visual {
	tmpl, ok := w.prefabs[id]
	if !ok {
		logf("spawn: prefab %q not registered", id)
		return nil
	}
	n := tmpl.Clone()
	n.Name = id
	n.Active = true
	w.spawnParent.AddChild(n)
	n.SetWorldPosition(position)
	n.SetLocalScale(scale)
	if w.debug {
		debugf("spawned %q at (%.2f, %.2f, %.2f) scale %.2f", id, position.X, position.Y, position.Z, scale)
	}
	return n
}

// UpdateParticles advances every emitter that is active in the hierarchy by
// dt seconds. Emitters under inactive nodes are frozen along with their
// particles.
func (w *World) UpdateParticles(dt float64) {
	walkActive(w.root, Vec3{}, 1, func(n *Node, wp Vec3, _ float64) {
		if n.Emitter == nil {
			return
		}
		n.Emitter.origin = wp
		n.Emitter.update(dt)
	})
}

// ApplyLighting records l as the current lighting. World satisfies
// LightingTarget; the renderer reads the value back every frame.
func (w *World) ApplyLighting(l Lighting) {
	w.lighting = l
}

// Lighting returns the most recently applied lighting.
func (w *World) Lighting() Lighting {
	return w.lighting
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and spawns and stage
// transitions are traced to stderr.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set World debug flag so that node
// operations (which lack a World pointer) can check it cheaply.
var globalDebug bool
