package seedling

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; seedling is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeBox                       // renders an axis-aligned box
	NodeTypeEmitter                   // owns a particle emitter
)

// Node is the fundamental scene graph element. It is the in-memory stand-in
// for a spawned visual object: it has a local position and uniform scale
// relative to its parent, can be switched on and off, and reports the combined
// bounds of every active box in its subtree.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y, Z float64
	Scale   float64

	// Box fields (NodeTypeBox). Offset is the box center and Size its full
	// extent, both in local space.
	Offset Vec3
	Size   Vec3
	Color  Color

	// Intensity is the strength of the light this node emits. Renderers draw
	// it as a halo; zero means no light.
	Intensity float64

	// Emitter is set on NodeTypeEmitter nodes.
	Emitter *ParticleEmitter

	// Active nodes (and their subtrees) are drawn and contribute to bounds.
	Active bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = 1
	n.Color = ColorWhite
	n.Active = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a box node. offset is the local-space center of the box and
// size its full extent.
func NewBox(name string, offset, size Vec3, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Offset: offset, Size: size}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewEmitter creates a node that emits particles from its world position
// while it is active in the hierarchy.
func NewEmitter(name string, cfg EmitterConfig) *Node {
	n := &Node{Name: name, Type: NodeTypeEmitter, Emitter: NewParticleEmitter(cfg)}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("seedling: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("seedling: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("seedling: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Find returns the first node named name in this subtree (depth first,
// including n itself), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Clone returns a deep copy of the subtree rooted at n with fresh IDs and no
// parent. UserData is shared, not copied.
func (n *Node) Clone() *Node {
	c := *n
	c.ID = nextNodeID()
	c.Parent = nil
	c.children = nil
	if n.Emitter != nil {
		c.Emitter = NewParticleEmitter(n.Emitter.config)
		c.Emitter.active = n.Emitter.active
	}
	for _, child := range n.children {
		cc := child.Clone()
		cc.Parent = &c
		c.children = append(c.children, cc)
	}
	return &c
}

// SetActive switches the node (and so its subtree) on or off.
func (n *Node) SetActive(active bool) {
	n.Active = active
}

// ActiveInHierarchy reports whether n and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Active {
			return false
		}
	}
	return true
}

// SetIntensity sets the emitted light intensity. Node satisfies Light.
func (n *Node) SetIntensity(v float64) {
	n.Intensity = v
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Destroy disposes the node. Node satisfies Visual.
func (n *Node) Destroy() {
	n.Dispose()
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
