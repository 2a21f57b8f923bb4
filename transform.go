package seedling

// Transforms are translation plus uniform scale, so a world transform is a
// position and a scale factor:
//
//	world = parent.pos + parent.scale * local.pos
//	scale = parent.scale * local.scale

// worldTransform returns the node's world-space origin and scale factor.
func (n *Node) worldTransform() (Vec3, float64) {
	if n.Parent == nil {
		return Vec3{n.X, n.Y, n.Z}, n.Scale
	}
	pp, ps := n.Parent.worldTransform()
	return pp.Add(Vec3{n.X, n.Y, n.Z}.Mul(ps)), ps * n.Scale
}

// --- Transform property setters ---

// SetPosition sets the node's local position.
func (n *Node) SetPosition(p Vec3) {
	n.X, n.Y, n.Z = p.X, p.Y, p.Z
}

// LocalPosition returns the node's local position.
func (n *Node) LocalPosition() Vec3 {
	return Vec3{n.X, n.Y, n.Z}
}

// LocalScale returns the node's uniform local scale.
func (n *Node) LocalScale() float64 {
	return n.Scale
}

// SetLocalScale sets the node's uniform local scale.
func (n *Node) SetLocalScale(s float64) {
	n.Scale = s
}

// --- Coordinate conversion ---

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() Vec3 {
	p, _ := n.worldTransform()
	return p
}

// SetWorldPosition moves the node so its origin lands on the world-space
// point p. A parent with zero scale leaves the local position unchanged.
func (n *Node) SetWorldPosition(p Vec3) {
	if n.Parent == nil {
		n.SetPosition(p)
		return
	}
	pp, ps := n.Parent.worldTransform()
	if ps == 0 {
		return
	}
	n.SetPosition(p.Sub(pp).Mul(1 / ps))
}

// WorldScale returns the product of the scales from the root down to n.
func (n *Node) WorldScale() float64 {
	_, s := n.worldTransform()
	return s
}

// LocalToWorld converts a local-space point to world space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	wp, ws := n.worldTransform()
	return wp.Add(p.Mul(ws))
}

// --- Bounds ---

// WorldBounds returns the combined world-space bounds of every active box in
// the subtree. Inactive subtrees are ignored. A subtree with no boxes reports
// a zero-size box at the node's world position.
func (n *Node) WorldBounds() Bounds {
	wp, ws := n.worldTransform()
	b, ok := n.collectBounds(wp, ws)
	if !ok {
		return BoundsAt(wp)
	}
	return b
}

func (n *Node) collectBounds(wp Vec3, ws float64) (Bounds, bool) {
	var b Bounds
	found := false
	if n.Type == NodeTypeBox {
		c := wp.Add(n.Offset.Mul(ws))
		half := n.Size.Mul(ws / 2)
		if ws < 0 {
			half = half.Mul(-1)
		}
		b = Bounds{Min: c.Sub(half), Max: c.Add(half)}
		found = true
	}
	for _, child := range n.children {
		if !child.Active {
			continue
		}
		cp := wp.Add(child.LocalPosition().Mul(ws))
		cb, ok := child.collectBounds(cp, ws*child.Scale)
		if !ok {
			continue
		}
		if found {
			b = b.Encapsulate(cb)
		} else {
			b, found = cb, true
		}
	}
	return b, found
}

// walkActive calls fn for every active node in the subtree in depth-first
// order, with its world position and scale. Children are visited in slice
// order after their parent.
func walkActive(n *Node, parentPos Vec3, parentScale float64, fn func(n *Node, wp Vec3, ws float64)) {
	if !n.Active {
		return
	}
	wp := parentPos.Add(n.LocalPosition().Mul(parentScale))
	ws := parentScale * n.Scale
	fn(n, wp, ws)
	for _, c := range n.children {
		walkActive(c, wp, ws, fn)
	}
}
