package shiftset

// node is a splay tree node. The stored key is final once the parent has
// pushed down the pending offset for the side this node occupies.
// leftPending and rightPending are offsets owed to every key in the
// corresponding subtree but not yet applied to any of them.
type node[T Value] struct {
	key T

	leftPending  T
	rightPending T

	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// pushDown moves the parent's pending offset for x's side one level down
// onto x. Must run before comparing x.key or rotating across the parent
// edge. No-op for a nil node or the root.
func (x *node[T]) pushDown() {
	if x == nil || x.parent == nil {
		return
	}
	p := x.parent
	if x == p.left {
		x.key += p.leftPending
		if x.left != nil {
			x.leftPending += p.leftPending
		}
		if x.right != nil {
			x.rightPending += p.leftPending
		}
		p.leftPending = 0
	} else {
		x.key += p.rightPending
		if x.left != nil {
			x.leftPending += p.rightPending
		}
		if x.right != nil {
			x.rightPending += p.rightPending
		}
		p.rightPending = 0
	}
}

// rotate lifts x above its parent, preserving in-order position. A pending
// offset belongs to the edge it hangs on, so the offset x owed its inner
// subtree moves onto the old parent when that subtree is rewired under it.
func (x *node[T]) rotate() {
	if x.parent == nil {
		return
	}
	p := x.parent
	g := p.parent

	// Re-parent x under the grandparent before finalizing its key, so any
	// offset the grandparent still owes this slot lands on x while x is
	// becoming the subtree root.
	x.parent = g
	if g != nil {
		if g.left == p {
			g.left = x
		} else {
			g.right = x
		}
	}
	x.pushDown()

	if p.left == x {
		p.left = x.right
		if x.right != nil {
			x.right.parent = p
		}
		x.right = p
		// x's right subtree is now reached through p's left link.
		p.leftPending = x.rightPending
		x.rightPending = 0
	} else {
		p.right = x.left
		if x.left != nil {
			x.left.parent = p
		}
		x.left = p
		p.rightPending = x.leftPending
		x.leftPending = 0
	}
	p.parent = x
}
