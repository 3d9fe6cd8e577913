package shiftset

// findClosest descends from the root toward value and returns the node it
// stops at: the exact match if present, otherwise the last node on the
// search path before a missing child. Pending offsets are pushed into both
// children of every visited node so comparisons always see final keys.
// Returns nil only for an empty tree.
func (s *Set[T]) findClosest(value T) *node[T] {
	x := s.root
	if x == nil {
		return nil
	}
	for x.key != value {
		x.left.pushDown()
		x.right.pushDown()
		if x.key > value {
			if x.left == nil {
				break
			}
			x = x.left
		} else {
			if x.right == nil {
				break
			}
			x = x.right
		}
	}
	return x
}

// splay moves the node closest to value to the root using zig-zig and
// zig-zag rotation pairs. Must not be called on an empty tree.
func (s *Set[T]) splay(value T) {
	s.splayNode(s.findClosest(value))
}

// splayNode rotates x up until it is the root of s.
func (s *Set[T]) splayNode(x *node[T]) {
	for x.parent != nil && x.parent.parent != nil {
		p := x.parent
		g := p.parent
		if (x == p.left) == (p == g.left) {
			// zig-zig
			p.rotate()
			x.rotate()
		} else {
			// zig-zag
			x.rotate()
			x.rotate()
		}
	}
	if x.parent != nil {
		x.rotate()
	}
	s.root = x
}
