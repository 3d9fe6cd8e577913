// Package shiftset implements an in-memory ordered set that supports a
// range shift in amortized O(log n) time: Shift(x, v) adds v to every
// element >= x without touching each element individually.
//
// The set is backed by a splay tree. Shifts are recorded as pending
// offsets on subtree edges and materialized lazily as later operations
// descend past them. Insert, Erase, Contains, and Shift all run in
// amortized O(log n); SortedValues runs in O(n).
//
// A Set is not safe for concurrent use. Every operation, including
// Contains, restructures the tree and must be treated as a write.
package shiftset

import (
	"golang.org/x/exp/constraints"
)

// Value is the set of supported element types: totally ordered, addable,
// with the zero value as the additive identity.
type Value interface {
	constraints.Integer | constraints.Float
}

// Set is an ordered set of unique values. Use New to create one.
type Set[T Value] struct {
	root   *node[T]
	size   int
	logger Logger
}

// New creates an empty Set.
func New[T Value](opts ...Option) *Set[T] {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Set[T]{logger: options.logger}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.size
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.root = nil
	s.size = 0
}

// Contains reports whether value is a member of the set.
func (s *Set[T]) Contains(value T) bool {
	if s.root == nil {
		return false
	}
	s.splay(value)
	return s.root.key == value
}

// Insert adds value to the set. Inserting a value already present is a
// no-op.
func (s *Set[T]) Insert(value T) {
	if s.root == nil {
		s.root = &node[T]{key: value}
		s.size = 1
		return
	}
	s.splay(value)
	r := s.root
	if r.key == value {
		return
	}

	// Split the old root's subtree around the new key: the old root keeps
	// the half on its own side, the new node takes over the far half along
	// with the pending offset that governed it.
	n := &node[T]{key: value}
	if r.key < value {
		n.left = r
		n.right = r.right
		r.right = nil
		if n.right != nil {
			n.right.parent = n
		}
		n.rightPending = r.rightPending
		r.rightPending = 0
	} else {
		n.right = r
		n.left = r.left
		r.left = nil
		if n.left != nil {
			n.left.parent = n
		}
		n.leftPending = r.leftPending
		r.leftPending = 0
	}
	r.parent = n
	s.root = n
	s.size++
}

// Erase removes value from the set. Removing an absent value is a no-op.
func (s *Set[T]) Erase(value T) {
	if s.root == nil {
		return
	}
	s.splay(value)
	if s.root.key != value {
		return
	}

	// Join the two subtrees. Each detached subtree first absorbs the
	// pending offset the erased root still owed it.
	left, right := s.root.left, s.root.right
	switch {
	case left == nil && right == nil:
		s.root = nil
	case left == nil:
		right.pushDown()
		s.root = right
		right.parent = nil
	default:
		left.pushDown()
		s.root = left
		left.parent = nil
		if right != nil {
			right.pushDown()
			// Splaying toward the detached subtree's key brings the
			// maximum of the left tree to the root, which has no right
			// child by construction.
			s.splay(right.key)
			s.root.right = right
			right.parent = s.root
		}
	}
	s.size--
}

// Shift adds amount to every element >= threshold. The amount must be
// non-negative; a negative amount silently breaks the set's ordering and
// is undefined behavior. Runs in amortized O(log n): the bulk of the
// update is deferred as a pending offset on the root's right subtree.
func (s *Set[T]) Shift(threshold, amount T) {
	if s.root == nil {
		return
	}
	s.splay(threshold)
	// After the splay, everything < threshold is strictly inside the left
	// subtree: the descent only stops early at a missing child, so the
	// root is either the threshold itself or its nearest neighbor.
	if s.root.key >= threshold {
		s.root.key += amount
	}
	if s.root.right != nil {
		s.root.rightPending += amount
	}
}

// Min returns the smallest element, or false if the set is empty.
// Like any access, it splays the touched node.
func (s *Set[T]) Min() (T, bool) {
	var zero T
	if s.root == nil {
		return zero, false
	}
	x := s.root
	for {
		x.left.pushDown()
		x.right.pushDown()
		if x.left == nil {
			break
		}
		x = x.left
	}
	s.splayNode(x)
	return x.key, true
}

// Max returns the largest element, or false if the set is empty.
func (s *Set[T]) Max() (T, bool) {
	var zero T
	if s.root == nil {
		return zero, false
	}
	x := s.root
	for {
		x.left.pushDown()
		x.right.pushDown()
		if x.right == nil {
			break
		}
		x = x.right
	}
	s.splayNode(x)
	return x.key, true
}
