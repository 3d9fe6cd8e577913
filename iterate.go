package shiftset

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// frame is one step of the in-order walk: a node plus the sum of pending
// offsets accumulated on the path down to it.
type frame[T Value] struct {
	n   *node[T]
	acc T
}

// SortedValues returns all elements in ascending order. The walk threads
// accumulated pending offsets down each path instead of mutating the
// tree, so it neither splays nor pushes down. It uses an explicit stack;
// a degenerate tree shape cannot overflow the goroutine stack.
func (s *Set[T]) SortedValues() []T {
	out := make([]T, 0, s.size)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// All returns an iterator over all elements in ascending order. The set
// must not be mutated during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []frame[T]
		var acc T
		x := s.root
		for x != nil || len(stack) > 0 {
			for x != nil {
				stack = append(stack, frame[T]{x, acc})
				acc += x.leftPending
				x = x.left
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top.n.key + top.acc) {
				return
			}
			x = top.n.right
			acc = top.acc + top.n.rightPending
		}
	}
}

// Hash returns an xxhash fingerprint of the ordered contents. Two sets
// with equal elements hash equal; useful as a cheap change detector or
// pre-filter before a full comparison.
func (s *Set[T]) Hash() uint64 {
	d := xxhash.New()
	for v := range s.All() {
		// The separator keeps adjacent values from running together.
		fmt.Fprintf(d, "%v\x00", v)
	}
	return d.Sum64()
}
