package shiftset

import "fmt"

// Check verifies the structural invariants: parent/child links are
// symmetric, pending fields on absent children are zero, and effective
// keys are strictly ascending in-order. Violations are logged through the
// configured Logger and returned as an error. Intended for tests and for
// diagnosing misuse such as a negative Shift amount; normal operations
// never require it.
func (s *Set[T]) Check() error {
	if s.logger == nil {
		// Zero-value Set, constructed without New
		s.logger = DiscardLogger{}
	}
	if s.root == nil {
		if s.size != 0 {
			s.logger.Error("empty tree with nonzero length", "len", s.size)
			return fmt.Errorf("shiftset: empty tree but Len() == %d", s.size)
		}
		return nil
	}
	if s.root.parent != nil {
		s.logger.Error("root has a parent")
		return fmt.Errorf("shiftset: root has a parent")
	}

	var stack []frame[T]
	var acc T
	var prev T
	count := 0
	x := s.root
	for x != nil || len(stack) > 0 {
		for x != nil {
			if x.left != nil && x.left.parent != x {
				s.logger.Error("broken left link", "key", x.key)
				return fmt.Errorf("shiftset: left child of %v does not point back", x.key)
			}
			if x.right != nil && x.right.parent != x {
				s.logger.Error("broken right link", "key", x.key)
				return fmt.Errorf("shiftset: right child of %v does not point back", x.key)
			}
			if x.left == nil && x.leftPending != 0 {
				s.logger.Error("pending offset without subtree", "key", x.key, "pending", x.leftPending)
				return fmt.Errorf("shiftset: node %v has left pending %v but no left child", x.key, x.leftPending)
			}
			if x.right == nil && x.rightPending != 0 {
				s.logger.Error("pending offset without subtree", "key", x.key, "pending", x.rightPending)
				return fmt.Errorf("shiftset: node %v has right pending %v but no right child", x.key, x.rightPending)
			}
			stack = append(stack, frame[T]{x, acc})
			acc += x.leftPending
			x = x.left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		effective := top.n.key + top.acc
		if count > 0 && effective <= prev {
			s.logger.Error("order violation", "prev", prev, "next", effective)
			return fmt.Errorf("shiftset: effective keys out of order: %v then %v", prev, effective)
		}
		prev = effective
		count++
		x = top.n.right
		acc = top.acc + top.n.rightPending
	}
	if count != s.size {
		s.logger.Error("length mismatch", "counted", count, "len", s.size)
		return fmt.Errorf("shiftset: counted %d nodes but Len() == %d", count, s.size)
	}
	return nil
}
