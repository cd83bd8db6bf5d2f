package state

// ReorderSession is the three-phase drag-to-reorder protocol: Begin with the
// picked-up id, Hover over targets as the pointer moves, Commit to get the
// final id order for the atomic store reorder. The protocol is input
// agnostic; mouse, keyboard, and tests drive it the same way.
type ReorderSession struct {
	ids     []int64
	dragged int64
	active  bool
}

// NewReorderSession starts from the current sibling order.
func NewReorderSession(ids []int64) *ReorderSession {
	s := &ReorderSession{ids: append([]int64(nil), ids...)}
	return s
}

// Begin picks up the given id. Returns false if the id is not in the group.
func (s *ReorderSession) Begin(id int64) bool {
	if s.indexOf(id) < 0 {
		return false
	}
	s.dragged = id
	s.active = true
	return true
}

// Hover moves the dragged id to the position currently occupied by target.
// No-ops when idle, when target is unknown, or when hovering the dragged
// id itself.
func (s *ReorderSession) Hover(target int64) {
	if !s.active || target == s.dragged {
		return
	}
	from := s.indexOf(s.dragged)
	to := s.indexOf(target)
	if from < 0 || to < 0 {
		return
	}
	moved := s.ids[from]
	s.ids = append(s.ids[:from], s.ids[from+1:]...)
	s.ids = append(s.ids[:to], append([]int64{moved}, s.ids[to:]...)...)
}

// Commit ends the session and returns the final order. ok is false when no
// drag was active.
func (s *ReorderSession) Commit() ([]int64, bool) {
	if !s.active {
		return nil, false
	}
	s.active = false
	return append([]int64(nil), s.ids...), true
}

// Cancel abandons the session without reporting an order.
func (s *ReorderSession) Cancel() { s.active = false }

// Order returns the current working order, live during a drag.
func (s *ReorderSession) Order() []int64 {
	return append([]int64(nil), s.ids...)
}

func (s *ReorderSession) indexOf(id int64) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}
