package intervalset

import "sort"

// Iterator walks a snapshot of a set in (low, high) order.
type Iterator[T Unsigned] struct {
	current int
	rr      []Interval[T]
	// reach is the highest bound seen before current.
	reach T
}

func (s *Set[T]) Iterate() *Iterator[T] {
	rr := s.Intervals()
	sort.Slice(rr, func(i, j int) bool { return rr[i].less(rr[j]) })
	return &Iterator[T]{current: -1, rr: rr}
}

func (r *Iterator[T]) Interval() Interval[T] {
	return r.rr[r.current]
}

func (r *Iterator[T]) Next() bool {
	if r.current >= 0 && r.current < len(r.rr) {
		r.reach = max(r.reach, r.rr[r.current].High)
	}
	r.current++
	return r.current < len(r.rr)
}

// Touches returns whether the current interval overlaps or is adjacent to
// any interval before it.
func (r *Iterator[T]) Touches() bool {
	if r.current < 1 {
		return false
	}
	return r.rr[r.current].Low <= satAddOne(r.reach)
}
