package intervalset

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

type Set[T Unsigned] struct {
	// rr is kept in arbitrary order. Insert and UnionFrom keep it free of
	// overlapping and adjacent intervals as long as it was free of them
	// before; Of can build sets that are not.
	rr   []Interval[T]
	mode MergeMode
}

func New[T Unsigned](opts ...Option) *Set[T] {
	return Of[T](nil, opts...)
}

// Of returns a set holding a copy of rr exactly as given, without merging.
func Of[T Unsigned](rr []Interval[T], opts ...Option) *Set[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Set[T]{
		rr:   append([]Interval[T]{}, rr...),
		mode: o.mode,
	}
}

func (s *Set[T]) MergeMode() MergeMode { return s.mode }

func (s *Set[T]) Len() int { return len(s.rr) }

// Intervals returns a copy of the stored intervals in their current order.
func (s *Set[T]) Intervals() []Interval[T] {
	return append([]Interval[T]{}, s.rr...)
}

// Insert adds v to the set. It returns true, leaving the set untouched,
// when v was already present.
func (s *Set[T]) Insert(v T) bool {
	if s.Contains(v) {
		return true
	}

	first, second := -1, -1
	var merged Interval[T]
	for i, r := range s.rr {
		ext, ok := r.extend(v)
		if !ok {
			continue
		}
		if first == -1 {
			first, merged = i, ext
			continue
		}
		// v bridges two intervals.
		second, merged = i, merged.span(ext)
		break
	}

	switch {
	case first == -1:
		s.rr = append(s.rr, Point(v))
		return false
	case second == -1:
		s.rr, first = replace(s.rr, first, merged, nil)
	default:
		s.rr, first = replace(s.rr, first, merged, []int{second})
	}
	if s.mode == MergeCoalesce {
		s.coalesce(first)
	}
	return false
}

func (s *Set[T]) Contains(v T) bool {
	for _, r := range s.rr {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// UnionFrom merges the intervals of other into s, one at a time. Every
// interval of s that intersects or is adjacent to the incoming one is
// folded into a single interval; an incoming interval touching nothing is
// appended unchanged.
func (s *Set[T]) UnionFrom(other *Set[T]) {
	if other == nil {
		return
	}
	for _, o := range other.Intervals() {
		var hits []int
		for i, r := range s.rr {
			if r.touches(o) {
				hits = append(hits, i)
			}
		}
		if len(hits) == 0 {
			s.rr = append(s.rr, o)
			continue
		}

		merged := o
		for _, i := range hits {
			merged = merged.span(s.rr[i])
		}
		var at int
		s.rr, at = replace(s.rr, hits[0], merged, hits[1:])
		if s.mode == MergeCoalesce {
			s.coalesce(at)
		}
	}
}

func (s *Set[T]) Clear() {
	s.rr = nil
}

// Sort orders the intervals by (low, high). It does not merge.
func (s *Set[T]) Sort() {
	sort.Slice(s.rr, func(i, j int) bool { return s.rr[i].less(s.rr[j]) })
}

// Normalize sorts s and merges every overlapping or adjacent pair, leaving
// the minimal representation of the same values.
func (s *Set[T]) Normalize() error {
	for _, r := range s.rr {
		if !r.IsValid() {
			return fmt.Errorf("cannot normalize invalid interval %s", r)
		}
	}
	if len(s.rr) < 2 {
		return nil
	}

	s.Sort()
	out := make([]Interval[T], 1, len(s.rr))
	out[0] = s.rr[0]
	for _, r := range s.rr[1:] {
		prev := &out[len(out)-1]
		switch {
		case !prev.touches(r):
			// No overlap and not adjacent.
			//
			//   prev       r
			// f------t  f-----t
			out = append(out, r)
		case prev.High < r.High:
			// Adjacent or partial overlap, extend prev.
			//
			//   prev     r
			// f------tf-----t
			//
			//   prev
			// f------t
			//     f-----t
			//        r
			prev.High = r.High
		default:
			// r entirely contained in prev, nothing to do.
			//
			//    prev
			// f--------t
			//  f-----t
			//     r
		}
	}
	s.rr = out
	return nil
}

// Validate reports every interval that is invalid, overlaps or is adjacent
// to another one.
func (s *Set[T]) Validate() error {
	var errs error
	iter := s.Iterate()
	for iter.Next() {
		r := iter.Interval()
		if !r.IsValid() {
			errs = errors.Join(errs, fmt.Errorf("invalid interval %s", r))
			continue
		}
		if iter.Touches() {
			errs = errors.Join(errs, fmt.Errorf("interval %s overlaps or is adjacent to a lower interval", r))
		}
	}
	return errs
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range s.rr {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// coalesce folds every interval touching rr[at] into it until nothing
// touches anymore.
func (s *Set[T]) coalesce(at int) {
	for {
		merged := s.rr[at]
		var drop []int
		for i, r := range s.rr {
			if i != at && merged.touches(r) {
				merged = merged.span(r)
				drop = append(drop, i)
			}
		}
		if len(drop) == 0 {
			return
		}
		s.rr, at = replace(s.rr, at, merged, drop)
	}
}

// replace builds a new slice from rr with rr[at] set to merged and the
// entries at drop left out. It returns the index merged ends up at.
func replace[T Unsigned](rr []Interval[T], at int, merged Interval[T], drop []int) ([]Interval[T], int) {
	next := make([]Interval[T], 0, len(rr)-len(drop))
	newAt := -1
	for i, r := range rr {
		switch {
		case i == at:
			newAt = len(next)
			next = append(next, merged)
		case slices.Contains(drop, i):
		default:
			next = append(next, r)
		}
	}
	return next, newAt
}
