package intervalset

import (
	"fmt"
)

// Unsigned is the fixed-width value domain of an interval.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Interval is the inclusive range [Low, High].
type Interval[T Unsigned] struct {
	Low  T
	High T
}

// Point returns the singleton interval [v, v].
func Point[T Unsigned](v T) Interval[T] {
	return Interval[T]{Low: v, High: v}
}

func (r Interval[T]) String() string {
	return fmt.Sprintf("(%d, %d)", r.Low, r.High)
}

func (r Interval[T]) IsValid() bool {
	return r.Low <= r.High
}

func (r Interval[T]) Contains(v T) bool {
	return r.Low <= v && v <= r.High
}

func (r Interval[T]) less(other Interval[T]) bool {
	if r.Low != other.Low {
		return r.Low < other.Low
	}
	return r.High < other.High
}

// extend returns r grown by one on the side v sits on. ok is false when v
// is not directly below Low or directly above High.
func (r Interval[T]) extend(v T) (Interval[T], bool) {
	if below, ok := subOne(r.Low); ok && below == v {
		r.Low = v
		return r, true
	}
	if above, ok := addOne(r.High); ok && above == v {
		r.High = v
		return r, true
	}
	return r, false
}

// touches returns whether r and other intersect or are merge-adjacent.
// Bounds are widened by one, saturating at the domain edges.
//
//	   r          other
//	f-----t    f---------t   false
//	f-----tf-------t         true
//	f-----t
//	   f-------t             true
func (r Interval[T]) touches(other Interval[T]) bool {
	return r.Low <= satAddOne(other.High) && other.Low <= satAddOne(r.High)
}

// span returns the smallest interval covering both r and other.
func (r Interval[T]) span(other Interval[T]) Interval[T] {
	return Interval[T]{Low: min(r.Low, other.Low), High: max(r.High, other.High)}
}

// subOne returns v - 1. ok is false at the domain floor.
func subOne[T Unsigned](v T) (T, bool) {
	if v == 0 {
		return 0, false
	}
	return v - 1, true
}

// addOne returns v + 1. ok is false at the domain ceiling.
func addOne[T Unsigned](v T) (T, bool) {
	sum := v + 1
	if sum == 0 {
		// Overflowed.
		return v, false
	}
	return sum, true
}

func satAddOne[T Unsigned](v T) T {
	sum, _ := addOne(v)
	return sum
}
