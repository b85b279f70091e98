package intervalset

import (
	"sort"

	"golang.org/x/exp/slices"
)

// Len returns the number of intervals in the set.
func (s *Set[T]) Len() int {
	return len(s.intervals)
}

// Reset empties the set.
func (s *Set[T]) Reset() {
	s.intervals = nil
}

// Clone returns a deep copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{intervals: slices.Clone(s.intervals)}
}

// Equal reports whether s and t hold the same intervals.
func (s *Set[T]) Equal(t *Set[T]) bool {
	return slices.Equal(s.intervals, t.intervals)
}

// Contains reports whether x lies in some interval of the set.
func (s *Set[T]) Contains(x T) bool {
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].To > x })
	return i < len(s.intervals) && s.intervals[i].From <= x
}

// ContainsRange reports whether [from, to) lies entirely in one interval
// of the set. It returns false for an invalid range.
func (s *Set[T]) ContainsRange(from, to T) bool {
	if checkRange(from, to) != nil {
		return false
	}
	i, j, ok := s.locate(from, to)
	if !ok || i != j {
		return false
	}
	r := s.intervals[i]
	return r.From <= from && to <= r.To
}

// Overlaps reports whether some interval of the set shares at least one
// point with [from, to). Touching at a boundary is not overlapping.
func (s *Set[T]) Overlaps(from, to T) bool {
	if checkRange(from, to) != nil {
		return false
	}
	i, j, ok := s.locate(from, to)
	if !ok {
		return false
	}
	if s.intervals[i].To == from {
		i++
	}
	if s.intervals[j].From == to {
		j--
	}
	return i <= j
}
