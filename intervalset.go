// Package intervalset maintains sets of disjoint, non-adjacent half-open
// intervals over an ordered scalar type.
package intervalset

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Interval is the half-open range [From, To).
type Interval[T constraints.Ordered] struct {
	From, To T
}

func (r Interval[T]) String() string {
	return fmt.Sprintf("[%v %v]", r.From, r.To)
}

// Set is a sorted sequence of intervals in which no two intervals overlap
// or touch. The zero value is an empty set.
//
// A Set is not safe for concurrent use.
type Set[T constraints.Ordered] struct {
	intervals []Interval[T]
}

// New returns a set holding a copy of initial. The caller must make sure
// initial is sorted, disjoint and non-adjacent; see Validate.
func New[T constraints.Ordered](initial ...Interval[T]) *Set[T] {
	return &Set[T]{intervals: slices.Clone(initial)}
}

// Add ensures [from, to) is covered, merging with every interval it
// overlaps or touches. It returns the updated sequence.
func (s *Set[T]) Add(from, to T) ([]Interval[T], error) {
	if err := checkRange(from, to); err != nil {
		return s.intervals, err
	}

	i, j, ok := s.locate(from, to)
	if !ok {
		s.intervals = slices.Insert(s.intervals, i, Interval[T]{from, to})
		return s.intervals, nil
	}

	r := Interval[T]{
		From: min(s.intervals[i].From, from),
		To:   max(s.intervals[j].To, to),
	}
	s.intervals[i] = r
	s.intervals = slices.Delete(s.intervals, i+1, j+1)
	return s.intervals, nil
}

// Remove removes [from, to) from the set, shrinking, splitting or deleting
// the intervals it overlaps. Intervals that merely touch [from, to) are
// left alone. It returns the updated sequence.
func (s *Set[T]) Remove(from, to T) ([]Interval[T], error) {
	if err := checkRange(from, to); err != nil {
		return s.intervals, err
	}

	i, j, ok := s.locate(from, to)
	if !ok {
		return s.intervals, nil
	}

	var (
		rest [2]Interval[T]
		n    int
	)
	if left := s.intervals[i]; from > left.From {
		rest[n] = Interval[T]{left.From, from}
		n++
	}
	if right := s.intervals[j]; to < right.To {
		rest[n] = Interval[T]{to, right.To}
		n++
	}

	s.intervals = slices.Delete(s.intervals, i, j+1)
	s.intervals = slices.Insert(s.intervals, i, rest[:n]...)
	return s.intervals, nil
}

// Intervals returns the live sequence. It must not be modified.
func (s *Set[T]) Intervals() []Interval[T] {
	return s.intervals
}

// Snapshot returns a copy of the sequence.
func (s *Set[T]) Snapshot() []Interval[T] {
	return slices.Clone(s.intervals)
}

func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range s.intervals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}

func min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}
