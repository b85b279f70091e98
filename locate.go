package intervalset

import "sort"

// locate finds the run of intervals [i, j] that overlap or touch
// [from, to). If there is none, ok is false and i is where an interval
// covering [from, to) would be inserted.
func (s *Set[T]) locate(from, to T) (i, j int, ok bool) {
	n := len(s.intervals)

	i = s.closestRight(from)
	if i == n {
		return n, 0, false
	}

	j = s.closestRight(to)
	if j == n {
		j = n - 1
	}
	if s.intervals[j].From > to {
		j--
	}
	if j < i {
		return i, 0, false
	}

	return i, j, true
}

// closestRight returns the index of the first interval ending at or after
// x, or len(s.intervals) if there is none.
func (s *Set[T]) closestRight(x T) int {
	return sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].To >= x })
}
