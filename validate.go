package intervalset

import "github.com/pkg/errors"

// Validate checks that the set is sorted, that every interval is
// non-empty and that no two intervals overlap or touch. New does not
// check its input, so sets built from untrusted data should be validated.
func (s *Set[T]) Validate() error {
	for i, r := range s.intervals {
		if err := checkRange(r.From, r.To); err != nil {
			return errors.WithMessagef(err, "interval %d", i)
		}
		if i > 0 && !(s.intervals[i-1].To < r.From) {
			return errors.Wrapf(ErrUnsorted, "intervals %d and %d: %v, %v", i-1, i, s.intervals[i-1], r)
		}
	}
	return nil
}
