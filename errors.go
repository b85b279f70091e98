package intervalset

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidRange is returned when a range is empty, inverted or has an
	// endpoint that does not compare (such as NaN).
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnsorted is returned by Validate when two intervals are out of
	// order, overlap or touch.
	ErrUnsorted = errors.New("intervals not sorted and disjoint")
)

func checkRange[T constraints.Ordered](from, to T) error {
	if from < to {
		return nil
	}
	return errors.Wrapf(ErrInvalidRange, "from=%v, to=%v", from, to)
}
