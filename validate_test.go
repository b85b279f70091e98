package intervalset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		initial []Interval[int]
		err     error
	}{
		"Empty":    {nil, nil},
		"Valid":    {pairs([2]int{1, 2}, [2]int{3, 4}, [2]int{7, 8}), nil},
		"Empty1":   {pairs([2]int{1, 1}), ErrInvalidRange},
		"Inverted": {pairs([2]int{1, 2}, [2]int{5, 3}), ErrInvalidRange},
		"Touching": {pairs([2]int{1, 2}, [2]int{2, 4}), ErrUnsorted},
		"Overlap":  {pairs([2]int{1, 3}, [2]int{2, 4}), ErrUnsorted},
		"Unsorted": {pairs([2]int{5, 6}, [2]int{1, 2}), ErrUnsorted},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := New(tc.initial...).Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}
