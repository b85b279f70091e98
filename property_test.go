package intervalset

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

const domain = 64

// bitmap is a naive model of a set of integers in [0, domain).
type bitmap [domain]bool

func (m *bitmap) set(from, to int, v bool) {
	for x := from; x < to; x++ {
		m[x] = v
	}
}

func (m *bitmap) intervals() []Interval[int] {
	var s []Interval[int]
	for x := 0; x < domain; x++ {
		if !m[x] {
			continue
		}
		if n := len(s); n > 0 && s[n-1].To == x {
			s[n-1].To++
			continue
		}
		s = append(s, Interval[int]{x, x + 1})
	}
	return s
}

func randomRange(rng *rand.Rand) (from, to int) {
	from = rng.Intn(domain - 1)
	to = from + 1 + rng.Intn(domain-from-1)
	if rng.Intn(4) == 0 && to-from > 4 {
		to = from + 1 + rng.Intn(4)
	}
	return
}

func checkInvariants(t *testing.T, s []Interval[int]) {
	t.Helper()
	for i, r := range s {
		require.Less(t, r.From, r.To, "interval %d is empty: %v", i, s)
		if i > 0 {
			require.Less(t, s[i-1].To, r.From, "intervals %d and %d overlap or touch: %v", i-1, i, s)
		}
	}
}

func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		var (
			s     Set[int]
			model bitmap
		)
		for step := 0; step < 50; step++ {
			from, to := randomRange(rng)
			add := rng.Intn(2) == 0

			var (
				got []Interval[int]
				err error
			)
			if add {
				got, err = s.Add(from, to)
				model.set(from, to, true)
			} else {
				got, err = s.Remove(from, to)
				model.set(from, to, false)
			}
			require.NoError(t, err)
			checkInvariants(t, got)

			if diff := cmp.Diff(model.intervals(), got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("round %d step %d add=%v [%d, %d) mismatch (-model +got):\n%s",
					round, step, add, from, to, diff)
			}

			for x := from; x < to; x++ {
				require.Equal(t, add, s.Contains(x))
			}
			require.Equal(t, add, s.ContainsRange(from, to))
			require.Equal(t, add, s.Overlaps(from, to))
		}
	}
}

func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for round := 0; round < 500; round++ {
		s := randomSet(rng)
		from, to := randomRange(rng)

		once := s.Clone()
		once.Add(from, to)
		twice := once.Clone()
		twice.Add(from, to)
		require.True(t, once.Equal(twice), "add [%d, %d) twice: %v != %v", from, to, once, twice)

		once = s.Clone()
		once.Remove(from, to)
		twice = once.Clone()
		twice.Remove(from, to)
		require.True(t, once.Equal(twice), "remove [%d, %d) twice: %v != %v", from, to, once, twice)
	}
}

func TestCoverageAndDisjointness(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for round := 0; round < 500; round++ {
		s := randomSet(rng)
		from, to := randomRange(rng)

		added := s.Clone()
		added.Add(from, to)
		for x := from; x < to; x++ {
			n := 0
			for _, r := range added.Intervals() {
				if r.From <= x && x < r.To {
					n++
				}
			}
			require.Equal(t, 1, n, "point %d after add [%d, %d): %v", x, from, to, added)
		}

		removed := s.Clone()
		removed.Remove(from, to)
		for _, r := range removed.Intervals() {
			require.False(t, r.From < to && from < r.To, "%v intersects [%d, %d)", r, from, to)
		}
	}
}

func randomSet(rng *rand.Rand) *Set[int] {
	var model bitmap
	for i := rng.Intn(8); i > 0; i-- {
		from, to := randomRange(rng)
		model.set(from, to, rng.Intn(3) != 0)
	}
	return New(model.intervals()...)
}
