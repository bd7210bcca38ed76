package interval

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{SweepLine, Pairwise}

func TestSubtract(t *testing.T) {
	cases := []struct {
		a, b Set[int64]
		want Set[int64]
	}{
		{set(), set(iv(3, 5)), set()},
		{set(iv(0, 2)), set(iv(3, 5)), set(iv(0, 2))},
		{set(iv(0, 2)), set(iv(0, 2)), set()},
		{set(iv(2, 4)), set(iv(0, 3)), set(iv(3, 4))},
		{set(iv(2, 4)), set(iv(3, 5)), set(iv(2, 3))},
		{set(iv(0, 2)), set(iv(0, 1)), set(iv(1, 2))},
		{set(iv(0, 2)), set(iv(1, 2)), set(iv(0, 1))},
		{set(iv(2, 4)), set(iv(1, 5)), set()},
		{set(iv(0, 3)), set(iv(1, 2)), set(iv(0, 1), iv(2, 3))},
		{set(iv(9, 10)), set(iv(9, 10)), set()},
		{set(iv(0, 2), iv(4, 6)), set(iv(1, 5)), set(iv(0, 1), iv(5, 6))},
		{set(iv(0, 4)), set(iv(0, 1), iv(2, 5)), set(iv(1, 2))},
		{set(iv(0, 4)), set(iv(0, 1), iv(2, 3)), set(iv(1, 2), iv(3, 4))},
		{set(iv(0, 4), iv(7, 10)), set(iv(0, 1), iv(2, 3), iv(9, 11)), set(iv(1, 2), iv(3, 4), iv(7, 9))},
	}
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			for _, tc := range cases {
				got, err := SubtractWith(tc.a, tc.b, IntegerDomain(), strategy)
				require.NoError(t, err)
				if len(tc.want) == 0 {
					assert.Empty(t, got, "%v - %v", tc.a, tc.b)
					continue
				}
				assert.Equal(t, tc.want, got, "%v - %v", tc.a, tc.b)
			}
		})
	}
}

func TestSubtractRejectsInvalid(t *testing.T) {
	_, err := Subtract(set(iv(2, 1)), set(), IntegerDomain())
	assert.True(t, errors.Is(err, ErrInvalidInterval))
	assert.Contains(t, err.Error(), "minuend")

	_, err = Subtract(set(), set(iv(0, 3), iv(1, 2)), IntegerDomain())
	assert.True(t, errors.Is(err, ErrOverlap))
	assert.Contains(t, err.Error(), "subtrahend")
}

func TestSubtractRejectsOutOfDomain(t *testing.T) {
	for _, strategy := range strategies {
		_, err := SubtractWith(set(iv(-5, -1)), set(iv(-4, -2)), IntegerDomain(), strategy)
		assert.True(t, errors.Is(err, ErrOutOfDomain), "%v: %v", strategy, err)

		_, err = SubtractWith(set(iv(-5, -1)), set(), IntegerDomain(), strategy)
		assert.True(t, errors.Is(err, ErrOutOfDomain), "%v: %v", strategy, err)
		assert.Contains(t, err.Error(), "minuend")
	}
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{"": SweepLine, "sweep": SweepLine, "Pairwise": Pairwise} {
		got, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStrategy("quadratic")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

const universe = 40

// randomSet returns a sorted, disjoint set within [0, universe]. Intervals
// may touch and may be empty.
func randomSet(r *rand.Rand) Set[int64] {
	var s Set[int64]
	at := int64(r.Intn(4))
	for at < universe && r.Intn(6) != 0 {
		end := at + int64(r.Intn(6))
		if end > universe {
			end = universe
		}
		s = append(s, iv(at, end))
		at = end + int64(r.Intn(4))
	}
	return s
}

// cells returns the unit cells [k, k+1) covered by ivs.
func cells(ivs Set[int64]) map[int64]bool {
	out := make(map[int64]bool)
	for _, x := range ivs {
		for k := x.Start; k < x.End && k < universe; k++ {
			out[k] = true
		}
	}
	return out
}

func TestIntersectStrategiesAgree(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a, b := randomSet(r), randomSet(r)
		require.NoError(t, a.Validate())
		require.NoError(t, b.Validate())

		pairwise, err := PairwiseIntersect(a, b)
		require.NoError(t, err)
		sweep, err := SweepIntersect(a, b)
		require.NoError(t, err)
		if diff := cmp.Diff(Normalize(pairwise), Normalize(sweep)); diff != "" {
			t.Fatalf("%v & %v: strategies disagree (-pairwise +sweep):\n%s", a, b, diff)
		}

		want := make(map[int64]bool)
		ca, cb := cells(a), cells(b)
		for k := range ca {
			if cb[k] {
				want[k] = true
			}
		}
		if diff := cmp.Diff(want, cells(sweep)); diff != "" {
			t.Fatalf("%v & %v: wrong cover (-want +got):\n%s", a, b, diff)
		}
	}
}

func TestSubtractCoversDifference(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		a, b := randomSet(r), randomSet(r)
		want := make(map[int64]bool)
		ca, cb := cells(a), cells(b)
		for k := range ca {
			if !cb[k] {
				want[k] = true
			}
		}
		for _, strategy := range strategies {
			got, err := SubtractWith(a, b, IntegerDomain(), strategy)
			require.NoError(t, err)
			if diff := cmp.Diff(want, cells(got)); diff != "" {
				t.Fatalf("%v - %v (%v): wrong cover (-want +got):\n%s", a, b, strategy, diff)
			}
		}
	}
}

func TestInvertInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	d := IntegerDomain()
	for i := 0; i < 2000; i++ {
		s := randomSet(r)
		if len(s) == 0 || s[0].Start == d.Min {
			continue
		}
		inv, err := Invert(s, d)
		require.NoError(t, err)
		back, err := Invert(inv, d)
		require.NoError(t, err)
		if diff := cmp.Diff(Normalize(s), Normalize(back)); diff != "" {
			t.Fatalf("Invert(Invert(%v)) (-want +got):\n%s", s, diff)
		}
	}
}
