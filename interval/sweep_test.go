package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineAccumulatesSharedPoints(t *testing.T) {
	got := timeline(set(iv(0, 2), iv(2, 4)), set(iv(2, 3)))
	want := []marker[int64]{{0, 1}, {2, 1}, {3, -1}, {4, -1}}
	assert.Equal(t, want, got)
}

func TestSweepIntersect(t *testing.T) {
	cases := []struct {
		a, b Set[int64]
		want Set[int64]
	}{
		{set(iv(2, 4)), set(iv(0, 3)), set(iv(2, 3))},
		{set(iv(0, 2)), set(iv(2, 4)), set()},
		{set(iv(0, 10)), set(iv(1, 2), iv(3, 4)), set(iv(1, 2), iv(3, 4))},
		{set(iv(0, 4), iv(7, 10)), set(iv(1, 2), iv(3, 9)), set(iv(1, 2), iv(3, 4), iv(7, 9))},
		{set(), set(iv(0, 1)), set()},
	}
	for _, tc := range cases {
		got, err := SweepIntersect(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v & %v", tc.a, tc.b)
	}
}

func TestSweepIntersectIgnoresEmptyIntervals(t *testing.T) {
	got, err := SweepIntersect(set(iv(0, 4)), set(iv(1, 1), iv(2, inf)))
	require.NoError(t, err)
	assert.Equal(t, set(iv(2, 4)), got)
}
