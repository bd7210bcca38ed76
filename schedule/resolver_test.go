package schedule

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freebusy/interval"
)

func at(hour, minute int) interval.TimeOfDay {
	return interval.Clock(hour, minute, 0)
}

func span(h0, m0, h1, m1 int) interval.Interval[interval.TimeOfDay] {
	return interval.Of(at(h0, m0), at(h1, m1))
}

func TestStaticResolverNormalizes(t *testing.T) {
	sr := NewStaticResolver()
	require.NoError(t, sr.Set("alice", []interval.Interval[interval.TimeOfDay]{
		span(13, 0, 14, 0),
		span(9, 0, 10, 0),
		span(9, 30, 11, 0),
	}))

	busy, err := sr.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, Busy{span(9, 0, 11, 0), span(13, 0, 14, 0)}, busy)
	assert.Equal(t, []string{"alice"}, sr.Parties())
}

func TestStaticResolverUnknownParty(t *testing.T) {
	_, err := NewStaticResolver().Resolve(context.Background(), "mallory")
	assert.True(t, errors.Is(err, ErrUnknownParty))
}

func TestStaticResolverRejectsReversed(t *testing.T) {
	err := NewStaticResolver().Set("bob", []interval.Interval[interval.TimeOfDay]{span(10, 0, 9, 0)})
	assert.True(t, errors.Is(err, interval.ErrInvalidInterval))
}

func TestStaticResolverReturnsCopy(t *testing.T) {
	sr := NewStaticResolver()
	require.NoError(t, sr.Set("alice", []interval.Interval[interval.TimeOfDay]{span(9, 0, 10, 0)}))
	busy, err := sr.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	busy[0].End = at(23, 0)

	again, err := sr.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, at(10, 0), again[0].End)
}
