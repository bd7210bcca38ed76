// Package schedule resolves the busy time of parties and answers
// availability questions about two of them.
package schedule

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"freebusy/interval"
)

// Busy is the busy time of one party over a day.
type Busy = interval.Set[interval.TimeOfDay]

// ErrUnknownParty is returned when a resolver has no schedule for a party.
var ErrUnknownParty = errors.New("unknown party")

type Resolver interface {
	// resolves the busy schedule of a party from a datasource
	// like memory, SQL etc
	Resolve(ctx context.Context, party string) (Busy, error)
}

// StaticResolver serves schedules held in memory.
type StaticResolver struct {
	mu        sync.RWMutex
	schedules map[string]Busy
}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		schedules: make(map[string]Busy),
	}
}

// Set replaces the schedule of party. Intervals are normalized, so they may
// be given in any order and may overlap.
func (sr *StaticResolver) Set(party string, busy []interval.Interval[interval.TimeOfDay]) error {
	for _, iv := range busy {
		if iv.Start > iv.End {
			return errors.Wrapf(interval.ErrInvalidInterval, "party %s: %v", party, iv)
		}
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.schedules[party] = interval.Normalize(busy)
	return nil
}

func (sr *StaticResolver) Parties() []string {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	parties := make([]string, 0, len(sr.schedules))
	for p := range sr.schedules {
		parties = append(parties, p)
	}
	slices.Sort(parties)
	return parties
}

func (sr *StaticResolver) Resolve(_ context.Context, party string) (Busy, error) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	busy, ok := sr.schedules[party]
	if !ok {
		return nil, errors.Wrap(ErrUnknownParty, party)
	}
	return append(Busy(nil), busy...), nil
}
