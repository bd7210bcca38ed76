package schedule

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"freebusy/interval"
)

// Mode is the availability question asked about two parties.
type Mode string

const (
	// ModeFree is the time neither party is busy.
	ModeFree Mode = "free"
	// ModeOverlap is the time both parties are busy.
	ModeOverlap Mode = "overlap"
	// ModeConflicts is the time the first party is busy and the second is not.
	ModeConflicts Mode = "conflicts"
)

// ErrUnknownMode is returned for a Mode other than the ones above.
var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeFree, ModeOverlap, ModeConflicts:
		return m, nil
	case "":
		return ModeFree, nil
	}
	return "", errors.Wrapf(ErrUnknownMode, "%q", s)
}

type Query struct {
	// parties being compared
	A, B string
	Mode Mode
	// window the answer is restricted to, a whole day when zero
	Window interval.Domain[interval.TimeOfDay]
}

func (q Query) window() interval.Domain[interval.TimeOfDay] {
	if q.Window == (interval.Domain[interval.TimeOfDay]{}) {
		return interval.TimeOfDayDomain()
	}
	return q.Window
}

// Planner answers queries against the schedules of a resolver.
type Planner struct {
	res      Resolver
	strategy interval.Strategy
}

func NewPlanner(res Resolver, strategy interval.Strategy) *Planner {
	return &Planner{
		res:      res,
		strategy: strategy,
	}
}

func (p *Planner) Strategy() interval.Strategy {
	return p.strategy
}

// Answer resolves both parties and returns the time matching q.Mode within
// q.Window, normalized.
func (p *Planner) Answer(ctx context.Context, q Query) (Busy, error) {
	w := q.window()
	if err := w.Validate(); err != nil {
		return nil, errors.Wrap(err, "window")
	}

	a, err := p.busy(ctx, q.A, w)
	if err != nil {
		return nil, err
	}
	b, err := p.busy(ctx, q.B, w)
	if err != nil {
		return nil, err
	}

	var out Busy
	switch q.Mode {
	case ModeOverlap:
		out, err = interval.IntersectWith(a, b, p.strategy)
	case ModeConflicts:
		out, err = interval.SubtractWith(a, b, w, p.strategy)
	case ModeFree, "":
		out, err = p.free(a, b, w)
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "%q", q.Mode)
	}
	if err != nil {
		return nil, err
	}
	return interval.Normalize(out), nil
}

func (p *Planner) free(a, b Busy, w interval.Domain[interval.TimeOfDay]) (Busy, error) {
	freeA, err := interval.Invert(a, w)
	if err != nil {
		return nil, err
	}
	freeB, err := interval.Invert(b, w)
	if err != nil {
		return nil, err
	}
	return interval.IntersectWith(freeA, freeB, p.strategy)
}

// busy resolves party and clips its schedule to w.
func (p *Planner) busy(ctx context.Context, party string, w interval.Domain[interval.TimeOfDay]) (Busy, error) {
	busy, err := p.res.Resolve(ctx, party)
	if err != nil {
		return nil, err
	}
	clipped, err := interval.IntersectWith(busy, Busy{w.Bounds()}, p.strategy)
	if err != nil {
		return nil, errors.Wrapf(err, "busy time of %s", party)
	}
	return clipped, nil
}
