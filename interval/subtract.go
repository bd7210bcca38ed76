package interval

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Strategy selects the intersection algorithm.
type Strategy int

const (
	// SweepLine intersects with SweepIntersect.
	SweepLine Strategy = iota
	// Pairwise intersects with PairwiseIntersect.
	Pairwise
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown intersection strategy")

// ParseStrategy parses "sweep" or "pairwise". The empty string selects SweepLine.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "", "sweep", "sweepline":
		return SweepLine, nil
	case "pairwise":
		return Pairwise, nil
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

func (s Strategy) String() string {
	if s == Pairwise {
		return "pairwise"
	}
	return "sweep"
}

// Intersect returns the points a and b share, using the sweep line.
func Intersect[T constraints.Ordered](a, b Set[T]) (Set[T], error) {
	return IntersectWith(a, b, SweepLine)
}

// IntersectWith returns the points a and b share, computed with strategy.
// Both strategies cover the same points for any valid input.
func IntersectWith[T constraints.Ordered](a, b Set[T], strategy Strategy) (Set[T], error) {
	if strategy == Pairwise {
		return PairwiseIntersect(a, b)
	}
	return SweepIntersect(a, b)
}

// Subtract returns the points of a not covered by b, that is a intersected
// with the complement of b in d. Both sets must lie within d.
func Subtract[T constraints.Ordered](a, b Set[T], d Domain[T]) (Set[T], error) {
	return SubtractWith(a, b, d, SweepLine)
}

// SubtractWith is Subtract using the given intersection strategy.
func SubtractWith[T constraints.Ordered](a, b Set[T], d Domain[T], strategy Strategy) (Set[T], error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "minuend")
	}
	if err := d.Covers(a); err != nil {
		return nil, errors.Wrap(err, "minuend")
	}
	inv, err := Invert(b, d)
	if err != nil {
		return nil, errors.Wrap(err, "subtrahend")
	}
	return IntersectWith(a, inv, strategy)
}
