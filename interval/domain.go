package interval

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Domain bounds the space a set is inverted within.
type Domain[T constraints.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// IntegerDomain spans the non-negative integers. Max stands in for +inf.
func IntegerDomain() Domain[int64] {
	return Domain[int64]{Min: 0, Max: math.MaxInt64}
}

// TimeOfDayDomain spans a single day.
func TimeOfDayDomain() Domain[TimeOfDay] {
	return Domain[TimeOfDay]{Min: StartOfDay, Max: EndOfDay}
}

// Bounds returns the domain as an interval.
func (d Domain[T]) Bounds() Interval[T] {
	return Interval[T]{Start: d.Min, End: d.Max}
}

// Covers returns an error wrapping ErrOutOfDomain if s starts before Min or
// ends after Max. s must be sorted.
func (d Domain[T]) Covers(s Set[T]) error {
	if len(s) == 0 {
		return nil
	}
	if first := s[0]; first.Start < d.Min {
		return errors.Wrapf(ErrOutOfDomain, "interval 0 %v in domain %v", first, d.Bounds())
	}
	if last := s[len(s)-1]; last.End > d.Max {
		return errors.Wrapf(ErrOutOfDomain, "interval %d %v in domain %v", len(s)-1, last, d.Bounds())
	}
	return nil
}

// Validate returns an error if Min is after Max.
func (d Domain[T]) Validate() error {
	if d.Min > d.Max {
		return errors.Wrapf(ErrInvalidInterval, "domain %v", d.Bounds())
	}
	return nil
}
