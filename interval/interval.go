// Package interval implements an algebra over sets of closed intervals on a
// totally ordered domain: inversion within a domain, union, intersection and
// subtraction.
package interval

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Interval is the closed range [Start, End].
type Interval[T constraints.Ordered] struct {
	Start T `json:"start"`
	End   T `json:"end"`
}

// Of returns the interval [start, end].
func Of[T constraints.Ordered](start, end T) Interval[T] {
	return Interval[T]{Start: start, End: end}
}

// Contains returns true if p lies within i, endpoints included.
func (i Interval[T]) Contains(p T) bool {
	return i.Start <= p && p <= i.End
}

// Empty returns true if i covers no length.
func (i Interval[T]) Empty() bool {
	return i.Start >= i.End
}

func (i Interval[T]) valid() bool {
	return i.Start <= i.End
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("(%v, %v)", i.Start, i.End)
}

// Set is a sequence of intervals sorted ascending by start, no two of which
// overlap. Intervals may touch at a shared endpoint.
//
// Operations in this package validate their inputs; a Set assembled by hand
// can be checked with Validate.
type Set[T constraints.Ordered] []Interval[T]

// New returns a Set holding ivs, or an error if ivs is not sorted and
// pairwise disjoint.
func New[T constraints.Ordered](ivs ...Interval[T]) (Set[T], error) {
	s := Set[T](ivs)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every interval is well formed, that s is sorted by start,
// and that no two intervals overlap.
func (s Set[T]) Validate() error {
	for i, iv := range s {
		if !iv.valid() {
			return wrapAt(ErrInvalidInterval, i, iv)
		}
		if i == 0 {
			continue
		}
		prev := s[i-1]
		if iv.Start < prev.Start {
			return wrapPair(ErrUnsorted, i, prev, iv)
		}
		if prev.End > iv.Start {
			return wrapPair(ErrOverlap, i, prev, iv)
		}
	}
	return nil
}

func (s Set[T]) String() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
