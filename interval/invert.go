package interval

import "golang.org/x/exp/constraints"

// Invert returns the complement of s within d, which must contain every
// interval of s: the gaps before, between and
// after the intervals of s.
//
// The trailing gap (last.End, d.Max) is always emitted, even when it is
// empty because s reaches d.Max. The leading gap is only emitted when s
// starts after d.Min.
func Invert[T constraints.Ordered](s Set[T], d Domain[T]) (Set[T], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := d.Covers(s); err != nil {
		return nil, err
	}
	return invert(s, d), nil
}

func invert[T constraints.Ordered](s Set[T], d Domain[T]) Set[T] {
	if len(s) == 0 {
		return Set[T]{d.Bounds()}
	}

	out := make(Set[T], 0, len(s)+1)
	if first := s[0]; first.Start > d.Min {
		out = append(out, Interval[T]{Start: d.Min, End: first.Start})
	}
	for i := 0; i < len(s)-1; i++ {
		out = append(out, Interval[T]{Start: s[i].End, End: s[i+1].Start})
	}
	out = append(out, Interval[T]{Start: s[len(s)-1].End, End: d.Max})
	return out
}
