package interval

import "golang.org/x/exp/constraints"

// relation is how interval a lies relative to interval b.
type relation int

const (
	unclassified relation = iota
	identical
	inside      // b contains a
	disjoint    // at most a shared endpoint
	leftOverlap // a starts first, b ends last
	rightOverlap
	contains // a contains b
)

// classify places a relative to b. Cases are tried in order, so an interval
// pair that fits several (shared endpoints) takes the first. Touching
// intervals are disjoint. A malformed interval relates to nothing.
func classify[T constraints.Ordered](a, b Interval[T]) relation {
	switch {
	case !a.valid() || !b.valid():
		return unclassified
	case a == b:
		return identical
	case b.Start <= a.Start && a.End <= b.End:
		return inside
	case a.End <= b.Start || a.Start >= b.End:
		return disjoint
	case a.Contains(b.Start) && a.End <= b.End && a.End != b.Start:
		return leftOverlap
	case a.Contains(b.End) && b.Start <= a.Start && a.Start != b.End:
		return rightOverlap
	case a.Contains(b.Start) && a.Contains(b.End):
		return contains
	}
	return unclassified
}

// Op selects what the pairwise combiner computes for each related pair.
type Op int

const (
	// OpIntersect keeps the points two intervals share.
	OpIntersect Op = iota
	// OpUnion keeps the points either interval covers.
	OpUnion
)

func (o Op) String() string {
	switch o {
	case OpIntersect:
		return "intersect"
	case OpUnion:
		return "union"
	}
	return "unknown"
}

// CombinePair combines a and b under op. It returns false if the intervals
// are disjoint, and an error wrapping ErrUnclassifiable if their relation
// cannot be determined.
func CombinePair[T constraints.Ordered](a, b Interval[T], op Op) (Interval[T], bool, error) {
	switch classify(a, b) {
	case unclassified:
		return Interval[T]{}, false, &PairError{A: a, B: b, Err: ErrUnclassifiable}
	case disjoint:
		return Interval[T]{}, false, nil
	}
	if op == OpUnion {
		return Interval[T]{Start: min(a.Start, b.Start), End: max(a.End, b.End)}, true, nil
	}
	return Interval[T]{Start: max(a.Start, b.Start), End: min(a.End, b.End)}, true, nil
}

// Combine pairs every interval of a with every interval of b and collects
// the combination of each related pair, a-major. Pairs that share no points
// contribute nothing, so under OpUnion an interval with no counterpart in the
// other set is absent from the result, and the result is not merged.
func Combine[T constraints.Ordered](a, b Set[T], op Op) (Set[T], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return combine(a, b, op)
}

func combine[T constraints.Ordered](a, b Set[T], op Op) (Set[T], error) {
	var out Set[T]
	for _, x := range a {
		for _, y := range b {
			iv, ok, err := CombinePair(x, y, op)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, iv)
			}
		}
	}
	return out, nil
}

// Union returns the pairwise union of a and b. See Combine.
func Union[T constraints.Ordered](a, b Set[T]) (Set[T], error) {
	return Combine(a, b, OpUnion)
}

// PairwiseIntersect intersects a and b by comparing every pair of
// intervals. It runs in O(len(a)*len(b)).
func PairwiseIntersect[T constraints.Ordered](a, b Set[T]) (Set[T], error) {
	return Combine(a, b, OpIntersect)
}
