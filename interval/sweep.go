package interval

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// marker is the net change in open intervals at a point of the timeline.
type marker[T constraints.Ordered] struct {
	at    T
	delta int
}

// timeline returns the markers of every interval of sets, one per distinct
// point, ascending.
func timeline[T constraints.Ordered](sets ...Set[T]) []marker[T] {
	deltas := make(map[T]int)
	for _, s := range sets {
		for _, iv := range s {
			deltas[iv.Start]++
			deltas[iv.End]--
		}
	}
	markers := make([]marker[T], 0, len(deltas))
	for at, delta := range deltas {
		markers = append(markers, marker[T]{at: at, delta: delta})
	}
	slices.SortFunc(markers, func(x, y marker[T]) int {
		switch {
		case x.at < y.at:
			return -1
		case x.at > y.at:
			return 1
		}
		return 0
	})
	return markers
}

// SweepIntersect intersects a and b by sweeping the points where intervals
// open and close. Since neither set overlaps itself, a point is in both sets
// exactly when two intervals are open there. It runs in
// O((n+m) log(n+m)).
func SweepIntersect[T constraints.Ordered](a, b Set[T]) (Set[T], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return sweepIntersect(a, b), nil
}

func sweepIntersect[T constraints.Ordered](a, b Set[T]) Set[T] {
	var bounds []T
	open := 0
	for _, m := range timeline(a, b) {
		if open == 2 {
			bounds = append(bounds, m.at)
		}
		open += m.delta
		if open == 2 {
			bounds = append(bounds, m.at)
		}
	}

	var out Set[T]
	for i := 0; i+1 < len(bounds); i += 2 {
		out = append(out, Interval[T]{Start: bounds[i], End: bounds[i+1]})
	}
	return out
}
