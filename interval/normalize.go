package interval

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Normalize returns the minimal Set covering the same length as ivs: sorted,
// with empty intervals dropped and overlapping or touching intervals merged.
// ivs need not be sorted or disjoint, and is not modified.
func Normalize[T constraints.Ordered](ivs []Interval[T]) Set[T] {
	sorted := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			sorted = append(sorted, iv)
		}
	}
	slices.SortFunc(sorted, func(x, y Interval[T]) int {
		switch {
		case x.Start < y.Start:
			return -1
		case x.Start > y.Start:
			return 1
		}
		return 0
	})

	var out Set[T]
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}
