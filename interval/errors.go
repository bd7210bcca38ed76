package interval

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInterval is returned for an interval whose start is after its end.
	ErrInvalidInterval = errors.New("interval start is after its end")
	// ErrUnsorted is returned when a set is not sorted ascending by start.
	ErrUnsorted = errors.New("intervals are not sorted by start")
	// ErrOverlap is returned when two intervals of one set overlap.
	ErrOverlap = errors.New("intervals overlap")
	// ErrOutOfDomain is returned when a set reaches outside the domain it is
	// inverted or subtracted within.
	ErrOutOfDomain = errors.New("interval outside domain")
	// ErrUnclassifiable is returned when two intervals fit none of the
	// relations the pairwise combiner knows.
	ErrUnclassifiable = errors.New("cannot classify interval pair")
)

// PairError names the pair of intervals an operation failed on.
type PairError struct {
	A, B fmt.Stringer
	Err  error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("%v: %v and %v", e.Err, e.A, e.B)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

func wrapAt(err error, idx int, iv fmt.Stringer) error {
	return errors.Wrapf(err, "interval %d %v", idx, iv)
}

func wrapPair(err error, idx int, prev, cur fmt.Stringer) error {
	return errors.Wrapf(&PairError{A: prev, B: cur, Err: err}, "interval %d", idx)
}
