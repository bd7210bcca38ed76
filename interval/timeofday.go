package interval

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// TimeOfDay is a wall clock time, counted in nanoseconds since midnight.
type TimeOfDay int64

const (
	// StartOfDay is midnight.
	StartOfDay TimeOfDay = 0
	// EndOfDay is the last representable microsecond of the day.
	EndOfDay = TimeOfDay(24*time.Hour - time.Microsecond)
)

const timeOfDayLayout = "15:04:05"

// Clock returns the time of day at hour:minute:sec.
func Clock(hour, minute, sec int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(sec)*time.Second)
}

// ParseTimeOfDay parses a "15:04:05" clock time, with optional fractional seconds.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse time of day %q", s)
	}
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return TimeOfDay(t.Sub(midnight)), nil
}

// Duration returns the time elapsed since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	if d == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", int64(h), int64(m), int64(s))
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", int64(h), int64(m), int64(s), int64(d))
}

// MarshalText encodes t as a clock time.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a clock time.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
