package reporting

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// DayStart clamps a time to UTC midnight of its calendar day. All range
// comparisons use the clamped value so local-timezone skew cannot shift
// an order across a day boundary.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the UTC calendar-day key used for grouping.
func DayKey(t time.Time) string {
	return DayStart(t).Format(dayLayout)
}

// ParseDay parses a YYYY-MM-DD value into UTC midnight of that day.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD day", ErrInvalidDate, value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
