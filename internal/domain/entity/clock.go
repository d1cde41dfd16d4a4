package entity

import (
	"fmt"
	"time"
)

const (
	ClockLayout = "15:04:05"
	DateLayout  = "2006-01-02"
)

// ParseClock accepts HH:MM or HH:MM:SS (optionally with a date prefix, as
// some drivers return time columns) and returns a time on the zero date.
func ParseClock(s string) (time.Time, error) {
	for _, layout := range []string{ClockLayout, "15:04", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q", s)
}

// NormalizeClock renders a time of day as HH:MM:SS.
func NormalizeClock(s string) (string, error) {
	t, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
