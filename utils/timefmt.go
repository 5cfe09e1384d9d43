package utils

import (
	"fmt"
	"time"
)

// MinutesToClock converts minutes from midnight to a zero-padded "HH:MM" string.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockToMinutes parses a zero-padded 24-hour "HH:MM" string into minutes from midnight.
func ClockToMinutes(clock string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(clock, "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", clock, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return hh*60 + mm, nil
}

// ParseDate parses a "YYYY-MM-DD" calendar date, normalized to midnight local time.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return t, nil
}

// Midnight truncates a time to the midnight of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
