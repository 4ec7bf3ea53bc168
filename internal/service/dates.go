package service

import (
	"fmt"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

func Today() string {
	return FormatDay(time.Now())
}

func ParseDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dayLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// IsFutureDay compares calendar days, not instants, so an entry dated today
// is never rejected near midnight.
func IsFutureDay(value string) (bool, error) {
	day, err := ParseDay(value)
	if err != nil {
		return false, err
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return day.After(today), nil
}
