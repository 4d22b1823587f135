package model

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the console input/display format (YYYYMMDD).
	DateLayout = "20060102"
	// DateStoreLayout is the lexically sortable format used in the database.
	DateStoreLayout = "2006-01-02"
)

// ParseDate parses a YYYYMMDD string into a UTC day-granularity time.
func ParseDate(input string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, input, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', must be in YYYYMMDD format", input)
	}
	return t, nil
}

// DateOnly truncates a time to midnight UTC of the same calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
