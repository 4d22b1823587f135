package statement

import (
	"fmt"
	"strconv"
	"time"
)

// MonthRange resolves a YYYYMM token into the first and last day of that
// month, both midnight UTC.
func MonthRange(yearMonth string) (time.Time, time.Time, error) {
	if len(yearMonth) != 6 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid statement period '%s', must be in YYYYMM format", yearMonth)
	}

	year, err := strconv.Atoi(yearMonth[:4])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid statement period '%s', must be in YYYYMM format", yearMonth)
	}

	month, err := strconv.Atoi(yearMonth[4:])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid statement period '%s', month must be between 01 and 12", yearMonth)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start, end, nil
}
