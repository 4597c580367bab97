package expense

import (
	"time"
)

// MonthRange expands a "YYYY-MM" month into an inclusive start date (the 1st
// of that month) and an exclusive end date (the 1st of the next month, rolling
// the year at December).
func MonthRange(month string) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	end = start.AddDate(0, 1, 0)
	return start, end, nil
}
