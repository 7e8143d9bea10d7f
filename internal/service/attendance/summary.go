package attendance

import (
	"math"
	"time"
)

// monthRange returns the half-open interval [monthStart, nextMonthStart) for
// a calendar month, in UTC.
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// countWeekdays counts Monday-Friday days in [start, end).
func countWeekdays(start, end time.Time) int {
	count := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
