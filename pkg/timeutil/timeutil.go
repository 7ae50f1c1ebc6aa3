package timeutil

import "time"

// BeginningOfDay truncates t to midnight in its own location.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayRange returns the half-open interval [midnight, next midnight) covering
// the calendar day of t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := BeginningOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// PreviousMonthRange returns the half-open interval covering the calendar
// month before the one containing t: first day of last month through (but not
// including) the first day of the current month.
func PreviousMonthRange(t time.Time) (time.Time, time.Time) {
	year, month, _ := t.Date()
	currentFirst := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	return currentFirst.AddDate(0, -1, 0), currentFirst
}
