package synth

import (
	"math/rand/v2"
	"time"
)

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative if
// b is before a).
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// TransactionDate draws a day uniformly in [start, end] and rolls weekends
// back to the preceding Friday. A period starting on a weekend can therefore
// yield a Friday just before start.
func TransactionDate(rng *rand.Rand, start, end time.Time) time.Time {
	span := DaysBetween(start, end)
	d := Day(start)
	if span > 0 {
		d = d.AddDate(0, 0, rng.IntN(span+1))
	}
	switch d.Weekday() {
	case time.Saturday:
		d = d.AddDate(0, 0, -1)
	case time.Sunday:
		d = d.AddDate(0, 0, -2)
	}
	return d
}

// ValidDate returns the validation date: the transaction date plus up to
// seven days, never past the end of the period.
func ValidDate(rng *rand.Rand, date, end time.Time) time.Time {
	maxDays := min(7, DaysBetween(date, end))
	if maxDays <= 0 {
		return Day(date)
	}
	return Day(date).AddDate(0, 0, rng.IntN(maxDays+1))
}
