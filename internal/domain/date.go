package domain

import "time"

// DateLayout is the calendar-day format used for Workout and Event dates.
const DateLayout = "2006-01-02"

// Day truncates a timestamp to its calendar-day string.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether a timestamp falls on the given calendar day.
func SameDay(t time.Time, day string) bool {
	return Day(t) == day
}
