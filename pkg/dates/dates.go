package dates

import "time"

// StartOfDayUTC truncates t to 00:00:00.000 UTC of its calendar day.
// Booking granularity is exactly one day, so every stored schedule date
// goes through this first. Idempotent.
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns 23:59:59.999 UTC of t's calendar day, the upper
// bound of the inclusive range used when filtering schedules by day.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).Add(24*time.Hour - time.Millisecond)
}
