package service

import "time"

// Day arithmetic for summaries, logs and reports. One convention everywhere:
// a calendar day is [00:00:00 UTC, next 00:00:00 UTC). Both the upsert
// existence check and every read-side range filter use these helpers, so a
// summary written at 23:59Z and one at 00:01Z the next day land on distinct
// days regardless of the server's local timezone.

// StartOfDayUTC truncates t to 00:00:00 UTC of its UTC calendar day
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBoundsUTC returns the half-open [start, end) bounds of t's UTC day
func DayBoundsUTC(t time.Time) (from, to time.Time) {
	from = StartOfDayUTC(t)
	return from, from.AddDate(0, 0, 1)
}

// WeekBoundsUTC returns the half-open [Sunday 00:00, next Sunday 00:00)
// bounds of the Sunday-to-Saturday week containing t, in UTC.
func WeekBoundsUTC(t time.Time) (from, to time.Time) {
	day := StartOfDayUTC(t)
	from = day.AddDate(0, 0, -int(day.Weekday()))
	return from, from.AddDate(0, 0, 7)
}
