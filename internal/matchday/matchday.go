// Package matchday computes the canonical slot timestamp and the
// registration-window predicate. Pure functions, no I/O; all arithmetic
// happens in the location of the given time.
package matchday

import "time"

// Match schedule constants: the weekly match is Wednesday at 19:00.
const (
	MatchWeekday = time.Wednesday
	MatchHour    = 19
	MatchMinute  = 0
)

// Registration window constants: sign-ups open Monday at noon and close
// Wednesday at 20:00. Independent of the match time.
const (
	WindowOpenWeekday  = time.Monday
	WindowOpenHour     = 12
	WindowCloseWeekday = time.Wednesday
	WindowCloseHour    = 20
)

// Next returns the timestamp of the upcoming match. On the match weekday at
// or before the match hour it returns today's match; otherwise the next
// occurrence. At exactly Wednesday 19:00:00 the slot date is still "today";
// one second later it is the following week.
func Next(now time.Time) time.Time {
	todayMatch := time.Date(now.Year(), now.Month(), now.Day(), MatchHour, MatchMinute, 0, 0, now.Location())
	if now.Weekday() == MatchWeekday && !now.After(todayMatch) {
		return todayMatch
	}
	days := (int(MatchWeekday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), MatchHour, MatchMinute, 0, 0, now.Location())
}

// RegistrationOpen reports whether sign-ups are accepted at the given time:
// from Monday 12:00:00 inclusive, through all of Tuesday, until Wednesday
// 20:00:00 exclusive. Note the window can still be open on Wednesday evening
// after Next has already advanced to the following week.
func RegistrationOpen(now time.Time) bool {
	switch now.Weekday() {
	case WindowOpenWeekday:
		return now.Hour() >= WindowOpenHour
	case time.Tuesday:
		return true
	case WindowCloseWeekday:
		return now.Hour() < WindowCloseHour
	default:
		return false
	}
}
