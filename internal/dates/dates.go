// Package dates centralizes calendar-day math for the streak tracker and
// the review scheduler. All comparisons are done on device-local calendar
// days ("2006-01-02" keys), never on elapsed durations, so activity around
// midnight or DST transitions lands on the right day.
package dates

import "time"

const dayLayout = "2006-01-02"

// DayKey returns the local calendar-day key for t.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// ParseDay parses a calendar-day key in the local time zone.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, key, time.Local)
}

// AddDays returns the day key n calendar days after the given key.
// Invalid keys yield "".
func AddDays(key string, n int) string {
	t, err := ParseDay(key)
	if err != nil {
		return ""
	}
	return DayKey(t.AddDate(0, 0, n))
}

// DaysBetween returns to - from in whole calendar days. Either key being
// invalid yields 0.
func DaysBetween(from, to string) int {
	a, err := ParseDay(from)
	if err != nil {
		return 0
	}
	b, err := ParseDay(to)
	if err != nil {
		return 0
	}
	// Both are local midnights; round to absorb DST-shortened days.
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}
