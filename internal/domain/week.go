package domain

import (
	"fmt"
	"time"
)

// WeekRecord holds one reported value per day, Sunday first.
type WeekRecord [7]WorkdayHours

// ExpandWeek builds a WeekRecord from either a full 7-day sequence or a
// 5-day Mon-Fri sequence. Five-day input gets a zero Sunday prepended and a
// zero Saturday appended. Any other length is ErrBadWeekLength.
func ExpandWeek(values []WorkdayHours) (WeekRecord, error) {
	var week WeekRecord
	switch len(values) {
	case 7:
		copy(week[:], values)
	case 5:
		copy(week[1:6], values)
	default:
		return WeekRecord{}, fmt.Errorf("got %d values: %w", len(values), ErrBadWeekLength)
	}
	return week, nil
}

// DefaultWeek is the standard 40-hour week: weekends off, 8h Mon-Fri.
func DefaultWeek() WeekRecord {
	full := WorkdayHours{FullHours: 8}
	return WeekRecord{1: full, 2: full, 3: full, 4: full, 5: full}
}

// TotalMinutes sums the week's reported time, used to fill the week-total
// form fields.
func (w WeekRecord) TotalMinutes() int {
	total := 0
	for _, d := range w {
		total += d.Minutes()
	}
	return total
}

// DateOf truncates a timestamp to its calendar date, normalized to UTC
// midnight so dates from different locations compare equal as map keys.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SundayFor returns the date of the Sunday on or before the given date.
// The reporting backend defines weeks as starting on Sunday.
func SundayFor(t time.Time) time.Time {
	d := DateOf(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// IsSunday reports whether the date falls on a Sunday.
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}
