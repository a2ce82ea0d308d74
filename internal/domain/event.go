package domain

import "time"

// CalendarEvent is a read-only view of one calendar entry as produced by an
// event source. Matching events represent non-working time.
type CalendarEvent struct {
	Subject  string
	Start    time.Time
	End      time.Time
	Elapsed  time.Duration
	IsAllDay bool
}
