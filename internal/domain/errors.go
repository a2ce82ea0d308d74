package domain

import "errors"

var (
	// ErrNotQuarterHour indicates an hour value whose fractional part is not
	// a multiple of 0.25. The reporting backend only accepts 0/15/30/45
	// minute remainders.
	ErrNotQuarterHour = errors.New("hours must fall on a quarter-hour boundary")

	// ErrBadWeekLength indicates a day-value sequence that is neither 5
	// (Mon-Fri) nor 7 (Sun-Sat) entries long.
	ErrBadWeekLength = errors.New("expected 5 or 7 day values")
)
