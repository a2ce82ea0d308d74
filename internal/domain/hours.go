package domain

import (
	"fmt"
	"strconv"
)

// WorkdayHours is one day's reported time, split into whole hours and a
// quarter-hour remainder (0-3 units of 15 minutes).
type WorkdayHours struct {
	FullHours    int
	QuarterUnits int
}

// ParseHours converts a decimal hours string (e.g. "7.75") into WorkdayHours.
// Fractional parts other than .0, .25, .5 and .75 are rejected with
// ErrNotQuarterHour.
func ParseHours(s string) (WorkdayHours, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return WorkdayHours{}, fmt.Errorf("parsing hours %q: %w", s, err)
	}
	return FromHours(f)
}

// FromHours converts decimal hours into WorkdayHours, enforcing the
// quarter-hour granularity the backend requires.
func FromHours(f float64) (WorkdayHours, error) {
	if f < 0 {
		return WorkdayHours{}, fmt.Errorf("hours %v: negative values not allowed", f)
	}
	full := int(f)
	frac := f - float64(full)
	switch frac {
	case 0:
		return WorkdayHours{FullHours: full}, nil
	case 0.25:
		return WorkdayHours{FullHours: full, QuarterUnits: 1}, nil
	case 0.5:
		return WorkdayHours{FullHours: full, QuarterUnits: 2}, nil
	case 0.75:
		return WorkdayHours{FullHours: full, QuarterUnits: 3}, nil
	}
	return WorkdayHours{}, fmt.Errorf("hours %v: %w", f, ErrNotQuarterHour)
}

// FromWorkSeconds converts a precise duration in seconds into WorkdayHours,
// rounding half-up at the quarter-hour. A remainder of more than 420 seconds
// past a quarter boundary rounds up; rounding up from the fourth quarter
// carries into FullHours.
func FromWorkSeconds(secs int) WorkdayHours {
	if secs < 0 {
		secs = 0
	}
	full := secs / 3600
	rem := secs % 3600
	quarter := rem / 900
	if rem%900 > 420 {
		quarter++
		if quarter == 4 {
			quarter = 0
			full++
		}
	}
	return WorkdayHours{FullHours: full, QuarterUnits: quarter}
}

// Minutes returns the total minutes represented by the value.
func (h WorkdayHours) Minutes() int {
	return h.FullHours*60 + h.QuarterUnits*15
}

// MinuteString renders the quarter-hour remainder the way the timesheet
// minute fields expect it: "0.00", "0.25", "0.50" or "0.75".
func (h WorkdayHours) MinuteString() string {
	return fmt.Sprintf("%.2f", float64(h.QuarterUnits)*0.25)
}

func (h WorkdayHours) String() string {
	return fmt.Sprintf("%d:%02d", h.FullHours, h.QuarterUnits*15)
}
