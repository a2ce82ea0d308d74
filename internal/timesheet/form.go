package timesheet

import (
	"net/url"
	"strconv"

	"github.com/alexanderramin/ptr/internal/domain"
)

// dayNames orders the per-weekday form field prefixes Sunday first, matching
// the WeekRecord layout.
var dayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// submitValues builds the POST body for the timesheet entry form: an hour
// and a minute field per weekday plus the unlocked week totals. The save
// button is left out so the post is a final submission, not a draft.
func submitValues(week domain.WeekRecord) url.Values {
	v := url.Values{}
	total := 0
	for i, day := range dayNames {
		v.Set(day+"TimesheetHourValue", strconv.Itoa(week[i].FullHours))
		v.Set(day+"TimesheetMinuteValue", week[i].MinuteString())
		total += week[i].Minutes()
	}
	v.Set("WeekTotalHours", strconv.Itoa(total/60))
	v.Set("WeekTotalMinutes", strconv.Itoa(total%60))
	v.Set("btnSubmit", "Submit")
	// Image-button click coordinates; the backend expects them on submit.
	v.Set("btnSubmit.x", "32")
	v.Set("btnSubmit.y", "10")
	return v
}

// loginValues builds the POST body for the login form.
func loginValues(user, password string) url.Values {
	v := url.Values{}
	v.Set(fieldUser, user)
	v.Set(fieldPassword, password)
	return v
}

// weekSelectValues builds the POST body for the week drop-down form.
func weekSelectValues(dateStr string) url.Values {
	v := url.Values{}
	v.Set(fieldSelectedWeek, dateStr)
	return v
}
