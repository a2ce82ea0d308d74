package timesheet

import (
	"fmt"
	"regexp"
	"time"
)

// The backend offers no structured API; its HTML markup is the contract.
// Every string the client matches against lives here so a markup change
// touches exactly one file.

const (
	// DateFormat is the fixed MM/DD/YYYY format the backend uses in URLs,
	// option values and confirmation text.
	DateFormat = "01/02/2006"

	markerLoggedIn    = "View Time Reporting for "
	markerLoginFailed = "You must log in to continue."

	formLogin        = "Login"
	formOverdue      = "frmPastDueTimesheet"
	formWeekDropDown = "weekDropDownForm"
	formTimesheet    = "frmTimesheet"
	formRetract      = "frmRetractTimesheet"

	fieldUser         = "USER"
	fieldPassword     = "PASSWORD"
	fieldPastDueWeek  = "pastDueWeek"
	fieldSelectedWeek = "selectedWeek"
)

// entryMarker is the confirmation text of a loaded entry form for a week.
func entryMarker(date time.Time) string {
	return "Enter time for the week starting " + date.Format(DateFormat)
}

// successMarker is the confirmation text of an accepted submission.
func successMarker(date time.Time) string {
	return fmt.Sprintf(
		"You have successfully submitted your time spent on University business for the week of %s.",
		date.Format(DateFormat))
}

var (
	formNameRe   = `<form[^>]*\bname=["']?%s["'\s>]`
	selectRe     = regexp.MustCompile(`(?is)<select[^>]*\bname=["']?` + fieldPastDueWeek + `["']?[^>]*>(.*?)</select>`)
	optionRe     = regexp.MustCompile(`(?i)<option[^>]*\bvalue=["']([^"']+)["']`)
	hrefRe       = regexp.MustCompile(`(?i)<a[^>]*\bhref=["']([^"']+)["']`)
	selectedWkRe = regexp.MustCompile(`selectedWeek=(\d{2}/\d{2}/\d{4})`)
)

// hasForm reports whether a named form is present in the page.
func hasForm(body, name string) bool {
	re := regexp.MustCompile(fmt.Sprintf(formNameRe, regexp.QuoteMeta(name)))
	return re.MatchString(body)
}

// overdueOptions extracts the option values of the past-due week selection
// control. Each value encodes month, selectedWeek and CurrentWkYear.
func overdueOptions(body string) []string {
	m := selectRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	var values []string
	for _, opt := range optionRe.FindAllStringSubmatch(m[1], -1) {
		values = append(values, opt[1])
	}
	return values
}

// parseSelectorDate pulls the embedded week-start date out of an overdue
// option value such as "month=9&selectedWeek=09/11/2016&CurrentWkYear=2017".
// The rest of the value stays opaque.
func parseSelectorDate(selector string) (time.Time, error) {
	m := selectedWkRe.FindStringSubmatch(selector)
	if m == nil {
		return time.Time{}, fmt.Errorf("no selectedWeek date in option value %q", selector)
	}
	d, err := time.Parse(DateFormat, m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing week date %q: %w", m[1], err)
	}
	return d, nil
}

// monthLink finds the first link whose target carries the month query
// parameter for the given month. The href itself stays opaque.
func monthLink(body string, month time.Month) (string, bool) {
	paramRe := regexp.MustCompile(fmt.Sprintf(`[?&]month=%d(&|$)`, int(month)))
	for _, m := range hrefRe.FindAllStringSubmatch(body, -1) {
		if paramRe.MatchString(m[1]) {
			return m[1], true
		}
	}
	return "", false
}
