// Package testutil provides shared test fixtures: a stateful fake of the
// time reporting site and week-record builders.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"
)

const fakeDateFormat = "01/02/2006"

// FakeBackend imitates the reporting application closely enough for the
// navigator: one URL, cookie-based session, login form, base page with
// month links and past-due selection, week drop-down, entry form and
// retraction form. Like the real site it keeps the "current week" context
// server-side between the week selection post and the timesheet post.
type FakeBackend struct {
	mu sync.Mutex

	User     string
	Password string

	// Overdue holds the unsubmitted week start dates offered on the base page.
	Overdue []time.Time
	// Submitted holds weeks the site already has; they show the retract
	// form instead of the entry form.
	Submitted map[string]bool

	// FailSubmit makes timesheet posts come back without the success marker.
	FailSubmit bool

	// SubmittedPosts captures every timesheet form post.
	SubmittedPosts []url.Values

	// Requests counts every request served.
	Requests int

	sessions    map[string]bool
	currentWeek string
	server      *httptest.Server
}

// NewFakeBackend starts the fake site. Callers own the returned server's
// lifetime via Close.
func NewFakeBackend(user, password string) *FakeBackend {
	b := &FakeBackend{
		User:      user,
		Password:  password,
		Submitted: make(map[string]bool),
		sessions:  make(map[string]bool),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

// URL returns the application URL to point the navigator at.
func (b *FakeBackend) URL() string { return b.server.URL + "/index.cfm" }

// Close shuts the fake site down.
func (b *FakeBackend) Close() { b.server.Close() }

// RequestCount returns how many requests the fake has served.
func (b *FakeBackend) RequestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Requests
}

// LastSubmission returns the most recent timesheet post, or nil.
func (b *FakeBackend) LastSubmission() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.SubmittedPosts) == 0 {
		return nil
	}
	return b.SubmittedPosts[len(b.SubmittedPosts)-1]
}

func (b *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Requests++

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
	}

	if !b.hasSession(r) {
		if r.Method == http.MethodPost && r.PostFormValue("USER") != "" {
			b.handleLogin(w, r)
			return
		}
		fmt.Fprint(w, loginPage)
		return
	}

	switch {
	case r.Method == http.MethodPost && r.PostFormValue("btnRetract") != "":
		b.handleRetract(w, r)
	case r.Method == http.MethodPost && r.PostFormValue("sundayTimesheetHourValue") != "":
		b.handleTimesheet(w, r)
	case r.Method == http.MethodPost && r.PostFormValue("selectedWeek") != "":
		b.handleWeekSelect(w, r)
	case r.URL.Query().Get("month") != "":
		fmt.Fprint(w, monthPage)
	default:
		fmt.Fprint(w, b.basePage())
	}
}

func (b *FakeBackend) hasSession(r *http.Request) bool {
	c, err := r.Cookie("CFID")
	return err == nil && b.sessions[c.Value]
}

func (b *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.PostFormValue("USER") != b.User || r.PostFormValue("PASSWORD") != b.Password {
		fmt.Fprint(w, "<html><body>You must log in to continue.</body></html>")
		return
	}
	id := fmt.Sprintf("sess-%d", len(b.sessions)+1)
	b.sessions[id] = true
	http.SetCookie(w, &http.Cookie{Name: "CFID", Value: id})
	fmt.Fprint(w, b.basePage())
}

func (b *FakeBackend) handleWeekSelect(w http.ResponseWriter, r *http.Request) {
	week := r.PostFormValue("selectedWeek")
	b.currentWeek = week
	if b.Submitted[week] {
		fmt.Fprintf(w, `<html><body>View Time Reporting for Fake User
<p>Time for the week of %s has already been submitted.</p>
<form name="frmRetractTimesheet" method="post" action="/index.cfm">
<input type="submit" name="btnRetract" value="Retract"/>
</form></body></html>`, week)
		return
	}
	if !b.isOverdue(week) {
		fmt.Fprintf(w, `<html><body>View Time Reporting for Fake User
<p>No entry form available for %s.</p></body></html>`, week)
		return
	}
	fmt.Fprintf(w, `<html><body>View Time Reporting for Fake User
<p>Enter time for the week starting %s</p>
<form name="frmTimesheet" method="post" action="/index.cfm">
<input name="sundayTimesheetHourValue"/><input name="WeekTotalHours"/>
<input type="submit" name="btnSave" value="Save"/>
<input type="image" name="btnSubmit" value="Submit"/>
</form></body></html>`, week)
}

func (b *FakeBackend) handleRetract(w http.ResponseWriter, r *http.Request) {
	week := r.PostFormValue("selectedWeek")
	if week == "" {
		week = b.currentWeek
	}
	delete(b.Submitted, week)
	if d, err := time.Parse(fakeDateFormat, week); err == nil {
		b.Overdue = append(b.Overdue, d)
	}
	fmt.Fprintf(w, `<html><body>View Time Reporting for Fake User
<p>Enter time for the week starting %s</p>
<form name="frmTimesheet" method="post" action="/index.cfm"></form>
</body></html>`, week)
}

func (b *FakeBackend) handleTimesheet(w http.ResponseWriter, r *http.Request) {
	b.SubmittedPosts = append(b.SubmittedPosts, r.PostForm)
	if b.FailSubmit || b.currentWeek == "" {
		fmt.Fprint(w, "<html><body>An error occurred while processing your timesheet.</body></html>")
		return
	}
	week := b.currentWeek
	b.Submitted[week] = true
	b.removeOverdue(week)
	fmt.Fprintf(w, `<html><body>You have successfully submitted your time spent on University business for the week of %s.</body></html>`, week)
}

func (b *FakeBackend) isOverdue(week string) bool {
	for _, d := range b.Overdue {
		if d.Format(fakeDateFormat) == week {
			return true
		}
	}
	return false
}

func (b *FakeBackend) removeOverdue(week string) {
	kept := b.Overdue[:0]
	for _, d := range b.Overdue {
		if d.Format(fakeDateFormat) != week {
			kept = append(kept, d)
		}
	}
	b.Overdue = kept
}

func (b *FakeBackend) basePage() string {
	var sb strings.Builder
	sb.WriteString("<html><body>View Time Reporting for Fake User\n")

	for m := 1; m <= 12; m++ {
		fmt.Fprintf(&sb,
			`<a href="/index.cfm?fuseaction=TimesheetEntryForm&month=%d">Month %d</a>`+"\n", m, m)
	}

	if len(b.Overdue) > 0 {
		sb.WriteString(`<p>Submission of time for the following week(s) is overdue.</p>` + "\n")
		sb.WriteString(`<form name="frmPastDueTimesheet" method="post" action="/index.cfm">` + "\n")
		sb.WriteString(`<select id="pastDueWeek" name="pastDueWeek">` + "\n")
		for _, d := range b.Overdue {
			fmt.Fprintf(&sb, `<option value="month=%d&selectedWeek=%s&CurrentWkYear=%d">%s</option>`+"\n",
				int(d.Month()), d.Format(fakeDateFormat), d.Year(), d.Format(fakeDateFormat))
		}
		sb.WriteString("</select>\n")
		sb.WriteString(`<input type="submit" id="getPastDueTimeEntryForm" value="Go"/>` + "\n")
		sb.WriteString("</form>\n")
	}

	sb.WriteString("</body></html>")
	return sb.String()
}

const loginPage = `<html><body>
<form name="Login" method="post" action="/index.cfm">
<input name="USER"/><input name="PASSWORD"/>
</form>
</body></html>`

const monthPage = `<html><body>View Time Reporting for Fake User
<form name="weekDropDownForm" method="post" action="/index.cfm">
<select name="selectedWeek"></select>
</form>
</body></html>`
