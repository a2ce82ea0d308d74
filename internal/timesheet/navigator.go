// Package timesheet drives the remote time reporting web application: a
// stateful HTML session that logs in, discovers overdue weeks and fills in
// the multi-step entry form.
package timesheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/ptr/internal/domain"
)

// Navigator is a single authenticated session against the reporting site.
// It tracks the last logical page loaded so repeated requests for the same
// page can be skipped (the site keeps its own "current week" context in
// server-side session state, which makes reloads both wasteful and risky).
//
// Not safe for concurrent use; all navigation is deliberately sequential.
type Navigator struct {
	cfg      Config
	client   *http.Client
	username string
	password string

	loggedIn bool
	lastPage Page
	lastBody string

	// now is swappable for tests.
	now func() time.Time
}

// NewNavigator creates a logged-out session for the given credentials.
func NewNavigator(cfg Config, username, password string) *Navigator {
	jar, _ := cookiejar.New(nil)
	return &Navigator{
		cfg:      cfg,
		username: username,
		password: password,
		client: &http.Client{
			Jar:     jar,
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		now: time.Now,
	}
}

// LastPage exposes the session's logical page state.
func (n *Navigator) LastPage() Page { return n.lastPage }

// LoggedIn reports whether the session has authenticated.
func (n *Navigator) LoggedIn() bool { return n.loggedIn }

// get loads a URL and records the new logical page.
func (n *Navigator) get(ctx context.Context, rawURL string, page Page) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	return n.do(req, page)
}

// postForm posts form values to a URL and records the new logical page.
func (n *Navigator) postForm(ctx context.Context, rawURL string, values url.Values, page Page) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(values.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return n.do(req, page)
}

func (n *Navigator) do(req *http.Request, page Page) (string, error) {
	resp, err := n.client.Do(req)
	if err != nil {
		n.lastPage = PageNone
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		n.lastPage = PageNone
		return "", fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		n.lastPage = PageNone
		return "", fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}
	n.lastPage = page
	n.lastBody = string(raw)
	return n.lastBody, nil
}

// Login authenticates the session. A no-op when already logged in. Fails
// with ErrAuthentication when the login form is missing or the backend
// reports a failed login; bad credentials are never retried.
func (n *Navigator) Login(ctx context.Context) error {
	if n.loggedIn {
		return nil
	}
	body, err := n.get(ctx, n.cfg.BaseURL, PageNone)
	if err != nil {
		return fmt.Errorf("loading login page: %w", err)
	}
	if !hasForm(body, formLogin) {
		return fmt.Errorf("%w: login form not found", ErrAuthentication)
	}
	body, err = n.postForm(ctx, n.cfg.BaseURL, loginValues(n.username, n.password), PageNone)
	if err != nil {
		return fmt.Errorf("posting login: %w", err)
	}
	if strings.Contains(body, markerLoginFailed) || !strings.Contains(body, markerLoggedIn) {
		return fmt.Errorf("%w: user %q", ErrAuthentication, n.username)
	}
	n.loggedIn = true
	n.lastPage = PageLogin
	slog.Debug("logged in", "user", n.username)
	return nil
}

// LoadBase loads the base page carrying the month links and the overdue
// week selection. Skipped entirely when the last page was the login result
// or the base page itself, both of which already show that content.
func (n *Navigator) LoadBase(ctx context.Context) error {
	if err := n.Login(ctx); err != nil {
		return err
	}
	if n.lastPage == PageLogin || n.lastPage == PageBase {
		slog.Debug("base page already loaded", "last_page", string(n.lastPage))
		return nil
	}
	body, err := n.get(ctx, n.cfg.BaseURL, PageBase)
	if err != nil {
		return fmt.Errorf("loading base page: %w", err)
	}
	if !strings.Contains(body, markerLoggedIn) {
		n.lastPage = PageNone
		return fmt.Errorf("%w: base page marker missing", ErrNavigation)
	}
	return nil
}

// LoadWeek navigates to the entry form for the week starting at the given
// Sunday. The date is validated before any network traffic.
func (n *Navigator) LoadWeek(ctx context.Context, date time.Time) error {
	if !domain.IsSunday(date) {
		return fmt.Errorf("%w: %s is not a Sunday", ErrInvalidDate, date.Format(DateFormat))
	}
	if domain.DateOf(date).After(domain.DateOf(n.now())) {
		return fmt.Errorf("%w: %s is in the future", ErrInvalidDate, date.Format(DateFormat))
	}
	if err := n.LoadBase(ctx); err != nil {
		return err
	}

	href, ok := monthLink(n.lastBody, date.Month())
	if !ok {
		n.lastPage = PageNone
		return fmt.Errorf("%w: no link for month %d", ErrNavigation, int(date.Month()))
	}
	monthURL, err := n.resolve(href)
	if err != nil {
		return fmt.Errorf("%w: bad month link %q", ErrNavigation, href)
	}
	if _, err := n.get(ctx, monthURL, PageNone); err != nil {
		return fmt.Errorf("following month link: %w", err)
	}
	if !hasForm(n.lastBody, formWeekDropDown) {
		return fmt.Errorf("%w: week drop-down form not found", ErrNavigation)
	}

	dateStr := date.Format(DateFormat)
	body, err := n.postForm(ctx, n.cfg.BaseURL, weekSelectValues(dateStr), PageNone)
	if err != nil {
		return fmt.Errorf("selecting week: %w", err)
	}
	if !strings.Contains(body, entryMarker(date)) {
		return fmt.Errorf("%w: no entry form for week %s (already submitted?)", ErrNavigation, dateStr)
	}
	n.lastPage = PageDateLoad
	slog.Debug("loaded week entry form", "week", dateStr)
	return nil
}

// SubmitWeek submits the given hours for the week starting at date. The
// response must confirm the submission for that exact week; anything else
// is ErrSubmission and the post is not repeated.
func (n *Navigator) SubmitWeek(ctx context.Context, date time.Time, week domain.WeekRecord) error {
	if err := n.LoadWeek(ctx, date); err != nil {
		return err
	}
	if !hasForm(n.lastBody, formTimesheet) {
		return ErrFormNotFound
	}
	body, err := n.postForm(ctx, n.cfg.BaseURL, submitValues(week), PageNone)
	if err != nil {
		return fmt.Errorf("posting timesheet: %w", err)
	}
	dateStr := date.Format(DateFormat)
	if !strings.Contains(body, successMarker(date)) {
		return fmt.Errorf("%w: week %s", ErrSubmission, dateStr)
	}
	n.lastPage = PageSubmit
	slog.Info("submitted week", "week", dateStr, "total_minutes", week.TotalMinutes())
	return nil
}

// RetractWeek withdraws an already-submitted week so it can be entered
// again. The retract form only appears on the page of a submitted week, so
// this follows the month navigation like LoadWeek does but expects the
// retraction form instead of the entry form.
func (n *Navigator) RetractWeek(ctx context.Context, date time.Time) error {
	if !domain.IsSunday(date) {
		return fmt.Errorf("%w: %s is not a Sunday", ErrInvalidDate, date.Format(DateFormat))
	}
	if err := n.LoadBase(ctx); err != nil {
		return err
	}
	href, ok := monthLink(n.lastBody, date.Month())
	if !ok {
		n.lastPage = PageNone
		return fmt.Errorf("%w: no link for month %d", ErrNavigation, int(date.Month()))
	}
	monthURL, err := n.resolve(href)
	if err != nil {
		return fmt.Errorf("%w: bad month link %q", ErrNavigation, href)
	}
	if _, err := n.get(ctx, monthURL, PageNone); err != nil {
		return fmt.Errorf("following month link: %w", err)
	}
	dateStr := date.Format(DateFormat)
	if _, err := n.postForm(ctx, n.cfg.BaseURL, weekSelectValues(dateStr), PageNone); err != nil {
		return fmt.Errorf("selecting week: %w", err)
	}
	if !hasForm(n.lastBody, formRetract) {
		return fmt.Errorf("%w: no retract form for week %s", ErrFormNotFound, dateStr)
	}
	v := url.Values{}
	v.Set(fieldSelectedWeek, dateStr)
	v.Set("btnRetract", "Retract")
	body, err := n.postForm(ctx, n.cfg.BaseURL, v, PageBase)
	if err != nil {
		return fmt.Errorf("posting retraction: %w", err)
	}
	if !strings.Contains(body, entryMarker(date)) {
		n.lastPage = PageNone
		return fmt.Errorf("%w: retraction of week %s not confirmed", ErrNavigation, dateStr)
	}
	n.lastPage = PageDateLoad
	slog.Info("retracted week", "week", dateStr)
	return nil
}

// resolve turns a possibly relative href into an absolute URL against the
// configured base.
func (n *Navigator) resolve(href string) (string, error) {
	base, err := url.Parse(n.cfg.BaseURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
