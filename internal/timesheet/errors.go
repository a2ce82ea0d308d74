package timesheet

import "errors"

var (
	// ErrAuthentication indicates the backend rejected the login. Fatal for
	// the run; retrying with the same credentials risks an account lockout.
	ErrAuthentication = errors.New("login rejected")

	// ErrInvalidDate indicates a week date that is not a Sunday or lies in
	// the future. Raised before any network traffic.
	ErrInvalidDate = errors.New("invalid week date")

	// ErrNavigation indicates an expected page, link or confirmation text
	// was not found, e.g. because the week was already submitted or the
	// site markup changed.
	ErrNavigation = errors.New("navigation failed")

	// ErrFormNotFound indicates the timesheet entry form is missing from a
	// page that should carry it.
	ErrFormNotFound = errors.New("timesheet form not found")

	// ErrSubmission indicates the form was posted but the success
	// confirmation did not appear. The submission is never retried
	// automatically since a retry risks a duplicate entry.
	ErrSubmission = errors.New("submission not confirmed")

	// ErrTransport wraps network and timeout failures from the underlying
	// HTTP client.
	ErrTransport = errors.New("transport failure")
)
