// Package service orchestrates timesheet runs: it joins the set of overdue
// weeks with the available hour data and drives the session navigator one
// week at a time.
package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/ptr/internal/domain"
	"github.com/alexanderramin/ptr/internal/timesheet"
)

// Engine submits available week records for overdue weeks, oldest first.
// Weeks generally must reach the backend in chronological order, so the
// ordering is part of the contract, as is the strictly sequential
// single-session execution.
type Engine struct {
	submitter WeekSubmitter
	observer  Observer
}

// NewEngine wires an engine to a navigator. A nil observer disables
// reporting hooks.
func NewEngine(submitter WeekSubmitter, observer Observer) *Engine {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Engine{submitter: submitter, observer: observer}
}

// Run walks the overdue weeks in ascending date order. An overdue week
// without matching data is reported as skipped and stays overdue; a week
// with data is submitted unless DryRun withholds the post. With
// StopAfterOne the run ends after the first (dry or real) submission, but
// never mid-submission. Failures are per-week: one bad week does not stop
// the rest.
func (e *Engine) Run(ctx context.Context, overdue map[time.Time]timesheet.OverdueEntry, available map[time.Time]domain.WeekRecord, opts Options) []SubmissionResult {
	dates := make([]time.Time, 0, len(overdue))
	for d := range overdue {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	results := make([]SubmissionResult, 0, len(dates))
	for _, date := range dates {
		week, ok := available[date]
		if !ok {
			results = append(results, e.report(SubmissionResult{
				ID:        uuid.New().String(),
				WeekStart: date,
				Status:    StatusSkipped,
			}))
			continue
		}

		if opts.DryRun {
			results = append(results, e.report(SubmissionResult{
				ID:        uuid.New().String(),
				WeekStart: date,
				Status:    StatusDryRun,
			}))
			if opts.StopAfterOne {
				break
			}
			continue
		}

		err := e.submitWeek(ctx, date, week, opts)
		res := SubmissionResult{ID: uuid.New().String(), WeekStart: date, Status: StatusSubmitted}
		if err != nil {
			res.Status = StatusFailed
			res.Err = err
		}
		results = append(results, e.report(res))

		if errors.Is(err, timesheet.ErrAuthentication) {
			// Nothing further can succeed, and retrying a rejected login
			// risks a lockout.
			break
		}
		if opts.StopAfterOne {
			break
		}
	}
	return results
}

func (e *Engine) submitWeek(ctx context.Context, date time.Time, week domain.WeekRecord, opts Options) error {
	err := e.submitter.SubmitWeek(ctx, date, week)
	if err == nil || !opts.AllowEditSubmitted || !errors.Is(err, timesheet.ErrNavigation) {
		return err
	}
	// The entry form is refused for weeks the backend already has. When
	// editing is allowed, retract and enter again.
	if rerr := e.submitter.RetractWeek(ctx, date); rerr != nil {
		return rerr
	}
	return e.submitter.SubmitWeek(ctx, date, week)
}

func (e *Engine) report(res SubmissionResult) SubmissionResult {
	e.observer.ObserveSubmission(res)
	return res
}
