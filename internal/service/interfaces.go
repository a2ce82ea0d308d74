package service

import (
	"context"
	"time"

	"github.com/alexanderramin/ptr/internal/domain"
	"github.com/alexanderramin/ptr/internal/timesheet"
)

// WeekSubmitter is the slice of the session navigator the engine drives.
type WeekSubmitter interface {
	SubmitWeek(ctx context.Context, date time.Time, week domain.WeekRecord) error
	RetractWeek(ctx context.Context, date time.Time) error
}

// OverdueSource lists the weeks the backend is still waiting on.
type OverdueSource interface {
	OverdueWeeks(ctx context.Context) (map[time.Time]timesheet.OverdueEntry, error)
}

// SubmissionStatus classifies the outcome for one overdue week.
type SubmissionStatus string

const (
	// StatusSubmitted means the backend confirmed the submission.
	StatusSubmitted SubmissionStatus = "submitted"
	// StatusDryRun means hours were available but dry-run mode withheld the post.
	StatusDryRun SubmissionStatus = "dry-run"
	// StatusSkipped means no hours were available; the week stays overdue.
	StatusSkipped SubmissionStatus = "skipped"
	// StatusFailed means the submission was attempted and did not go through.
	StatusFailed SubmissionStatus = "failed"
)

// SubmissionResult is the per-week outcome of an engine run. Every overdue
// week ends the run with exactly one result.
type SubmissionResult struct {
	ID        string
	WeekStart time.Time
	Status    SubmissionStatus
	Err       error
}

// Options carries the recognized run modes, unified across the historical
// flag sets.
type Options struct {
	DryRun             bool
	StopAfterOne       bool
	AllowEditSubmitted bool
}
