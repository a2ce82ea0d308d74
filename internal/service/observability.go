package service

import (
	"io"
	"log/slog"
)

// Observer receives per-week submission outcomes as they happen.
type Observer interface {
	ObserveSubmission(res SubmissionResult)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveSubmission(SubmissionResult) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes submission events to the provided writer as
// structured log lines.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logObserver) ObserveSubmission(res SubmissionResult) {
	attrs := []any{
		"result_id", res.ID,
		"week", res.WeekStart.Format("2006-01-02"),
		"status", string(res.Status),
	}
	if res.Err != nil {
		attrs = append(attrs, "error", res.Err.Error())
		o.logger.Warn("week_outcome", attrs...)
		return
	}
	o.logger.Info("week_outcome", attrs...)
}
