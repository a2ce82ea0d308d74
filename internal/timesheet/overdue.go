package timesheet

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/ptr/internal/domain"
)

// OverdueEntry is one week the backend is still waiting on. Selector is the
// backend's own navigation token for that week and is never interpreted
// beyond the embedded date.
type OverdueEntry struct {
	WeekStart time.Time
	Selector  string
}

// OverdueWeeks queries the base page for the set of weeks not yet
// submitted, keyed by week start date. A missing past-due form means there
// is nothing overdue, which is a normal result, not an error.
func (n *Navigator) OverdueWeeks(ctx context.Context) (map[time.Time]OverdueEntry, error) {
	if err := n.LoadBase(ctx); err != nil {
		return nil, err
	}
	overdue := make(map[time.Time]OverdueEntry)
	if !hasForm(n.lastBody, formOverdue) {
		slog.Debug("no past-due form on base page; nothing overdue")
		return overdue, nil
	}
	for _, selector := range overdueOptions(n.lastBody) {
		d, err := parseSelectorDate(selector)
		if err != nil {
			slog.Warn("skipping unparseable overdue option", "value", selector, "error", err)
			continue
		}
		day := domain.DateOf(d)
		overdue[day] = OverdueEntry{WeekStart: day, Selector: selector}
	}
	slog.Debug("fetched overdue weeks", "count", len(overdue))
	return overdue, nil
}
