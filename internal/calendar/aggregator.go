// Package calendar turns raw calendar events into weekly timesheet records.
//
// Events matching the configured subject pattern represent non-working time
// (vacation, out-of-office, holidays). Every other workday is assumed to be
// a full 8-hour day.
package calendar

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/alexanderramin/ptr/internal/domain"
)

// workdaySeconds is the 8-hour baseline a non-working event is subtracted from.
const workdaySeconds = 28800

// DefaultSubjectPattern matches the usual out-of-office subject lines.
const DefaultSubjectPattern = `(?i)(Holiday|out|OOTO|Vacation)`

// DailyHoursWorked reduces matching events to per-day worked hours.
//
// A multi-day event zeroes every full calendar day it spans. For the terminal
// day of a timed (non-all-day) event, the worked remainder of the 8-hour
// baseline is kept, rounded to the quarter-hour.
func DailyHoursWorked(events []domain.CalendarEvent, pattern *regexp.Regexp) map[time.Time]domain.WorkdayHours {
	daily := make(map[time.Time]domain.WorkdayHours)
	for _, e := range events {
		if !pattern.MatchString(e.Subject) {
			continue
		}
		elapsed := int(e.Elapsed.Seconds())
		for i := 0; i < elapsed/86400; i++ {
			day := domain.DateOf(e.Start.AddDate(0, 0, i))
			daily[day] = domain.WorkdayHours{}
		}
		if !e.IsAllDay {
			work := workdaySeconds - elapsed%86400
			if work < 0 {
				work = 0
			}
			daily[domain.DateOf(e.End)] = domain.FromWorkSeconds(work)
		}
	}
	return daily
}

// WeeklyHoursWorked aggregates events from start up to the most recent
// Sunday before today into week records keyed by each week's starting date.
//
// Days covered by a matching event take that event's derived hours; every
// other day takes the default pattern (weekends off, 8h Mon-Fri). Spans
// shorter than one full week fail with ErrNothingToReport.
func WeeklyHoursWorked(events []domain.CalendarEvent, start time.Time, pattern *regexp.Regexp, today time.Time) (map[time.Time]domain.WeekRecord, error) {
	startDate := domain.DateOf(start)
	lastSunday := domain.SundayFor(today)
	days := int(lastSunday.Sub(startDate).Hours() / 24)
	slog.Debug("aggregating calendar weeks",
		"start", startDate.Format("2006-01-02"),
		"last_sunday", lastSunday.Format("2006-01-02"),
		"days", days,
		"events", len(events))
	if days < 7 {
		return nil, fmt.Errorf("%d day(s) before the last full week: %w", days, ErrNothingToReport)
	}

	daily := DailyHoursWorked(events, pattern)

	weeks := make(map[time.Time]domain.WeekRecord)
	var weekStart time.Time
	for i := 0; i < days; i++ {
		idx := i % 7
		date := startDate.AddDate(0, 0, i)
		if idx == 0 {
			weekStart = date
			weeks[weekStart] = domain.DefaultWeek()
		}
		if h, ok := daily[date]; ok {
			week := weeks[weekStart]
			week[idx] = h
			weeks[weekStart] = week
		}
	}
	return weeks, nil
}
