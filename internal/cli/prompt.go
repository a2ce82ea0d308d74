package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/ptr/internal/domain"
)

// hoursInput returns a huh.Input for one week of space-separated hours.
func hoursInput(date time.Time, value *string) *huh.Input {
	return huh.NewInput().
		Title(fmt.Sprintf("Hours for the week of %s", date.Format("01/02/2006"))).
		Description("Space-separated, quarter-hour steps (7.75 8 ...)").
		Value(value).
		Validate(func(s string) error {
			_, err := parseHoursLine(s)
			return err
		})
}

// weekForm returns a single-group Form collecting hours plus a submit
// confirmation for one overdue week.
func weekForm(date time.Time, line *string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			hoursInput(date, line),
			huh.NewConfirm().
				Title("Submit this week?").
				Value(confirmed),
		),
	).WithShowHelp(false)
}

// promptWeeks asks for hours one overdue week at a time, oldest first.
// Declining the confirmation leaves the week out of the result so it is
// skipped and stays overdue.
func promptWeeks(dates []time.Time, fiveDay bool) (map[time.Time]domain.WeekRecord, error) {
	defaultLine := "0 8 8 8 8 8 0"
	if fiveDay {
		defaultLine = "8 8 8 8 8"
	}

	weeks := make(map[time.Time]domain.WeekRecord, len(dates))
	for _, date := range dates {
		line := defaultLine
		confirmed := true
		if err := weekForm(date, &line, &confirmed).Run(); err != nil {
			return nil, fmt.Errorf("reading hours: %w", err)
		}
		if !confirmed {
			continue
		}
		week, err := parseHoursLine(line)
		if err != nil {
			return nil, err
		}
		weeks[date] = week
	}
	return weeks, nil
}

// parseHoursLine turns "8 7.75 8 8 8" into a week record. Five values are
// taken as Monday through Friday, seven as Sunday through Saturday.
func parseHoursLine(s string) (domain.WeekRecord, error) {
	fields := strings.Fields(s)
	days := make([]domain.WorkdayHours, 0, len(fields))
	for _, field := range fields {
		h, err := domain.ParseHours(field)
		if err != nil {
			return domain.WeekRecord{}, fmt.Errorf("%q: %w", field, err)
		}
		days = append(days, h)
	}
	return domain.ExpandWeek(days)
}
