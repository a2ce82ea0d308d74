package cli

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/ptr/internal/calendar"
	"github.com/alexanderramin/ptr/internal/domain"
	"github.com/alexanderramin/ptr/internal/importer"
	"github.com/alexanderramin/ptr/internal/timesheet"
)

// collectHours builds the week records the engine will match against the
// overdue weeks. Weeks missing from the returned map are reported as
// skipped, not failed, so partial sources are fine.
func (app *App) collectHours(overdue map[time.Time]timesheet.OverdueEntry, csvPath, icsPath string) (map[time.Time]domain.WeekRecord, error) {
	switch {
	case csvPath != "":
		return readCSVWeeks(csvPath)
	case icsPath != "":
		return app.readCalendarWeeks(overdue, icsPath)
	default:
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			return nil, errors.New("no hours source: pass --csv or --calendar, or run from a terminal")
		}
		return promptWeeks(sortedDates(overdue), app.Settings.FiveDayMode)
	}
}

func readCSVWeeks(path string) (map[time.Time]domain.WeekRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	res, err := importer.ReadWeeks(f)
	if err != nil {
		return nil, err
	}
	return res.Weeks, nil
}

func (app *App) readCalendarWeeks(overdue map[time.Time]timesheet.OverdueEntry, path string) (map[time.Time]domain.WeekRecord, error) {
	pattern, err := regexp.Compile(app.Settings.SubjectPattern)
	if err != nil {
		return nil, fmt.Errorf("bad subject pattern %q: %w", app.Settings.SubjectPattern, err)
	}

	events, err := calendar.FileSource{Path: path}.Events()
	if err != nil {
		return nil, err
	}

	dates := sortedDates(overdue)
	start := dates[0]
	weeks, err := calendar.WeeklyHoursWorked(events, start, pattern, time.Now())
	if err != nil {
		if errors.Is(err, calendar.ErrNothingToReport) {
			return nil, fmt.Errorf("calendar has no finished week since %s: %w", start.Format("01/02/2006"), err)
		}
		return nil, err
	}
	return weeks, nil
}

func sortedDates(overdue map[time.Time]timesheet.OverdueEntry) []time.Time {
	dates := make([]time.Time, 0, len(overdue))
	for d := range overdue {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
