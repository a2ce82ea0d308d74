// Package importer reads week records from CSV exports.
//
// Row format: date,Mon,Tue,Wed,Thu,Fri — the date must be a Sunday in
// MM/DD/YYYY and an empty weekday cell means a full 8-hour day. Malformed
// rows are skipped with a warning so one bad line does not abort the run.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/ptr/internal/domain"
)

const dateFormat = "01/02/2006"

// Result carries the parsed weeks plus the validation problems of the rows
// that were skipped.
type Result struct {
	Weeks    map[time.Time]domain.WeekRecord
	Warnings []error
}

// ReadWeeks parses CSV rows into week records keyed by their Sunday date.
func ReadWeeks(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length validated per record below
	cr.TrimLeadingSpace = true

	res := Result{Weeks: make(map[time.Time]domain.WeekRecord)}
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("reading csv: %w", err)
		}
		line++

		week, date, rowErr := parseRow(record)
		if rowErr != nil {
			warn := fmt.Errorf("line %d: %w", line, rowErr)
			slog.Warn("skipping csv row", "line", line, "error", rowErr)
			res.Warnings = append(res.Warnings, warn)
			continue
		}
		res.Weeks[date] = week
	}
	return res, nil
}

func parseRow(record []string) (domain.WeekRecord, time.Time, error) {
	if len(record) != 6 {
		return domain.WeekRecord{}, time.Time{}, fmt.Errorf("expected 6 fields, got %d", len(record))
	}
	date, err := time.Parse(dateFormat, strings.TrimSpace(record[0]))
	if err != nil {
		return domain.WeekRecord{}, time.Time{}, fmt.Errorf("bad date %q: %w", record[0], err)
	}
	if !domain.IsSunday(date) {
		return domain.WeekRecord{}, time.Time{}, fmt.Errorf("date %q is not a Sunday", record[0])
	}

	days := make([]domain.WorkdayHours, 0, 5)
	for i, cell := range record[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			days = append(days, domain.WorkdayHours{FullHours: 8})
			continue
		}
		h, err := domain.ParseHours(cell)
		if err != nil {
			return domain.WeekRecord{}, time.Time{}, fmt.Errorf("day %d: %w", i+1, err)
		}
		days = append(days, h)
	}

	week, err := domain.ExpandWeek(days)
	if err != nil {
		return domain.WeekRecord{}, time.Time{}, err
	}
	return week, domain.DateOf(date), nil
}
