package calendar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"

	"github.com/alexanderramin/ptr/internal/domain"
)

// EventSource produces the raw calendar events the aggregation consumes.
type EventSource interface {
	Events() ([]domain.CalendarEvent, error)
}

// FileSource reads events from an exported iCalendar (.ics) file.
type FileSource struct {
	Path string
}

// Events parses the ICS file into calendar events. Events that lack a
// parseable start or end are skipped with a warning so one bad entry does
// not sink the whole export.
func (s FileSource) Events() ([]domain.CalendarEvent, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening calendar file: %w", err)
	}
	defer f.Close()
	return decodeEvents(f)
}

func decodeEvents(r io.Reader) ([]domain.CalendarEvent, error) {
	dec := ical.NewDecoder(r)
	var out []domain.CalendarEvent
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding calendar: %w", err)
		}
		for _, ev := range cal.Events() {
			ce, err := asEvent(ev)
			if err != nil {
				slog.Warn("skipping calendar event", "error", err)
				continue
			}
			out = append(out, ce)
		}
	}
	return out, nil
}

func asEvent(ev ical.Event) (domain.CalendarEvent, error) {
	if ev.Props.Get(ical.PropDateTimeStart) == nil {
		return domain.CalendarEvent{}, errors.New("event has no DTSTART")
	}
	start, err := ev.DateTimeStart(time.Local)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event start: %w", err)
	}
	end, err := ev.DateTimeEnd(time.Local)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event end: %w", err)
	}
	if end.Before(start) {
		return domain.CalendarEvent{}, errors.New("event ends before it starts")
	}
	summary := ""
	if p := ev.Props.Get(ical.PropSummary); p != nil {
		summary = p.Value
	}
	allDay := false
	if p := ev.Props.Get(ical.PropDateTimeStart); p != nil {
		allDay = p.ValueType() == ical.ValueDate
	}
	return domain.CalendarEvent{
		Subject:  summary,
		Start:    start,
		End:      end,
		Elapsed:  end.Sub(start),
		IsAllDay: allDay,
	}, nil
}
