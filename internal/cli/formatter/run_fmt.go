package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ptr/internal/service"
)

const weekDateFormat = "01/02/2006"

// FormatResults formats the per-week outcomes of a run as a table plus a
// one-line summary.
func FormatResults(results []service.SubmissionResult) string {
	var b strings.Builder

	headers := []string{"WEEK OF", "OUTCOME", "DETAIL"}
	rows := make([][]string, 0, len(results))

	var submitted, dryRun, skipped, failed int
	for _, res := range results {
		detail := Dim("--")
		switch res.Status {
		case service.StatusSubmitted:
			submitted++
		case service.StatusDryRun:
			dryRun++
			detail = Dim("would submit")
		case service.StatusSkipped:
			skipped++
			detail = Dim("no hours available")
		case service.StatusFailed:
			failed++
			if res.Err != nil {
				detail = StyleRed.Render(res.Err.Error())
			}
		}
		rows = append(rows, []string{
			Bold(res.WeekStart.Format(weekDateFormat)),
			StatusIndicator(res.Status),
			detail,
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	parts := []string{StyleGreen.Render(fmt.Sprintf("%d submitted", submitted))}
	if dryRun > 0 {
		parts = append(parts, StyleBlue.Render(fmt.Sprintf("%d dry-run", dryRun)))
	}
	parts = append(parts,
		StyleYellow.Render(fmt.Sprintf("%d skipped", skipped)),
		StyleRed.Render(fmt.Sprintf("%d failed", failed)),
	)
	b.WriteString(strings.Join(parts, ", ") + "\n")

	return b.String()
}

// FormatOverdue formats the list of weeks still waiting for a submission.
func FormatOverdue(dates []time.Time) string {
	if len(dates) == 0 {
		return Dim("No overdue weeks.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d overdue week(s)", len(dates))))
	b.WriteString("\n")
	for _, d := range dates {
		b.WriteString(fmt.Sprintf("  %s\n", Bold(d.Format(weekDateFormat))))
	}
	return b.String()
}
