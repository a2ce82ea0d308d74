package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ptr/internal/cli/formatter"
	"github.com/alexanderramin/ptr/internal/service"
	"github.com/alexanderramin/ptr/internal/timesheet"
)

func newSubmitCmd(app *App) *cobra.Command {
	var (
		csvPath     string
		icsPath     string
		subject     string
		week        time.Time
		listOverdue bool
		dryRun      bool
		one         bool
		allowEdit   bool
		fiveDay     bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit hours for every overdue week",
		Long: "Submit walks the overdue weeks oldest first and enters hours for each.\n" +
			"Hours come from a CSV file, an iCalendar export, or an interactive\n" +
			"prompt when neither is given and stdin is a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := service.Options{
				DryRun:             app.Settings.DryRun,
				StopAfterOne:       app.Settings.StopAfterOne,
				AllowEditSubmitted: app.Settings.AllowEditSubmitted,
			}
			if cmd.Flags().Changed("dry-run") {
				opts.DryRun = dryRun
			}
			if cmd.Flags().Changed("one") {
				opts.StopAfterOne = one
			}
			if cmd.Flags().Changed("allow-edit") {
				opts.AllowEditSubmitted = allowEdit
			}
			if cmd.Flags().Changed("five-day") {
				app.Settings.FiveDayMode = fiveDay
			}
			if subject != "" {
				app.Settings.SubjectPattern = subject
			}

			if err := app.connect(); err != nil {
				return err
			}

			ctx := cmd.Context()
			overdue, err := app.Overdue.OverdueWeeks(ctx)
			if err != nil {
				return err
			}
			if listOverdue {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverdue(sortedDates(overdue)))
				return nil
			}
			if !week.IsZero() {
				entry, ok := overdue[week]
				if !ok {
					return fmt.Errorf("week %s is not overdue", week.Format("01/02/2006"))
				}
				overdue = map[time.Time]timesheet.OverdueEntry{week: entry}
			}
			if len(overdue) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No overdue weeks."))
				return nil
			}

			available, err := app.collectHours(overdue, csvPath, icsPath)
			if err != nil {
				return err
			}

			results := app.Runner.Run(ctx, overdue, available, opts)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResults(results))

			for _, res := range results {
				if res.Status == service.StatusFailed {
					return fmt.Errorf("%d week(s) failed", countFailed(results))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Read week records from this CSV file")
	cmd.Flags().StringVar(&icsPath, "calendar", "", "Derive week records from this iCalendar file")
	cmd.Flags().StringVar(&subject, "subject", "", "Regexp matching out-of-office event subjects")
	cmd.Flags().Var(dateValue{&week}, "week", "Only submit the week starting on this Sunday")
	cmd.Flags().BoolVar(&listOverdue, "list-overdue", false, "List overdue weeks and exit without submitting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be submitted without posting")
	cmd.Flags().BoolVar(&one, "one", false, "Stop after the first submission")
	cmd.Flags().BoolVar(&allowEdit, "allow-edit", false, "Retract and re-enter weeks the backend already has")
	cmd.Flags().BoolVar(&fiveDay, "five-day", true, "Prompt for Monday through Friday only")
	cmd.MarkFlagsMutuallyExclusive("csv", "calendar")

	return cmd
}

func countFailed(results []service.SubmissionResult) int {
	n := 0
	for _, res := range results {
		if res.Status == service.StatusFailed {
			n++
		}
	}
	return n
}
