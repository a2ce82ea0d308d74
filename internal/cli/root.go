// Package cli defines the ptr command tree. Commands talk to the backend
// through the small interfaces on App so tests can substitute fakes.
package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/ptr/internal/config"
	"github.com/alexanderramin/ptr/internal/domain"
	"github.com/alexanderramin/ptr/internal/service"
	"github.com/alexanderramin/ptr/internal/timesheet"
)

// WeekRunner is the engine slice the submit command drives.
type WeekRunner interface {
	Run(ctx context.Context, overdue map[time.Time]timesheet.OverdueEntry, available map[time.Time]domain.WeekRecord, opts service.Options) []service.SubmissionResult
}

// Authenticator verifies credentials against the backend.
type Authenticator interface {
	Login(ctx context.Context) error
}

// App holds the wired collaborators and the merged settings the commands
// run against. The backend-facing fields stay nil until the first command
// that needs them calls connect, so purely local paths (help, validation
// errors) never prompt for a password.
type App struct {
	Settings     config.Settings
	PasswordFile string
	Observer     service.Observer

	Runner   WeekRunner
	Overdue  service.OverdueSource
	Session  Authenticator
	password string
}

// connect resolves credentials and builds the navigator-backed
// collaborators. Fields already populated (by tests or a prior call) are
// left alone.
func (app *App) connect() error {
	if app.Runner != nil && app.Overdue != nil {
		return nil
	}
	password, err := config.ResolvePassword(app.Settings.User, app.PasswordFile)
	if err != nil {
		return err
	}
	app.password = password

	cfg := timesheet.LoadConfig()
	if app.Settings.BaseURL != "" {
		cfg.BaseURL = app.Settings.BaseURL
	}
	nav := timesheet.NewNavigator(cfg, app.Settings.User, password)

	app.Session = nav
	app.Overdue = nav
	app.Runner = service.NewEngine(nav, app.Observer)
	return nil
}

// NewRootCmd creates the top-level "ptr" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		user         string
		passwordFile string
		baseURL      string
		quiet        bool
		debug        bool
	)

	root := &cobra.Command{
		Use:   "ptr",
		Short: "Submit overdue weekly timesheets",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(quiet, debug)
			if user != "" {
				app.Settings.User = user
			}
			if baseURL != "" {
				app.Settings.BaseURL = baseURL
			}
			if passwordFile != "" {
				app.PasswordFile = passwordFile
			}
		},
	}

	root.PersistentFlags().StringVar(&user, "user", "", "Backend account name (default: current OS user)")
	root.PersistentFlags().StringVar(&passwordFile, "password-file", "", "Read the password from the first line of this file")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "Override the time reporting application URL")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Log request-level detail")

	root.AddCommand(
		newSubmitCmd(app),
		newOverdueCmd(app),
		newLoginCmd(app),
	)

	return root
}

func configureLogging(quiet, debug bool) {
	level := slog.LevelInfo
	switch {
	case debug:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
