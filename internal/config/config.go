// Package config loads the tool's settings from the optional TOML config
// file and PTR_* environment variables. Precedence is flags > environment >
// file > defaults; flag overrides are applied by the CLI layer.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/alexanderramin/ptr/internal/calendar"
)

// FileConfig mirrors the TOML file. Pointer fields distinguish "unset"
// from an explicit false/empty value.
type FileConfig struct {
	User               *string `toml:"user"`
	BaseURL            *string `toml:"base_url"`
	SubjectPattern     *string `toml:"subject_pattern"`
	FiveDayMode        *bool   `toml:"five_day_mode"`
	AllowEditSubmitted *bool   `toml:"allow_edit_submitted"`
	DryRun             *bool   `toml:"dry_run"`
	StopAfterOne       *bool   `toml:"stop_after_one"`
}

// Settings is the merged, ready-to-use configuration.
type Settings struct {
	User               string
	BaseURL            string
	SubjectPattern     string
	FiveDayMode        bool
	AllowEditSubmitted bool
	DryRun             bool
	StopAfterOne       bool
}

// DefaultPath returns the standard config file location
// (~/.config/ptr/config.toml or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, "ptr", "config.toml"), nil
}

// DefaultSettings returns the stock configuration: the current OS user,
// five-day CSV input and the usual out-of-office subject pattern.
func DefaultSettings() Settings {
	s := Settings{
		SubjectPattern: calendar.DefaultSubjectPattern,
		FiveDayMode:    true,
	}
	if u, err := user.Current(); err == nil {
		s.User = u.Username
	}
	return s
}

// Load builds Settings from defaults, the TOML file at path (a missing
// file is fine) and the PTR_* environment, in that order.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	fc, err := loadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s.applyFile(fc)
	s.applyEnv()
	return s, nil
}

func loadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("decoding config file: %w", err)
	}
	return fc, nil
}

func (s *Settings) applyFile(fc FileConfig) {
	if fc.User != nil {
		s.User = *fc.User
	}
	if fc.BaseURL != nil {
		s.BaseURL = *fc.BaseURL
	}
	if fc.SubjectPattern != nil {
		s.SubjectPattern = *fc.SubjectPattern
	}
	if fc.FiveDayMode != nil {
		s.FiveDayMode = *fc.FiveDayMode
	}
	if fc.AllowEditSubmitted != nil {
		s.AllowEditSubmitted = *fc.AllowEditSubmitted
	}
	if fc.DryRun != nil {
		s.DryRun = *fc.DryRun
	}
	if fc.StopAfterOne != nil {
		s.StopAfterOne = *fc.StopAfterOne
	}
}

func (s *Settings) applyEnv() {
	if v := os.Getenv("PTR_USER"); v != "" {
		s.User = v
	}
	if v := os.Getenv("PTR_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("PTR_SUBJECT_PATTERN"); v != "" {
		s.SubjectPattern = v
	}
	applyBoolEnv(&s.FiveDayMode, "PTR_FIVE_DAY_MODE")
	applyBoolEnv(&s.AllowEditSubmitted, "PTR_ALLOW_EDIT_SUBMITTED")
	applyBoolEnv(&s.DryRun, "PTR_DRY_RUN")
	applyBoolEnv(&s.StopAfterOne, "PTR_STOP_AFTER_ONE")
}

func applyBoolEnv(dst *bool, name string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
