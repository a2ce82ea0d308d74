package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.True(t, s.FiveDayMode)
	assert.False(t, s.DryRun)
	assert.Equal(t, `(?i)(Holiday|out|OOTO|Vacation)`, s.SubjectPattern)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
user = "alice"
subject_pattern = "(PTO|Leave)"
five_day_mode = false
dry_run = true
`)
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.User)
	assert.Equal(t, "(PTO|Leave)", s.SubjectPattern)
	assert.False(t, s.FiveDayMode)
	assert.True(t, s.DryRun)
	assert.False(t, s.StopAfterOne, "unset file values keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `user = "alice"`)
	t.Setenv("PTR_USER", "bob")
	t.Setenv("PTR_STOP_AFTER_ONE", "true")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bob", s.User)
	assert.True(t, s.StopAfterOne)
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeConfig(t, `user = [broken`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolvePassword_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pw")
	require.NoError(t, os.WriteFile(path, []byte("hunter2\nsecond line ignored\n"), 0o600))

	pw, err := ResolvePassword("alice", path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", pw)
}

func TestResolvePassword_Env(t *testing.T) {
	t.Setenv("PTR_PASSWORD", "from-env")
	pw, err := ResolvePassword("alice", "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", pw)
}

func TestResolvePassword_FileBeatsEnv(t *testing.T) {
	t.Setenv("PTR_PASSWORD", "from-env")
	path := filepath.Join(t.TempDir(), "pw")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))

	pw, err := ResolvePassword("alice", path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", pw)
}
