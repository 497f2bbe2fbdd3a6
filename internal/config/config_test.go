package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AUTHMAIL_PROJECT_REF", "AUTHMAIL_ACCESS_TOKEN", "AUTHMAIL_API_URL",
		"AUTHMAIL_SCHEDULE", "AUTHMAIL_DRY_RUN", "AUTHMAIL_REQUEST_TIMEOUT",
		"SUPABASE_ACCESS_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]string{"-project-ref", "pwujh", "-access-token", "sbp_x"})
	require.NoError(t, err)

	assert.Equal(t, "https://api.supabase.com", cfg.APIBaseURL)
	assert.Equal(t, "pwujh", cfg.ProjectRef)
	assert.Equal(t, "sbp_x", cfg.AccessToken)
	assert.Equal(t, "supabase-cli/2.67.1", cfg.UserAgent)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.ScheduleCron)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTHMAIL_PROJECT_REF", "fromenv")
	t.Setenv("SUPABASE_ACCESS_TOKEN", "sbp_env")
	t.Setenv("AUTHMAIL_SCHEDULE", "0 3 * * *")
	t.Setenv("AUTHMAIL_REQUEST_TIMEOUT", "5s")

	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "fromenv", cfg.ProjectRef)
	assert.Equal(t, "sbp_env", cfg.AccessToken)
	assert.Equal(t, "0 3 * * *", cfg.ScheduleCron)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseFlagOverridesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTHMAIL_ACCESS_TOKEN", "sbp_env")

	cfg, err := Parse([]string{"-project-ref", "p", "-access-token", "sbp_flag"})
	require.NoError(t, err)
	assert.Equal(t, "sbp_flag", cfg.AccessToken)
}

func TestParseRequiresCredentials(t *testing.T) {
	clearEnv(t)

	_, err := Parse(nil)
	assert.ErrorContains(t, err, "project ref")

	_, err = Parse([]string{"-project-ref", "p"})
	assert.ErrorContains(t, err, "access token")
}

func TestParseDryRunNeedsNoCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]string{"-dry-run", "-out", "x.json"})
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "x.json", cfg.OutputPath)
}

func TestParseConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "authmail.conf")
	require.NoError(t, os.WriteFile(path, []byte("project-ref filed\naccess-token sbp_file\nlog-level debug\n"), 0o600))

	cfg, err := Parse([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, "filed", cfg.ProjectRef)
	assert.Equal(t, "sbp_file", cfg.AccessToken)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseHelpReturnsErrHelp(t *testing.T) {
	clearEnv(t)

	_, err := Parse([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
