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
	path := filepath.Join(t.TempDir(), "daybook.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/tmp/test-daybook.db"

[resolver]
timezone = "Europe/Amsterdam"
weekday_same_day = true
priority_window_days = 14
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-daybook.db", cfg.Database.Path)
	assert.Equal(t, "Europe/Amsterdam", cfg.Resolver.Timezone)
	assert.True(t, cfg.Resolver.WeekdaySameDay)
	assert.Equal(t, 14, cfg.Resolver.PriorityWindowDays)
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "/tmp/test-daybook.db"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Resolver.Timezone)
	assert.False(t, cfg.Resolver.WeekdaySameDay)
	assert.Zero(t, cfg.Resolver.PriorityWindowDays)
	assert.False(t, cfg.Display.JSON)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidateRejectsUnknownTimezone(t *testing.T) {
	path := writeConfig(t, `
[resolver]
timezone = "Mars/Olympus_Mons"
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolver.timezone")
}

func TestValidateRejectsNegativeWindow(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "x.db"},
		Resolver: ResolverConfig{PriorityWindowDays: -1},
	}
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyDatabasePath(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}

func TestEnvOverridesDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("DAYBOOK_RESOLVER_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Resolver.Timezone)
}

func TestGetDatabasePathEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("DAYBOOK_DB", "/tmp/override.db")

	path, err := GetDatabasePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", path)
}
