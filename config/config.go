// Package config loads daybook configuration with viper. Files are TOML;
// precedence from lowest to highest is system, user, project, environment.
package config

// Config is the daybook configuration tree.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	Display  DisplayConfig  `mapstructure:"display"`
}

// DatabaseConfig configures the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ResolverConfig configures locator resolution.
type ResolverConfig struct {
	// Timezone is the IANA zone that anchors "today". Empty means the
	// process-local zone.
	Timezone string `mapstructure:"timezone"`
	// WeekdaySameDay makes a weekday jump issued on that weekday resolve
	// to the current day instead of strictly the next occurrence.
	WeekdaySameDay bool `mapstructure:"weekday_same_day"`
	// PriorityWindowDays widens or narrows the recent-item window used
	// for alias prefix priority. 0 keeps the built-in window.
	PriorityWindowDays int `mapstructure:"priority_window_days"`
}

// DisplayConfig configures output rendering.
type DisplayConfig struct {
	JSON bool `mapstructure:"json"` // machine output by default
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
