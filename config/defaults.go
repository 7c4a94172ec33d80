package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	v.SetDefault("database.path", filepath.Join(homeDir, ".daybook", "daybook.db"))

	v.SetDefault("resolver.timezone", "")              // process-local zone
	v.SetDefault("resolver.weekday_same_day", false)   // strictly next occurrence
	v.SetDefault("resolver.priority_window_days", 0)   // built-in window

	v.SetDefault("display.json", false)
}
