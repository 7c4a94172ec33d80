package config

import (
	"time"

	"github.com/torvane/daybook/errors"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path cannot be empty")
	}

	// Timezone: empty means process-local; anything else must be a known
	// IANA zone so "today" is anchored deterministically.
	if c.Resolver.Timezone != "" {
		if _, err := time.LoadLocation(c.Resolver.Timezone); err != nil {
			return errors.Wrapf(err, "resolver.timezone %q is not a valid IANA zone", c.Resolver.Timezone)
		}
	}

	if c.Resolver.PriorityWindowDays < 0 {
		return errors.Newf("resolver.priority_window_days must be >= 0, got %d", c.Resolver.PriorityWindowDays)
	}

	return nil
}
