package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateNotifications() error {
	for name := range c.Notifications.Events {
		if !slices.Contains(KnownEvents, name) {
			return fmt.Errorf("notifications.events: unknown event %q (known: %s)", name, strings.Join(KnownEvents, ", "))
		}
	}
	for i, raw := range c.Notifications.AppriseURLs {
		if !strings.Contains(raw, "://") {
			return fmt.Errorf("notifications.apprise_urls[%d]: %q is missing a scheme (expected service://...)", i, raw)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
