// Package config loads, normalizes, and validates ytbackup configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML, YAML, or JSON files, and honours the
// YTBACKUP_APPRISE_URLS environment fallback. Missing keys always fall back to
// "disabled" or empty values rather than errors, so a partial notifications
// section is valid.
//
// Always obtain settings through this package so downstream code receives
// trimmed backend URLs, lower-cased event keys, and clear validation errors.
package config
