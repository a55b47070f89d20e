package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ytbackup/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config with notifications switched on, one backend URL,
// and every known event enabled. Options adjust it from there.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Notifications.Enabled = true
	cfgVal.Notifications.AppriseURLs = []string{"mailto://x"}
	for _, event := range config.KnownEvents {
		cfgVal.Notifications.Events[event] = true
	}

	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithNotificationsEnabled sets the global notifications switch.
func WithNotificationsEnabled(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.Enabled = enabled
	}
}

// WithOnlyEvents replaces the event map so that only the named events are enabled.
func WithOnlyEvents(events ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.Events = make(map[string]bool, len(events))
		for _, event := range events {
			b.cfg.Notifications.Events[event] = true
		}
	}
}

// WithBackendURLs replaces the configured backend URLs.
func WithBackendURLs(urls ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Notifications.AppriseURLs = urls
	}
}

// WithLogFile routes log output to a file inside the test's temp directory.
func WithLogFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, name)
	}
}

// WriteConfig serializes cfg as TOML to path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
