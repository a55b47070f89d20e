package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"ytbackup/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAppriseURLs, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Notifications.Enabled {
		t.Fatal("expected notifications disabled by default")
	}
	if len(cfg.Notifications.AppriseURLs) != 0 {
		t.Fatalf("expected no backend URLs, got %v", cfg.Notifications.AppriseURLs)
	}
	for _, event := range config.KnownEvents {
		if cfg.EventEnabled(event) {
			t.Fatalf("expected %s disabled by default", event)
		}
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesEachFormat(t *testing.T) {
	t.Setenv(config.EnvAppriseURLs, "")

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `[notifications]
enabled = true
apprise_urls = ["mailto://x", "  ", "ntfy://ntfy.sh/topic"]

[notifications.events]
channel_offline = true
Video_Offline = false
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `notifications:
  enabled: true
  events:
    channel_offline: true
    Video_Offline: false
  apprise_urls:
    - mailto://x
    - "  "
    - ntfy://ntfy.sh/topic
`,
		},
		{
			name: "json",
			file: "config.json",
			content: `{"notifications": {"enabled": true,
"events": {"channel_offline": true, "Video_Offline": false},
"apprise_urls": ["mailto://x", "  ", "ntfy://ntfy.sh/topic"]}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if !exists || resolved != path {
				t.Fatalf("expected %s to be loaded, got %q (exists=%v)", path, resolved, exists)
			}
			if !cfg.EventEnabled("channel_offline") {
				t.Fatal("expected channel_offline enabled")
			}
			if cfg.EventEnabled("video_offline") {
				t.Fatal("expected video_offline disabled")
			}
			if _, ok := cfg.Notifications.Events["video_offline"]; !ok {
				t.Fatal("expected event keys to be lower-cased")
			}
			want := []string{"mailto://x", "ntfy://ntfy.sh/topic"}
			if strings.Join(cfg.BackendURLs(), ",") != strings.Join(want, ",") {
				t.Fatalf("unexpected backend URLs: %v", cfg.BackendURLs())
			}
		})
	}
}

func TestEventEnabledRequiresBothSwitches(t *testing.T) {
	var nilCfg *config.Config
	if nilCfg.EventEnabled("channel_offline") {
		t.Fatal("nil config must read as disabled")
	}

	cfg := config.Default()
	cfg.Notifications.Events["channel_offline"] = true
	if cfg.EventEnabled("channel_offline") {
		t.Fatal("expected global switch to gate the event")
	}

	cfg.Notifications.Enabled = true
	if !cfg.EventEnabled("channel_offline") {
		t.Fatal("expected event enabled once both switches are on")
	}
	if cfg.EventEnabled("new_videos") {
		t.Fatal("missing event key must read as disabled")
	}
}

func TestLoadAppendsEnvironmentURLs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAppriseURLs, "ntfy://ntfy.sh/a, ,ntfy://ntfy.sh/b,ntfy://ntfy.sh/a")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got := strings.Join(cfg.Notifications.AppriseURLs, ",")
	if got != "ntfy://ntfy.sh/a,ntfy://ntfy.sh/b" {
		t.Fatalf("unexpected URLs from env: %q", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv(config.EnvAppriseURLs, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown event",
			content: "[notifications.events]\nchannel_offlne = true\n",
			wantErr: "unknown event",
		},
		{
			name:    "url without scheme",
			content: "[notifications]\napprise_urls = [\"example.com/hook\"]\n",
			wantErr: "missing a scheme",
		},
		{
			name:    "log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	t.Setenv(config.EnvAppriseURLs, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Notifications.Enabled {
		t.Fatal("sample should ship with notifications disabled")
	}
	for name := range cfg.Notifications.Events {
		found := false
		for _, known := range config.KnownEvents {
			if known == name {
				found = true
			}
		}
		if !found {
			t.Fatalf("sample lists unknown event %q", name)
		}
	}
}
