package config

const (
	defaultConfigPath = "~/.config/ytbackup/config.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	// EnvAppriseURLs holds extra backend URLs, comma separated.
	EnvAppriseURLs = "YTBACKUP_APPRISE_URLS"
)

var projectConfigNames = []string{"ytbackup.toml", "ytbackup.yaml", "ytbackup.yml", "ytbackup.json"}

// KnownEvents lists the event keys accepted under notifications.events.
var KnownEvents = []string{
	"channel_offline",
	"video_offline",
	"download_complete",
	"download_errors",
	"quota_exceeded",
	"new_videos",
}

// Default returns a Config populated with repository defaults. Notifications
// start switched off with every event disabled.
func Default() Config {
	return Config{
		Notifications: Notifications{
			Enabled: false,
			Events:  map[string]bool{},
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
