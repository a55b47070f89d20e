package notifications

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ytbackup/internal/config"
)

// Payload carries event parameters by name for callers that only have
// strings, such as the CLI.
//
// Keys: channel_name, channel_id, video_title, video_id, error_type,
// videos_downloaded, total_size_mb, duration_minutes, video_count.
type Payload map[string]string

// Publish routes an event by name to the matching notifier method. It returns
// an error only when the payload cannot be turned into event parameters;
// delivery itself stays fire-and-forget.
func (n *Notifier) Publish(cfg *config.Config, event Event, payload Payload) error {
	switch event {
	case EventChannelOffline:
		name, id, err := payload.requirePair("channel_name", "channel_id")
		if err != nil {
			return err
		}
		n.ChannelOffline(cfg, name, id)
	case EventVideoOffline:
		title, id, err := payload.requirePair("video_title", "video_id")
		if err != nil {
			return err
		}
		n.VideoOffline(cfg, title, id, payload["channel_name"])
	case EventDownloadComplete:
		count, err := payload.requireInt("videos_downloaded")
		if err != nil {
			return err
		}
		size, err := payload.requireFloat("total_size_mb")
		if err != nil {
			return err
		}
		minutes, err := payload.requireFloat("duration_minutes")
		if err != nil {
			return err
		}
		n.DownloadComplete(cfg, count, size, minutes)
	case EventDownloadErrors:
		title, id, err := payload.requirePair("video_title", "video_id")
		if err != nil {
			return err
		}
		n.DownloadError(cfg, payload["error_type"], title, id)
	case EventQuotaExceeded:
		n.QuotaExceeded(cfg)
	case EventNewVideos:
		count, err := payload.requireInt("video_count")
		if err != nil {
			return err
		}
		n.NewVideos(cfg, payload["channel_name"], count)
	default:
		return fmt.Errorf("unknown notification event %q", event)
	}
	return nil
}

// Test sends a test message to every configured backend, ignoring the
// notification switches, and returns how many backends it reached. URLs that
// could not be registered are reported as an error even when the others
// received the message.
func (n *Notifier) Test(cfg *config.Config) (int, error) {
	if !n.capability.IsAvailable() {
		return 0, ErrUnavailable
	}
	urls := cfg.BackendURLs()
	if len(urls) == 0 {
		return 0, ErrNoBackends
	}
	registered, rejected, err := n.send(urls, testMessage(), n.logger)
	if err != nil {
		return 0, fmt.Errorf("send test notification: %w", errors.Join(err, rejected))
	}
	if rejected != nil {
		return registered, fmt.Errorf("test notification reached %d of %d backends: %w", registered, len(urls), rejected)
	}
	return registered, nil
}

func (p Payload) requireString(key string) (string, error) {
	value := strings.TrimSpace(p[key])
	if value == "" {
		return "", fmt.Errorf("missing %s", key)
	}
	return value, nil
}

func (p Payload) requirePair(first, second string) (string, string, error) {
	a, err := p.requireString(first)
	if err != nil {
		return "", "", err
	}
	b, err := p.requireString(second)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

func (p Payload) requireInt(key string) (int, error) {
	raw, err := p.requireString(key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func (p Payload) requireFloat(key string) (float64, error) {
	raw, err := p.requireString(key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
