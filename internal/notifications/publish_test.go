package notifications_test

import (
	"errors"
	"strings"
	"testing"

	"ytbackup/internal/logging"
	"ytbackup/internal/notifications"
	"ytbackup/internal/testsupport"
)

func TestPublishRoutesEvents(t *testing.T) {
	tests := []struct {
		name        string
		event       notifications.Event
		payload     notifications.Payload
		expectTitle string
		expectBody  string
	}{
		{
			name:        "channel offline",
			event:       notifications.EventChannelOffline,
			payload:     notifications.Payload{"channel_name": "MyChannel", "channel_id": "UC123"},
			expectTitle: "YouTube Channel Offline",
			expectBody:  "Channel 'MyChannel' has been marked offline.\n\nChannel URL: https://youtube.com/channel/UC123",
		},
		{
			name:        "video offline",
			event:       notifications.EventVideoOffline,
			payload:     notifications.Payload{"video_title": "Clip", "video_id": "abc", "channel_name": "MyChannel"},
			expectTitle: "YouTube Video Offline",
			expectBody:  "Video 'Clip' from channel 'MyChannel' has been marked offline.\n\nVideo URL: https://youtube.com/watch?v=abc",
		},
		{
			name:  "download complete",
			event: notifications.EventDownloadComplete,
			payload: notifications.Payload{
				"videos_downloaded": "5",
				"total_size_mb":     "123.456",
				"duration_minutes":  "2.345",
			},
			expectTitle: "Download Run Complete",
			expectBody:  "Downloaded 5 video(s)\nTotal size: 123.46 MB\nDuration: 2.3 minutes",
		},
		{
			name:        "download error",
			event:       notifications.EventDownloadErrors,
			payload:     notifications.Payload{"error_type": "HTTP 429", "video_title": "Clip", "video_id": "abc"},
			expectTitle: "Download Error: HTTP 429",
			expectBody:  "Failed to download video 'Clip'\nError: HTTP 429\n\nVideo URL: https://youtube.com/watch?v=abc",
		},
		{
			name:        "quota exceeded",
			event:       notifications.EventQuotaExceeded,
			expectTitle: "YouTube API Quota Exceeded",
			expectBody:  "The YouTube API quota has been exceeded. Operations will resume automatically after the quota resets (typically within 24 hours).",
		},
		{
			name:        "new videos",
			event:       notifications.EventNewVideos,
			payload:     notifications.Payload{"channel_name": "MyChannel", "video_count": "3"},
			expectTitle: "New Videos Detected",
			expectBody:  "Found 3 new video(s) in channel 'MyChannel'",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend := &testsupport.RecordingBackend{}
			notifier := notifications.NewWithCapability(logging.NewNop(), backend.Capability())
			cfg := testsupport.NewConfig(t)

			if err := notifier.Publish(cfg, tc.event, tc.payload); err != nil {
				t.Fatalf("Publish returned error: %v", err)
			}

			sent := backend.Sent()
			if len(sent) != 1 {
				t.Fatalf("expected one dispatch, got %d", len(sent))
			}
			if sent[0].Title != tc.expectTitle {
				t.Fatalf("expected title %q, got %q", tc.expectTitle, sent[0].Title)
			}
			if sent[0].Body != tc.expectBody {
				t.Fatalf("expected body %q, got %q", tc.expectBody, sent[0].Body)
			}
		})
	}
}

func TestPublishRejectsBadPayloads(t *testing.T) {
	backend := &testsupport.RecordingBackend{}
	notifier := notifications.NewWithCapability(logging.NewNop(), backend.Capability())
	cfg := testsupport.NewConfig(t)

	tests := []struct {
		event   notifications.Event
		payload notifications.Payload
		wantErr string
	}{
		{notifications.EventChannelOffline, notifications.Payload{"channel_name": "x"}, "missing channel_id"},
		{notifications.EventNewVideos, notifications.Payload{"video_count": "many"}, "video_count"},
		{notifications.EventDownloadComplete, notifications.Payload{"videos_downloaded": "1", "total_size_mb": "x"}, "total_size_mb"},
		{notifications.Event("bogus"), nil, "unknown notification event"},
	}
	for _, tc := range tests {
		err := notifier.Publish(cfg, tc.event, tc.payload)
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.event, tc.wantErr, err)
		}
	}
	if len(backend.Sent()) != 0 {
		t.Fatal("expected no dispatch for rejected payloads")
	}
}

func TestTestNotificationReportsOutcome(t *testing.T) {
	backend := &testsupport.RecordingBackend{}
	notifier := notifications.NewWithCapability(logging.NewNop(), backend.Capability())

	cfg := testsupport.NewConfig(t, testsupport.WithNotificationsEnabled(false), testsupport.WithOnlyEvents())
	reached, err := notifier.Test(cfg)
	if err != nil {
		t.Fatalf("Test returned error: %v", err)
	}
	if reached != 1 || len(backend.Sent()) != 1 {
		t.Fatalf("expected test message to ignore notification switches, reached %d", reached)
	}

	if _, err := notifier.Test(testsupport.NewConfig(t, testsupport.WithBackendURLs())); !errors.Is(err, notifications.ErrNoBackends) {
		t.Fatalf("expected ErrNoBackends, got %v", err)
	}

	backend.NotifyErr = errors.New("boom")
	if _, err := notifier.Test(cfg); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected delivery error, got %v", err)
	}

	unavailable := notifications.NewWithCapability(logging.NewNop(), notifications.Unavailable())
	if _, err := unavailable.Test(cfg); !errors.Is(err, notifications.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTestNotificationReportsRejectedURLs(t *testing.T) {
	rejected := errors.New("unknown service")
	backend := &testsupport.RecordingBackend{AddErrs: map[string]error{"mailto://x": rejected}}
	notifier := notifications.NewWithCapability(logging.NewNop(), backend.Capability())
	cfg := testsupport.NewConfig(t, testsupport.WithBackendURLs("mailto://x", "logger://"))

	reached, err := notifier.Test(cfg)
	if !errors.Is(err, rejected) {
		t.Fatalf("expected registration failure to be reported, got %v", err)
	}
	if reached != 1 {
		t.Fatalf("expected 1 backend reached, got %d", reached)
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("expected partial count in error, got %v", err)
	}
	sent := backend.Sent()
	if len(sent) != 1 || len(sent[0].URLs) != 1 || sent[0].URLs[0] != "logger://" {
		t.Fatalf("expected delivery to the registered backend only, got %+v", sent)
	}

	backend.AddErrs["logger://"] = rejected
	if _, err := notifier.Test(cfg); !errors.Is(err, rejected) {
		t.Fatalf("expected registration failures when nothing registered, got %v", err)
	}
}

func TestCheckBackends(t *testing.T) {
	backend := &testsupport.RecordingBackend{}
	notifier := notifications.NewWithCapability(logging.NewNop(), backend.Capability())
	cfg := testsupport.NewConfig(t, testsupport.WithBackendURLs("mailto://x", "logger://"))

	if err := notifier.CheckBackends(cfg); err != nil {
		t.Fatalf("CheckBackends returned error: %v", err)
	}

	backend.AddErrs = map[string]error{"logger://": errors.New("bad")}
	err := notifier.CheckBackends(cfg)
	if err == nil || !strings.Contains(err.Error(), "apprise_urls[1]") {
		t.Fatalf("expected failing index in error, got %v", err)
	}
	if len(backend.Sent()) != 0 {
		t.Fatal("expected CheckBackends not to send anything")
	}

	unavailable := notifications.NewWithCapability(logging.NewNop(), notifications.Unavailable())
	if err := unavailable.CheckBackends(cfg); !errors.Is(err, notifications.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestParseEvent(t *testing.T) {
	event, err := notifications.ParseEvent("  Channel_Offline ")
	if err != nil || event != notifications.EventChannelOffline {
		t.Fatalf("expected channel_offline, got %q (%v)", event, err)
	}
	if _, err := notifications.ParseEvent("channel_online"); err == nil {
		t.Fatal("expected error for unknown event")
	}
	if len(notifications.Events()) != 6 {
		t.Fatalf("expected 6 events, got %d", len(notifications.Events()))
	}
}

func TestURLHelpers(t *testing.T) {
	if got := notifications.ChannelURL(" UC123 "); got != "https://youtube.com/channel/UC123" {
		t.Fatalf("unexpected channel URL %q", got)
	}
	if got := notifications.VideoURL("a-b_c"); got != "https://youtube.com/watch?v=a-b_c" {
		t.Fatalf("unexpected video URL %q", got)
	}
}
