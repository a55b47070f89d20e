package notifications

import (
	"fmt"
	"strings"
)

// Event identifies a notification trigger. Values match the keys under
// notifications.events in the configuration file.
type Event string

const (
	EventChannelOffline   Event = "channel_offline"
	EventVideoOffline     Event = "video_offline"
	EventDownloadComplete Event = "download_complete"
	EventDownloadErrors   Event = "download_errors"
	EventQuotaExceeded    Event = "quota_exceeded"
	EventNewVideos        Event = "new_videos"
)

var allEvents = []Event{
	EventChannelOffline,
	EventVideoOffline,
	EventDownloadComplete,
	EventDownloadErrors,
	EventQuotaExceeded,
	EventNewVideos,
}

// Events returns every supported event in display order.
func Events() []Event {
	out := make([]Event, len(allEvents))
	copy(out, allEvents)
	return out
}

// ParseEvent resolves an event name, ignoring case and surrounding space.
func ParseEvent(name string) (Event, error) {
	key := Event(strings.ToLower(strings.TrimSpace(name)))
	for _, event := range allEvents {
		if event == key {
			return event, nil
		}
	}
	return "", fmt.Errorf("unknown notification event %q", name)
}

func (e Event) String() string {
	return string(e)
}
