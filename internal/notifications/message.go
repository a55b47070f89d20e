package notifications

import (
	"fmt"
	"net/url"
	"strings"
)

const youtubeBaseURL = "https://youtube.com"

// Message is a rendered notification.
type Message struct {
	Title string
	Body  string
}

// ChannelURL returns the canonical channel page for a channel ID.
func ChannelURL(channelID string) string {
	return youtubeBaseURL + "/channel/" + url.PathEscape(strings.TrimSpace(channelID))
}

// VideoURL returns the canonical watch page for a video ID.
func VideoURL(videoID string) string {
	return youtubeBaseURL + "/watch?v=" + url.QueryEscape(strings.TrimSpace(videoID))
}

func channelOfflineMessage(channelName, channelID string) Message {
	return Message{
		Title: "YouTube Channel Offline",
		Body: fmt.Sprintf("Channel '%s' has been marked offline.\n\nChannel URL: %s",
			strings.TrimSpace(channelName), ChannelURL(channelID)),
	}
}

func videoOfflineMessage(videoTitle, videoID, channelName string) Message {
	return Message{
		Title: "YouTube Video Offline",
		Body: fmt.Sprintf("Video '%s' from channel '%s' has been marked offline.\n\nVideo URL: %s",
			strings.TrimSpace(videoTitle), strings.TrimSpace(channelName), VideoURL(videoID)),
	}
}

func downloadCompleteMessage(videosDownloaded int, totalSizeMB, durationMinutes float64) Message {
	return Message{
		Title: "Download Run Complete",
		Body: fmt.Sprintf("Downloaded %d video(s)\nTotal size: %.2f MB\nDuration: %.1f minutes",
			videosDownloaded, totalSizeMB, durationMinutes),
	}
}

func downloadErrorMessage(errorType, videoTitle, videoID string) Message {
	errorType = strings.TrimSpace(errorType)
	if errorType == "" {
		errorType = "unknown"
	}
	return Message{
		Title: "Download Error: " + errorType,
		Body: fmt.Sprintf("Failed to download video '%s'\nError: %s\n\nVideo URL: %s",
			strings.TrimSpace(videoTitle), errorType, VideoURL(videoID)),
	}
}

func quotaExceededMessage() Message {
	return Message{
		Title: "YouTube API Quota Exceeded",
		Body: "The YouTube API quota has been exceeded. Operations will resume automatically " +
			"after the quota resets (typically within 24 hours).",
	}
}

func newVideosMessage(channelName string, videoCount int) Message {
	return Message{
		Title: "New Videos Detected",
		Body:  fmt.Sprintf("Found %d new video(s) in channel '%s'", videoCount, strings.TrimSpace(channelName)),
	}
}

func testMessage() Message {
	return Message{
		Title: "ytbackup - Test",
		Body:  "Notification system test. If you can read this, delivery works.",
	}
}
