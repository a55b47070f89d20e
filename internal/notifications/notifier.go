package notifications

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"ytbackup/internal/config"
	"ytbackup/internal/logging"
)

var (
	// ErrUnavailable is reported by Test when no dispatch backend is linked.
	ErrUnavailable = errors.New("notification backend not available in this build")
	// ErrNoBackends is reported by Test when no backend URLs are configured.
	ErrNoBackends = errors.New("no apprise_urls configured")
)

// Notifier sends event notifications. It holds no per-call state and is safe
// for concurrent use; every dispatch builds its own client.
type Notifier struct {
	logger     *slog.Logger
	capability Capability
}

// New builds a Notifier backed by the dispatch capability compiled into this
// build.
func New(logger *slog.Logger) *Notifier {
	return NewWithCapability(logger, DefaultCapability())
}

// NewWithCapability builds a Notifier with an explicit dispatch capability and
// logs a warning when that capability is unavailable.
func NewWithCapability(logger *slog.Logger, capability Capability) *Notifier {
	n := &Notifier{
		logger:     logging.NewComponentLogger(logger, "notifications"),
		capability: capability,
	}
	if !capability.IsAvailable() {
		n.logger.Warn("notification backend not compiled in; notifications are disabled (rebuild without the nonotify tag)")
	}
	return n
}

// ChannelOffline reports that a channel has been marked offline.
func (n *Notifier) ChannelOffline(cfg *config.Config, channelName, channelID string) {
	if !cfg.EventEnabled(string(EventChannelOffline)) {
		return
	}
	if n.dispatch(cfg, EventChannelOffline, channelOfflineMessage(channelName, channelID)) {
		n.logger.Info("sent offline notification for channel", logging.String("channel", channelName))
	}
}

// VideoOffline reports that a video has been marked offline.
func (n *Notifier) VideoOffline(cfg *config.Config, videoTitle, videoID, channelName string) {
	if !cfg.EventEnabled(string(EventVideoOffline)) {
		return
	}
	if n.dispatch(cfg, EventVideoOffline, videoOfflineMessage(videoTitle, videoID, channelName)) {
		n.logger.Info("sent offline notification for video", logging.String("video", videoTitle))
	}
}

// DownloadComplete summarises a finished download run.
func (n *Notifier) DownloadComplete(cfg *config.Config, videosDownloaded int, totalSizeMB, durationMinutes float64) {
	if !cfg.EventEnabled(string(EventDownloadComplete)) {
		return
	}
	if n.dispatch(cfg, EventDownloadComplete, downloadCompleteMessage(videosDownloaded, totalSizeMB, durationMinutes)) {
		n.logger.Info("sent download complete notification",
			logging.Int("videos", videosDownloaded),
			logging.Float64("size_mb", totalSizeMB),
		)
	}
}

// DownloadError reports a failed video download. errorType is a short label
// such as "HTTP 403".
func (n *Notifier) DownloadError(cfg *config.Config, errorType, videoTitle, videoID string) {
	if !cfg.EventEnabled(string(EventDownloadErrors)) {
		return
	}
	if n.dispatch(cfg, EventDownloadErrors, downloadErrorMessage(errorType, videoTitle, videoID)) {
		n.logger.Info("sent download error notification for video",
			logging.String("video", videoTitle),
			logging.String("error_type", errorType),
		)
	}
}

// QuotaExceeded reports that the YouTube API quota is exhausted.
func (n *Notifier) QuotaExceeded(cfg *config.Config) {
	if !cfg.EventEnabled(string(EventQuotaExceeded)) {
		return
	}
	if n.dispatch(cfg, EventQuotaExceeded, quotaExceededMessage()) {
		n.logger.Info("sent quota exceeded notification")
	}
}

// NewVideos reports newly detected videos in a channel.
func (n *Notifier) NewVideos(cfg *config.Config, channelName string, videoCount int) {
	if !cfg.EventEnabled(string(EventNewVideos)) {
		return
	}
	if n.dispatch(cfg, EventNewVideos, newVideosMessage(channelName, videoCount)) {
		n.logger.Info("sent new videos notification for channel",
			logging.String("channel", channelName),
			logging.Int("count", videoCount),
		)
	}
}

// dispatch fans msg out to every configured backend and reports whether the
// send succeeded. Nothing escapes this boundary: failures end up in the log.
func (n *Notifier) dispatch(cfg *config.Config, event Event, msg Message) bool {
	logger := n.logger.With(logging.String(logging.FieldEvent, string(event)))
	if !n.capability.IsAvailable() {
		logger.Debug("notification backend not available, skipping notification")
		return false
	}
	urls := cfg.BackendURLs()
	if len(urls) == 0 {
		logger.Debug("no apprise_urls configured, skipping notification")
		return false
	}

	logger = logger.With(logging.String(logging.FieldNotificationID, uuid.NewString()))
	registered, _, err := n.send(urls, msg, logger)
	if err != nil {
		logger.Error("failed to send notification",
			logging.String("title", msg.Title),
			logging.Error(err),
		)
		return false
	}
	logger.Debug("notification sent", logging.String("title", msg.Title), logging.Int("backends", registered))
	return true
}

// send registers every URL with one client and delivers msg. It reports how
// many URLs were registered and the joined registration failures, which are
// also logged. Panics raised by the backend are converted to errors.
func (n *Notifier) send(urls []string, msg Message, logger *slog.Logger) (registered int, rejected error, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification backend panicked: %v", r)
		}
	}()

	client := n.capability.newClient()
	var addErrs []error
	for _, url := range urls {
		if addErr := client.Add(url); addErr != nil {
			logger.Error("failed to register notification url",
				logging.String("service", serviceName(url)),
				logging.Error(addErr),
			)
			addErrs = append(addErrs, addErr)
			continue
		}
		registered++
	}
	rejected = errors.Join(addErrs...)
	if registered == 0 {
		return 0, rejected, errors.New("none of the configured apprise_urls could be registered")
	}
	return registered, rejected, client.Notify(msg.Title, msg.Body)
}

// CheckBackends registers every configured URL with a fresh client without
// sending anything and returns the joined registration failures.
func (n *Notifier) CheckBackends(cfg *config.Config) error {
	if !n.capability.IsAvailable() {
		return ErrUnavailable
	}
	client := n.capability.newClient()
	var errs []error
	for i, url := range cfg.BackendURLs() {
		if err := client.Add(url); err != nil {
			errs = append(errs, fmt.Errorf("notifications.apprise_urls[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// serviceName returns the scheme of a backend URL so logs never carry the
// credentials embedded in the rest of it.
func serviceName(url string) string {
	scheme, _, found := strings.Cut(url, "://")
	if !found || scheme == "" {
		return "unknown"
	}
	return scheme
}
