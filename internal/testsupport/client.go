package testsupport

import (
	"sync"

	"ytbackup/internal/notifications"
)

// SentMessage is one Notify call captured by a RecordingClient.
type SentMessage struct {
	Title string
	Body  string
	URLs  []string
}

// RecordingBackend hands out clients that record every dispatch instead of
// sending it. Failures can be injected per URL or for Notify as a whole.
type RecordingBackend struct {
	mu        sync.Mutex
	sent      []SentMessage
	clients   int
	AddErrs   map[string]error
	NotifyErr error
	Panic     any
}

// Capability returns a dispatch capability backed by b.
func (b *RecordingBackend) Capability() notifications.Capability {
	return notifications.Available(func() notifications.Client {
		b.mu.Lock()
		b.clients++
		b.mu.Unlock()
		return &recordingClient{backend: b}
	})
}

// Sent returns a copy of the recorded messages.
func (b *RecordingBackend) Sent() []SentMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]SentMessage, len(b.sent))
	copy(out, b.sent)
	return out
}

// Clients reports how many clients were constructed.
func (b *RecordingBackend) Clients() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clients
}

type recordingClient struct {
	backend *RecordingBackend
	urls    []string
}

func (c *recordingClient) Add(url string) error {
	if err := c.backend.AddErrs[url]; err != nil {
		return err
	}
	c.urls = append(c.urls, url)
	return nil
}

func (c *recordingClient) Notify(title, body string) error {
	if c.backend.Panic != nil {
		panic(c.backend.Panic)
	}
	c.backend.mu.Lock()
	c.backend.sent = append(c.backend.sent, SentMessage{Title: title, Body: body, URLs: c.urls})
	c.backend.mu.Unlock()
	return c.backend.NotifyErr
}
