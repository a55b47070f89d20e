//go:build !nonotify

package notifications

import (
	"errors"
	"fmt"
	neturl "net/url"

	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"
)

func defaultCapability() Capability {
	return Available(newShoutrrrClient)
}

// shoutrrrClient keeps one sender per URL so a URL that fails to parse or
// deliver never blocks the others.
type shoutrrrClient struct {
	senders []*router.ServiceRouter
	urls    []string
}

func newShoutrrrClient() Client {
	return &shoutrrrClient{}
}

func (c *shoutrrrClient) Add(url string) error {
	sender, err := router.New(nil)
	if err != nil {
		return fmt.Errorf("create %s sender: %w", serviceName(url), err)
	}
	// AddService keeps the parse error typed; the message of *url.Error
	// quotes the whole URL, credentials included.
	if err := sender.AddService(backendURL(url)); err != nil {
		var parseErr *neturl.Error
		if errors.As(err, &parseErr) {
			err = parseErr.Err
		}
		return fmt.Errorf("register %s backend: %w", serviceName(url), err)
	}
	c.senders = append(c.senders, sender)
	c.urls = append(c.urls, url)
	return nil
}

func (c *shoutrrrClient) Notify(title, body string) error {
	if len(c.senders) == 0 {
		return errors.New("no backends registered")
	}
	params := types.Params{"title": title}

	var errs []error
	for i, sender := range c.senders {
		for _, err := range sender.Send(body, &params) {
			if err != nil {
				errs = append(errs, fmt.Errorf("send via %s: %w", serviceName(c.urls[i]), err))
			}
		}
	}
	return errors.Join(errs...)
}
