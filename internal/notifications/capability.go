package notifications

// Client is one dispatch session: register backend URLs, then send a single
// message to all of them.
type Client interface {
	// Add registers a backend URL. A failing URL does not affect URLs
	// already registered.
	Add(url string) error
	// Notify delivers the message to every registered backend. Failures of
	// individual backends are joined into the returned error.
	Notify(title, body string) error
}

// ClientFactory builds a fresh Client for each dispatch.
type ClientFactory func() Client

// Capability records whether a dispatch backend is linked into the binary.
type Capability struct {
	factory ClientFactory
}

// Available returns a capability that dispatches through clients built by
// factory. A nil factory is treated as unavailable.
func Available(factory ClientFactory) Capability {
	return Capability{factory: factory}
}

// Unavailable returns a capability that never dispatches.
func Unavailable() Capability {
	return Capability{}
}

// DefaultCapability returns the backend compiled into this build.
func DefaultCapability() Capability {
	return defaultCapability()
}

// IsAvailable reports whether messages can be dispatched.
func (c Capability) IsAvailable() bool {
	return c.factory != nil
}

func (c Capability) newClient() Client {
	return c.factory()
}
