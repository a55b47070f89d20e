//go:build nonotify

package notifications

func defaultCapability() Capability {
	return Unavailable()
}
