// Package notifications delivers backup events to users through URL-addressed
// notification backends.
//
// A Notifier exposes one method per event (channel offline, video offline,
// download complete, download errors, quota exceeded, new videos). Each method
// checks the global notifications switch and the per-event switch, builds a
// self-contained title and body, and fans the message out to every configured
// backend URL through a dispatch Capability. The default capability is backed
// by Shoutrrr; builds tagged nonotify carry no backend and every send becomes a
// logged no-op.
//
// Event methods are fire-and-forget: backend failures are logged and never
// returned, so callers in the backup loop can notify without error handling.
package notifications
