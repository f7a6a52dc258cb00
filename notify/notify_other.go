//go:build !windows

package notify

// NewNotifier returns a no-op notifier; toast notifications are only wired
// on Windows.
func NewNotifier() Notifier {
	return Noop{}
}
