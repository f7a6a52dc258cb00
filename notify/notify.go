// Package notify raises a desktop notification once an export lands on disk
// or the clipboard.
package notify

// Notifier shows a short desktop notification.
type Notifier interface {
	Show(title, message string) error
}

// Noop is used where desktop notifications are unavailable or disabled.
type Noop struct{}

func (Noop) Show(string, string) error { return nil }
