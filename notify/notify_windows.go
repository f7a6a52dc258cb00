//go:build windows

package notify

import (
	"github.com/go-toast/toast"
)

type windowsNotifier struct {
	appID string
}

// NewNotifier returns a toast-backed notifier.
func NewNotifier() Notifier {
	return &windowsNotifier{appID: "Snapmark"}
}

// Show pushes the toast from a goroutine so a slow shell never blocks the
// export path.
func (n *windowsNotifier) Show(title, message string) error {
	go func() {
		notification := toast.Notification{
			AppID:   n.appID,
			Title:   title,
			Message: message,
		}
		_ = notification.Push()
	}()
	return nil
}
