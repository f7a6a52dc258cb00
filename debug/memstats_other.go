//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op off Windows; StartRuntimeLogger already covers
// the portable heap stats.
func StartMemLogger(time.Duration, *slog.Logger) {}
