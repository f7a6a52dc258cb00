//go:build !windows

package capture

import "image"

// displayScale on non-Windows platforms assumes a 1:1 pixel grid; X11 and
// Wayland backends already hand kbinani/screenshot physical pixels.
func displayScale(image.Rectangle) (float64, float64) {
	return 1.0, 1.0
}
