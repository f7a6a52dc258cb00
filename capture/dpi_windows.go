//go:build windows

package capture

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	monitorDefaultToNearest = 2
	mdtEffectiveDPI         = 0
	baseDPI                 = 96.0
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procMonitorFromPoint       = user32.NewProc("MonitorFromPoint")
	procGetDpiForMonitor       = shcore.NewProc("GetDpiForMonitor")
	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
)

func init() {
	// PROCESS_PER_MONITOR_DPI_AWARE, so display bounds and captures come
	// back in physical pixels instead of being virtualized.
	procSetProcessDpiAwareness.Call(uintptr(2))
}

// displayScale queries the effective DPI of the monitor containing the
// bounds' center. Falls back to 1.0 when the query is unavailable.
func displayScale(bounds image.Rectangle) (float64, float64) {
	cx, cy := bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/2
	// POINT is 8 bytes and is passed by value in a single register.
	pt := uintptr(uint32(cx)) | uintptr(uint32(cy))<<32
	hmon, _, _ := procMonitorFromPoint.Call(pt, monitorDefaultToNearest)
	if hmon == 0 {
		return 1.0, 1.0
	}
	var dpiX, dpiY uint32
	ret, _, _ := procGetDpiForMonitor.Call(
		hmon,
		uintptr(mdtEffectiveDPI),
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if ret != 0 || dpiX == 0 || dpiY == 0 {
		return 1.0, 1.0
	}
	return float64(dpiX) / baseDPI, float64(dpiY) / baseDPI
}
