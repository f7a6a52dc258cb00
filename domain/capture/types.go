package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/Nakamura9310/snapmark/domain/geometry"
)

var (
	// ErrDegenerateArea marks a selection with zero or negative area. Callers
	// recover locally; it is never surfaced to the user as a failure.
	ErrDegenerateArea = errors.New("capture: selection has no area")

	// ErrNoDisplays means the provider found no active displays.
	ErrNoDisplays = errors.New("capture: no active displays")

	// ErrDisplayOutOfRange means a display index does not exist.
	ErrDisplayOutOfRange = errors.New("capture: display index out of range")

	// ErrOutOfBounds means requested pixel bounds extend beyond the display.
	ErrOutOfBounds = errors.New("capture: bounds extend beyond display")
)

// DisplayInfo describes one physical display: its index, desktop-relative
// logical bounds, and the logical-to-physical DPI scale factors.
type DisplayInfo struct {
	Index   int
	Bounds  geometry.Rect
	ScaleX  float64
	ScaleY  float64
	Primary bool
}

// NewDisplayInfo returns a DisplayInfo with the default 1.0 scale factors.
func NewDisplayInfo(index int, bounds geometry.Rect) DisplayInfo {
	return DisplayInfo{Index: index, Bounds: bounds, ScaleX: 1.0, ScaleY: 1.0}
}

// Provider supplies display metadata and raw pixel buffers. The engine never
// touches hardware APIs; it only hands a region's physical pixel bounds to a
// Provider and receives a buffer of matching dimensions.
type Provider interface {
	// Displays enumerates active displays. Returns ErrNoDisplays when none exist.
	Displays() ([]DisplayInfo, error)
	// CaptureRegion grabs the given display-relative physical pixel bounds of
	// one display and returns a buffer of exactly those dimensions.
	CaptureRegion(bounds image.Rectangle, display int) (*image.RGBA, error)
}

// PrimaryDisplay returns the display flagged primary, falling back to the
// first entry when none carries the flag.
func PrimaryDisplay(displays []DisplayInfo) (DisplayInfo, error) {
	if len(displays) == 0 {
		return DisplayInfo{}, ErrNoDisplays
	}
	for _, d := range displays {
		if d.Primary {
			return d, nil
		}
	}
	return displays[0], nil
}

// DisplayAt finds the display whose logical bounds contain p.
func DisplayAt(displays []DisplayInfo, p geometry.Point) (DisplayInfo, bool) {
	for _, d := range displays {
		if d.Bounds.Contains(p) {
			return d, true
		}
	}
	return DisplayInfo{}, false
}

// DesktopBounds returns the union of all display bounds, the full virtual
// desktop in logical coordinates.
func DesktopBounds(displays []DisplayInfo) (geometry.Rect, error) {
	if len(displays) == 0 {
		return geometry.Rect{}, ErrNoDisplays
	}
	union := displays[0].Bounds
	for _, d := range displays[1:] {
		union = union.Union(d.Bounds)
	}
	return union, nil
}

// Region is a finalized capture region: normalized logical bounds on a single
// display. Immutable once constructed; a new capture attempt always builds a
// new Region.
type Region struct {
	bounds  geometry.Rect
	display DisplayInfo
}

// NewRegion validates and builds a Region. The bounds must already be
// normalized (min <= max) and display-relative. Zero-area bounds yield
// ErrDegenerateArea.
func NewRegion(bounds geometry.Rect, display DisplayInfo) (Region, error) {
	if bounds.Area() <= 0 {
		return Region{}, ErrDegenerateArea
	}
	return Region{bounds: bounds, display: display}, nil
}

// RegionFromPoints builds a Region from two arbitrary desktop-space points.
// The display containing the center of the spanned rectangle wins, and the
// bounds are converted to that display's local coordinates.
func RegionFromPoints(p1, p2 geometry.Point, displays []DisplayInfo) (Region, error) {
	bounds := geometry.Normalize(p1, p2)
	display, ok := DisplayAt(displays, bounds.Center())
	if !ok {
		return Region{}, fmt.Errorf("capture: selection center %+v is not on any display", bounds.Center())
	}
	local := bounds.Translate(-display.Bounds.MinX, -display.Bounds.MinY)
	return NewRegion(local, display)
}

// Bounds returns the logical, display-relative bounds.
func (r Region) Bounds() geometry.Rect { return r.bounds }

// Display returns the display metadata the region belongs to.
func (r Region) Display() DisplayInfo { return r.display }

// PhysicalBounds returns the bounds scaled by the display's DPI factors.
func (r Region) PhysicalBounds() geometry.Rect {
	return r.bounds.Scale(r.display.ScaleX, r.display.ScaleY)
}

// PixelBounds rounds PhysicalBounds to the integer pixel grid. This is the
// point where fractional DPI meets pixels; rounding is half away from zero.
func (r Region) PixelBounds() image.Rectangle {
	return r.PhysicalBounds().Pixels()
}
