// Package capture backs the domain capture.Provider with the operating
// system's real displays via github.com/kbinani/screenshot.
package capture

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/kbinani/screenshot"

	domain "github.com/Nakamura9310/snapmark/domain/capture"
	"github.com/Nakamura9310/snapmark/domain/geometry"
)

// Service enumerates displays and grabs pixel regions. It is stateless apart
// from the logger; every call reflects the current display topology.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Displays lists the active displays with logical bounds and DPI scale
// factors. Index 0 is treated as the primary display.
func (s *Service) Displays() ([]domain.DisplayInfo, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, domain.ErrNoDisplays
	}
	displays := make([]domain.DisplayInfo, 0, n)
	for i := 0; i < n; i++ {
		physical := screenshot.GetDisplayBounds(i)
		sx, sy := displayScale(physical)
		displays = append(displays, domain.DisplayInfo{
			Index:   i,
			Bounds:  geometry.FromImageRect(physical).Scale(1/sx, 1/sy),
			ScaleX:  sx,
			ScaleY:  sy,
			Primary: i == 0,
		})
	}
	if s.logger != nil {
		s.logger.Debug("enumerated displays", "count", n)
	}
	return displays, nil
}

// CaptureRegion grabs the given display-relative physical pixel bounds. The
// bounds must lie fully inside the display.
func (s *Service) CaptureRegion(bounds image.Rectangle, display int) (*image.RGBA, error) {
	n := screenshot.NumActiveDisplays()
	if display < 0 || display >= n {
		return nil, fmt.Errorf("%w: display %d of %d", domain.ErrDisplayOutOfRange, display, n)
	}
	physical := screenshot.GetDisplayBounds(display)
	abs := bounds.Add(physical.Min)
	if !abs.In(physical) {
		return nil, fmt.Errorf("%w: %v outside display %d %v", domain.ErrOutOfBounds, bounds, display, physical)
	}
	img, err := screenshot.CaptureRect(abs)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", display, err)
	}
	if s.logger != nil {
		s.logger.Debug("captured region", "display", display, "bounds", abs)
	}
	return img, nil
}
