package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/Nakamura9310/snapmark/config"
	"github.com/Nakamura9310/snapmark/domain/annotation"
	"github.com/Nakamura9310/snapmark/domain/capture"
	"github.com/Nakamura9310/snapmark/domain/compose"
	"github.com/Nakamura9310/snapmark/domain/geometry"
	"github.com/Nakamura9310/snapmark/domain/selection"
)

// Tool enumerates the editing tools the session context carries.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolText
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	case ToolText:
		return "text"
	default:
		return "unknown"
	}
}

// ErrNoImage means an operation needed a captured image loaded first.
var ErrNoImage = errors.New("editor: no captured image loaded")

// Session owns one editing session: the annotation store, the current tool,
// the selection machine lifecycle, and the captured buffer being edited.
// All mutating methods are called from the single goroutine driving input;
// capture and composite run on the worker pool with a one-shot hand-off and
// no shared mutable state.
type Session struct {
	logger   *slog.Logger
	cfg      *config.Config
	provider capture.Provider
	store    *annotation.Store
	machine  *selection.Machine
	tool     Tool
	pool     *Pool

	region capture.Region
	base   *image.RGBA

	// drag state for annotation interactions on the edited image
	dragStart  geometry.Point
	dragActive bool

	defaultStroke annotation.Annotation
	defaultText   annotation.Annotation
}

// NewSession builds a session around a capture provider. A nil cfg uses the
// defaults.
func NewSession(logger *slog.Logger, cfg *config.Config, provider capture.Provider) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Session{
		logger:   logger,
		cfg:      cfg,
		provider: provider,
		store:    annotation.NewStore(nil),
		tool:     ToolSelect,
		pool:     NewPool(0),
	}
	s.defaultStroke = annotation.NewRectangle(geometry.Point{}, geometry.Size{})
	s.defaultText = annotation.NewText(geometry.Point{}, "")
	if c, err := ParseColor(cfg.StrokeColor); err == nil {
		s.defaultStroke.StrokeColor = c
	}
	if c, err := ParseColor(cfg.TextColor); err == nil {
		s.defaultText.TextColor = c
	}
	if cfg.StrokeWidth > 0 {
		s.defaultStroke.StrokeWidth = cfg.StrokeWidth
	}
	if cfg.FontSize > 0 {
		s.defaultText.FontSize = cfg.FontSize
	}
	return s
}

// Store exposes the session's annotation store.
func (s *Session) Store() *annotation.Store { return s.store }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.tool }

// SetTool switches the active tool and drops any half-finished drag.
func (s *Session) SetTool(t Tool) {
	s.tool = t
	s.dragActive = false
}

// BeginSelection starts a fresh capture attempt and returns the machine the
// input layer should feed. Any previous machine is abandoned; machines are
// never reused across attempts.
func (s *Session) BeginSelection() *selection.Machine {
	s.machine = selection.NewMachine(s.logger)
	return s.machine
}

// SelectedRegion returns the finalized region once the current selection
// machine completed.
func (s *Session) SelectedRegion() (capture.Region, bool) {
	if s.machine == nil {
		return capture.Region{}, false
	}
	return s.machine.Region()
}

// Capture requests the region's pixels from the provider on the worker pool
// and blocks until the one-shot response arrives or ctx expires. On failure
// the session keeps its pre-capture state; the caller decides whether to
// notify or retry.
func (s *Session) Capture(ctx context.Context, region capture.Region) (*image.RGBA, error) {
	pixels := region.PixelBounds()
	resCh := make(chan captureResult, 1)
	submitted := s.pool.Submit(ctx, func(context.Context) (*image.RGBA, error) {
		return s.provider.CaptureRegion(pixels, region.Display().Index)
	}, func(img *image.RGBA, err error) {
		resCh <- captureResult{img: img, err: err}
	})
	if !submitted {
		return nil, errors.New("editor: capture already in progress")
	}

	select {
	case res := <-resCh:
		if res.err != nil {
			if s.logger != nil {
				s.logger.Error("capture failed", "error", res.err, "bounds", pixels)
			}
			return nil, fmt.Errorf("editor: capture: %w", res.err)
		}
		s.region = region
		s.base = res.img
		s.store = annotation.NewStore(nil)
		s.dragActive = false
		if s.logger != nil {
			s.logger.Info("capture loaded", "width", pixels.Dx(), "height", pixels.Dy(), "display", region.Display().Index)
		}
		return res.img, nil
	case <-ctx.Done():
		// The late result is discarded when it arrives; resCh is buffered.
		return nil, ctx.Err()
	}
}

type captureResult struct {
	img *image.RGBA
	err error
}

// LoadImage installs an externally captured buffer, e.g. from a file.
func (s *Session) LoadImage(img *image.RGBA, region capture.Region) {
	s.region = region
	s.base = img
	s.store = annotation.NewStore(nil)
	s.dragActive = false
}

// HasImage reports whether a captured buffer is loaded.
func (s *Session) HasImage() bool { return s.base != nil }

// Press begins an interaction on the edited image at a logical point. With
// the select tool it hit-tests and updates the single-selection; with the
// rectangle tool it anchors a new highlight drag.
func (s *Session) Press(p geometry.Point) {
	switch s.tool {
	case ToolSelect:
		s.store.ClearSelected()
		if id, ok := s.store.HitTest(p); ok {
			s.store.SetSelected(id, true)
		}
		s.dragStart = p
		s.dragActive = true
	case ToolRectangle:
		s.dragStart = p
		s.dragActive = true
	}
}

// Drag continues an interaction. With the select tool it moves the selected
// annotation by the pointer delta.
func (s *Session) Drag(p geometry.Point) {
	if !s.dragActive || s.tool != ToolSelect {
		return
	}
	id, ok := s.store.Selected()
	if !ok {
		return
	}
	dx, dy := p.X-s.dragStart.X, p.Y-s.dragStart.Y
	s.dragStart = p
	s.store.Update(id, func(a *annotation.Annotation) {
		a.Position = geometry.Point{X: a.Position.X + dx, Y: a.Position.Y + dy}
	})
}

// Release ends an interaction. With the rectangle tool a non-degenerate drag
// inserts a highlight using the session's default styling; a zero-drag click
// inserts nothing.
func (s *Session) Release(p geometry.Point) (annotation.ID, bool) {
	if !s.dragActive {
		return annotation.ID{}, false
	}
	s.dragActive = false
	if s.tool != ToolRectangle {
		return annotation.ID{}, false
	}
	rect := geometry.Normalize(s.dragStart, p)
	if rect.Area() <= 0 {
		return annotation.ID{}, false
	}
	a := s.defaultStroke
	a.Position = geometry.Point{X: rect.MinX, Y: rect.MinY}
	a.Size = geometry.Size{W: rect.Width(), H: rect.Height()}
	return s.store.Insert(a), true
}

// PlaceText inserts a text label at p with the session's default styling.
func (s *Session) PlaceText(p geometry.Point, content string) annotation.ID {
	a := s.defaultText
	a.Position = p
	a.Content = content
	return s.store.Insert(a)
}

// AddRectangle inserts a highlight with explicit geometry, keeping the
// default styling for unset fields.
func (s *Session) AddRectangle(pos geometry.Point, size geometry.Size) annotation.ID {
	a := s.defaultStroke
	a.Position = pos
	a.Size = size
	return s.store.Insert(a)
}

// ResizeSelected gives the selected rectangle a new size. Degenerate sizes
// and text labels are left alone.
func (s *Session) ResizeSelected(size geometry.Size) bool {
	id, ok := s.store.Selected()
	if !ok || size.W <= 0 || size.H <= 0 {
		return false
	}
	resized := false
	s.store.Update(id, func(a *annotation.Annotation) {
		if a.Kind == annotation.KindRectangle {
			a.Size = size
			resized = true
		}
	})
	return resized
}

// DeleteSelected removes the currently selected annotation, if any.
func (s *Session) DeleteSelected() bool {
	id, ok := s.store.Selected()
	if !ok {
		return false
	}
	return s.store.Remove(id)
}

// EditSelectedText replaces the content of the selected text label. A
// selected rectangle is left alone.
func (s *Session) EditSelectedText(content string) bool {
	id, ok := s.store.Selected()
	if !ok {
		return false
	}
	edited := false
	s.store.Update(id, func(a *annotation.Annotation) {
		if a.Kind == annotation.KindText {
			a.Content = content
			edited = true
		}
	})
	return edited
}

// Render composes the annotations onto the captured buffer on the worker
// pool and returns the new buffer. The store snapshot is taken up front, so
// the composite never sees concurrent mutation.
func (s *Session) Render(ctx context.Context) (*image.RGBA, error) {
	if s.base == nil {
		return nil, ErrNoImage
	}
	base := s.base
	snapshot := s.store.InZOrder()
	display := s.region.Display()
	if display.ScaleX <= 0 {
		display.ScaleX = 1.0
	}
	if display.ScaleY <= 0 {
		display.ScaleY = 1.0
	}
	resCh := make(chan captureResult, 1)
	submitted := s.pool.Submit(ctx, func(context.Context) (*image.RGBA, error) {
		return compose.Compose(base, snapshot, display.ScaleX, display.ScaleY), nil
	}, func(img *image.RGBA, err error) {
		resCh <- captureResult{img: img, err: err}
	})
	if !submitted {
		// Pool busy: composite inline rather than failing the export.
		return compose.Compose(base, snapshot, display.ScaleX, display.ScaleY), nil
	}
	select {
	case res := <-resCh:
		return res.img, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close releases the session's workers. The store and any captured buffer
// are dropped with the session; nothing is persisted.
func (s *Session) Close() {
	s.pool.Close()
}
