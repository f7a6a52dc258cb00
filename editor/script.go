package editor

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Nakamura9310/snapmark/domain/annotation"
	"github.com/Nakamura9310/snapmark/domain/geometry"
)

// Script is a YAML list of annotation steps applied to a capture in order,
// so z-order follows the file. Example:
//
//	- rect: { x: 10, y: 10, w: 120, h: 40, color: "#00ff00", width: 3 }
//	- text: { x: 14, y: 16, content: "login button", size: 18 }
type Script struct {
	Steps []Step
}

// Step is one script entry; exactly one of the members is set.
type Step struct {
	Rect *RectStep `yaml:"rect,omitempty"`
	Text *TextStep `yaml:"text,omitempty"`
}

// RectStep describes a rectangle highlight in logical coordinates.
type RectStep struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Color string  `yaml:"color,omitempty"`
	Width float64 `yaml:"width,omitempty"`
}

// TextStep describes a text label in logical coordinates.
type TextStep struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Content string  `yaml:"content"`
	Size    float64 `yaml:"size,omitempty"`
	Color   string  `yaml:"color,omitempty"`
}

// LoadScript decodes a YAML step list and validates each step.
func LoadScript(r io.Reader) (Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Script{}, fmt.Errorf("editor: read script: %w", err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return Script{}, fmt.Errorf("editor: parse script: %w", err)
	}
	for i, st := range steps {
		switch {
		case st.Rect != nil && st.Text != nil:
			return Script{}, fmt.Errorf("editor: script step %d sets both rect and text", i+1)
		case st.Rect == nil && st.Text == nil:
			return Script{}, fmt.Errorf("editor: script step %d is empty", i+1)
		case st.Rect != nil && st.Rect.W*st.Rect.H <= 0:
			return Script{}, fmt.Errorf("editor: script step %d rect has no area", i+1)
		case st.Text != nil && st.Text.Content == "":
			return Script{}, fmt.Errorf("editor: script step %d text has no content", i+1)
		}
	}
	return Script{Steps: steps}, nil
}

// Apply inserts the script's annotations into the session in file order.
func (s *Session) Apply(script Script) error {
	for i, st := range script.Steps {
		switch {
		case st.Rect != nil:
			id := s.AddRectangle(geometry.Pt(st.Rect.X, st.Rect.Y), geometry.Size{W: st.Rect.W, H: st.Rect.H})
			if st.Rect.Color != "" {
				c, err := ParseColor(st.Rect.Color)
				if err != nil {
					return fmt.Errorf("editor: script step %d: %w", i+1, err)
				}
				s.store.Update(id, func(a *annotation.Annotation) { a.StrokeColor = c })
			}
			if st.Rect.Width > 0 {
				s.store.Update(id, func(a *annotation.Annotation) { a.StrokeWidth = st.Rect.Width })
			}
		case st.Text != nil:
			id := s.PlaceText(geometry.Pt(st.Text.X, st.Text.Y), st.Text.Content)
			if st.Text.Size > 0 {
				s.store.Update(id, func(a *annotation.Annotation) { a.FontSize = st.Text.Size })
			}
			if st.Text.Color != "" {
				c, err := ParseColor(st.Text.Color)
				if err != nil {
					return fmt.Errorf("editor: script step %d: %w", i+1, err)
				}
				s.store.Update(id, func(a *annotation.Annotation) { a.TextColor = c })
			}
		}
	}
	return nil
}

// namedColors is the palette accepted by name in configs and scripts.
var namedColors = map[string]color.RGBA{
	"red":    {R: 255, A: 255},
	"green":  {G: 180, A: 255},
	"blue":   {B: 255, A: 255},
	"yellow": {R: 255, G: 200, A: 255},
	"orange": {R: 255, G: 128, A: 255},
	"purple": {R: 180, B: 255, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"black":  {A: 255},
}

// ParseColor accepts a named color or a #rrggbb hex value.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(name, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("editor: unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("editor: bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
