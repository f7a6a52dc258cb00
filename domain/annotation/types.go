package annotation

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/Nakamura9310/snapmark/domain/geometry"
)

// ID uniquely identifies an annotation for its lifetime. Ids are generated at
// creation and never reused.
type ID = uuid.UUID

// NewID returns a fresh annotation id.
func NewID() ID { return uuid.New() }

// Kind discriminates the closed set of annotation variants.
type Kind int

const (
	KindRectangle Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Default styling applied by the constructors.
var (
	DefaultStrokeColor = color.RGBA{R: 255, A: 255}
	DefaultTextColor   = color.RGBA{A: 255}
)

const (
	DefaultStrokeWidth = 2.0
	DefaultFontSize    = 14.0
)

// Annotation is a tagged variant over a rectangle highlight and a text label.
// Kind selects which of the variant fields are meaningful:
//
//   - KindRectangle: Position (top-left), Size, StrokeColor, StrokeWidth
//   - KindText: Position (anchor), Content, FontSize, TextColor
//
// Selected is transient UI state and is not persisted.
type Annotation struct {
	ID       ID
	Kind     Kind
	Position geometry.Point
	Selected bool

	// Rectangle highlight fields.
	Size        geometry.Size
	StrokeColor color.RGBA
	StrokeWidth float64

	// Text label fields.
	Content   string
	FontSize  float64
	TextColor color.RGBA
}

// NewRectangle returns a rectangle highlight with the default red 2px stroke.
// The id is assigned by Store.Insert.
func NewRectangle(position geometry.Point, size geometry.Size) Annotation {
	return Annotation{
		Kind:        KindRectangle,
		Position:    position,
		Size:        size,
		StrokeColor: DefaultStrokeColor,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// NewText returns a text label with the default black 14pt styling.
func NewText(position geometry.Point, content string) Annotation {
	return Annotation{
		Kind:      KindText,
		Position:  position,
		Content:   content,
		FontSize:  DefaultFontSize,
		TextColor: DefaultTextColor,
	}
}

// Bounds returns a rectangle fully covering the rendered annotation, used for
// hit-testing. Rectangle bounds grow by half the stroke width on each side so
// the drawn outline itself is hittable; text bounds come from the measurer.
func (a Annotation) Bounds(m TextMeasurer) geometry.Rect {
	switch a.Kind {
	case KindText:
		if m == nil {
			m = EstimateMeasurer{}
		}
		w, h := m.Measure(a.Content, a.FontSize)
		return geometry.FromPosSize(a.Position, geometry.Size{W: w, H: h})
	default:
		r := geometry.FromPosSize(a.Position, a.Size)
		return r.Inflate(a.StrokeWidth / 2)
	}
}
