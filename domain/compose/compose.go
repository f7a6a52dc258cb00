package compose

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Nakamura9310/snapmark/domain/annotation"
)

// FontProvider supplies a font face for a physical pixel size. Glyph
// rasterization is an external concern; the compositor only decides where and
// in what order text is drawn.
type FontProvider interface {
	Face(size float64) font.Face
}

// BasicFont is the built-in fallback: the fixed-size 7x13 face regardless of
// the requested size.
type BasicFont struct{}

func (BasicFont) Face(size float64) font.Face { return basicfont.Face7x13 }

// Compose burns the annotations into a copy of base, bottom-to-top in slice
// order, at physical coordinates scaled by (scaleX, scaleY). It never mutates
// base and is deterministic: identical inputs produce byte-identical buffers.
// Annotations falling outside the buffer are clipped, to nothing if need be.
func Compose(base *image.RGBA, annotations []annotation.Annotation, scaleX, scaleY float64) *image.RGBA {
	return ComposeWith(base, annotations, scaleX, scaleY, BasicFont{})
}

// ComposeWith is Compose with an explicit font provider.
func ComposeWith(base *image.RGBA, annotations []annotation.Annotation, scaleX, scaleY float64, fonts FontProvider) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, base.Bounds().Dx(), base.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), base, base.Bounds().Min, draw.Src)

	if fonts == nil {
		fonts = BasicFont{}
	}
	for _, a := range annotations {
		switch a.Kind {
		case annotation.KindRectangle:
			drawRectOutline(out, a, scaleX, scaleY)
		case annotation.KindText:
			drawTextLabel(out, a, scaleX, scaleY, fonts)
		}
	}
	return out
}

// drawRectOutline strokes an unfilled rectangle as four filled bands, clipped
// to the buffer.
func drawRectOutline(img *image.RGBA, a annotation.Annotation, scaleX, scaleY float64) {
	x0 := round(a.Position.X * scaleX)
	y0 := round(a.Position.Y * scaleY)
	x1 := round((a.Position.X + a.Size.W) * scaleX)
	y1 := round((a.Position.Y + a.Size.H) * scaleY)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	w := round(a.StrokeWidth * math.Min(scaleX, scaleY))
	if w < 1 {
		w = 1
	}

	fillRect(img, x0, y0, x1, y0+w, a.StrokeColor)   // top
	fillRect(img, x0, y1-w, x1, y1, a.StrokeColor)   // bottom
	fillRect(img, x0, y0+w, x0+w, y1-w, a.StrokeColor) // left
	fillRect(img, x1-w, y0+w, x1, y1-w, a.StrokeColor) // right
}

// fillRect sets pixels in [x0,x1) x [y0,y1), clamped to img bounds. Empty or
// fully off-canvas rects draw nothing.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := img.Bounds()
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawTextLabel rasterizes the label with its anchor at the scaled position.
// font.Drawer clips glyphs to the destination bounds, so partially off-canvas
// text degrades to its visible part.
func drawTextLabel(img *image.RGBA, a annotation.Annotation, scaleX, scaleY float64, fonts FontProvider) {
	face := fonts.Face(a.FontSize * math.Min(scaleX, scaleY))
	if face == nil {
		return
	}
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(a.TextColor),
		Face: face,
		Dot: fixed.P(
			round(a.Position.X*scaleX),
			round(a.Position.Y*scaleY)+ascent,
		),
	}
	d.DrawString(a.Content)
}

// round matches geometry.Rect.Pixels: half away from zero.
func round(v float64) int { return int(math.Round(v)) }
