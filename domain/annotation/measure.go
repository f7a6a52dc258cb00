package annotation

import "unicode/utf8"

// TextMeasurer reports the rendered extent of a text label. Real glyph
// measurement belongs to the rendering collaborator; implementations of this
// interface adapt it for hit-testing.
type TextMeasurer interface {
	Measure(content string, fontSize float64) (w, h float64)
}

// EstimateMeasurer approximates text extent from content length and font
// size. It deliberately over-covers slightly so hit-testing never misses
// rendered glyphs: width 0.6em per rune, height 1.2em.
type EstimateMeasurer struct{}

func (EstimateMeasurer) Measure(content string, fontSize float64) (w, h float64) {
	runes := utf8.RuneCountInString(content)
	return float64(runes) * fontSize * 0.6, fontSize * 1.2
}
