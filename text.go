package cosmic

import "github.com/rivo/uniseg"

// TextMeasurer is the text measurement and hit-testing collaborator. The
// widget never shapes or rasterizes text itself; it asks the host's shaping
// engine where graphemes land and which grapheme a point touches.
//
// All indices are grapheme-cluster indices into the measured string, and
// points are relative to the text's own origin.
type TextMeasurer interface {
	// Measure returns the rendered dimensions of text at the given size.
	Measure(text string, size float32) Size

	// HitTest maps a point to the caret index closest to it, in
	// [0, grapheme count].
	HitTest(text string, size float32, p Point) int

	// GraphemePosition returns the position of the leading edge of the
	// grapheme at index (or of the trailing edge of the text for
	// index == grapheme count).
	GraphemePosition(text string, size float32, index int) Point
}

// MonoMeasurer is a fixed-advance TextMeasurer for tests, terminals, and
// any host where every grapheme occupies the same width.
type MonoMeasurer struct {
	// Advance is the width of one grapheme. Zero defaults to 8.
	Advance float32
	// LineHeight is the text height. Zero defaults to 16.
	LineHeight float32
}

func (m MonoMeasurer) advance() float32 {
	if m.Advance <= 0 {
		return 8
	}
	return m.Advance
}

func (m MonoMeasurer) lineHeight() float32 {
	if m.LineHeight <= 0 {
		return 16
	}
	return m.LineHeight
}

// Measure returns grapheme count times the fixed advance.
func (m MonoMeasurer) Measure(text string, size float32) Size {
	return Size{
		W: float32(uniseg.GraphemeClusterCount(text)) * m.advance(),
		H: m.lineHeight(),
	}
}

// HitTest rounds the point to the nearest caret boundary.
func (m MonoMeasurer) HitTest(text string, size float32, p Point) int {
	count := uniseg.GraphemeClusterCount(text)
	if p.X <= 0 {
		return 0
	}

	index := int((p.X + m.advance()/2) / m.advance())
	if index > count {
		return count
	}
	return index
}

// GraphemePosition returns the leading edge of the grapheme at index.
func (m MonoMeasurer) GraphemePosition(text string, size float32, index int) Point {
	count := uniseg.GraphemeClusterCount(text)
	index = clampIndex(index, count)
	return Point{X: float32(index) * m.advance(), Y: 0}
}
