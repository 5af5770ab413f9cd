package btxt

// Returns the width of the given text, in pixels, at the renderer's
// current size. The computation accumulates raw font-unit advances
// for every code point and applies the scale factor a single time at
// the end, which keeps repeated glyphs perfectly additive instead of
// accumulating per-glyph truncation error.
//
// Measuring ignores kerning and side bearings and is independent of
// color and of the glyph cache. In particular, the measured width is
// not guaranteed to match the final pen position that [Renderer.Draw]()
// reaches for the same text (drawing skips inkless code points and
// applies kerning; measuring does neither).
func (self *Renderer) MeasureWidth(text string) int {
	totalRawAdvance := 0
	for _, codePoint := range text {
		rawAdvance, ok := self.source.RawAdvance(codePoint)
		if !ok { continue } // missing glyphs are widthless
		totalRawAdvance += rawAdvance
	}
	return int(float64(totalRawAdvance)*self.source.ScaleFactor(self.sizePx))
}
