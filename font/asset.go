package font

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import xfont "golang.org/x/image/font"

// An Asset wraps a parsed outline font and exposes the read-only
// queries required for text layout and rasterization: glyph lookup,
// scaling, horizontal metrics and kerning. Assets are immutable after
// construction and hold no rendering state beyond an internal working
// buffer, which makes them unsafe for concurrent use (create one asset
// per goroutine or synchronize externally).
//
// Use [ParseFromBytes], [ParseFromPath] or [ParseFromFS] to create
// assets, or a [Library] to manage multiple ones.
type Asset struct {
	sfntFont *sfnt.Font
	buffer sfnt.Buffer
	unitsPerEm int
}

func newAsset(sfntFont *sfnt.Font) *Asset {
	return &Asset {
		sfntFont: sfntFont,
		unitsPerEm: int(sfntFont.UnitsPerEm()),
	}
}

// Returns the font units per em of the underlying font. This is the
// denominator used by [Asset.ScaleFactor]().
func (self *Asset) UnitsPerEm() int { return self.unitsPerEm }

// Returns the number of glyphs in the underlying font.
func (self *Asset) NumGlyphs() int { return self.sfntFont.NumGlyphs() }

// Returns the glyph index for the given code point, or zero if the
// font has no mapping for it. Index zero is the universal "missing
// glyph" sentinel; this method never fails.
func (self *Asset) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.sfntFont.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0 }
	return index
}

// Returns the multiplier that converts font-unit measurements to
// pixels for the given pixel size. Pure function of the font's units
// per em and the requested size.
func (self *Asset) ScaleFactor(size int) float64 {
	return float64(size)/float64(self.unitsPerEm)
}

// Returns the horizontal advance and left side bearing for the given
// code point, both pre-scaled to pixels for the given size (font-unit
// values multiplied by [Asset.ScaleFactor]() and truncated towards
// zero). The last return value is false when the font has no glyph
// for the code point; missing glyphs never cause a failure beyond it.
func (self *Asset) Metrics(codePoint rune, size int) (advance, bearing int, ok bool) {
	index := self.GlyphIndex(codePoint)
	if index == 0 { return 0, 0, false }
	rawAdvance, rawBearing, found := self.rawMetrics(index)
	if !found { return 0, 0, false }
	scale := self.ScaleFactor(size)
	return int(float64(rawAdvance)*scale), int(float64(rawBearing)*scale), true
}

// Returns the advance of the given code point in raw font units,
// unscaled. Used by width measuring functions that accumulate raw
// advances and apply the scale factor a single time at the end.
// The second return value is false for missing glyphs.
func (self *Asset) RawAdvance(codePoint rune) (int, bool) {
	index := self.GlyphIndex(codePoint)
	if index == 0 { return 0, false }
	advance, err := self.sfntFont.GlyphAdvance(&self.buffer, index, self.unitPpem(), xfont.HintingNone)
	if err != nil { return 0, false }
	return int(advance >> 6), true
}

// Returns the kerning adjustment between the two given code points,
// in pixels, at the given size. Returns zero for unsupported or
// missing pairs; "no kerning data" is a valid, common result, so this
// method never fails.
func (self *Asset) Kern(prev, next rune, size int) int {
	prevIndex := self.GlyphIndex(prev)
	nextIndex := self.GlyphIndex(next)
	if prevIndex == 0 || nextIndex == 0 { return 0 }
	kern, err := self.sfntFont.Kern(&self.buffer, prevIndex, nextIndex, self.unitPpem(), xfont.HintingNone)
	if err != nil { return 0 }
	return int(float64(int(kern >> 6))*self.ScaleFactor(size))
}

// Queried at units-per-em ppem so the returned values are exact raw
// font units encoded as 26.6 fixed point numbers.
func (self *Asset) rawMetrics(index sfnt.GlyphIndex) (advance, bearing int, ok bool) {
	bounds, fixedAdvance, err := self.sfntFont.GlyphBounds(&self.buffer, index, self.unitPpem(), xfont.HintingNone)
	if err != nil { return 0, 0, false }
	return int(fixedAdvance >> 6), int(bounds.Min.X >> 6), true
}

func (self *Asset) unitPpem() fixed.Int26_6 {
	return fixed.Int26_6(self.unitsPerEm << 6)
}
