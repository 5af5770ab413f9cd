package font

import "image/color"

// A packed 24-bit RGB color in 0xRRGGBB form. Packed colors are used
// both as the color component of glyph cache keys and as the ink color
// baked into rasterized glyphs.
//
// The alpha channel of the original color is not part of the packed
// value. Glyph bitmaps carry per-pixel coverage in their alpha channel
// instead, so two colors that only differ in alpha are considered the
// same ink.
type RGB uint32

// Packs the given color, dropping its alpha channel. Premultiplied
// colors are unpremultiplied first so that the same nominal color
// always packs to the same value regardless of transparency.
func RGBFromColor(clr color.Color) RGB {
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return RGB(nrgba.R)<<16 | RGB(nrgba.G)<<8 | RGB(nrgba.B)
}

// Returns the three 8-bit color components of the packed color.
func (self RGB) Components() (r, g, b uint8) {
	return uint8(self >> 16), uint8(self >> 8), uint8(self)
}

// A GlyphResult is the outcome of rasterizing one glyph at a specific
// size and ink color. Results are immutable once produced; they are
// shared freely between the cache and all its users.
type GlyphResult struct {
	// The rasterized glyph image, with the ink color already baked
	// into the color channels (premultiplied by coverage). Surfaces
	// only need to alpha-compose it, never recolor it.
	Bitmap GlyphBitmap

	// Horizontal advance in pixels, already scaled to the pixel
	// size the glyph was rasterized at.
	XAdvance int

	// Vertical offset in pixels from the baseline to the top of the
	// bitmap. Typically negative, as most glyphs ascend.
	YOffset int
}
