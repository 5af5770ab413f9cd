package btxt

import "github.com/blitkit/btxt/font"
import "github.com/blitkit/btxt/cache"

// This file contains aliases and small helper definitions required
// to make the main package pleasant to use without importing the
// subpackages for common types.

// An alias for [font.GlyphBitmap], the image produced by rasterizing
// a glyph (*ebiten.Image by default, *image.RGBA with the gtxt
// build tag).
type GlyphBitmap = font.GlyphBitmap

// An alias for [font.GlyphResult], the bitmap plus layout metrics
// produced by rasterizing a glyph.
type GlyphResult = font.GlyphResult

// An alias for [font.RGB], the packed color format used for glyph
// cache keys and baked glyph ink.
type RGB = font.RGB

// A FontSource exposes everything a [Renderer] needs from a font:
// the rasterization queries of [cache.Source] plus scaled horizontal
// metrics, kerning and raw advances. It is satisfied by [font.Asset].
//
// Metrics and Rasterize are expected to agree on which code points
// exist; a code point whose metrics lookup fails is treated as absent
// by [Renderer.Draw] even if Rasterize produced a bitmap for it.
type FontSource interface {
	cache.Source

	// Pre-scaled advance and left side bearing for a code point at
	// the given pixel size. Returns ok == false for missing glyphs.
	Metrics(codePoint rune, size int) (advance, bearing int, ok bool)

	// Kerning adjustment in pixels between two code points at the
	// given pixel size. Zero for missing or unsupported pairs.
	Kern(prev, next rune, size int) int

	// Advance in raw font units, for accumulated width measuring.
	RawAdvance(codePoint rune) (int, bool)
}

var _ FontSource = (*font.Asset)(nil)
