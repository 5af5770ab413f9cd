package cache

import "image/color"

import "github.com/blitkit/btxt/font"

// A Source is the part of a font asset that a [GlyphCache] needs in
// order to fill itself: scale derivation and rasterization. It is
// satisfied by [font.Asset], but tests and custom glyph providers can
// supply their own implementations.
type Source interface {
	// Converts a pixel size to the scale factor passed to Rasterize.
	ScaleFactor(size int) float64

	// Rasterizes the glyph for the given code point with the given
	// ink color baked in. Must return nil for glyphs without ink.
	// For a fixed (codePoint, scale, rgb) triple, the returned data
	// must always be consistent.
	Rasterize(codePoint rune, scale float64, rgb font.RGB) *font.GlyphResult
}

// A Key identifies one cached glyph rasterization. Keys are compared
// by value; no two distinct configurations may map to the same key.
//
// The color component is the 24-bit packed RGB, so colors differing
// only in alpha share a single slot (see [font.RGBFromColor]). This
// is a deliberate part of the caching contract.
type Key struct {
	Color font.RGB
	Size int
	CodePoint rune
}

// A GlyphCache memoizes the rasterizations of a single [Source] so
// each (color, size, code point) combination is rendered at most once
// during the cache's lifetime. Entries are never evicted nor
// invalidated; memory is bounded only by the number of distinct
// combinations requested, which callers must keep reasonable.
//
// Glyph caches have no internal locking. Using one from multiple
// goroutines requires external synchronization, or one cache per
// goroutine.
type GlyphCache struct {
	source Source
	rendered map[Key]*font.GlyphResult
}

// Creates a new, empty [GlyphCache] for the given source. Nil sources
// will panic.
func New(source Source) *GlyphCache {
	if source == nil { panic("nil cache source") } // likely a dev mistake
	return &GlyphCache {
		source: source,
		rendered: make(map[Key]*font.GlyphResult, 128),
	}
}

// Returns the rendered glyph for the given code point, color and
// pixel size, rasterizing it through the underlying source if the
// cache doesn't hold it yet.
//
// Returns nil for glyphs without ink. Inkless glyphs are not recorded
// in the cache: re-checking one is cheap enough that storing explicit
// "no glyph" entries isn't worth the complication, so a later call
// will simply ask the source again.
func (self *GlyphCache) GetOrRender(codePoint rune, clr color.Color, size int) *font.GlyphResult {
	key := Key{ Color: font.RGBFromColor(clr), Size: size, CodePoint: codePoint }
	result, found := self.rendered[key]
	if found { return result }

	result = self.source.Rasterize(codePoint, self.source.ScaleFactor(size), key.Color)
	if result == nil { return nil }
	self.rendered[key] = result
	return result
}

// Returns the number of glyph rasterizations currently stored.
func (self *GlyphCache) Len() int { return len(self.rendered) }

// Returns the source the cache was created with.
func (self *GlyphCache) Source() Source { return self.source }
