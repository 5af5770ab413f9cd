package btxt

import "image/color"

import "github.com/blitkit/btxt/cache"

// This file contains the Renderer type definition and all the getter
// and setter methods. Actual drawing and measuring operations are
// split into other files.

// The [Renderer] is the heart of btxt. It owns a glyph cache for its
// font source and walks text strings code point by code point,
// converting them into positioned glyph blits on a [Surface].
//
// Renderers are single threaded: both the cache and the font source
// working buffers are unsynchronized, so concurrent use requires one
// renderer (with its own font asset) per goroutine.
type Renderer struct {
	source FontSource
	glyphs *cache.GlyphCache
	mainColor color.Color
	sizePx int
}

// Creates a [Renderer] for the given font source, along with the
// glyph cache that will live and grow with it. The default text color
// is white and the default size is 16px.
//
// The font source can't be changed afterwards: cached glyph bitmaps
// are only keyed by color, size and code point, so the cache and its
// source stay tied together for their whole lifetime. Use a separate
// renderer per font.
func NewRenderer(source FontSource) *Renderer {
	if source == nil { panic("nil font source") } // likely a dev mistake
	return &Renderer {
		source: source,
		glyphs: cache.New(source),
		mainColor: color.RGBA{255, 255, 255, 255},
		sizePx: 16,
	}
}

// Sets the font size, in pixels, to be used on subsequent operations.
// Sizes must be strictly positive or the method will panic.
func (self *Renderer) SetSize(sizePx int) {
	if sizePx <= 0 { panic("text size must be positive") }
	self.sizePx = sizePx
}

// Returns the current font size in pixels. The default value is 16.
func (self *Renderer) GetSize() int { return self.sizePx }

// Sets the color to be used on subsequent draw operations. The
// default color is white.
//
// Notice that only the RGB channels participate in glyph cache keys:
// requesting the same RGB with different alphas reuses whichever
// glyph bitmap was rasterized first.
func (self *Renderer) SetColor(mainColor color.Color) {
	self.mainColor = mainColor
}

// Returns the current drawing color.
func (self *Renderer) GetColor() color.Color { return self.mainColor }

// Returns the font source the renderer was created with.
func (self *Renderer) GetSource() FontSource { return self.source }

// Returns the renderer's glyph cache. Rarely needed outside cache
// memory inspection.
func (self *Renderer) GetCache() *cache.GlyphCache { return self.glyphs }
