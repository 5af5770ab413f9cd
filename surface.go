package btxt

// A Surface is the capability a rendering target must offer: placing
// a glyph bitmap at integer pixel coordinates, composing it through
// its alpha channel. Glyph bitmaps already carry their ink color
// baked in, so surfaces must never reinterpret or recolor them.
//
// Within a single draw operation, blits arrive in the text's left to
// right code point order. Ordering across independent draw calls is
// the caller's responsibility.
//
// [ImageSurface] (gtxt) and [ScreenSurface] (Ebitengine) are the two
// built-in implementations; host programs with their own framebuffer
// types only need to implement this single method.
type Surface interface {
	Blit(bitmap GlyphBitmap, x, y int)
}
