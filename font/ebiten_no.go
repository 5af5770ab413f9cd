//go:build gtxt

package font

import "image"

// A GlyphBitmap is the image produced by rasterizing a glyph.
//
// Without Ebitengine (gtxt version), GlyphBitmap defaults to
// [*image.RGBA], with bounds starting at (0, 0) and the ink color
// premultiplied by per-pixel coverage.
//
// With Ebitengine, GlyphBitmap defaults to *ebiten.Image.
type GlyphBitmap = *image.RGBA

// This doesn't do anything in gtxt, only ebiten needs it.
func finalizeBitmap(rgba *image.RGBA) GlyphBitmap { return rgba }
