//go:build !gtxt

package font

import "image"

import "github.com/hajimehoshi/ebiten/v2"

// A GlyphBitmap is the image produced by rasterizing a glyph.
//
// Without Ebitengine (gtxt version), GlyphBitmap defaults to
// [*image.RGBA], with bounds starting at (0, 0) and the ink color
// premultiplied by per-pixel coverage.
//
// With Ebitengine, GlyphBitmap defaults to *ebiten.Image.
type GlyphBitmap = *ebiten.Image

// Uploads the baked glyph image so it can be drawn on GPU targets.
func finalizeBitmap(rgba *image.RGBA) GlyphBitmap {
	if rgba == nil { return nil }
	return ebiten.NewImageFromImage(rgba)
}
