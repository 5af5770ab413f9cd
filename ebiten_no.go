//go:build gtxt

package btxt

import "image"
import "image/draw"

var _ Surface = (*ImageSurface)(nil)

// An ImageSurface composes glyph bitmaps onto any standard library
// [draw.Image]. Glyph bitmaps are premultiplied and carry coverage in
// their alpha channel, so a plain source-over composition is the
// whole blit.
type ImageSurface struct {
	target draw.Image
}

// Creates an [ImageSurface] drawing onto the given target image.
func NewImageSurface(target draw.Image) *ImageSurface {
	if target == nil { panic("nil surface target") }
	return &ImageSurface{ target: target }
}

// Returns the image the surface draws onto.
func (self *ImageSurface) Target() draw.Image { return self.target }

// Satisfies the [Surface] interface.
func (self *ImageSurface) Blit(bitmap GlyphBitmap, x, y int) {
	if bitmap == nil { return } // spaces and empty glyphs
	destRect := bitmap.Bounds().Add(image.Pt(x, y))
	draw.Draw(self.target, destRect, bitmap, bitmap.Bounds().Min, draw.Over)
}

// used for testing purposes
func newEmptyBitmap(width, height int) GlyphBitmap {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
