//go:build !gtxt

package btxt

import "github.com/hajimehoshi/ebiten/v2"

var _ Surface = (*ScreenSurface)(nil)

// A ScreenSurface composes glyph bitmaps onto an [*ebiten.Image],
// typically the screen passed to your game's Draw function. Glyph
// bitmaps carry their ink color baked in, so the draw operation is a
// plain translated image draw.
type ScreenSurface struct {
	target *ebiten.Image
}

// Creates a [ScreenSurface] drawing onto the given target image.
func NewScreenSurface(target *ebiten.Image) *ScreenSurface {
	if target == nil { panic("nil surface target") }
	return &ScreenSurface{ target: target }
}

// Returns the image the surface draws onto.
func (self *ScreenSurface) Target() *ebiten.Image { return self.target }

// Replaces the image the surface draws onto. Handy when the screen
// image changes between frames.
func (self *ScreenSurface) SetTarget(target *ebiten.Image) {
	if target == nil { panic("nil surface target") }
	self.target = target
}

// Satisfies the [Surface] interface.
func (self *ScreenSurface) Blit(bitmap GlyphBitmap, x, y int) {
	if bitmap == nil { return } // spaces and empty glyphs
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	self.target.DrawImage(bitmap, &opts)
}

// used for testing purposes
func newEmptyBitmap(width, height int) GlyphBitmap {
	return ebiten.NewImage(width, height)
}
