//go:build !gtxt

package cache

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/blitkit/btxt/font"

// used for testing purposes
func newEmptyBitmap(width, height int) font.GlyphBitmap {
	return ebiten.NewImage(width, height)
}
