//go:build gtxt

package cache

import "image"

import "github.com/blitkit/btxt/font"

// used for testing purposes
func newEmptyBitmap(width, height int) font.GlyphBitmap {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
