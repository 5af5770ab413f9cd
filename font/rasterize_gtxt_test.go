//go:build gtxt

package font

import "image"
import "testing"
import "image/color"

// Pixel level checks only run on the gtxt version, where glyph
// bitmaps are plain RGBA images that can be inspected directly.

func TestRasterizeBakedColor(t *testing.T) {
	asset := parseGoRegular(t)
	scale := asset.ScaleFactor(32)
	ink := RGBFromColor(color.RGBA{200, 30, 30, 255})

	result := asset.Rasterize('A', scale, ink)
	if result == nil { t.Fatal("expected a result for 'A'") }
	bitmap := result.Bitmap
	if bitmap.Bounds().Min != (image.Point{}) {
		t.Fatalf("expected bitmap bounds at the origin, got %v", bitmap.Bounds())
	}

	fullCoverageSeen := false
	inkSeen := false
	for i := 0; i < len(bitmap.Pix); i += 4 {
		r, g, b, a := bitmap.Pix[i], bitmap.Pix[i+1], bitmap.Pix[i+2], bitmap.Pix[i+3]

		// premultiplied: no channel may exceed the coverage alpha
		if r > a || g > a || b > a {
			t.Fatalf("non-premultiplied pixel (%d, %d, %d, %d)", r, g, b, a)
		}
		if a > 0 { inkSeen = true }
		if a == 255 {
			fullCoverageSeen = true
			if r != 200 || g != 30 || b != 30 {
				t.Fatalf("expected baked ink (200, 30, 30), got (%d, %d, %d)", r, g, b)
			}
		}
	}
	if !inkSeen { t.Fatal("expected some ink in the bitmap") }
	if !fullCoverageSeen {
		t.Fatal("expected at least one fully covered pixel in a 32px 'A'")
	}
}

func TestRasterizeIdenticalBitmaps(t *testing.T) {
	asset := parseGoRegular(t)
	scale := asset.ScaleFactor(24)
	ink := RGBFromColor(color.RGBA{255, 255, 255, 255})

	first  := asset.Rasterize('k', scale, ink)
	second := asset.Rasterize('k', scale, ink)
	if first == nil || second == nil { t.Fatal("expected results for 'k'") }
	if len(first.Bitmap.Pix) != len(second.Bitmap.Pix) {
		t.Fatal("expected identically sized bitmaps")
	}
	for i, value := range first.Bitmap.Pix {
		if second.Bitmap.Pix[i] != value {
			t.Fatalf("bitmaps differ at byte %d", i)
		}
	}
}
