//go:build gtxt

package btxt

import "image"
import "testing"
import "image/color"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/blitkit/btxt/font"

// End to end check with a real font and a real image target.
func TestDrawOnImage(t *testing.T) {
	asset, _, err := font.ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	renderer := NewRenderer(asset)
	renderer.SetSize(24)
	renderer.SetColor(color.RGBA{255, 255, 255, 255})

	canvas := image.NewRGBA(image.Rect(0, 0, 128, 48))
	renderer.Draw(NewImageSurface(canvas), "Hey", 8, 36)

	inkedPixels := 0
	for i := 3; i < len(canvas.Pix); i += 4 {
		if canvas.Pix[i] > 0 { inkedPixels += 1 }
	}
	if inkedPixels == 0 { t.Fatal("expected some ink on the canvas") }

	// the cache must now hold one entry per distinct inked code point
	if renderer.GetCache().Len() != 3 {
		t.Fatalf("expected 3 cache entries, got %d", renderer.GetCache().Len())
	}

	// drawing outside the canvas must clip, not crash
	renderer.Draw(NewImageSurface(canvas), "clip", -500, -500)
}

func TestImageSurfaceBlit(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 8, 8))
	surface := NewImageSurface(canvas)
	if surface.Target() != canvas { t.Fatal("unexpected target") }

	bitmap := newEmptyBitmap(2, 2)
	for i := 0; i < len(bitmap.Pix); i += 4 {
		bitmap.Pix[i + 0] = 90
		bitmap.Pix[i + 3] = 255
	}
	surface.Blit(bitmap, 3, 4)
	if canvas.RGBAAt(3, 4).R != 90 { t.Fatal("expected the blit to land at (3, 4)") }
	if canvas.RGBAAt(4, 5).A != 255 { t.Fatal("expected full coverage at (4, 5)") }
	if canvas.RGBAAt(2, 4).A != 0 { t.Fatal("expected no ink left of the blit") }

	surface.Blit(nil, 0, 0) // no-op
}
