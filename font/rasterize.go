package font

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// Rasterizes the glyph for the given code point at the given scale
// factor, baking the given ink color into the resulting bitmap. The
// returned bitmap has its origin at (0, 0); the result's YOffset
// records the baseline-relative vertical position instead.
//
// Returns nil when the glyph carries no visual ink, which is the
// normal outcome for whitespace and zero-width glyphs, and also when
// the font has no glyph for the code point at all. Callers that need
// to distinguish the two cases can check [Asset.GlyphIndex]().
func (self *Asset) Rasterize(codePoint rune, scale float64, rgb RGB) *GlyphResult {
	index := self.GlyphIndex(codePoint)
	if index == 0 { return nil }
	ppem := fixed.Int26_6(scale*float64(self.unitsPerEm)*64 + 0.5)
	if ppem <= 0 { return nil }
	outline, err := self.sfntFont.LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil || len(outline) == 0 { return nil }

	// compute integer bitmap bounds for the outline
	fixedBounds := outline.Bounds()
	minX := fixedBounds.Min.X.Floor()
	minY := fixedBounds.Min.Y.Floor()
	width  := fixedBounds.Max.X.Ceil() - minX
	height := fixedBounds.Max.Y.Ceil() - minY
	if width <= 0 || height <= 0 { return nil }

	// accumulate coverage first; the metrics query below reuses the
	// working buffer that backs the outline segments
	coverage := rasterizeOutline(outline, width, height, minX, minY)
	rawAdvance, _, _ := self.rawMetrics(index)

	return &GlyphResult {
		Bitmap: finalizeBitmap(bakeColor(coverage, rgb)),
		XAdvance: int(float64(rawAdvance)*scale),
		YOffset: minY,
	}
}

// Fills an alpha image with the outline's coverage. Points are shifted
// by (-minX, -minY), as the vector rasterizer expects coordinates in
// the positive quadrant.
func rasterizeOutline(outline sfnt.Segments, width, height, minX, minY int) *image.Alpha {
	rasterizer := vector.NewRasterizer(width, height)
	rasterizer.DrawOp = draw.Src
	offsetX, offsetY := -float32(minX), -float32(minY)
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			px, py := segmentCoords(segment.Args[0], offsetX, offsetY)
			rasterizer.MoveTo(px, py)
		case sfnt.SegmentOpLineTo:
			px, py := segmentCoords(segment.Args[0], offsetX, offsetY)
			rasterizer.LineTo(px, py)
		case sfnt.SegmentOpQuadTo:
			cx, cy := segmentCoords(segment.Args[0], offsetX, offsetY)
			px, py := segmentCoords(segment.Args[1], offsetX, offsetY)
			rasterizer.QuadTo(cx, cy, px, py)
		case sfnt.SegmentOpCubeTo:
			cax, cay := segmentCoords(segment.Args[0], offsetX, offsetY)
			cbx, cby := segmentCoords(segment.Args[1], offsetX, offsetY)
			px , py  := segmentCoords(segment.Args[2], offsetX, offsetY)
			rasterizer.CubeTo(cax, cay, cbx, cby, px, py)
		}
	}

	coverage := image.NewAlpha(image.Rect(0, 0, width, height))
	rasterizer.Draw(coverage, coverage.Bounds(), image.Opaque, image.Point{})
	return coverage
}

func segmentCoords(point fixed.Point26_6, offsetX, offsetY float32) (float32, float32) {
	return float32(point.X)/64 + offsetX, float32(point.Y)/64 + offsetY
}

// Applies the ink color to a coverage mask, premultiplying each color
// channel by the coverage level and storing the level itself as alpha.
func bakeColor(coverage *image.Alpha, rgb RGB) *image.RGBA {
	r, g, b := rgb.Components()
	rgba := image.NewRGBA(coverage.Rect)
	pixels := rgba.Pix
	index  := 0
	for _, level := range coverage.Pix {
		pixels[index + 0] = uint8((uint32(r)*uint32(level))/255)
		pixels[index + 1] = uint8((uint32(g)*uint32(level))/255)
		pixels[index + 2] = uint8((uint32(b)*uint32(level))/255)
		pixels[index + 3] = level
		index += 4
	}
	return rgba
}
