// btxt is a small text rendering package for environments without a
// native font service. It rasterizes glyphs from outline fonts,
// caches the results and lays them out left to right on any pixel
// surface you give it.
//
// Common usage only involves a couple types and a few functions.
// First, parse a font:
//   asset, _, err := font.ParseFromBytes(fontBytes)
//   if err != nil { ... } // malformed font, nothing to salvage
//
// Then create a [Renderer] and adjust the basics:
//   renderer := btxt.NewRenderer(asset)
//   renderer.SetSize(14)
//   renderer.SetColor(color.RGBA{240, 240, 240, 255})
//
// Finally, draw on a [Surface]:
//   renderer.Draw(surface, "Hello world!", x, y)
//
// Two surface implementations are included: one for Ebitengine images
// (the default) and one for standard library images (gtxt build tag).
// Anything else can participate by implementing the single-method
// [Surface] interface.
package btxt
