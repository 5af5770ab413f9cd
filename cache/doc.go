// The cache subpackage provides a glyph rasterization cache keyed by
// (color, pixel size, code point). Renderers use it to avoid paying
// the rasterization cost more than once per glyph configuration.
//
// The cache grows monotonically and never evicts: results live as
// long as the cache itself, mirroring the lifetime of the font asset
// it fronts. Keep the number of distinct (color, size) combinations
// under control if memory matters to you.
package cache
