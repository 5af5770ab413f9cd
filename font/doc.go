// The font subpackage wraps parsed outline fonts into read-only
// [Asset] values and provides helper functionality to parse and
// manage them:
//  - Parse fonts with [ParseFromBytes](), [ParseFromPath]() or
//    [ParseFromFS]().
//  - Manage multiple fonts with a [Library].
//  - Access naming table properties with [GetName]() and friends.
//
// Assets expose glyph lookup, metrics, kerning and on-demand
// rasterization. Rasterization is rarely used directly; the cache
// subpackage and the main renderer sit on top of it.
package font
