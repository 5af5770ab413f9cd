package font

import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by property getters when the requested naming table entry
// is missing or empty.
var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested naming table property for the given asset.
// If the property is missing, [ErrNotFound] will be returned. Other
// errors are also possible (e.g., if the font naming table is invalid).
func GetProperty(asset *Asset, property sfnt.NameID) (string, error) {
	value, err := asset.sfntFont.Name(&asset.buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the family name of the given font asset.
func GetFamily(asset *Asset) (string, error) {
	return GetProperty(asset, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font asset. In most cases,
// the value will be one of:
//  - Regular, Italic, Bold, Bold Italic
func GetSubfamily(asset *Asset) (string, error) {
	return GetProperty(asset, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font asset. This is the name
// used to key assets within a [Library].
func GetName(asset *Asset) (string, error) {
	return GetProperty(asset, sfnt.NameIDFull)
}

// Returns the runes in the given text that the asset has no glyphs
// for. Repeated runes in the input may be repeated in the output too.
//
// If you load fonts dynamically, it is good practice to use this
// function to make sure the glyphs you require are all covered.
func GetMissingRunes(asset *Asset, text string) []rune {
	missing := make([]rune, 0, 8)
	for _, codePoint := range text {
		if asset.GlyphIndex(codePoint) == 0 {
			missing = append(missing, codePoint)
		}
	}
	return missing
}
