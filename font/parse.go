package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// Parses an outline font from its raw bytes and wraps it into an
// [Asset], returning the asset, the font's name and any possible
// error. The bytes must not be modified while the asset is in use.
//
// A parse failure means the font data is malformed; no partial or
// degraded asset is ever produced, so callers typically treat a
// non-nil error here as fatal.
func ParseFromBytes(fontBytes []byte) (*Asset, string, error) {
	sfntFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	asset := newAsset(sfntFont)
	name, err := GetName(asset)
	return asset, name, err
}

// Attempts to parse the font at the given filepath and returns its
// asset along its name and any possible error. Supported formats are
// .ttf and .otf.
func ParseFromPath(path string) (*Asset, string, error) {
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFromFS(filesys fs.FS, path string) (*Asset, string, error) {
	ok := hasValidFontExtension(path)
	if !ok {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}

	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*Asset, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes)
}

// Whether the font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 {
		return false
	}
	if path[len(path)-1] != 'f' {
		return false
	}
	if path[len(path)-2] != 't' {
		return false
	}
	thrd := path[len(path)-3]
	if thrd != 't' && thrd != 'o' {
		return false
	}
	if path[len(path)-4] != '.' {
		return false
	}
	return true
}
