package font

import "io/fs"
import "errors"
import "path/filepath"

// A collection of font assets accessible by name.
//
// The goal of a library is to make it easy to parse fonts in bulk
// and keep them all in a single place.
//
// A library doesn't know about system fonts, but there are other
// packages out there that can help you find those if you need them.
type Library struct {
	assets map[string]*Asset
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		assets: make(map[string]*Asset),
	}
}

// Returns the current number of assets in the library.
func (self *Library) Size() int { return len(self.assets) }

// Finds out whether an asset with the given name exists in the library.
func (self *Library) HasAsset(name string) bool {
	_, found := self.assets[name]
	return found
}

// Returns the asset with the given name, or nil if not found.
//
// If you don't know the name of your fonts, there are a few ways to
// figure it out:
//  - Add the fonts to the library and print their names with
//    [Library.EachAsset]().
//  - Use the [GetName]() function directly on an asset.
//  - Open the font with the OS's default font viewer; the name is
//    usually on the title and/or first line of text.
func (self *Library) GetAsset(name string) *Asset {
	asset, found := self.assets[name]
	if found { return asset }
	return nil
}

// Adds an already parsed asset to the library and returns its name
// and any possible error. If another asset with the same name was
// already present, [ErrAlreadyPresent] will be returned.
//
// This method is rarely necessary unless parsing is done externally.
// In general, the built-in parsing methods (e.g.
// [Library.ParseFromBytes]()) are preferable.
func (self *Library) AddAsset(asset *Asset) (string, error) {
	name, err := GetName(asset)
	if err != nil { return "", err }
	return name, self.addNewAsset(asset, name)
}

// Returns false if the asset can't be removed due to not being found.
//
// The given name must match the name returned by the original parsing
// function. Names can also be recovered through [Library.EachAsset]().
func (self *Library) RemoveAsset(name string) bool {
	_, found := self.assets[name]
	if !found { return false }
	delete(self.assets, name)
	return true
}

// Returns the name of the added font asset and any possible error.
// If error == nil, the name will be non-empty.
//
// If a font with the same name has already been parsed or added,
// [ErrAlreadyPresent] will be returned.
func (self *Library) ParseFromPath(path string) (string, error) {
	asset, name, err := ParseFromPath(path)
	if err != nil { return name, err }
	return name, self.addNewAsset(asset, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use. When in
// doubt, pass a copy.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	asset, name, err := ParseFromBytes(fontBytes)
	if err != nil { return name, err }
	return name, self.addNewAsset(asset, name)
}

// An error that can be returned by [Library.AddAsset](),
// [Library.ParseFromPath]() and [Library.ParseFromBytes]() when a
// font is not added due to its name already being present.
var ErrAlreadyPresent = errors.New("font already present in the library")

func (self *Library) addNewAsset(asset *Asset, name string) error {
	if self.HasAsset(name) { return ErrAlreadyPresent }
	self.assets[name] = asset
	return nil
}

// Special error that can be used with [Library.EachAsset]() to break
// early. When used, the method will return early but still report a
// nil error.
var ErrBreakEach = errors.New("EachAsset() early break")

// Calls the given function for each asset in the library, passing
// their names and contents as arguments, in pseudo-random order.
//
// If the given function returns a non-nil error, the method will
// immediately stop and return that error, with the only exception of
// [ErrBreakEach]. Otherwise, [Library.EachAsset]() always returns nil.
func (self *Library) EachAsset(assetFunc func(string, *Asset) error) error {
	for name, asset := range self.assets {
		err := assetFunc(name, asset)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}

// Walks the given directory non-recursively and adds all the .ttf and
// .otf fonts in it. Returns the number of fonts added, the number of
// fonts skipped (when an asset with the same name already exists in
// the library) and any error that might happen during the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, info fs.DirEntry, err error) error {
			if err != nil { return err }
			if info.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}

			valid := hasValidFontExtension(path)
			if !valid { return nil }
			_, err = self.ParseFromPath(path)
			if err == ErrAlreadyPresent {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (string, error) {
	asset, name, err := ParseFromFS(filesys, path)
	if err != nil { return name, err }
	return name, self.addNewAsset(asset, name)
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() { continue }
		valid := hasValidFontExtension(entry.Name())
		if !valid { continue }
		path := dirName + entry.Name()
		_, err = self.ParseFromFS(filesys, path)
		if err == ErrAlreadyPresent {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}
