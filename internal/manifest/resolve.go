// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// compressedDir is the subdirectory of the image directory holding
// web-optimized copies. It is searched before the image directory itself.
const compressedDir = "compressed"

// ImageExtensions lists the extensions probed by exact-name lookup, in
// preference order.
var ImageExtensions = []string{".jpeg", ".jpg", ".png"}

// Folder is a directory searched for images. Dir is where the lookup
// happens on disk; Prefix is the slash-separated path written into the
// manifest in front of a matched file name.
type Folder struct {
	Dir    string
	Prefix string
}

func (f Folder) emit(name string) string {
	return path.Join(f.Prefix, name)
}

// ImageFolders returns the compressed folder and the plain image folder, in
// search order. A relative imageDir is taken relative to sourceDir, and
// manifest paths keep imageDir as given so they stay relative to the page
// that loads the manifest.
func ImageFolders(sourceDir, imageDir string) (compressed, plain Folder) {
	dir := imageDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(sourceDir, imageDir)
	}
	prefix := filepath.ToSlash(filepath.Clean(imageDir))
	plain = Folder{Dir: dir, Prefix: prefix}
	compressed = Folder{
		Dir:    filepath.Join(dir, compressedDir),
		Prefix: path.Join(prefix, compressedDir),
	}
	return compressed, plain
}

// Resolver looks up the image for one story. It returns the manifest path
// and true on a hit.
type Resolver func(id int, author string) (string, bool)

// ExactResolver probes folder for "<id>.<author><ext>" with each extension
// in ImageExtensions order.
func ExactResolver(folder Folder) Resolver {
	return func(id int, author string) (string, bool) {
		base := baseName(id, author)
		for _, ext := range ImageExtensions {
			name := base + ext
			info, err := os.Stat(filepath.Join(folder.Dir, name))
			if err == nil && info.Mode().IsRegular() {
				return folder.emit(name), true
			}
		}
		return "", false
	}
}

// PrefixResolver scans each folder in turn for the first non-directory entry whose
// name starts with "<id>.", ignoring the author. It catches images whose
// author part is spelled differently from the text file (spacing,
// normalization). Folders are listed in lexicographic order, so when several
// files share an id the smallest name wins. Missing folders are skipped.
func PrefixResolver(folders ...Folder) Resolver {
	return func(id int, _ string) (string, bool) {
		prefix := strconv.Itoa(id) + "."
		for _, folder := range folders {
			entries, err := os.ReadDir(folder.Dir)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if strings.HasPrefix(entry.Name(), prefix) {
					return folder.emit(entry.Name()), true
				}
			}
		}
		return "", false
	}
}

// DefaultResolvers returns the standard lookup chain: exact name in the
// compressed folder, exact name in the image folder, then id-prefix scan of
// both.
func DefaultResolvers(sourceDir, imageDir string) []Resolver {
	compressed, plain := ImageFolders(sourceDir, imageDir)
	return []Resolver{
		ExactResolver(compressed),
		ExactResolver(plain),
		PrefixResolver(compressed, plain),
	}
}

// Resolve tries each resolver in order and returns the first hit.
func Resolve(resolvers []Resolver, id int, author string) (string, bool) {
	for _, r := range resolvers {
		if p, ok := r(id, author); ok {
			return p, true
		}
	}
	return "", false
}

func baseName(id int, author string) string {
	return strconv.Itoa(id) + "." + author
}
