package resource

import (
	"os"
	"path/filepath"
)

// Resource is an opened file addressed by a request target.
type Resource struct {
	Path string
	File *os.File
}

func (r *Resource) Read(p []byte) (int, error) {
	return r.File.Read(p)
}

func (r *Resource) Close() error {
	return r.File.Close()
}

// Path maps target onto root by plain concatenation. No cleaning is done,
// so ".." segments are resolved by the filesystem.
func Path(root, target string) string {
	return root + filepath.FromSlash(target)
}

// Open looks up target under root at request time. Anything that cannot be
// opened as a regular readable file (missing, unreadable, a directory)
// reports false.
func Open(root, target string) (*Resource, bool) {
	path := Path(root, target)

	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, false
	}

	return &Resource{Path: path, File: f}, true
}
