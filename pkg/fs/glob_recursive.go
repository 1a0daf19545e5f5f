package fs

import (
	"io/fs"
	"path/filepath"
)

// GlobRecursive finds files under root whose base name matches the pattern.
// Pattern syntax is that of filepath.Match, applied to each entry's base name
// at every depth. Directories matching the pattern are included as well, since
// some project containers (e.g. .xcodeproj bundles) are directories.
func (f *realFS) GlobRecursive(root, pattern string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries rather than aborting the whole search
			return nil
		}

		matched, matchErr := filepath.Match(pattern, d.Name())
		if matchErr != nil {
			return matchErr
		}
		if matched {
			matches = append(matches, path)
			if d.IsDir() {
				// Don't descend into matched directory bundles
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
