package fs

import "os"

// WriteFile writes data to a file, creating it if necessary.
func (f *realFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
