package fs

import "os"

// AppendToFile appends data to a file, creating it if necessary.
func (f *realFS) AppendToFile(path string, data []byte, perm os.FileMode) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
