package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to Open points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// File is an open configuration file.
type File struct {
	path string
	file *os.File
}

// Open cleans fpath, checks that it names a regular readable file and opens it.
func Open(fpath string) (*File, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	handle, err := os.Open(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", cleanPath, err)
	}

	return &File{
		path: cleanPath,
		file: handle,
	}, nil
}

// Path returns the cleaned path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p) //nolint:wrapcheck // io.EOF must reach the caller unwrapped
}

// Close closes the underlying file.
func (f *File) Close() error {
	err := f.file.Close()
	if err != nil {
		return fmt.Errorf("closing file %q: %w", f.path, err)
	}

	return nil
}
