package config

import (
	"errors"
	"fmt"
)

var (
	// ErrFileOpen is matched by every FileOpenError.
	ErrFileOpen = errors.New("config file cannot be opened")

	// ErrScan is matched by every ScanError.
	ErrScan = errors.New("config file is malformed")

	// ErrMissingKey is matched by every MissingKeyError.
	ErrMissingKey = errors.New("required config entry is missing")

	// ErrInvalidValue is matched by every ValueError.
	ErrInvalidValue = errors.New("config value has the wrong type")

	// ErrReleased is returned by reads on a Config that has been torn down.
	ErrReleased = errors.New("config has been torn down")

	// ErrInvalidTarget is returned by Provider for a nil or non-struct target.
	ErrInvalidTarget = errors.New("binding target must be a non-nil pointer to a struct")

	// ErrUnsupportedField is returned by Provider for a tagged field of an unsupported kind.
	ErrUnsupportedField = errors.New("unsupported field type")
)

// FileOpenError reports a config file that is missing, unreadable or a directory.
// No resources have been allocated when it is returned.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("opening config %q: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// Is reports ErrFileOpen as a match.
func (e *FileOpenError) Is(target error) bool {
	return target == ErrFileOpen
}

// ScanError reports malformed input. Line and Column are zero when the token
// source did not report a position.
type ScanError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ScanError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("scanning config %q: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("scanning config %s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is reports ErrScan as a match.
func (e *ScanError) Is(target error) bool {
	return target == ErrScan
}

func newScanError(path string, err error) *ScanError {
	scanErr := &ScanError{Path: path, Line: 0, Column: 0, Err: err}

	var positioned interface{ Position() (int, int) }
	if errors.As(err, &positioned) {
		scanErr.Line, scanErr.Column = positioned.Position()
	}

	return scanErr
}

// MissingKeyError reports a required entry that is absent. It signals a broken
// contract between the host and its configuration file.
type MissingKeyError struct {
	Path string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("unknown configuration entry %q", e.Path)
}

// Is reports ErrMissingKey as a match.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// ValueError reports a stored value that cannot be converted to the requested type.
type ValueError struct {
	Path  string
	Value string
	Type  string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("config entry %q: cannot use %q as %s: %v", e.Path, e.Value, e.Type, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidValue as a match.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
