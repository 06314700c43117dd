// Package file opens configuration files for streaming.
//
// Open validates the path before handing back a reader, so that a missing file
// or a directory is reported before any loader state is allocated.
//
// Usage:
//
//	f, err := file.Open("/etc/app/config.yaml")
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	defer f.Close()
//
// Errors include the cleaned filepath. Use errors.Is(err, file.ErrPathIsDirectory)
// to check for directory errors and errors.Is(err, fs.ErrNotExist) for missing files.
package file
