package store

import "os"

//go:generate mockgen -source=interfaces.go -destination=../mock/file_system_mock.go -package=mock

// FileSystem is the subset of filesystem operations the settings store
// needs. Errors for a missing file must satisfy errors.Is(err, fs.ErrNotExist).
type FileSystem interface {
	// MkdirAll creates path and any missing parents. It succeeds when path
	// already exists as a directory.
	MkdirAll(path string, perm os.FileMode) error
	// ReadFile returns the full contents of name.
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces the full contents of name with data.
	WriteFile(name string, data []byte, perm os.FileMode) error
}
