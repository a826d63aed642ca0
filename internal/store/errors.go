package store

import "errors"

// Sentinel errors describing why a settings file operation failed. They are
// always wrapped together with the underlying cause; match them with
// [errors.Is].
var (
	// ErrDirectoryUnavailable is returned when the settings directory cannot
	// be created.
	ErrDirectoryUnavailable = errors.New("settings directory unavailable")

	// ErrNotFound is returned by a load when the settings file does not exist.
	ErrNotFound = errors.New("settings file not found")

	// ErrReadFailure is returned by a load when the settings file exists but
	// cannot be read (permissions, I/O error, path is a directory).
	ErrReadFailure = errors.New("settings file unreadable")

	// ErrMalformed is returned by a load when the file content cannot be
	// decoded into settings (corrupt, wrong shape or incompatible types).
	ErrMalformed = errors.New("settings file malformed")

	// ErrWriteFailure is returned by a save when the settings cannot be
	// encoded or the file cannot be written.
	ErrWriteFailure = errors.New("settings file write failed")
)
