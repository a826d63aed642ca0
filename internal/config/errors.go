package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidSettingsConfigs indicates an unusable settings location
	// (for example, a file name containing a path separator).
	ErrInvalidSettingsConfigs = errors.New("invalid settings configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrConflictingActions indicates that more than one of -print, -reset
	// and -copy was requested.
	ErrConflictingActions = errors.New("only one of -print, -reset, -copy may be set")
)
