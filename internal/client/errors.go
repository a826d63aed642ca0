package client

import "errors"

var (
	// ErrNilSettingsStore is returned by [NewApp] when no store is supplied.
	ErrNilSettingsStore = errors.New("settings store is nil")
	// ErrNilEditor is returned by [NewApp] when no editor is supplied.
	ErrNilEditor = errors.New("editor is nil")
)
