// Package config provides configuration loading, merging, and validation
// for the overlay settings tool.
//
// This is the tool's own runtime configuration (where the settings file
// lives, logging, one-shot CLI actions), not the overlay settings themselves.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Merging skips zero values, so a later source cannot reset a field to its
// zero value: -atomic=false does not undo SETTINGS_ATOMIC_WRITE=true, and an
// empty string never clears a path. Unset the earlier source instead.
//
// The main entry point is [GetClientConfig].
package config
