// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Defaults applied to fields that no source has set.
const (
	DefaultSettingsDir      = "Configuration"
	DefaultSettingsFileName = "Settings.json"
	DefaultLogFileName      = "logs"
	DefaultLogLevel         = "debug"
)

// StructuredConfig is the raw configuration container populated by each
// source (environment, flags, JSON file) before merging.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Settings describes where the overlay settings file lives and how it
	// is written.
	Settings SettingsStorage `envPrefix:"SETTINGS_"`

	// Log holds the diagnostic log destination and level.
	Log Log `envPrefix:"LOG_"`

	// CLI holds one-shot actions requested on the command line. They are
	// only settable through flags.
	CLI CLI

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// SettingsStorage locates the settings file.
type SettingsStorage struct {
	// Dir is the directory holding the settings file, relative to the
	// working directory unless absolute.
	// Env: SETTINGS_DIR
	Dir string `env:"DIR"`

	// FileName is the bare name of the settings file inside Dir.
	// Env: SETTINGS_FILE_NAME
	FileName string `env:"FILE_NAME"`

	// AtomicWrite switches saves from an in-place overwrite to a
	// write-temp-then-rename replace.
	// Env: SETTINGS_ATOMIC_WRITE
	AtomicWrite bool `env:"ATOMIC_WRITE"`
}

// Log configures the diagnostic logger.
type Log struct {
	// Path is the file diagnostic records are appended to. Empty means a
	// "logs" file next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// CLI lists the one-shot actions. At most one may be set.
type CLI struct {
	// Print writes the effective settings as JSON to stdout and exits.
	Print bool
	// Reset overwrites the settings file with the defaults and exits.
	Reset bool
	// Copy puts the effective settings JSON on the clipboard and exits.
	Copy bool
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
