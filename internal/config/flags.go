package config

import (
	"flag"
	"fmt"
)

// parseFlags parses the command-line arguments into a fresh
// [StructuredConfig]. Unset flags leave their fields zero so that lower
// priority sources survive the merge.
//
// Flags:
//
//	-dir settings directory
//	-file settings file name
//	-atomic replace the settings file atomically on save
//	-log log file path
//	-log-level log level (debug, info, warn, error)
//	-print print effective settings as JSON and exit
//	-reset overwrite settings with defaults and exit
//	-copy copy effective settings JSON to the clipboard and exit
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("overlay-settings", flag.ContinueOnError)
	fs.StringVar(&cfg.Settings.Dir, "dir", "", "Settings directory")
	fs.StringVar(&cfg.Settings.FileName, "file", "", "Settings file name")
	fs.BoolVar(&cfg.Settings.AtomicWrite, "atomic", false, "Replace the settings file atomically on save")
	fs.StringVar(&cfg.Log.Path, "log", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.BoolVar(&cfg.CLI.Print, "print", false, "Print effective settings and exit")
	fs.BoolVar(&cfg.CLI.Reset, "reset", false, "Overwrite settings with defaults and exit")
	fs.BoolVar(&cfg.CLI.Copy, "copy", false, "Copy effective settings to the clipboard and exit")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
