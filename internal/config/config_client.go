package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClientConfig is the effective configuration of the settings tool,
// assembled from [StructuredConfig] with defaults filled in.
type ClientConfig struct {
	// Settings locates the overlay settings file.
	Settings SettingsStorage
	// Log configures the diagnostic logger.
	Log Log
	// CLI holds the requested one-shot action, if any.
	CLI CLI
}

// GetClientConfig builds and validates the effective configuration from the
// process environment and command-line arguments.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Settings: cfg.Settings,
		Log:      cfg.Log,
		CLI:      cfg.CLI,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Settings.Dir == "" {
		cfg.Settings.Dir = DefaultSettingsDir
	}
	if cfg.Settings.FileName == "" {
		cfg.Settings.FileName = DefaultSettingsFileName
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaultLogPath()
	}
}

// defaultLogPath places the log file next to the executable, falling back to
// the working directory when the executable path is unknown.
func defaultLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return DefaultLogFileName
	}
	return filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
}

// Path returns the full path of the settings file.
func (s SettingsStorage) Path() string {
	return filepath.Join(s.Dir, s.FileName)
}
