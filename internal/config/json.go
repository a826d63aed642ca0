package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors the JSON config file layout.
type StructuredJSONConfig struct {
	Settings struct {
		Dir         string `json:"dir"`
		FileName    string `json:"file_name"`
		AtomicWrite bool   `json:"atomic_write"`
	} `json:"settings,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Settings: SettingsStorage{
			Dir:         jsonCfg.Settings.Dir,
			FileName:    jsonCfg.Settings.FileName,
			AtomicWrite: jsonCfg.Settings.AtomicWrite,
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
