// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before defaults are applied.
// Only settings that are invalid regardless of defaults are rejected here.
func (cfg *StructuredConfig) validate() error {
	actions := 0
	for _, set := range []bool{cfg.CLI.Print, cfg.CLI.Reset, cfg.CLI.Copy} {
		if set {
			actions++
		}
	}
	if actions > 1 {
		return ErrConflictingActions
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	name := cfg.Settings.FileName
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: file name %q must be a bare file name", ErrInvalidSettingsConfigs, name)
	}

	if cfg.Settings.Dir == "" {
		return fmt.Errorf("%w: empty directory", ErrInvalidSettingsConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return cfg.toStructured().validate()
}

func (cfg *ClientConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{Settings: cfg.Settings, Log: cfg.Log, CLI: cfg.CLI}
}
