// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/overlay-settings/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// SettingsStore loads and saves the overlay settings file.
type SettingsStore interface {
	// Load returns the saved settings, or false when none could be read.
	// The error is reserved for failures that must not fall back to defaults.
	Load() (*models.Settings, bool, error)
	// Save overwrites the settings file with settings.
	Save(settings models.Settings) error
}

// Editor lets the user change settings interactively.
type Editor interface {
	// Edit blocks until the user is done; changes are applied to settings.
	Edit(settings *models.Settings) error
}
