// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Settings holds every user-tunable display and network option of the
// overlay. The whole value is the unit of persistence: it is loaded,
// replaced and saved wholesale.
//
// JSON keys are the on-disk names and must not change without a migration.
type Settings struct {
	// AimviewEnabled toggles the aim view widget.
	AimviewEnabled bool `json:"aimviewEnabled"`

	// DefaultZoom is the map zoom applied on startup, in percent.
	DefaultZoom int `json:"defaultZoom"`

	// EnemyCount toggles the enemy counter.
	EnemyCount bool `json:"enemyCount"`

	// Font is the index of the selected overlay font.
	Font int `json:"font"`

	// FontSize is the overlay font size in points.
	FontSize int `json:"fontSize"`

	// PaintColors maps a palette entry name to its color.
	PaintColors map[string]PaintColor `json:"paintColors"`

	// PlayerAimLineLength is the length of the player aim line.
	PlayerAimLineLength int `json:"playerAimLine"`

	ShowNames      bool `json:"showNames"`
	ShowRadarStats bool `json:"showRadarStats"`

	// UIScale is the interface scale in percent.
	UIScale int `json:"uiScale"`

	ZoomSensitivity int  `json:"zoomSensitivity"`
	VSync           bool `json:"vsync"`

	// KMBox network endpoint. Kept as strings exactly as the user typed them.
	KmboxIP   string `json:"kmboxIp"`
	KmboxPort string `json:"kmboxPort"`
	KmboxMAC  string `json:"kmboxMac"`
}

// DefaultSettings returns a fully populated configuration with the built-in
// defaults. It performs no I/O and never fails.
func DefaultSettings() *Settings {
	return &Settings{
		AimviewEnabled:      false,
		DefaultZoom:         100,
		EnemyCount:          false,
		Font:                0,
		FontSize:            13,
		PaintColors:         DefaultPaintColors(),
		PlayerAimLineLength: 1000,
		ShowNames:           false,
		ShowRadarStats:      false,
		UIScale:             100,
		ZoomSensitivity:     25,
		VSync:               false,
		KmboxIP:             "1.1.1.1",
		KmboxPort:           "8888",
		KmboxMAC:            "123456",
	}
}

// Clone returns a deep copy of s. The color map of the copy is independent
// of the original.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}

	out := *s
	if s.PaintColors != nil {
		out.PaintColors = maps.Clone(s.PaintColors)
	}
	return &out
}
