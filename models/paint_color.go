// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPaintColor is returned by [ParsePaintColor] when the input is not
// four comma-separated channels in the 0–255 range.
var ErrInvalidPaintColor = errors.New("invalid paint color")

// PaintColor is a named overlay color stored as four 8-bit channels.
// On disk every channel is written under its own key ("A", "R", "G", "B").
type PaintColor struct {
	A uint8 `json:"A"`
	R uint8 `json:"R"`
	G uint8 `json:"G"`
	B uint8 `json:"B"`
}

// String renders the color in the "A,R,G,B" form accepted by [ParsePaintColor].
func (c PaintColor) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.A, c.R, c.G, c.B)
}

// ParsePaintColor parses an "A,R,G,B" string. Whitespace around channels is
// ignored.
func ParsePaintColor(s string) (PaintColor, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return PaintColor{}, fmt.Errorf("%w: need 4 channels, got %d", ErrInvalidPaintColor, len(parts))
	}

	var channels [4]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return PaintColor{}, fmt.Errorf("%w: channel %d: %w", ErrInvalidPaintColor, i, err)
		}
		channels[i] = uint8(v)
	}

	return PaintColor{A: channels[0], R: channels[1], G: channels[2], B: channels[3]}, nil
}

// Names of the paint colors every fresh configuration carries.
const (
	PaintPrimary      = "Primary"
	PaintPrimaryDark  = "PrimaryDark"
	PaintPrimaryLight = "PrimaryLight"
	PaintAccent       = "Accent"
)

// DefaultPaintColors returns a new map holding the built-in overlay palette.
// Each call allocates, so callers may mutate the result freely.
func DefaultPaintColors() map[string]PaintColor {
	return map[string]PaintColor{
		PaintPrimary:      {A: 255, R: 80, G: 80, B: 80},
		PaintPrimaryDark:  {A: 255, R: 50, G: 50, B: 50},
		PaintPrimaryLight: {A: 255, R: 130, G: 130, B: 130},
		PaintAccent:       {A: 255, R: 255, G: 128, B: 0},
	}
}
