package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/overlay-settings/models"
)

type fieldKind int

const (
	kindBool fieldKind = iota
	kindInt
	kindString
	kindColor
)

var errNotANumber = errors.New("not a number")

// field is one editable row. get renders the current value, set parses and
// applies user input.
type field struct {
	label string
	kind  fieldKind
	get   func(*models.Settings) string
	set   func(*models.Settings, string) error
}

func boolField(label string, p func(*models.Settings) *bool) field {
	return field{
		label: label,
		kind:  kindBool,
		get:   func(s *models.Settings) string { return strconv.FormatBool(*p(s)) },
		set: func(s *models.Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			*p(s) = b
			return nil
		},
	}
}

func intField(label string, p func(*models.Settings) *int) field {
	return field{
		label: label,
		kind:  kindInt,
		get:   func(s *models.Settings) string { return strconv.Itoa(*p(s)) },
		set: func(s *models.Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %q", errNotANumber, v)
			}
			*p(s) = n
			return nil
		},
	}
}

func stringField(label string, p func(*models.Settings) *string) field {
	return field{
		label: label,
		kind:  kindString,
		get:   func(s *models.Settings) string { return *p(s) },
		set: func(s *models.Settings, v string) error {
			*p(s) = v
			return nil
		},
	}
}

func colorField(name string) field {
	return field{
		label: "Color " + name,
		kind:  kindColor,
		get:   func(s *models.Settings) string { return s.PaintColors[name].String() },
		set: func(s *models.Settings, v string) error {
			c, err := models.ParsePaintColor(v)
			if err != nil {
				return err
			}
			if s.PaintColors == nil {
				s.PaintColors = make(map[string]models.PaintColor)
			}
			s.PaintColors[name] = c
			return nil
		},
	}
}

// buildFields lists the scalar settings in file order followed by one row
// per palette entry, sorted by name.
func buildFields(s *models.Settings) []field {
	fields := []field{
		boolField("Aimview enabled", func(s *models.Settings) *bool { return &s.AimviewEnabled }),
		intField("Default zoom", func(s *models.Settings) *int { return &s.DefaultZoom }),
		boolField("Enemy count", func(s *models.Settings) *bool { return &s.EnemyCount }),
		intField("Font", func(s *models.Settings) *int { return &s.Font }),
		intField("Font size", func(s *models.Settings) *int { return &s.FontSize }),
		intField("Player aim line", func(s *models.Settings) *int { return &s.PlayerAimLineLength }),
		boolField("Show names", func(s *models.Settings) *bool { return &s.ShowNames }),
		boolField("Show radar stats", func(s *models.Settings) *bool { return &s.ShowRadarStats }),
		intField("UI scale", func(s *models.Settings) *int { return &s.UIScale }),
		intField("Zoom sensitivity", func(s *models.Settings) *int { return &s.ZoomSensitivity }),
		boolField("VSync", func(s *models.Settings) *bool { return &s.VSync }),
		stringField("KMBox IP", func(s *models.Settings) *string { return &s.KmboxIP }),
		stringField("KMBox port", func(s *models.Settings) *string { return &s.KmboxPort }),
		stringField("KMBox MAC", func(s *models.Settings) *string { return &s.KmboxMAC }),
	}

	names := make([]string, 0, len(s.PaintColors))
	for name := range s.PaintColors {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fields = append(fields, colorField(name))
	}

	return fields
}
