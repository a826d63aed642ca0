// Package tui implements the terminal editor for overlay settings.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/models"
)

// SettingsSaver persists a complete settings value.
type SettingsSaver interface {
	Save(settings models.Settings) error
}

type TUI struct {
	saver SettingsSaver
	log   *logger.Logger
	opts  []tea.ProgramOption
}

func New(saver SettingsSaver, log *logger.Logger) (*TUI, error) {
	return &TUI{
		saver: saver,
		log:   log,
		opts:  []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Edit runs the editor on settings until the user quits. Edits are applied
// to settings in place; they reach disk only when the user saves.
func (t *TUI) Edit(settings *models.Settings) error {
	model := newEditorModel(t.saver, settings, t.log)
	finalModel, err := tea.NewProgram(model, t.opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(editorModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.dirty {
		t.log.Warn().Msg("editor closed with unsaved changes")
	}
	return nil
}
