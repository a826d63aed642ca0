package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/internal/store"
	"github.com/MKhiriev/overlay-settings/models"
)

// writeClipboard is replaced in tests; the real clipboard needs a display.
var writeClipboard = clipboard.WriteAll

type editorModel struct {
	saver    SettingsSaver
	log      *logger.Logger
	settings *models.Settings
	fields   []field

	idx     int
	editing bool
	input   textinput.Model

	// rev counts edits; a save clears dirty only when no edit happened after
	// its snapshot was taken.
	rev    int
	saving bool
	dirty  bool
	status string
	errMsg string
}

func newEditorModel(saver SettingsSaver, settings *models.Settings, log *logger.Logger) editorModel {
	input := textinput.New()
	input.Width = 40

	return editorModel{
		saver:    saver,
		log:      log,
		settings: settings,
		fields:   buildFields(settings),
		input:    input,
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		if msg.rev != m.rev {
			m.status = "Saved; newer changes not saved yet"
			return m, nil
		}
		m.dirty = false
		m.status = "Saved"
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.fields)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		m.toggleCurrent()
	case key.Matches(keyMsg, keys.enter):
		if m.fields[m.idx].kind == kindBool {
			m.toggleCurrent()
			return m, nil
		}
		m.startEditing()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		m.status = "Saving..."
		m.errMsg = ""
		return m, m.cmdSave()
	case key.Matches(keyMsg, keys.reset):
		*m.settings = *models.DefaultSettings()
		m.fields = buildFields(m.settings)
		m.idx = min(m.idx, len(m.fields)-1)
		m.markDirty()
		m.status = "Defaults restored (not saved)"
		m.errMsg = ""
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy()
	}

	return m, nil
}

func (m editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.input.Blur()
		m.status = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		f := m.fields[m.idx]
		value := strings.TrimSpace(m.input.Value())
		if err := f.set(m.settings, value); err != nil {
			m.errMsg = fmt.Sprintf("%s: %v", f.label, err)
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		m.markDirty()
		m.errMsg = ""
		m.status = f.label + " updated"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editorModel) toggleCurrent() {
	f := m.fields[m.idx]
	if f.kind != kindBool {
		return
	}
	current := f.get(m.settings) == "true"
	if err := f.set(m.settings, fmt.Sprint(!current)); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.markDirty()
	m.status = ""
}

func (m *editorModel) markDirty() {
	m.rev++
	m.dirty = true
}

func (m *editorModel) startEditing() {
	f := m.fields[m.idx]
	m.editing = true
	m.errMsg = ""
	m.status = ""
	m.input.SetValue(f.get(m.settings))
	m.input.CursorEnd()
	m.input.Focus()
}

// cmdSave saves a snapshot so the model can keep mutating its own copy
// while the write is in flight.
func (m editorModel) cmdSave() tea.Cmd {
	snapshot := m.settings.Clone()
	saver, log, rev := m.saver, m.log, m.rev
	return func() tea.Msg {
		err := saver.Save(*snapshot)
		if err != nil {
			log.Error().Err(err).Msg("save settings from editor")
		}
		return settingsSavedMsg{err: err, rev: rev}
	}
}

func (m editorModel) cmdCopy() tea.Cmd {
	snapshot := m.settings.Clone()
	return func() tea.Msg {
		data, err := store.EncodeSettings(*snapshot)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: writeClipboard(string(data))}
	}
}

func (m editorModel) View() string {
	var b strings.Builder

	title := "Overlay settings"
	if m.dirty {
		title += dirtyStyle.Render(" *")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		value := f.get(m.settings)
		if i == m.idx && m.editing {
			value = m.input.View()
		}
		line := fmt.Sprintf("%-18s %s", f.label+":", value)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(helpStyle.Render("enter apply  esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ move  enter edit  space toggle  s save  r defaults  c copy  q quit"))
	}

	return appStyle.Render(b.String())
}
