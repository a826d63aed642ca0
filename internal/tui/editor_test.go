package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/internal/mock"
	"github.com/MKhiriev/overlay-settings/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m editorModel, msgs ...tea.Msg) (editorModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(editorModel)
		require.True(t, ok)
	}
	return m, cmd
}

func fieldIndex(t *testing.T, m editorModel, label string) int {
	t.Helper()
	for i, f := range m.fields {
		if f.label == label {
			return i
		}
	}
	t.Fatalf("no field %q", label)
	return -1
}

func newTestEditor(t *testing.T) (editorModel, *mock.MockSettingsStore, *models.Settings) {
	t.Helper()
	st := mock.NewMockSettingsStore(gomock.NewController(t))
	settings := models.DefaultSettings()
	return newEditorModel(st, settings, logger.Nop()), st, settings
}

// ── fields ────────────────────────────────────────────────────────────────────

func TestBuildFields_ScalarsThenSortedColors(t *testing.T) {
	fields := buildFields(models.DefaultSettings())

	require.Len(t, fields, 18)
	assert.Equal(t, "Aimview enabled", fields[0].label)
	assert.Equal(t, "KMBox MAC", fields[13].label)

	var colors []string
	for _, f := range fields[14:] {
		assert.Equal(t, kindColor, f.kind)
		colors = append(colors, f.label)
	}
	assert.Equal(t, []string{"Color Accent", "Color Primary", "Color PrimaryDark", "Color PrimaryLight"}, colors)
}

func TestFieldSetters(t *testing.T) {
	s := models.DefaultSettings()
	fields := buildFields(s)
	byLabel := func(label string) field {
		for _, f := range fields {
			if f.label == label {
				return f
			}
		}
		t.Fatalf("no field %q", label)
		return field{}
	}

	require.NoError(t, byLabel("Default zoom").set(s, "-5"))
	assert.Equal(t, -5, s.DefaultZoom)
	assert.ErrorIs(t, byLabel("Font size").set(s, "big"), errNotANumber)

	require.NoError(t, byLabel("VSync").set(s, "true"))
	assert.True(t, s.VSync)

	require.NoError(t, byLabel("KMBox port").set(s, "anything"))
	assert.Equal(t, "anything", s.KmboxPort)

	require.NoError(t, byLabel("Color Accent").set(s, "1,2,3,4"))
	assert.Equal(t, models.PaintColor{A: 1, R: 2, G: 3, B: 4}, s.PaintColors[models.PaintAccent])
	assert.ErrorIs(t, byLabel("Color Accent").set(s, "1,2"), models.ErrInvalidPaintColor)
}

// ── navigation & editing ──────────────────────────────────────────────────────

func TestEditor_Navigation(t *testing.T) {
	m, _, _ := newTestEditor(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	assert.Equal(t, 2, m.idx)

	for i := 0; i < 40; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.fields)-1, m.idx)
}

func TestEditor_ToggleBool(t *testing.T) {
	m, _, settings := newTestEditor(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, settings.AimviewEnabled)
	assert.True(t, m.dirty)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, settings.AimviewEnabled)
	assert.False(t, m.editing)
}

// TestEditor_ToggleIgnoresNonBool verifies space does nothing on int rows.
func TestEditor_ToggleIgnoresNonBool(t *testing.T) {
	m, _, settings := newTestEditor(t)
	m.idx = fieldIndex(t, m, "Font size")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 13, settings.FontSize)
	assert.False(t, m.dirty)
}

func TestEditor_EditIntField(t *testing.T) {
	m, _, settings := newTestEditor(t)
	m.idx = fieldIndex(t, m, "Font size")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.editing)
	assert.Equal(t, "13", m.input.Value())

	m.input.SetValue("21")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.editing)
	assert.Equal(t, 21, settings.FontSize)
	assert.True(t, m.dirty)
	assert.Empty(t, m.errMsg)
}

func TestEditor_EditRejectsBadInput(t *testing.T) {
	m, _, settings := newTestEditor(t)
	m.idx = fieldIndex(t, m, "Color Primary")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("255,999,0,0")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.editing, "stays in edit mode")
	assert.NotEmpty(t, m.errMsg)
	assert.Equal(t, models.DefaultPaintColors()[models.PaintPrimary], settings.PaintColors[models.PaintPrimary])
}

func TestEditor_EscCancelsEdit(t *testing.T) {
	m, _, settings := newTestEditor(t)
	m.idx = fieldIndex(t, m, "KMBox IP")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("10.0.0.1")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.editing)
	assert.Equal(t, "1.1.1.1", settings.KmboxIP)
	assert.False(t, m.dirty)
}

// TestEditor_QuitKeyWhileEditingIsText verifies "q" is typed into the input
// instead of quitting.
func TestEditor_QuitKeyWhileEditingIsText(t *testing.T) {
	m, _, _ := newTestEditor(t)
	m.idx = fieldIndex(t, m, "KMBox MAC")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("q"))
	assert.True(t, m.editing)
	assert.Equal(t, "123456q", m.input.Value())
}

func TestEditor_ResetRestoresDefaults(t *testing.T) {
	m, _, settings := newTestEditor(t)
	settings.FontSize = 99
	settings.PaintColors = map[string]models.PaintColor{"Only": {}}
	m.fields = buildFields(settings)
	m.idx = len(m.fields) - 1

	m, _ = press(t, m, runes("r"))

	assert.Equal(t, models.DefaultSettings(), settings)
	assert.Len(t, m.fields, 18)
	assert.True(t, m.dirty)
}

func TestEditor_Quit(t *testing.T) {
	m, _, _ := newTestEditor(t)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// ── save & copy ───────────────────────────────────────────────────────────────

// TestEditor_SaveSnapshot verifies the saved value is a snapshot taken when
// the save was requested.
func TestEditor_SaveSnapshot(t *testing.T) {
	m, st, settings := newTestEditor(t)
	settings.UIScale = 150

	want := *settings.Clone()
	st.EXPECT().Save(want).Return(nil)

	m, cmd := press(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.saving)

	settings.UIScale = 1 // mutation after the request must not leak into the save
	msg := cmd()

	m, _ = press(t, m, msg)
	assert.False(t, m.saving)
	assert.False(t, m.dirty)
	assert.Equal(t, "Saved", m.status)
}

// TestEditor_EditDuringSaveStaysDirty verifies that an edit made after the
// save snapshot keeps the model dirty once the save completes.
func TestEditor_EditDuringSaveStaysDirty(t *testing.T) {
	m, st, settings := newTestEditor(t)
	st.EXPECT().Save(*models.DefaultSettings()).Return(nil)

	m, cmd := press(t, m, runes("s"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, settings.AimviewEnabled)

	m, _ = press(t, m, cmd())
	assert.False(t, m.saving)
	assert.True(t, m.dirty)
	assert.NotEqual(t, "Saved", m.status)

	st.EXPECT().Save(*settings.Clone()).Return(nil)
	m, cmd = press(t, m, runes("s"))
	m, _ = press(t, m, cmd())
	assert.False(t, m.dirty)
	assert.Equal(t, "Saved", m.status)
}

func TestEditor_SaveError(t *testing.T) {
	m, st, _ := newTestEditor(t)
	st.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))

	m, _ = press(t, m, runes(" "))
	m, cmd := press(t, m, runes("s"))
	m, _ = press(t, m, cmd())

	assert.True(t, m.dirty)
	assert.Contains(t, m.errMsg, "disk full")
}

func TestEditor_SaveIgnoredWhileSaving(t *testing.T) {
	m, _, _ := newTestEditor(t)
	m.saving = true

	_, cmd := press(t, m, runes("s"))
	assert.Nil(t, cmd)
}

func TestEditor_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, _, _ := newTestEditor(t)
	_, cmd := press(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, "Copied to clipboard", m.status)
	assert.True(t, strings.HasPrefix(copied, "{\n  \"aimviewEnabled\""))
}

func TestEditor_View(t *testing.T) {
	m, _, _ := newTestEditor(t)
	m.dirty = true
	m.errMsg = "boom"

	view := m.View()
	assert.Contains(t, view, "Overlay settings")
	assert.Contains(t, view, "> Aimview enabled:")
	assert.Contains(t, view, "KMBox IP:")
	assert.Contains(t, view, "1.1.1.1")
	assert.Contains(t, view, "255,255,128,0")
	assert.Contains(t, view, "boom")
}
