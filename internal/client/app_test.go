package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/overlay-settings/internal/config"
	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/internal/mock"
	"github.com/MKhiriev/overlay-settings/internal/store"
	"github.com/MKhiriev/overlay-settings/models"
)

func newTestApp(t *testing.T, cli config.CLI) (*App, *mock.MockSettingsStore, *mock.MockEditor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockSettingsStore(ctrl)
	ed := mock.NewMockEditor(ctrl)

	app, err := NewApp(st, ed, cli, logger.Nop())
	require.NoError(t, err)
	return app, st, ed
}

func TestNewApp_NilDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewApp(nil, mock.NewMockEditor(ctrl), config.CLI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilSettingsStore)

	_, err = NewApp(mock.NewMockSettingsStore(ctrl), nil, config.CLI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilEditor)
}

// ── LoadOrDefault ─────────────────────────────────────────────────────────────

func TestLoadOrDefault_UsesSaved(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{})
	saved := models.DefaultSettings()
	saved.FontSize = 42

	st.EXPECT().Load().Return(saved, true, nil)

	got, err := app.LoadOrDefault()
	require.NoError(t, err)
	assert.Same(t, saved, got)
}

func TestLoadOrDefault_FallsBackToDefaults(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{})

	st.EXPECT().Load().Return(nil, false, nil)

	got, err := app.LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

// TestRun_DirectoryUnavailableStopsBeforeEditor verifies a settings
// directory that cannot be created is returned instead of editing defaults
// that could never be saved.
func TestRun_DirectoryUnavailableStopsBeforeEditor(t *testing.T) {
	app, st, ed := newTestApp(t, config.CLI{})
	dirErr := fmt.Errorf("%w: Configuration: permission denied", store.ErrDirectoryUnavailable)

	st.EXPECT().Load().Return(nil, false, dirErr)
	ed.EXPECT().Edit(gomock.Any()).Times(0)

	err := app.Run()
	assert.ErrorIs(t, err, store.ErrDirectoryUnavailable)
}

// ── Run ───────────────────────────────────────────────────────────────────────

// TestRun_EditsLoadedSettings verifies the editor receives the loaded value.
func TestRun_EditsLoadedSettings(t *testing.T) {
	app, st, ed := newTestApp(t, config.CLI{})
	saved := models.DefaultSettings()
	saved.VSync = true

	gomock.InOrder(
		st.EXPECT().Load().Return(saved, true, nil),
		ed.EXPECT().Edit(saved).Return(nil),
	)

	require.NoError(t, app.Run())
}

func TestRun_EditorError(t *testing.T) {
	app, st, ed := newTestApp(t, config.CLI{})
	boom := errors.New("terminal gone")

	st.EXPECT().Load().Return(nil, false, nil)
	ed.EXPECT().Edit(models.DefaultSettings()).Return(boom)

	err := app.Run()
	assert.ErrorIs(t, err, boom)
}

func TestRun_Print(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{Print: true})
	var out bytes.Buffer
	app.out = &out

	saved := models.DefaultSettings()
	saved.KmboxIP = "192.168.0.10"
	st.EXPECT().Load().Return(saved, true, nil)

	require.NoError(t, app.Run())

	var printed models.Settings
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, saved, &printed)
}

func TestRun_Copy(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{Copy: true})
	var copied string
	app.copyClipboard = func(s string) error {
		copied = s
		return nil
	}

	st.EXPECT().Load().Return(nil, false, nil)

	require.NoError(t, app.Run())
	assert.Contains(t, copied, `"kmboxIp": "1.1.1.1"`)
}

func TestRun_CopyError(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{Copy: true})
	noClipboard := errors.New("no clipboard utilities available")
	app.copyClipboard = func(string) error { return noClipboard }

	st.EXPECT().Load().Return(nil, false, nil)

	assert.ErrorIs(t, app.Run(), noClipboard)
}

// TestRun_Reset verifies reset saves the defaults without loading first.
func TestRun_Reset(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{Reset: true})

	st.EXPECT().Save(*models.DefaultSettings()).Return(nil)

	require.NoError(t, app.Run())
}

// TestRun_ResetPropagatesSaveError verifies save failures reach the caller.
func TestRun_ResetPropagatesSaveError(t *testing.T) {
	app, st, _ := newTestApp(t, config.CLI{Reset: true})
	writeErr := errors.New("read-only file system")

	st.EXPECT().Save(gomock.Any()).Return(writeErr)

	assert.ErrorIs(t, app.Run(), writeErr)
}
