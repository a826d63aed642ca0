package client

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/overlay-settings/internal/config"
	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/internal/store"
	"github.com/MKhiriev/overlay-settings/models"
)

// App is the settings tool. It owns the fallback-to-defaults policy that the
// store deliberately leaves to its caller.
type App struct {
	store  SettingsStore
	editor Editor
	cli    config.CLI
	log    *logger.Logger

	out           io.Writer
	copyClipboard func(string) error
}

var _ Client = (*App)(nil)

func NewApp(settingsStore SettingsStore, editor Editor, cli config.CLI, log *logger.Logger) (*App, error) {
	if settingsStore == nil {
		return nil, ErrNilSettingsStore
	}
	if editor == nil {
		return nil, ErrNilEditor
	}

	return &App{
		store:         settingsStore,
		editor:        editor,
		cli:           cli,
		log:           log,
		out:           os.Stdout,
		copyClipboard: clipboard.WriteAll,
	}, nil
}

// Run performs the configured action and returns when it is done.
func (a *App) Run() error {
	if a.cli.Reset {
		return a.reset()
	}

	settings, err := a.LoadOrDefault()
	if err != nil {
		return err
	}

	switch {
	case a.cli.Print:
		return a.print(settings)
	case a.cli.Copy:
		return a.copy(settings)
	}

	if err := a.editor.Edit(settings); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// LoadOrDefault returns the saved settings or, when the store reports an
// absorbed failure, a fresh default value. The failure itself was already
// logged by the store. Errors the store returns, such as an unusable
// settings directory, are passed through without a fallback.
func (a *App) LoadOrDefault() (*models.Settings, error) {
	settings, ok, err := a.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if !ok || settings == nil {
		a.log.Warn().Msg("using default settings")
		return models.DefaultSettings(), nil
	}

	a.log.Info().Msg("settings loaded")
	return settings, nil
}

func (a *App) reset() error {
	if err := a.store.Save(*models.DefaultSettings()); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	a.log.Info().Msg("settings reset to defaults")
	return nil
}

func (a *App) print(settings *models.Settings) error {
	data, err := store.EncodeSettings(*settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if _, err := a.out.Write(data); err != nil {
		return fmt.Errorf("print settings: %w", err)
	}
	return nil
}

func (a *App) copy(settings *models.Settings) error {
	data, err := store.EncodeSettings(*settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := a.copyClipboard(string(data)); err != nil {
		return fmt.Errorf("copy settings to clipboard: %w", err)
	}
	return nil
}
