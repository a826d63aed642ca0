// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/MKhiriev/overlay-settings/internal/config"
	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/models"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// fileLocks maps an absolute settings file path to the mutex guarding it.
// Every store in the process that targets the same file shares one lock;
// stores on different files never contend.
var fileLocks sync.Map

var errNullDocument = errors.New("document is null")

func lockFor(path string) *sync.Mutex {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	mu, _ := fileLocks.LoadOrStore(path, new(sync.Mutex))
	return mu.(*sync.Mutex)
}

// SettingsStore is the single authority for reading and writing the overlay
// [models.Settings] file. Load, TryLoad and Save are serialized by one lock,
// so a load never observes a save that is still in progress within the
// process.
//
// The store does not hold the settings value between calls.
type SettingsStore struct {
	dir  string
	path string
	fs   FileSystem
	mu   *sync.Mutex
	log  *logger.Logger
}

// NewSettingsStore returns a store for the file described by cfg on the
// local disk.
func NewSettingsStore(cfg config.SettingsStorage, log *logger.Logger) *SettingsStore {
	return NewSettingsStoreWithFS(cfg, NewOSFileSystem(cfg.AtomicWrite), log)
}

// NewSettingsStoreWithFS returns a store that performs all I/O through fsys.
func NewSettingsStoreWithFS(cfg config.SettingsStorage, fsys FileSystem, log *logger.Logger) *SettingsStore {
	path := cfg.Path()
	return &SettingsStore{
		dir:  cfg.Dir,
		path: path,
		fs:   fsys,
		mu:   lockFor(path),
		log:  log,
	}
}

// Dir returns the settings directory.
func (s *SettingsStore) Dir() string {
	return s.dir
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load reads the settings file. A missing, unreadable or malformed file is
// reported as false with a nil value and recorded, with a stack trace, in the
// log. It never substitutes defaults; that decision is the caller's.
//
// A settings directory that cannot be created is not absorbed: it is
// returned as [ErrDirectoryUnavailable] and not logged.
func (s *SettingsStore) Load() (*models.Settings, bool, error) {
	settings, err := s.TryLoad()
	if err == nil {
		return settings, true, nil
	}
	if errors.Is(err, ErrDirectoryUnavailable) {
		return nil, false, err
	}

	s.log.Error().
		Err(err).
		Str("path", s.path).
		Str("stack", string(debug.Stack())).
		Msg("load settings")
	return nil, false, nil
}

// TryLoad performs the same steps as [SettingsStore.Load] but returns the
// classified error instead of logging it:
//   - [ErrDirectoryUnavailable] when the directory cannot be created;
//   - [ErrNotFound] when the file does not exist;
//   - [ErrReadFailure] when the file cannot be read;
//   - [ErrMalformed] when the content cannot be decoded.
//
// Keys missing from the file keep their default values. A present
// "paintColors" object replaces the default palette entirely.
func (s *SettingsStore) TryLoad() (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	settings, err := decodeSettings(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, s.path, err)
	}

	return settings, nil
}

// Save encodes settings as indented JSON and overwrites the settings file.
// Errors are returned to the caller, wrapped in [ErrDirectoryUnavailable] or
// [ErrWriteFailure]; the store does not log them.
func (s *SettingsStore) Save(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDir(); err != nil {
		return err
	}

	data, err := EncodeSettings(settings)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWriteFailure, err)
	}

	if err := s.fs.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	s.log.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("settings saved")
	return nil
}

func (s *SettingsStore) ensureDir() error {
	if err := s.fs.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDirectoryUnavailable, s.dir, err)
	}
	return nil
}

// decodeSettings decodes data on top of the defaults. The palette is cleared
// first so that a saved palette is not merged with the default one.
func decodeSettings(data []byte) (*models.Settings, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, errNullDocument
	}

	settings := models.DefaultSettings()
	settings.PaintColors = nil

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.PaintColors == nil {
		settings.PaintColors = models.DefaultPaintColors()
	}

	return settings, nil
}

// EncodeSettings renders settings in the on-disk format: indented JSON with
// a trailing newline.
func EncodeSettings(settings models.Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(settings); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
