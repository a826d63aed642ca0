package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/overlay-settings/internal/client"
	"github.com/MKhiriev/overlay-settings/internal/config"
	"github.com/MKhiriev/overlay-settings/internal/logger"
	"github.com/MKhiriev/overlay-settings/internal/store"
	"github.com/MKhiriev/overlay-settings/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if !cfg.CLI.Print {
		printBuildInfo()
	}

	// the editor owns the terminal; one-shot actions may still report on stderr
	var logFallback io.Writer = io.Discard
	if cfg.CLI.Print || cfg.CLI.Reset || cfg.CLI.Copy {
		logFallback = os.Stderr
	}

	log := logger.NewClientLogger("overlay-settings", cfg.Log.Path, cfg.Log.Level, logFallback)
	log.Info().
		Str("version", buildVersion).
		Str("settings", cfg.Settings.Path()).
		Bool("atomic", cfg.Settings.AtomicWrite).
		Msg("starting")

	settingsStore := store.NewSettingsStore(cfg.Settings, log)

	ui, err := tui.New(settingsStore, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(settingsStore, ui, cfg.CLI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
