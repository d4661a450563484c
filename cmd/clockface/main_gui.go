//go:build !cli

package main

import (
	"fmt"
	"os"

	"clockface/internal/cli"
	"clockface/internal/config"
	"clockface/internal/errors"
	"clockface/internal/log"
	"clockface/internal/ui"
)

// logEnv names the environment variable holding the GUI log level.
const logEnv = "CLOCKFACE_LOG"

// run is the GUI+CLI entry point.
// It first checks for CLI subcommands, and if none are found, launches the GUI.
func run() {
	if cli.Execute(version) {
		return
	}

	if err := log.EnableFromEnv(logEnv); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", logEnv, err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		if errors.IsConfig(err) {
			fmt.Fprintf(os.Stderr, "Invalid style attribute in %s: %v\n", os.Getenv(config.EnvPath), err)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		}
		os.Exit(1)
	}
	if _, set := os.LookupEnv(logEnv); !set && cfg.LogLevel != "" {
		// Validate already checked the level name.
		level, _ := log.ParseLevel(cfg.LogLevel)
		log.EnableStderrLogging(level)
	}

	app, err := ui.NewApp(cfg, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "clockface: %v\n", err)
		os.Exit(1)
	}
}
