package ui

import (
	"clockface/internal/config"
	"clockface/internal/log"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

// AppID identifies clockface to Fyne; preferences are stored under it.
const AppID = "io.github.clockface"

// App is the clockface desktop/mobile application.
type App struct {
	Version string

	fyne fyne.App
	cfg  *config.Config
}

// NewApp creates the application from a resolved configuration.
func NewApp(cfg *config.Config, version string) (*App, error) {
	style, err := cfg.FaceStyle()
	if err != nil {
		return nil, err
	}

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(NewClockTheme(style))
	return &App{Version: version, fyne: a, cfg: cfg}, nil
}

// Run opens the clock window and blocks until the application quits.
func (a *App) Run() error {
	screen, err := NewScreen(a.fyne, a.cfg)
	if err != nil {
		return err
	}
	defer screen.Close()

	log.Info("clockface started", log.String("version", a.Version))
	screen.Window().ShowAndRun()
	return nil
}
