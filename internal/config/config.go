// Package config resolves clockface style attributes.
//
// Attributes come from an optional TOML file and fall back to built-in
// defaults key by key. They are resolved once, when the screen or a
// snapshot is created, and are not watched afterwards.
package config

import (
	"fmt"
	"os"
	"strings"

	"clockface/internal/errors"
	"clockface/internal/face"
	"clockface/internal/log"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable holding the config file path for
// the GUI.
const EnvPath = "CLOCKFACE_CONFIG"

// Config is the decoded configuration file.
type Config struct {
	// ShowSmall adds the second, smaller clock to the screen.
	ShowSmall bool   `toml:"show_small"`
	LogLevel  string `toml:"log_level"`

	Style StyleAttrs `toml:"style"`
	Large ClockAttrs `toml:"large"`
	Small ClockAttrs `toml:"small"`
}

// StyleAttrs are the face style attributes shared by every clock.
// Colors accept a name ("white"), #RRGGBB, #AARRGGBB or 0xAARRGGBB.
type StyleAttrs struct {
	NumeralSize NumeralSize `toml:"numeral_size"`
	NumeralFont string      `toml:"numeral_font"`
	Background  string      `toml:"background"`
	Bezel       string      `toml:"bezel"`
	Hand        string      `toml:"hand"`
}

// ClockAttrs size one clock instance on the screen.
type ClockAttrs struct {
	MinSize float32 `toml:"min_size"`
	Padding float32 `toml:"padding"`
	// AutoNumerals scales numerals with the face instead of using
	// style.numeral_size.
	AutoNumerals bool `toml:"auto_numerals"`
}

// Default returns the built-in configuration: two clocks, white faces,
// black bezel and hands, 30 unit sans-serif numerals.
func Default() *Config {
	return &Config{
		ShowSmall: true,
		Style: StyleAttrs{
			NumeralSize: NumeralSize{Size: face.DefaultNumeralSize},
			NumeralFont: face.FontSansSerif,
			Background:  "white",
			Bezel:       "black",
			Hand:        "black",
		},
		Large: ClockAttrs{MinSize: 240, Padding: 8},
		Small: ClockAttrs{MinSize: 120, Padding: 8, AutoNumerals: true},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "load config "+path)
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown config key", log.String("file", path), log.String("key", key.String()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "load config "+path)
	}
	log.Debug("config loaded", log.String("file", path))
	return cfg, nil
}

// LoadFromEnv loads the file named by CLOCKFACE_CONFIG, or the defaults.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Validate resolves every attribute once and reports the first failure.
func (c *Config) Validate() error {
	if _, err := c.FaceStyle(); err != nil {
		return err
	}
	for _, ca := range []struct {
		name  string
		attrs ClockAttrs
	}{{"large", c.Large}, {"small", c.Small}} {
		if ca.attrs.MinSize <= 0 {
			return errors.NewConfigError(ca.name+".min_size", fmt.Sprint(ca.attrs.MinSize), errors.ErrInvalidSize)
		}
		if ca.attrs.Padding < 0 {
			return errors.NewConfigError(ca.name+".padding", fmt.Sprint(ca.attrs.Padding), errors.ErrInvalidSize)
		}
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return errors.NewConfigError("log_level", c.LogLevel, errors.ErrInvalidStyle)
		}
	}
	return nil
}

// FaceStyle resolves the shared style attributes.
func (c *Config) FaceStyle() (face.FaceStyle, error) {
	s := face.DefaultStyle()

	var err error
	if s.Background, err = resolveColor("style.background", c.Style.Background, s.Background); err != nil {
		return s, err
	}
	if s.Bezel, err = resolveColor("style.bezel", c.Style.Bezel, s.Bezel); err != nil {
		return s, err
	}
	if s.Hand, err = resolveColor("style.hand", c.Style.Hand, s.Hand); err != nil {
		return s, err
	}

	if font := strings.TrimSpace(c.Style.NumeralFont); font != "" {
		s.NumeralFont = strings.ToLower(font)
	}
	switch s.NumeralFont {
	case face.FontSansSerif, face.FontSerif, face.FontMonospace:
	default:
		log.Warn("unknown numeral font, renderers fall back to sans-serif", log.String("font", s.NumeralFont))
	}

	ns := c.Style.NumeralSize
	if ns.Auto {
		s.AutoNumeralSize = true
	} else if ns.Size > 0 {
		s.NumeralSize = ns.Size
	} else if ns.set {
		return s, errors.NewConfigError("style.numeral_size", fmt.Sprint(ns.Size), errors.ErrInvalidStyle)
	}
	return s, nil
}

// ClockStyle is FaceStyle with one clock's overrides applied.
func (c *Config) ClockStyle(attrs ClockAttrs) (face.FaceStyle, error) {
	s, err := c.FaceStyle()
	if err != nil {
		return s, err
	}
	if attrs.AutoNumerals {
		s.AutoNumeralSize = true
	}
	return s, nil
}

func resolveColor(key, value string, fallback face.ARGB) (face.ARGB, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	c, err := ParseColor(value)
	if err != nil {
		return fallback, errors.NewConfigError(key, value, err)
	}
	return c, nil
}
