// Package ui provides the clockface graphical user interface using Fyne:
// the analog Clock widget and the Screen that hosts a large and a small
// clock with their controls.
package ui

import (
	"image/color"

	"clockface/internal/face"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ClockTheme tints the default theme with the configured bezel color and
// enlarges text so the digital readout is legible next to the faces.
type ClockTheme struct {
	accent face.ARGB
}

var _ fyne.Theme = (*ClockTheme)(nil)

// NewClockTheme creates a theme whose primary color is the face bezel.
func NewClockTheme(style face.FaceStyle) fyne.Theme {
	return &ClockTheme{accent: style.Bezel}
}

// Color returns the color for the specified name and variant.
func (c *ClockTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		// A black bezel would vanish on a dark background.
		if variant == theme.VariantDark && c.accent.R() < 0x40 && c.accent.G() < 0x40 && c.accent.B() < 0x40 {
			return color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
		}
		return c.accent.NRGBA()

	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
		}
		return color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}

	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

// Font returns the font resource for the specified text style.
func (c *ClockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon resource for the specified name.
func (c *ClockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name.
func (c *ClockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 32 // digital readout
	case theme.SizeNamePadding:
		return 6
	default:
		return theme.DefaultTheme().Size(name)
	}
}
