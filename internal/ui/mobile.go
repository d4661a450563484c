package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Mobile UI constants - larger touch targets
const mobileButtonHeight = 48

// isMobile returns true if running on a mobile device
func isMobile() bool {
	return fyne.CurrentDevice().IsMobile()
}

// buildControls arranges the readout labels and the color button. On
// mobile they stack and the button spans the width at touch-target height.
func buildControls(mobile bool, button *widget.Button, labels ...fyne.CanvasObject) fyne.CanvasObject {
	if mobile {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(0, mobileButtonHeight))
		rows := append(append([]fyne.CanvasObject{}, labels...), container.NewStack(spacer, button))
		return container.NewVBox(rows...)
	}

	row := []fyne.CanvasObject{layout.NewSpacer()}
	row = append(row, labels...)
	row = append(row, button, layout.NewSpacer())
	return container.NewHBox(row...)
}
