// Package app provides screen-level state for clockface: Fyne data bindings
// for the digital readout and the store that carries each clock's saved
// state across restarts.
package app

import (
	"clockface/internal/face"

	"fyne.io/fyne/v2/data/binding"
)

// BoundFace mirrors one clock into Fyne data bindings so labels update
// without manual SetText calls.
type BoundFace struct {
	// Time is the shown time as HH:MM:SS.
	Time binding.String

	// Color is the face background as #AARRGGBB.
	Color binding.String
}

// NewBoundFace creates bindings showing midnight on a white face.
func NewBoundFace() *BoundFace {
	b := &BoundFace{
		Time:  binding.NewString(),
		Color: binding.NewString(),
	}
	b.SetTime(face.TimeOfDay{})
	b.SetColor(face.White)
	return b
}

// SetTime updates the time binding. Call it on the UI goroutine.
func (b *BoundFace) SetTime(t face.TimeOfDay) {
	_ = b.Time.Set(t.String())
}

// SetColor updates the color binding. Call it on the UI goroutine.
func (b *BoundFace) SetColor(c face.ARGB) {
	_ = b.Color.Set(c.Hex())
}
