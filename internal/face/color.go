// Package face holds the toolkit-independent model of an analog clock face:
// time of day, colors, style attributes, geometry and the ordered list of
// draw primitives a renderer turns into pixels.
//
// Nothing in this package touches a GUI toolkit. The Fyne widget in
// internal/ui and the offscreen rasterizer in internal/render both consume
// the Plan produced by Build.
package face

import (
	"fmt"
	"image/color"
	"math"
)

// ARGB is a color packed as 0xAARRGGBB with straight (non-premultiplied)
// alpha. It is the persisted representation of the face background.
type ARGB uint32

var _ color.Color = ARGB(0)

// Common colors
const (
	White       ARGB = 0xFFFFFFFF
	Black       ARGB = 0xFF000000
	Transparent ARGB = 0x00000000
)

// NewARGB packs four channels.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any color.Color to ARGB.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewARGB(n.A, n.R, n.G, n.B)
}

func (c ARGB) A() uint8 { return uint8(c >> 24) }
func (c ARGB) R() uint8 { return uint8(c >> 16) }
func (c ARGB) G() uint8 { return uint8(c >> 8) }
func (c ARGB) B() uint8 { return uint8(c) }

// NRGBA returns the color as a straight-alpha color.NRGBA.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex formats the color as #AARRGGBB.
func (c ARGB) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func (c ARGB) String() string {
	return c.Hex()
}

// darkenFactor is applied to each of R, G and B by Darken.
const darkenFactor = 0.8

// Darken keeps alpha and scales each RGB channel by 0.8, rounding to the
// nearest integer. It is used for bezel and hand shadows.
// Darken(Darken(c)) differs from Darken(c) for any non-black color.
func Darken(c ARGB) ARGB {
	return NewARGB(c.A(), darkenChannel(c.R()), darkenChannel(c.G()), darkenChannel(c.B()))
}

func darkenChannel(v uint8) uint8 {
	return uint8(math.Min(math.Round(float64(v)*darkenFactor), 255))
}
