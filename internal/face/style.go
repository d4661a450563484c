package face

import "math"

// Numeral font families understood by both renderers.
const (
	FontSansSerif = "sans-serif"
	FontSerif     = "serif"
	FontMonospace = "monospace"
)

// DefaultNumeralSize is the numeral text size when no attribute sets one.
const DefaultNumeralSize = 30

// FaceStyle is the appearance of one clock. It is resolved once from style
// attributes; afterwards only Background changes (random color, restore).
type FaceStyle struct {
	Background ARGB
	Bezel      ARGB
	Hand       ARGB

	NumeralFont string
	NumeralSize float64

	// AutoNumeralSize ignores NumeralSize and uses min(w, h)/10, so small
	// faces get small numerals.
	AutoNumeralSize bool
}

// DefaultStyle is a white face with a black bezel, black hands and 30 unit
// sans-serif numerals.
func DefaultStyle() FaceStyle {
	return FaceStyle{
		Background:  White,
		Bezel:       Black,
		Hand:        Black,
		NumeralFont: FontSansSerif,
		NumeralSize: DefaultNumeralSize,
	}
}

// NumeralSizeFor returns the numeral text size for a w x h face.
func (s FaceStyle) NumeralSizeFor(w, h float64) float64 {
	if s.AutoNumeralSize {
		return math.Min(w, h) / 10
	}
	return s.NumeralSize
}
