package face

import "math/rand/v2"

// IntNSource yields uniform integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it, so tests can pass a seeded generator.
type IntNSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide generator.
func DefaultSource() IntNSource {
	return globalSource{}
}

// NewSeededSource returns a deterministic source.
func NewSeededSource(seed uint64) IntNSource {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// RandomColor draws R, G and B independently and uniformly from [0, 255]
// and returns them fully opaque.
func RandomColor(src IntNSource) ARGB {
	if src == nil {
		src = DefaultSource()
	}
	r := uint8(src.IntN(256))
	g := uint8(src.IntN(256))
	b := uint8(src.IntN(256))
	return NewARGB(0xFF, r, g, b)
}
