package render

import (
	"fmt"
	"math"

	"clockface/internal/face"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// Numerals are bold in every family.
var fontData = map[string][]byte{
	face.FontSansSerif: gobold.TTF,
	face.FontMonospace: gomonobold.TTF,
}

type faceKey struct {
	family string
	size   float64
}

type fontCache struct {
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

func newFontCache() *fontCache {
	return &fontCache{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// family maps a style family name onto one the Go fonts can draw.
// Unknown names, including "serif", fall back to sans-serif.
func family(name string) string {
	if _, ok := fontData[name]; ok {
		return name
	}
	return face.FontSansSerif
}

func (c *fontCache) face(name string, size float64) (font.Face, error) {
	key := faceKey{family: family(name), size: math.Round(size*4) / 4}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	otf, ok := c.fonts[key.family]
	if !ok {
		var err error
		otf, err = opentype.Parse(fontData[key.family])
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", key.family, err)
		}
		c.fonts[key.family] = otf
	}

	// 72 DPI makes points equal to pixels.
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s/%v: %w", key.family, key.size, err)
	}
	c.faces[key] = f
	return f, nil
}

func (c *fontCache) close() error {
	var first error
	for k, f := range c.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(c.faces, k)
	}
	return first
}
