package config

import (
	"fmt"
	"strconv"
	"strings"

	"clockface/internal/errors"
	"clockface/internal/face"

	"golang.org/x/image/colornames"
)

// NumeralSize is either a fixed text size or "auto".
type NumeralSize struct {
	Auto bool
	Size float64
	set  bool
}

// UnmarshalTOML accepts an integer, a float or the string "auto".
func (n *NumeralSize) UnmarshalTOML(v any) error {
	n.set = true
	switch x := v.(type) {
	case int64:
		n.Size, n.Auto = float64(x), false
	case float64:
		n.Size, n.Auto = x, false
	case string:
		if strings.EqualFold(strings.TrimSpace(x), "auto") {
			n.Auto = true
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return errors.NewConfigError("style.numeral_size", x, errors.ErrInvalidStyle)
		}
		n.Size, n.Auto = f, false
	default:
		return errors.NewConfigError("style.numeral_size", fmt.Sprint(v), errors.ErrInvalidStyle)
	}
	if n.Size <= 0 {
		return errors.NewConfigError("style.numeral_size", fmt.Sprint(v), errors.ErrInvalidStyle)
	}
	return nil
}

// ParseColor reads a color name from the SVG/CSS palette, #RRGGBB,
// #AARRGGBB, 0xRRGGBB or 0xAARRGGBB. Six-digit forms are opaque.
func ParseColor(s string) (face.ARGB, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[v]; ok {
		return face.FromColor(c), nil
	}

	var hex string
	switch {
	case strings.HasPrefix(v, "#"):
		hex = v[1:]
	case strings.HasPrefix(v, "0x"):
		hex = v[2:]
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidColor, s)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidColor, s)
	}
	switch len(hex) {
	case 6:
		return face.ARGB(0xFF000000 | uint32(n)), nil
	case 8:
		return face.ARGB(uint32(n)), nil
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrInvalidColor, s)
}
