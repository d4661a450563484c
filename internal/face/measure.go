package face

import "math"

// MeasureMode is how a parent constrains one axis of a child.
type MeasureMode int

const (
	// Unspecified leaves the child free to take its desired size.
	Unspecified MeasureMode = iota
	// Exactly forces the child to Size.
	Exactly
	// AtMost caps the child at Size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "UNSPECIFIED"
	case Exactly:
		return "EXACTLY"
	case AtMost:
		return "AT_MOST"
	default:
		return "UNKNOWN"
	}
}

// MeasureSpec is a constraint on one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size float64
}

// ExactlySpec forces size.
func ExactlySpec(size float64) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSpec caps at size.
func AtMostSpec(size float64) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// UnspecifiedSpec imposes nothing.
func UnspecifiedSpec() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

// Desired is a widget's intrinsic size on one axis: its minimum plus the
// padding on both ends.
func Desired(minimum, padStart, padEnd float64) float64 {
	return minimum + padStart + padEnd
}

// Measure resolves one axis: Exactly wins outright, AtMost takes the
// smaller of desired and the cap, anything else keeps desired.
func Measure(desired float64, spec MeasureSpec) float64 {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return math.Min(desired, spec.Size)
	default:
		return desired
	}
}
