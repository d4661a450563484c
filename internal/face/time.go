package face

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"clockface/internal/errors"
)

// TimeOfDay is the time a clock face shows.
// Hour is 0-23, Minute and Second are 0-59 by caller contract; nothing here
// validates them. Out-of-range values give odd hand positions, not errors.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOf reads the wall-clock fields of t in its own location.
func TimeOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" and checks the ranges.
// Only user input goes through here; SetTime paths do not validate.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q: want HH:MM[:SS]", errors.ErrInvalidTime, s)
	}
	var fields [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q: %v", errors.ErrInvalidTime, s, err)
		}
		fields[i] = v
	}
	t := TimeOfDay{Hour: fields[0], Minute: fields[1], Second: fields[2]}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("%w: %q out of range", errors.ErrInvalidTime, s)
	}
	return t, nil
}

// Valid reports whether every field is inside its clock range.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second < 60
}

// Add returns t moved by seconds, wrapping around midnight.
func (t TimeOfDay) Add(seconds int) TimeOfDay {
	const day = 24 * 60 * 60
	total := ((t.Hour*60+t.Minute)*60 + t.Second + seconds) % day
	if total < 0 {
		total += day
	}
	return TimeOfDay{Hour: total / 3600, Minute: total / 60 % 60, Second: total % 60}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Hand angles are in degrees, clockwise from 12 o'clock, not normalized.

// HourAngle is hour*30 + minute*0.5.
func HourAngle(t TimeOfDay) float64 {
	return float64(t.Hour)*30 + 0.5*float64(t.Minute)
}

// MinuteAngle is minute*6 + second*0.1.
func MinuteAngle(t TimeOfDay) float64 {
	return float64(t.Minute)*6 + 0.1*float64(t.Second)
}

// SecondAngle is second*6.
func SecondAngle(t TimeOfDay) float64 {
	return float64(t.Second) * 6
}

// CounterweightAngle points a hand's back segment opposite its front.
func CounterweightAngle(deg float64) float64 {
	return deg - 180
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
