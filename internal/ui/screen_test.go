package ui

import (
	"testing"

	"clockface/internal/app"
	"clockface/internal/config"
	"clockface/internal/face"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/jonboulle/clockwork"
)

func newTestScreen(t *testing.T, a fyne.App, cfg *config.Config, opts ...ScreenOption) (*Screen, uiQueue) {
	t.Helper()
	q := newUIQueue()
	opts = append([]ScreenOption{
		WithScreenClock(clockwork.NewFakeClockAt(testStart)),
		WithScreenScheduler(q.schedule),
		WithScreenRandom(face.NewSeededSource(1)),
		WithMobileLayout(false),
	}, opts...)
	s, err := NewScreen(a, cfg, opts...)
	if err != nil {
		t.Fatalf("NewScreen: %v", err)
	}
	t.Cleanup(s.Close)
	return s, q
}

func TestScreen(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()

	s, _ := newTestScreen(t, a, config.Default())

	t.Run("initial time", func(t *testing.T) {
		want := face.TimeOfDay{Hour: 10, Minute: 8, Second: 30}
		if s.Large().Time() != want || s.Small().Time() != want {
			t.Errorf("clocks show %v and %v, want %v", s.Large().Time(), s.Small().Time(), want)
		}
		if got, _ := s.bound.Time.Get(); got != "10:08:30" {
			t.Errorf("readout = %q", got)
		}
	})

	t.Run("clocks running", func(t *testing.T) {
		if !s.Large().Updating() || !s.Small().Updating() {
			t.Error("both clocks should be updating")
		}
	})

	t.Run("small numerals scale", func(t *testing.T) {
		if !s.Small().Style().AutoNumeralSize {
			t.Error("small clock should use auto numeral size")
		}
		if s.Large().Style().AutoNumeralSize {
			t.Error("large clock should use the configured numeral size")
		}
	})

	t.Run("change color", func(t *testing.T) {
		test.Tap(s.button)
		large, small := s.Large().Style().Background, s.Small().Style().Background
		if large == face.White || small == face.White {
			t.Errorf("faces not recolored: %v %v", large, small)
		}
		if got, _ := s.bound.Color.Get(); got != large.Hex() {
			t.Errorf("color label = %q, want %q", got, large.Hex())
		}
	})

	t.Run("window", func(t *testing.T) {
		if s.Window().Title() != WindowTitle {
			t.Errorf("title = %q", s.Window().Title())
		}
		if s.Window().Icon() == nil {
			t.Error("window icon not set")
		}
	})

	t.Run("close saves and stops", func(t *testing.T) {
		s.Close()
		if s.Large().Updating() || s.Small().Updating() {
			t.Error("Close left a clock running")
		}
		for _, id := range []string{app.LargeClockID, app.SmallClockID} {
			if a.Preferences().String(id) == "" {
				t.Errorf("state %s not saved", id)
			}
		}
		s.Close()
	})
}

func TestScreenRestore(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()

	first, _ := newTestScreen(t, a, config.Default())
	first.ChangeColor()
	wantLarge := first.Large().Style().Background
	wantSmall := first.Small().Style().Background
	first.Close()

	second, _ := newTestScreen(t, a, config.Default())
	if got := second.Large().Style().Background; got != wantLarge {
		t.Errorf("large restored %v, want %v", got, wantLarge)
	}
	if got := second.Small().Style().Background; got != wantSmall {
		t.Errorf("small restored %v, want %v", got, wantSmall)
	}
	if got, _ := second.bound.Color.Get(); got != wantLarge.Hex() {
		t.Errorf("color label = %q after restore", got)
	}
}

func TestScreenBadState(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()

	a.Preferences().SetString(app.LargeClockID, "{broken")
	a.Preferences().SetString(app.SmallClockID, `{"other": 1}`)

	s, _ := newTestScreen(t, a, config.Default())
	if s.Large().Style().Background != face.White || s.Small().Style().Background != face.White {
		t.Error("bad saved state should leave the configured background")
	}
	if got := a.Preferences().String(app.LargeClockID); got != "" {
		t.Errorf("corrupt entry kept: %q", got)
	}
	if got := a.Preferences().String(app.SmallClockID); got != `{"other": 1}` {
		t.Errorf("decodable entry changed to %q", got)
	}
}

func TestScreenLayouts(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()

	t.Run("small hidden", func(t *testing.T) {
		cfg := config.Default()
		cfg.ShowSmall = false
		s, _ := newTestScreen(t, a, cfg)
		if s.Small() != nil {
			t.Error("small clock created although show_small is false")
		}
		if len(s.faces.Objects) != 1 {
			t.Errorf("%d faces on screen", len(s.faces.Objects))
		}
	})

	t.Run("mobile stacks", func(t *testing.T) {
		s, _ := newTestScreen(t, a, config.Default(), WithMobileLayout(true))
		if !s.faces.Layout.(*facesLayout).vertical {
			t.Error("mobile layout should stack the faces")
		}
	})
}

func TestClockTheme(t *testing.T) {
	style := face.DefaultStyle()
	style.Bezel = 0xFF336699
	th := NewClockTheme(style)

	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != style.Bezel.NRGBA() {
		t.Errorf("primary = %v, want bezel", got)
	}
	dark := NewClockTheme(face.DefaultStyle())
	if got := dark.Color(theme.ColorNamePrimary, theme.VariantDark); got == face.Black.NRGBA() {
		t.Error("black bezel should be lightened on dark backgrounds")
	}
	if th.Size(theme.SizeNameText) != 16 {
		t.Errorf("text size = %v", th.Size(theme.SizeNameText))
	}
}
