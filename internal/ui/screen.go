package ui

import (
	"bytes"
	"context"
	"sync"

	"clockface/internal/app"
	"clockface/internal/config"
	"clockface/internal/errors"
	"clockface/internal/face"
	"clockface/internal/log"
	"clockface/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
)

// WindowTitle is the title of the clock window.
const WindowTitle = "Clockface"

const iconSize = 64

// Screen is the clock window: a large clock, an optional small clock, a
// digital readout of the large clock and a button that recolors both faces.
type Screen struct {
	window fyne.Window
	store  *app.StateStore
	bound  *app.BoundFace

	large *Clock
	small *Clock

	button  *widget.Button
	faces   *fyne.Container
	content fyne.CanvasObject

	cancel    context.CancelFunc
	closeOnce sync.Once
}

type screenOptions struct {
	clock    clockwork.Clock
	src      face.IntNSource
	schedule func(func())
	mobile   *bool
}

// ScreenOption configures a Screen.
type ScreenOption func(*screenOptions)

// WithScreenClock sets the time source of every clock on the screen.
func WithScreenClock(c clockwork.Clock) ScreenOption {
	return func(o *screenOptions) { o.clock = c }
}

// WithScreenRandom sets the generator used when recoloring faces.
func WithScreenRandom(src face.IntNSource) ScreenOption {
	return func(o *screenOptions) { o.src = src }
}

// WithScreenScheduler sets how clock ticks reach the UI goroutine.
func WithScreenScheduler(schedule func(func())) ScreenOption {
	return func(o *screenOptions) { o.schedule = schedule }
}

// WithMobileLayout forces the stacked (true) or side-by-side (false)
// arrangement instead of asking the device.
func WithMobileLayout(mobile bool) ScreenOption {
	return func(o *screenOptions) { o.mobile = &mobile }
}

// NewScreen builds the clock window of fyneApp from cfg. Each clock is set
// to the current time, restored from preferences and then started.
func NewScreen(fyneApp fyne.App, cfg *config.Config, opts ...ScreenOption) (*Screen, error) {
	o := screenOptions{
		clock:    clockwork.NewRealClock(),
		src:      face.DefaultSource(),
		schedule: fyne.Do,
	}
	for _, opt := range opts {
		opt(&o)
	}
	mobile := isMobile()
	if o.mobile != nil {
		mobile = *o.mobile
	}

	largeStyle, err := cfg.ClockStyle(cfg.Large)
	if err != nil {
		return nil, err
	}
	smallStyle, err := cfg.ClockStyle(cfg.Small)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Screen{
		store:  app.NewStateStore(fyneApp.Preferences()),
		bound:  app.NewBoundFace(),
		cancel: cancel,
	}

	common := []ClockOption{WithClock(o.clock), WithRandom(o.src), WithScheduler(o.schedule)}
	s.large = NewClock(largeStyle, append(common,
		WithMinSize(cfg.Large.MinSize), WithPadding(cfg.Large.Padding))...)
	s.large.OnTimeChanged = s.bound.SetTime
	s.large.OnColorChanged = s.bound.SetColor
	s.bound.SetColor(largeStyle.Background)

	faces := []fyne.CanvasObject{s.large}
	if cfg.ShowSmall {
		s.small = NewClock(smallStyle, append(common,
			WithMinSize(cfg.Small.MinSize), WithPadding(cfg.Small.Padding))...)
		faces = append(faces, s.small)
	}

	now := face.TimeOf(o.clock.Now())
	s.eachClock(func(id string, c *Clock) {
		c.SetTime(now.Hour, now.Minute, now.Second)
		s.restore(id, c)
		c.StartPeriodicUpdate(ctx)
	})

	readout := widget.NewLabelWithData(s.bound.Time)
	readout.Alignment = fyne.TextAlignCenter
	readout.SizeName = theme.SizeNameHeadingText
	readout.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	colorLabel := widget.NewLabelWithData(s.bound.Color)
	colorLabel.TextStyle = fyne.TextStyle{Monospace: true}

	s.button = widget.NewButton("Change color", s.ChangeColor)
	s.button.Importance = widget.HighImportance

	s.faces = container.New(&facesLayout{vertical: mobile}, faces...)
	s.content = container.NewBorder(nil,
		buildControls(mobile, s.button, readout, colorLabel),
		nil, nil,
		s.faces,
	)

	s.window = fyneApp.NewWindow(WindowTitle)
	s.window.SetContent(s.content)
	if icon, err := faceIcon(now, largeStyle); err != nil {
		log.Warn("window icon not rendered", log.Err(err))
	} else {
		s.window.SetIcon(icon)
	}
	s.window.SetCloseIntercept(func() {
		s.Close()
		s.window.Close()
	})
	fyneApp.Lifecycle().SetOnStopped(s.Save)

	log.Info("screen created",
		log.Bool("small", cfg.ShowSmall),
		log.Float64("numeral_size", largeStyle.NumeralSize),
		log.Bool("mobile", mobile),
		log.String("time", now.String()))
	return s, nil
}

// eachClock calls fn for every clock on the screen with its state key.
func (s *Screen) eachClock(fn func(id string, c *Clock)) {
	fn(app.LargeClockID, s.large)
	if s.small != nil {
		fn(app.SmallClockID, s.small)
	}
}

// restore applies the saved state of c. Entries that do not decode are
// removed so the warning is not repeated on every start.
func (s *Screen) restore(id string, c *Clock) {
	state, err := s.store.Load(id)
	switch {
	case errors.Is(err, errors.ErrMissingState):
		log.Debug("no saved state", log.String("id", id))
		return
	case errors.IsState(err):
		log.Warn("saved state discarded", log.String("id", id), log.Err(err))
		s.store.Remove(id)
		return
	case err != nil:
		log.Warn("saved state skipped", log.String("id", id), log.Err(err))
		return
	}
	if err := c.RestoreState(state); err != nil {
		log.Warn("saved state skipped", log.String("id", id), log.Err(err))
		return
	}
	log.Debug("state restored", log.String("id", id), log.Color("background", uint32(c.Style().Background)))
}

// ChangeColor gives every clock a new random face color.
func (s *Screen) ChangeColor() {
	s.eachClock(func(_ string, c *Clock) {
		c.SetRandomFaceColor()
	})
}

// Save writes every clock's state to the preferences.
func (s *Screen) Save() {
	s.eachClock(func(id string, c *Clock) {
		if err := s.store.Save(id, c.SaveState()); err != nil {
			log.Error("state not saved", log.String("id", id), log.Err(err))
		}
	})
}

// Close saves state and stops every clock. Later calls do nothing.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.Save()
		s.cancel()
		s.eachClock(func(_ string, c *Clock) {
			c.Close()
		})
		log.Info("screen closed")
	})
}

// Window returns the clock window.
func (s *Screen) Window() fyne.Window { return s.window }

// Large returns the large clock.
func (s *Screen) Large() *Clock { return s.large }

// Small returns the small clock, or nil when it is hidden.
func (s *Screen) Small() *Clock { return s.small }

// faceIcon renders the face at t as a PNG resource.
func faceIcon(t face.TimeOfDay, style face.FaceStyle) (fyne.Resource, error) {
	style.AutoNumeralSize = true
	img, err := render.Snapshot(iconSize, iconSize, t, style)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("clockface.png", buf.Bytes()), nil
}
