package ui

import (
	"context"
	"sync"
	"time"

	"clockface/internal/app"
	"clockface/internal/errors"
	"clockface/internal/face"
	"clockface/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/jonboulle/clockwork"
)

// UpdateInterval is how often a running clock re-reads the time.
const UpdateInterval = time.Second

// Clock is an analog clock face widget. It shows the time last passed to
// SetTime, or the wall clock while a periodic update is running.
//
// All methods except StartPeriodicUpdate, StopPeriodicUpdate and Close
// must be called on the UI goroutine.
type Clock struct {
	widget.BaseWidget

	// OnTimeChanged, if set, is called after every SetTime.
	OnTimeChanged func(face.TimeOfDay)

	// OnColorChanged, if set, is called when the face background changes.
	OnColorChanged func(face.ARGB)

	time    face.TimeOfDay
	style   face.FaceStyle
	minSize float32
	padding float32

	clock    clockwork.Clock
	src      face.IntNSource
	schedule func(func())
	log      log.Logger

	redraws int

	mu      sync.Mutex
	updater *updater
}

// ClockOption configures a Clock.
type ClockOption func(*Clock)

// WithClock sets the time source read by the periodic update.
func WithClock(c clockwork.Clock) ClockOption {
	return func(w *Clock) { w.clock = c }
}

// WithRandom sets the generator behind SetRandomFaceColor.
func WithRandom(src face.IntNSource) ClockOption {
	return func(w *Clock) { w.src = src }
}

// WithScheduler sets how ticks reach the UI goroutine. The default is
// fyne.Do.
func WithScheduler(schedule func(func())) ClockOption {
	return func(w *Clock) { w.schedule = schedule }
}

// WithMinSize sets the face's minimum edge length, excluding padding.
func WithMinSize(size float32) ClockOption {
	return func(w *Clock) { w.minSize = size }
}

// WithPadding sets the empty margin on every side of the face.
func WithPadding(padding float32) ClockOption {
	return func(w *Clock) { w.padding = padding }
}

// WithLogger sets the logger. The default is the package-wide logger.
func WithLogger(l log.Logger) ClockOption {
	return func(w *Clock) { w.log = l }
}

// NewClock creates a clock showing 00:00:00 in the given style.
func NewClock(style face.FaceStyle, opts ...ClockOption) *Clock {
	c := &Clock{
		style:    style,
		minSize:  defaultClockMinSize,
		clock:    clockwork.NewRealClock(),
		src:      face.DefaultSource(),
		schedule: fyne.Do,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *Clock) logger() log.Logger {
	if c.log != nil {
		return c.log
	}
	return log.GetLogger()
}

// Time returns the time currently shown.
func (c *Clock) Time() face.TimeOfDay {
	return c.time
}

// Style returns the current face style.
func (c *Clock) Style() face.FaceStyle {
	return c.style
}

// SetTime shows h:m:s. Values are not validated; out-of-range input just
// produces unusual hand angles.
func (c *Clock) SetTime(hour, minute, second int) {
	c.setTimeOfDay(face.TimeOfDay{Hour: hour, Minute: minute, Second: second})
}

func (c *Clock) setTimeOfDay(t face.TimeOfDay) {
	c.time = t
	c.redraw()
	if c.OnTimeChanged != nil {
		c.OnTimeChanged(t)
	}
}

// SetRandomFaceColor paints the face a random opaque color.
func (c *Clock) SetRandomFaceColor() {
	c.setBackground(face.RandomColor(c.src))
	c.logger().Debug("face color changed", log.Color("background", uint32(c.style.Background)))
}

func (c *Clock) setBackground(bg face.ARGB) {
	c.style.Background = bg
	c.redraw()
	if c.OnColorChanged != nil {
		c.OnColorChanged(bg)
	}
}

// SaveState captures what survives a restart: the face background.
func (c *Clock) SaveState() app.WidgetState {
	return app.WidgetState{app.KeyBackgroundColor: uint32(c.style.Background)}
}

// RestoreState applies a value from SaveState. It returns ErrMissingState
// and leaves the clock unchanged when the background entry is absent. A
// running periodic update is not affected.
func (c *Clock) RestoreState(state app.WidgetState) error {
	bg, ok := state[app.KeyBackgroundColor]
	if !ok {
		return errors.ErrMissingState
	}
	c.setBackground(face.ARGB(bg))
	return nil
}

// StartPeriodicUpdate shows the current time immediately and then once a
// second until ctx is done, StopPeriodicUpdate is called or the clock is
// closed. Calling it while an update is running does nothing.
func (c *Clock) StartPeriodicUpdate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.updater != nil && c.updater.running() {
		return
	}
	schedule := c.schedule
	c.updater = startUpdater(ctx, c.clock, UpdateInterval, func(t face.TimeOfDay) {
		schedule(func() { c.setTimeOfDay(t) })
	})
	c.logger().Debug("periodic update started", log.Duration("interval", UpdateInterval))
}

// StopPeriodicUpdate stops the periodic update and waits for it to exit.
// It is safe to call when nothing is running.
func (c *Clock) StopPeriodicUpdate() {
	c.mu.Lock()
	u := c.updater
	c.updater = nil
	c.mu.Unlock()

	if u == nil {
		return
	}
	u.stop()
	c.logger().Debug("periodic update stopped")
}

// Updating reports whether a periodic update is running.
func (c *Clock) Updating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updater != nil && c.updater.running()
}

// Close releases the clock's timer.
func (c *Clock) Close() {
	c.StopPeriodicUpdate()
}

// MinSize is the desired size: the minimum face plus padding on both
// sides of each axis.
func (c *Clock) MinSize() fyne.Size {
	p := float64(c.padding)
	edge := float32(face.Desired(float64(c.minSize), p, p))
	return fyne.NewSize(edge, edge)
}

// CreateRenderer creates the renderer for the widget.
func (c *Clock) CreateRenderer() fyne.WidgetRenderer {
	return newClockRenderer(c)
}

func (c *Clock) redraw() {
	c.redraws++
	c.Refresh()
}
