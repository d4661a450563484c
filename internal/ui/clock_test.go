package ui

import (
	"context"
	"math"
	"testing"
	"time"

	"clockface/internal/app"
	"clockface/internal/errors"
	"clockface/internal/face"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/jonboulle/clockwork"
)

// uiQueue stands in for fyne.Do: ticks are queued and the test runs them
// on its own goroutine.
type uiQueue chan func()

func newUIQueue() uiQueue { return make(uiQueue, 16) }

func (q uiQueue) schedule(fn func()) { q <- fn }

func (q uiQueue) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-q:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("no tick was scheduled")
	}
}

func (q uiQueue) expectIdle(t *testing.T) {
	t.Helper()
	select {
	case <-q:
		t.Fatal("unexpected tick scheduled")
	case <-time.After(50 * time.Millisecond):
	}
}

var testStart = time.Date(2024, 3, 1, 10, 8, 30, 0, time.UTC)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func waitStopped(t *testing.T, c *Clock) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for c.Updating() {
		if time.Now().After(deadline) {
			t.Fatal("periodic update did not stop")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestClockSetTime(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	c := NewClock(face.DefaultStyle())
	var notified []face.TimeOfDay
	c.OnTimeChanged = func(t face.TimeOfDay) { notified = append(notified, t) }

	c.SetTime(10, 8, 30)
	want := face.TimeOfDay{Hour: 10, Minute: 8, Second: 30}
	if c.Time() != want {
		t.Errorf("Time() = %v, want %v", c.Time(), want)
	}
	if c.redraws != 1 {
		t.Errorf("SetTime requested %d redraws, want 1", c.redraws)
	}
	if len(notified) != 1 || notified[0] != want {
		t.Errorf("OnTimeChanged got %v", notified)
	}

	t.Run("no validation", func(t *testing.T) {
		c.SetTime(25, 61, 99)
		if c.Time().Hour != 25 {
			t.Error("out of range values should be stored as given")
		}
	})
}

func TestClockPeriodicUpdate(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	clk := clockwork.NewFakeClockAt(testStart)
	q := newUIQueue()
	c := NewClock(face.DefaultStyle(), WithClock(clk), WithScheduler(q.schedule))
	defer c.Close()

	c.StartPeriodicUpdate(context.Background())
	if !c.Updating() {
		t.Fatal("Updating() = false after start")
	}

	q.runNext(t)
	if got := c.Time(); got != (face.TimeOfDay{Hour: 10, Minute: 8, Second: 30}) {
		t.Fatalf("first tick showed %v", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := clk.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("ticker never registered: %v", err)
	}

	clk.Advance(time.Second)
	q.runNext(t)
	if got := c.Time(); got != (face.TimeOfDay{Hour: 10, Minute: 8, Second: 31}) {
		t.Fatalf("second tick showed %v", got)
	}

	t.Run("start is idempotent", func(t *testing.T) {
		c.mu.Lock()
		before := c.updater
		c.mu.Unlock()

		c.StartPeriodicUpdate(context.Background())

		c.mu.Lock()
		after := c.updater
		c.mu.Unlock()
		if before != after {
			t.Fatal("second start replaced the running update")
		}
		q.expectIdle(t)
	})

	t.Run("stop", func(t *testing.T) {
		c.StopPeriodicUpdate()
		if c.Updating() {
			t.Fatal("Updating() = true after stop")
		}
		clk.Advance(5 * time.Second)
		q.expectIdle(t)

		// Stopping twice is harmless.
		c.StopPeriodicUpdate()
	})
}

func TestClockPeriodicUpdateContext(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	clk := clockwork.NewFakeClockAt(testStart)
	q := newUIQueue()
	c := NewClock(face.DefaultStyle(), WithClock(clk), WithScheduler(q.schedule))
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c.StartPeriodicUpdate(ctx)
	q.runNext(t)

	cancel()
	waitStopped(t, c)

	clk.Advance(time.Minute)
	c.StartPeriodicUpdate(context.Background())
	q.runNext(t)
	if got := c.Time(); got != (face.TimeOfDay{Hour: 10, Minute: 9, Second: 30}) {
		t.Errorf("restart after cancel showed %v", got)
	}
}

func TestClockStartWithDoneContext(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	q := newUIQueue()
	c := NewClock(face.DefaultStyle(), WithClock(clockwork.NewFakeClockAt(testStart)), WithScheduler(q.schedule))
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.StartPeriodicUpdate(ctx)
	waitStopped(t, c)
	q.expectIdle(t)
	if got := c.Time(); got != (face.TimeOfDay{}) {
		t.Errorf("clock shows %v after a start with a done context", got)
	}
}

func TestClockClose(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	q := newUIQueue()
	c := NewClock(face.DefaultStyle(), WithClock(clockwork.NewFakeClockAt(testStart)), WithScheduler(q.schedule))
	c.StartPeriodicUpdate(context.Background())
	q.runNext(t)

	c.Close()
	if c.Updating() {
		t.Error("Close left the update running")
	}
	c.Close()
}

func TestClockRandomFaceColor(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	c := NewClock(face.DefaultStyle(), WithRandom(face.NewSeededSource(42)))
	var colors []face.ARGB
	c.OnColorChanged = func(bg face.ARGB) { colors = append(colors, bg) }

	c.SetRandomFaceColor()
	bg := c.Style().Background
	if bg.A() != 0xFF {
		t.Errorf("random color %v is not opaque", bg)
	}
	if c.redraws != 1 {
		t.Errorf("SetRandomFaceColor requested %d redraws, want 1", c.redraws)
	}
	if len(colors) != 1 || colors[0] != bg {
		t.Errorf("OnColorChanged got %v", colors)
	}

	want := face.RandomColor(face.NewSeededSource(42))
	if bg != want {
		t.Errorf("seeded color = %v, want %v", bg, want)
	}
}

func TestClockState(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	t.Run("round trip", func(t *testing.T) {
		orig := NewClock(face.DefaultStyle(), WithRandom(face.NewSeededSource(7)))
		orig.SetRandomFaceColor()
		state := orig.SaveState()

		fresh := NewClock(face.DefaultStyle())
		if err := fresh.RestoreState(state); err != nil {
			t.Fatalf("RestoreState: %v", err)
		}
		if fresh.Style().Background != orig.Style().Background {
			t.Errorf("restored background %v, want %v", fresh.Style().Background, orig.Style().Background)
		}
		if fresh.redraws != 1 {
			t.Errorf("RestoreState requested %d redraws, want 1", fresh.redraws)
		}
	})

	t.Run("only background is saved", func(t *testing.T) {
		c := NewClock(face.DefaultStyle())
		c.SetTime(1, 2, 3)
		state := c.SaveState()
		if len(state) != 1 || state[app.KeyBackgroundColor] != uint32(face.White) {
			t.Errorf("SaveState() = %v", state)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		c := NewClock(face.DefaultStyle())
		err := c.RestoreState(app.WidgetState{"other": 1})
		if !errors.Is(err, errors.ErrMissingState) {
			t.Fatalf("RestoreState error = %v, want ErrMissingState", err)
		}
		if c.redraws != 0 || c.Style().Background != face.White {
			t.Error("failed restore changed the clock")
		}
	})

	t.Run("updater untouched", func(t *testing.T) {
		q := newUIQueue()
		c := NewClock(face.DefaultStyle(), WithClock(clockwork.NewFakeClockAt(testStart)), WithScheduler(q.schedule))
		defer c.Close()
		c.StartPeriodicUpdate(context.Background())
		q.runNext(t)

		if err := c.RestoreState(app.WidgetState{app.KeyBackgroundColor: 0xFF112233}); err != nil {
			t.Fatal(err)
		}
		if !c.Updating() {
			t.Error("RestoreState stopped the periodic update")
		}
	})
}

func TestClockMinSize(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	c := NewClock(face.DefaultStyle(), WithMinSize(100), WithPadding(10))
	if got := c.MinSize(); got != fyne.NewSquareSize(120) {
		t.Errorf("MinSize() = %v, want 120x120", got)
	}
	if got := NewClock(face.DefaultStyle()).MinSize(); got != fyne.NewSquareSize(defaultClockMinSize) {
		t.Errorf("default MinSize() = %v", got)
	}
}

func TestClockRenderer(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	c := NewClock(face.DefaultStyle(), WithPadding(10))
	c.SetTime(3, 0, 0)
	c.Resize(fyne.NewSize(220, 220))
	r := test.WidgetRenderer(c).(*clockRenderer)

	// Bezel plus six hand segments carry shadows.
	if got, want := len(r.Objects()), face.PlanLen+7; got != want {
		t.Fatalf("%d objects, want %d", got, want)
	}
	if len(r.plan) != face.PlanLen {
		t.Fatalf("plan has %d primitives", len(r.plan))
	}

	t.Run("face disc", func(t *testing.T) {
		disc := r.prims[0].(*canvas.Circle)
		if !near(disc.Position().X, 30) || !near(disc.Position().Y, 30) {
			t.Errorf("disc at %v, want (30, 30)", disc.Position())
		}
		if !near(disc.Size().Width, 160) {
			t.Errorf("disc size %v, want 160", disc.Size())
		}
		if disc.FillColor != face.White {
			t.Errorf("disc fill %v", disc.FillColor)
		}
		if r.shadows[0] != nil {
			t.Error("face disc should have no shadow")
		}
	})

	t.Run("bezel", func(t *testing.T) {
		ring := r.prims[1].(*canvas.Circle)
		if ring.StrokeColor != face.Black || !near(ring.StrokeWidth, 8) {
			t.Errorf("bezel stroke %v width %v", ring.StrokeColor, ring.StrokeWidth)
		}
		shadow, ok := r.shadows[1].(*canvas.Circle)
		if !ok {
			t.Fatal("bezel has no shadow object")
		}
		dx := shadow.Position().X - ring.Position().X
		if dx <= 0 {
			t.Errorf("bezel shadow not offset: %v", dx)
		}
	})

	t.Run("hour hand at three", func(t *testing.T) {
		hour := r.prims[62].(*canvas.Line)
		if !near(hour.Position1.X, 110) || !near(hour.Position1.Y, 110) {
			t.Errorf("hour hand starts at %v", hour.Position1)
		}
		if !near(hour.Position2.X, 150) || !near(hour.Position2.Y, 110) {
			t.Errorf("hour hand ends at %v, want (150, 110)", hour.Position2)
		}
		shadow := r.shadows[62].(*canvas.Line)
		if !near(shadow.Position2.X-hour.Position2.X, 2.4) {
			t.Errorf("hand shadow offset %v, want 2.4", shadow.Position2.X-hour.Position2.X)
		}
	})

	t.Run("numerals", func(t *testing.T) {
		for i := 0; i < 12; i++ {
			txt := r.prims[68+i].(*canvas.Text)
			if !txt.TextStyle.Bold {
				t.Errorf("numeral %q is not bold", txt.Text)
			}
		}
		if r.prims[68].(*canvas.Text).Text != "1" || r.prims[79].(*canvas.Text).Text != "12" {
			t.Error("numerals out of order")
		}
	})

	t.Run("refresh follows state", func(t *testing.T) {
		if err := c.RestoreState(app.WidgetState{app.KeyBackgroundColor: 0xFF336699}); err != nil {
			t.Fatal(err)
		}
		if got := r.prims[0].(*canvas.Circle).FillColor; got != face.ARGB(0xFF336699) {
			t.Errorf("disc fill after restore = %v", got)
		}
	})

	t.Run("resize follows size", func(t *testing.T) {
		c.Resize(fyne.NewSize(420, 220))
		disc := r.prims[0].(*canvas.Circle)
		if !near(disc.Size().Width, 160) || !near(disc.Position().X, 130) {
			t.Errorf("disc after resize at %v size %v", disc.Position(), disc.Size())
		}
	})
}
