package ui

import (
	"context"
	"time"

	"clockface/internal/face"

	"github.com/jonboulle/clockwork"
)

// updater is one running periodic update. The goroutine only reads the
// clock and hands readings to tick; it never touches widget fields.
type updater struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startUpdater ticks once right away and then every interval until ctx is
// done or stop is called. The ticker exists before startUpdater returns.
// A ctx that is already done yields no tick at all.
func startUpdater(ctx context.Context, clk clockwork.Clock, interval time.Duration, tick func(face.TimeOfDay)) *updater {
	ctx, cancel := context.WithCancel(ctx)
	u := &updater{cancel: cancel, done: make(chan struct{})}
	ticker := clk.NewTicker(interval)

	go func() {
		defer close(u.done)
		defer ticker.Stop()

		if ctx.Err() != nil {
			return
		}
		tick(face.TimeOf(clk.Now()))
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				if ctx.Err() != nil {
					return
				}
				tick(face.TimeOf(clk.Now()))
			}
		}
	}()
	return u
}

func (u *updater) running() bool {
	select {
	case <-u.done:
		return false
	default:
		return true
	}
}

func (u *updater) stop() {
	u.cancel()
	<-u.done
}
