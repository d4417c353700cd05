package tracking

import (
	"context"

	"arpong/event"
)

// SessionControl is the non-owning session handle the bridge drives.
// Lifetime is owned by the composition root.
type SessionControl interface {
	Pause()
	Resume()
}

// Bridge maps tracking availability onto pause/resume, idempotently.
// Pause and resume route through the session's own guards, so a spurious
// signal in an inapplicable state only updates the local flags.
//
// Bridge carries no locks: both handlers run on the game loop goroutine.
type Bridge struct {
	session SessionControl
	active  bool
	lost    bool
}

func NewBridge(session SessionControl) *Bridge {
	return &Bridge{session: session}
}

// Active reports whether tracking is currently available
func (b *Bridge) Active() bool {
	return b.active
}

// Lost reports whether tracking was lost and not yet restored
func (b *Bridge) Lost() bool {
	return b.lost
}

// HandleRestored processes a tracking acquired/updated signal: a pending
// loss is cleared and the session resumed
func (b *Bridge) HandleRestored() {
	if b.lost {
		b.lost = false
		b.session.Resume()
	}
	b.active = true
}

// HandleLost processes a tracking removed signal. Effective only while
// active, so repeated removals don't re-pause.
func (b *Bridge) HandleLost() {
	if !b.active {
		return
	}
	b.lost = true
	b.active = false
	b.session.Pause()
}

// Pump consumes anchor events until ctx is cancelled or the source's
// channel closes, translating each phase into a tracking event on the
// queue. The upstream source is closed on return, releasing the tracking
// session. Loss is detected only via an explicit removed event, never
// via absence of updates within a deadline.
func Pump(ctx context.Context, src Source, queue *event.Queue) {
	defer src.Close()

	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Phase {
			case AnchorAdded, AnchorUpdated:
				queue.Push(event.Event{Kind: event.KindTrackingRestored})
			case AnchorRemoved:
				queue.Push(event.Event{Kind: event.KindTrackingLost})
			}
		}
	}
}
