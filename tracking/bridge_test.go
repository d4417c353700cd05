package tracking

import (
	"context"
	"testing"
	"time"

	"arpong/event"
	"arpong/game"
	"arpong/vmath"
)

func TestBridgePausesOnLoss(t *testing.T) {
	session := game.NewSession()
	session.Start()
	b := NewBridge(session)
	b.HandleRestored() // tracking acquired

	b.HandleLost()

	if session.State() != game.StatePaused {
		t.Errorf("state = %v, want paused", session.State())
	}
	if !b.Lost() || b.Active() {
		t.Errorf("flags = active %v lost %v, want active=false lost=true", b.Active(), b.Lost())
	}
}

func TestBridgeResumesOnRestore(t *testing.T) {
	session := game.NewSession()
	session.Start()
	for i := 0; i < 3; i++ {
		session.RecordHit()
	}
	b := NewBridge(session)
	b.HandleRestored()

	b.HandleLost()
	b.HandleRestored()

	if session.State() != game.StatePlaying {
		t.Errorf("state = %v, want playing", session.State())
	}
	if b.Lost() || !b.Active() {
		t.Errorf("flags = active %v lost %v, want active=true lost=false", b.Active(), b.Lost())
	}
	// The bridge never touches scoring
	if session.Score() != 3 || session.ConsecutiveHits() != 3 {
		t.Errorf("score/streak changed across loss cycle: %d/%d", session.Score(), session.ConsecutiveHits())
	}
}

func TestBridgeSpuriousLoss(t *testing.T) {
	// Removal without prior acquisition only exists as a flag state
	session := game.NewSession()
	b := NewBridge(session)

	b.HandleLost()

	if session.State() != game.StateIdle {
		t.Errorf("spurious loss moved state to %v", session.State())
	}
	if b.Lost() {
		t.Error("loss latched while tracking was never active")
	}
}

func TestBridgeRepeatedLossIdempotent(t *testing.T) {
	session := game.NewSession()
	session.Start()
	b := NewBridge(session)
	b.HandleRestored()

	b.HandleLost()
	b.HandleLost()
	b.HandleLost()

	if session.State() != game.StatePaused {
		t.Errorf("state = %v, want paused", session.State())
	}
	if !b.Lost() {
		t.Error("lost flag cleared by repeated loss")
	}
}

func TestBridgeLossWhileGameOver(t *testing.T) {
	// Pause routes through the session guard: game over stays game over
	session := game.NewSession()
	session.Start()
	session.End()
	b := NewBridge(session)
	b.HandleRestored()

	b.HandleLost()

	if session.State() != game.StateGameOver {
		t.Errorf("state = %v, want game over", session.State())
	}
	if !b.Lost() {
		t.Error("local flags not updated on loss during game over")
	}
}

// recordingSource is a channel-backed Source that records Close
type recordingSource struct {
	ch     chan AnchorEvent
	closed chan struct{}
}

func newRecordingSource() *recordingSource {
	return &recordingSource{
		ch:     make(chan AnchorEvent, 8),
		closed: make(chan struct{}),
	}
}

func (s *recordingSource) Events() <-chan AnchorEvent { return s.ch }

func (s *recordingSource) Close() error {
	close(s.closed)
	return nil
}

func TestPumpTranslatesPhases(t *testing.T) {
	src := newRecordingSource()
	queue := event.NewQueue()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Pump(ctx, src, queue)
		close(done)
	}()

	src.ch <- AnchorEvent{Phase: AnchorAdded, Pos: vmath.Vec3{X: 1}}
	src.ch <- AnchorEvent{Phase: AnchorRemoved}
	src.ch <- AnchorEvent{Phase: AnchorUpdated}

	waitFor(t, func() bool { return queue.Len() >= 3 })
	cancel()
	<-done

	got := queue.Consume()
	if len(got) != 3 {
		t.Fatalf("queued %d events, want 3", len(got))
	}
	want := []event.Kind{event.KindTrackingRestored, event.KindTrackingLost, event.KindTrackingRestored}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("event %d = %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestPumpCancellationClosesSource(t *testing.T) {
	src := newRecordingSource()
	queue := event.NewQueue()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Pump(ctx, src, queue)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop on cancellation")
	}
	select {
	case <-src.closed:
	case <-time.After(time.Second):
		t.Fatal("pump did not close the source")
	}
}

func TestPumpStopsOnSourceClose(t *testing.T) {
	src := newRecordingSource()
	queue := event.NewQueue()

	done := make(chan struct{})
	go func() {
		Pump(context.Background(), src, queue)
		close(done)
	}()

	close(src.ch)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump did not stop when the stream ended")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached within deadline")
}
