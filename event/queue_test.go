package event

import (
	"sync"
	"testing"

	"arpong/core"
	"arpong/parameter"
	"arpong/vmath"
)

func posFor(i int) vmath.Vec3 {
	return vmath.Vec3{X: float64(i)}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	kinds := []Kind{KindCollision, KindTrackingLost, KindTrackingRestored}
	for _, k := range kinds {
		q.Push(Event{Kind: k})
	}

	got := q.Consume()
	if len(got) != len(kinds) {
		t.Fatalf("consumed %d events, want %d", len(got), len(kinds))
	}
	for i, k := range kinds {
		if got[i].Kind != k {
			t.Errorf("event %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}

	// Queue drained
	if rest := q.Consume(); rest != nil {
		t.Errorf("drained queue returned %d events", len(rest))
	}
}

func TestQueueCarriesReport(t *testing.T) {
	q := NewQueue()

	rep := core.CollisionReport{
		Subject:     core.KindBall,
		Counterpart: core.KindRacket,
	}
	q.Push(Event{Kind: KindCollision, Report: rep})

	got := q.Consume()
	if len(got) != 1 {
		t.Fatalf("consumed %d events, want 1", len(got))
	}
	if got[0].Report.Counterpart != core.KindRacket {
		t.Errorf("report counterpart = %v, want racket", got[0].Report.Counterpart)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()

	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		rep := core.CollisionReport{Pos: posFor(i)}
		q.Push(Event{Kind: KindCollision, Report: rep})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d events, want %d", len(got), parameter.EventQueueSize)
	}
	// Oldest events were overwritten; the last pushed event survives
	last := got[len(got)-1]
	if last.Report.Pos != posFor(total-1) {
		t.Errorf("newest event lost on overflow")
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	producers := 8
	perProducer := 16 // Total stays below queue capacity

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Kind: KindTrackingRestored})
			}
		}()
	}
	wg.Wait()

	got := q.Consume()
	if len(got) != producers*perProducer {
		t.Errorf("consumed %d events, want %d", len(got), producers*perProducer)
	}
}
