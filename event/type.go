package event

import (
	"arpong/core"
)

// Kind discriminates marshaled signals
type Kind uint8

const (
	KindCollision Kind = iota
	KindTrackingLost
	KindTrackingRestored
)

func (k Kind) String() string {
	switch k {
	case KindCollision:
		return "collision"
	case KindTrackingLost:
		return "tracking lost"
	case KindTrackingRestored:
		return "tracking restored"
	default:
		return "unknown"
	}
}

// Event is one signal from an asynchronous producer (physics contact
// callback, anchor consumer) bound for the single-writer game loop
type Event struct {
	Kind Kind
	// Report is valid only when Kind == KindCollision
	Report core.CollisionReport
}
