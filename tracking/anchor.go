package tracking

import "arpong/vmath"

// AnchorPhase is the lifecycle phase of a hand-anchor update
type AnchorPhase uint8

const (
	AnchorAdded AnchorPhase = iota
	AnchorUpdated
	AnchorRemoved
)

func (p AnchorPhase) String() string {
	switch p {
	case AnchorAdded:
		return "added"
	case AnchorUpdated:
		return "updated"
	case AnchorRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// AnchorEvent is one update from the hand-tracking provider. Only
// availability is derived here; racket pose passthrough happens at the
// scene boundary.
type AnchorEvent struct {
	Phase AnchorPhase
	Pos   vmath.Vec3
}

// Source is the hand-tracking provider boundary: an ordered asynchronous
// sequence of anchor events. Close releases the underlying session.
type Source interface {
	Events() <-chan AnchorEvent
	Close() error
}
