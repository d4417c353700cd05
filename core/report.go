package core

import "arpong/vmath"

// CollisionReport describes one contact onset delivered by the physics
// backend. Consumed once per collision.
type CollisionReport struct {
	Subject     EntityKind
	Counterpart EntityKind
	Pos         vmath.Vec3
	// IncomingVel is the counterpart's velocity at contact; zero for
	// static geometry
	IncomingVel vmath.Vec3
}
