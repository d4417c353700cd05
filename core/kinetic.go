package core

import "arpong/vmath"

// Kinetic is ball kinematic state. The physics backend owns the storage;
// collision response and boundary correction mutate velocity in place.
type Kinetic struct {
	Pos vmath.Vec3
	Vel vmath.Vec3
}
