package parameter

// World geometry in meters. Y is up, Z points from the wall back toward
// the player, origin is on the floor under the table center.

// Table slab
const (
	TableWidth  = 1.00
	TableHeight = 0.02
	TableDepth  = 0.60

	TableX = 0.0
	TableY = 0.80 // center of the slab
	TableZ = -1.00
)

// Rebound wall at the far table edge
const (
	WallWidth  = 1.00
	WallHeight = 0.30
	WallDepth  = 0.02

	WallX = 0.0
	WallY = 0.96
	WallZ = -1.31
)

// Ball
const (
	BallRadius = 0.02
	// BallStartHeight is the drop height above the table top for the
	// canonical start pose
	BallStartHeight = 0.40
)

// Dynamics
const (
	GravityY     = -9.81
	MaxBallSpeed = 6.0
	GroundLevel  = 0.0

	// Restitution is the fraction of normal-direction speed retained
	// after a bounce
	Restitution = 0.89
	// RacketTransfer is the fraction of racket velocity imparted to the
	// ball on contact
	RacketTransfer = 0.80
)

// Racket contact sphere used by the development scene
const (
	RacketRadius = 0.09
)

// Bounds margin around the play volume; balls beyond it are considered
// lost and get recovered to the start pose
const (
	BoundsMargin = 0.50
)
