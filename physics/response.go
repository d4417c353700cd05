package physics

import (
	"arpong/vmath"
)

// Pure collision response functions. All are stateless and tolerate
// redundant application: already-valid input comes back unchanged or
// within the same constraint.

// Reflect mirrors v about the unit normal n with restitution r.
// The tangential component passes through unchanged; the normal component
// reverses sign and scales by r (0 < r <= 1).
//
// Contract: n is unit length and v is finite. A degenerate normal or
// non-finite velocity has no recovery path, so the input passes through
// untouched.
func Reflect(v, n vmath.Vec3, r float64) vmath.Vec3 {
	if vmath.V3MagSq(n) == 0 || !vmath.V3IsFinite(v) {
		return v
	}
	normal := vmath.V3Scale(n, vmath.V3Dot(v, n))
	tangential := vmath.V3Sub(v, normal)
	return vmath.V3Sub(tangential, vmath.V3Scale(normal, r))
}

// RacketTransfer adds the racket's velocity contribution to the ball:
// ballV + k*racketV. Monotonic in |racketV|.
func RacketTransfer(ballV, racketV vmath.Vec3, k float64) vmath.Vec3 {
	return vmath.V3Add(ballV, vmath.V3Scale(racketV, k))
}

// ClampSpeed rescales v to maxSpeed when it exceeds the cap, preserving
// direction exactly. In-range velocities come back unchanged.
func ClampSpeed(v vmath.Vec3, maxSpeed float64) vmath.Vec3 {
	return vmath.V3ClampMagnitude(v, maxSpeed)
}
