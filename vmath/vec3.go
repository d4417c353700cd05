package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector for physics calculations
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func V3Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

// V3Normalize returns the unit vector of v, or the zero vector for zero input
// Optimization: one division, three multiplies
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3ClampMagnitude limits vector magnitude, preserving direction
func V3ClampMagnitude(v Vec3, maxMag float64) Vec3 {
	magSq := V3MagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3Scale(v, maxMag/math.Sqrt(magSq))
}

// V3DistSq returns squared distance between two points
func V3DistSq(a, b Vec3) float64 {
	return V3MagSq(V3Sub(a, b))
}

// V3IsFinite reports whether all components are finite (no NaN/Inf)
func V3IsFinite(v Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
