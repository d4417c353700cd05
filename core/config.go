package core

import (
	"arpong/parameter"
	"arpong/vmath"
)

// Config is the read-only geometric and physical constant record shared
// by all components. Constructed once per session, never mutated.
type Config struct {
	TableSize vmath.Vec3
	TablePos  vmath.Vec3 // center of the slab
	WallSize  vmath.Vec3
	WallPos   vmath.Vec3

	BallRadius   float64
	RacketRadius float64

	Gravity      vmath.Vec3
	MaxBallSpeed float64
	GroundLevel  float64

	Restitution float64 // normal-speed fraction retained per bounce
	Transfer    float64 // racket velocity fraction imparted on contact

	BoundsMargin    float64
	BallStartHeight float64
}

// DefaultConfig builds the constant record from package parameter
func DefaultConfig() *Config {
	return &Config{
		TableSize: vmath.Vec3{X: parameter.TableWidth, Y: parameter.TableHeight, Z: parameter.TableDepth},
		TablePos:  vmath.Vec3{X: parameter.TableX, Y: parameter.TableY, Z: parameter.TableZ},
		WallSize:  vmath.Vec3{X: parameter.WallWidth, Y: parameter.WallHeight, Z: parameter.WallDepth},
		WallPos:   vmath.Vec3{X: parameter.WallX, Y: parameter.WallY, Z: parameter.WallZ},

		BallRadius:   parameter.BallRadius,
		RacketRadius: parameter.RacketRadius,

		Gravity:      vmath.Vec3{Y: parameter.GravityY},
		MaxBallSpeed: parameter.MaxBallSpeed,
		GroundLevel:  parameter.GroundLevel,

		Restitution: parameter.Restitution,
		Transfer:    parameter.RacketTransfer,

		BoundsMargin:    parameter.BoundsMargin,
		BallStartHeight: parameter.BallStartHeight,
	}
}

// TableTop returns the Y coordinate of the table's upper surface
func (c *Config) TableTop() float64 {
	return c.TablePos.Y + c.TableSize.Y/2
}

// BallStartPos is the canonical start pose: centered above the table
func (c *Config) BallStartPos() vmath.Vec3 {
	return vmath.Vec3{
		X: c.TablePos.X,
		Y: c.TableTop() + c.BallStartHeight,
		Z: c.TablePos.Z,
	}
}
