package physics

import (
	"math"

	"arpong/core"
	"arpong/vmath"
)

// Bounds is the axis-aligned legal play volume. Objects outside it are
// considered lost and must be recovered.
type Bounds struct {
	Min, Max vmath.Vec3
}

// NewBounds derives the play volume from table and wall extents plus the
// configured margin. The lower Y bound sits at ground level, the upper Y
// bound above the table so a served ball stays legal.
func NewBounds(cfg *core.Config) Bounds {
	tableMinX := cfg.TablePos.X - cfg.TableSize.X/2
	tableMaxX := cfg.TablePos.X + cfg.TableSize.X/2
	wallMinX := cfg.WallPos.X - cfg.WallSize.X/2
	wallMaxX := cfg.WallPos.X + cfg.WallSize.X/2

	tableMinZ := cfg.TablePos.Z - cfg.TableSize.Z/2
	tableMaxZ := cfg.TablePos.Z + cfg.TableSize.Z/2
	wallMinZ := cfg.WallPos.Z - cfg.WallSize.Z/2

	return Bounds{
		Min: vmath.Vec3{
			X: math.Min(tableMinX, wallMinX) - cfg.BoundsMargin,
			Y: cfg.GroundLevel,
			Z: math.Min(tableMinZ, wallMinZ) - cfg.BoundsMargin,
		},
		Max: vmath.Vec3{
			X: math.Max(tableMaxX, wallMaxX) + cfg.BoundsMargin,
			Y: cfg.TableTop() + cfg.BallStartHeight + cfg.BoundsMargin,
			Z: tableMaxZ + cfg.BoundsMargin,
		},
	}
}

// Contains reports whether p lies inside the volume
func (b Bounds) Contains(p vmath.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IsOutOfBounds reports whether any coordinate lies outside the volume
func (b Bounds) IsOutOfBounds(p vmath.Vec3) bool {
	return !b.Contains(p)
}

// Monitor recovers out-of-volume balls to the canonical start pose
type Monitor struct {
	cfg    *core.Config
	bounds Bounds
}

func NewMonitor(cfg *core.Config) *Monitor {
	return &Monitor{
		cfg:    cfg,
		bounds: NewBounds(cfg),
	}
}

// Bounds returns the derived play volume
func (m *Monitor) Bounds() Bounds {
	return m.bounds
}

// Reposition resets an out-of-bounds ball to the start pose with zero
// velocity and reports whether a reposition occurred. In-bounds balls are
// untouched, so the check is safe to run every frame.
func (m *Monitor) Reposition(ball *core.Kinetic) bool {
	if ball == nil {
		return false
	}
	if m.bounds.Contains(ball.Pos) {
		return false
	}
	ball.Pos = m.cfg.BallStartPos()
	ball.Vel = vmath.Vec3{}
	return true
}
