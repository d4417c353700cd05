package engine

import (
	"arpong/core"
	"arpong/event"
	"arpong/vmath"
)

// Scene is the development physics backend. It owns the ball kinematics
// and the racket pose, integrates gravity, and reports contact onsets
// the way the AR physics engine would: one report per contact, pushed
// onto the event queue for the loop to dispatch.
//
// Contacts are edge-triggered: a latch per counterpart suppresses
// repeats while the ball stays in the contact region.
type Scene struct {
	cfg *core.Config

	ball      core.Kinetic
	racketPos vmath.Vec3
	racketVel vmath.Vec3

	touching [core.KindCount]bool
}

func NewScene(cfg *core.Config) *Scene {
	s := &Scene{cfg: cfg}
	s.ResetBall()
	return s
}

// Ball exposes the ball's kinematic storage for collision response and
// boundary correction
func (s *Scene) Ball() *core.Kinetic {
	return &s.ball
}

// ResetBall places the ball at the canonical start pose at rest
func (s *Scene) ResetBall() {
	s.ball.Pos = s.cfg.BallStartPos()
	s.ball.Vel = vmath.Vec3{}
	s.touching = [core.KindCount]bool{}
}

// SetRacket updates the racket pose passthrough from tracking
func (s *Scene) SetRacket(pos, vel vmath.Vec3) {
	s.racketPos = pos
	s.racketVel = vel
}

// Racket returns the current racket pose
func (s *Scene) Racket() (pos, vel vmath.Vec3) {
	return s.racketPos, s.racketVel
}

// Step integrates one tick of ball motion and reports contact onsets
// onto the queue
func (s *Scene) Step(dt float64, queue *event.Queue) {
	s.ball.Vel = vmath.V3Add(s.ball.Vel, vmath.V3Scale(s.cfg.Gravity, dt))
	s.ball.Pos = vmath.V3Add(s.ball.Pos, vmath.V3Scale(s.ball.Vel, dt))

	s.report(core.KindTable, s.touchingTable(), vmath.Vec3{}, queue)
	s.report(core.KindWall, s.touchingWall(), vmath.Vec3{}, queue)
	s.report(core.KindRacket, s.touchingRacket(), s.racketVel, queue)
	s.report(core.KindGround, s.touchingGround(), vmath.Vec3{}, queue)
}

// report pushes a collision event on a false->true transition of the
// contact condition
func (s *Scene) report(kind core.EntityKind, touching bool, counterpartVel vmath.Vec3, queue *event.Queue) {
	if touching && !s.touching[kind] {
		queue.Push(event.Event{
			Kind: event.KindCollision,
			Report: core.CollisionReport{
				Subject:     core.KindBall,
				Counterpart: kind,
				Pos:         s.ball.Pos,
				IncomingVel: counterpartVel,
			},
		})
	}
	s.touching[kind] = touching
}

func (s *Scene) touchingTable() bool {
	if s.ball.Vel.Y >= 0 {
		return false
	}
	top := s.cfg.TableTop()
	if s.ball.Pos.Y-s.cfg.BallRadius > top || s.ball.Pos.Y < top-s.cfg.TableSize.Y {
		return false
	}
	halfW := s.cfg.TableSize.X / 2
	halfD := s.cfg.TableSize.Z / 2
	return s.ball.Pos.X >= s.cfg.TablePos.X-halfW && s.ball.Pos.X <= s.cfg.TablePos.X+halfW &&
		s.ball.Pos.Z >= s.cfg.TablePos.Z-halfD && s.ball.Pos.Z <= s.cfg.TablePos.Z+halfD
}

func (s *Scene) touchingWall() bool {
	if s.ball.Vel.Z >= 0 {
		return false
	}
	front := s.cfg.WallPos.Z + s.cfg.WallSize.Z/2
	if s.ball.Pos.Z-s.cfg.BallRadius > front || s.ball.Pos.Z < s.cfg.WallPos.Z-s.cfg.WallSize.Z/2 {
		return false
	}
	halfW := s.cfg.WallSize.X / 2
	halfH := s.cfg.WallSize.Y / 2
	return s.ball.Pos.X >= s.cfg.WallPos.X-halfW && s.ball.Pos.X <= s.cfg.WallPos.X+halfW &&
		s.ball.Pos.Y >= s.cfg.WallPos.Y-halfH && s.ball.Pos.Y <= s.cfg.WallPos.Y+halfH
}

func (s *Scene) touchingRacket() bool {
	reach := s.cfg.BallRadius + s.cfg.RacketRadius
	return vmath.V3DistSq(s.ball.Pos, s.racketPos) <= reach*reach
}

func (s *Scene) touchingGround() bool {
	return s.ball.Vel.Y < 0 && s.ball.Pos.Y-s.cfg.BallRadius <= s.cfg.GroundLevel
}
