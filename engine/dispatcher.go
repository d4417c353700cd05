package engine

import (
	"arpong/audio"
	"arpong/core"
	"arpong/game"
	"arpong/physics"
	"arpong/vmath"
)

// Collision normals. The wall normal points back toward the player (+Z).
var (
	upNormal   = vmath.Vec3{Y: 1}
	backNormal = vmath.Vec3{Z: 1}
)

// Dispatcher routes a collision report to the matching velocity response
// and triggers the dependent audio and scoring side effects.
type Dispatcher struct {
	cfg     *core.Config
	session *game.Session
	player  audio.Player
}

func NewDispatcher(cfg *core.Config, session *game.Session, player audio.Player) *Dispatcher {
	if player == nil {
		player = audio.NopPlayer{}
	}
	return &Dispatcher{
		cfg:     cfg,
		session: session,
		player:  player,
	}
}

// Dispatch applies the response for one contact onset. The velocity
// mutation always precedes the dependent cue and scoring effects;
// RecordHit fires only after the racket transfer is applied. Reports
// with an unrecognized counterpart are ignored, and a ball without
// kinematic backing (setup race) is a no-op.
func (d *Dispatcher) Dispatch(ball *core.Kinetic, rep core.CollisionReport) {
	if ball == nil {
		return
	}

	switch rep.Counterpart {
	case core.KindTable:
		ball.Vel = physics.Reflect(ball.Vel, upNormal, d.cfg.Restitution)
		ball.Vel = physics.ClampSpeed(ball.Vel, d.cfg.MaxBallSpeed)
		d.player.Play(core.SoundTableBounce, rep.Pos)

	case core.KindWall:
		ball.Vel = physics.Reflect(ball.Vel, backNormal, d.cfg.Restitution)
		ball.Vel = physics.ClampSpeed(ball.Vel, d.cfg.MaxBallSpeed)
		d.player.Play(core.SoundWallBounce, rep.Pos)

	case core.KindRacket:
		ball.Vel = physics.RacketTransfer(ball.Vel, rep.IncomingVel, d.cfg.Transfer)
		ball.Vel = physics.ClampSpeed(ball.Vel, d.cfg.MaxBallSpeed)
		d.player.Play(core.SoundBallHit, rep.Pos)
		d.session.RecordHit()

	case core.KindGround:
		ball.Vel = vmath.Vec3{}
		d.player.Play(core.SoundGameOver, rep.Pos)
		d.session.HandleGroundCollision()

	default:
		// Unrecognized counterpart: no state or audio change
	}
}
