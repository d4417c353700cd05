package engine

import (
	"testing"

	"arpong/core"
	"arpong/event"
	"arpong/vmath"
)

const sceneDT = 0.001

func collisions(q *event.Queue) []core.CollisionReport {
	var reps []core.CollisionReport
	for _, ev := range q.Consume() {
		if ev.Kind == event.KindCollision {
			reps = append(reps, ev.Report)
		}
	}
	return reps
}

func TestSceneTableContactEdgeTriggered(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	// Just above the table top, falling
	s.Ball().Pos = vmath.Vec3{X: cfg.TablePos.X, Y: cfg.TableTop() + 0.01, Z: cfg.TablePos.Z}
	s.Ball().Vel = vmath.Vec3{Y: -1}

	s.Step(sceneDT, q)

	reps := collisions(q)
	if len(reps) != 1 || reps[0].Counterpart != core.KindTable {
		t.Fatalf("first step reports = %v, want one table contact", reps)
	}
	if reps[0].Subject != core.KindBall {
		t.Errorf("subject = %v, want ball", reps[0].Subject)
	}

	// Still in the contact region on the next step: latch suppresses
	s.Step(sceneDT, q)
	if reps := collisions(q); len(reps) != 0 {
		t.Errorf("latched contact re-reported: %v", reps)
	}
}

func TestSceneTableContactRearmsAfterSeparation(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	s.Ball().Pos = vmath.Vec3{X: cfg.TablePos.X, Y: cfg.TableTop() + 0.01, Z: cfg.TablePos.Z}
	s.Ball().Vel = vmath.Vec3{Y: -1}
	s.Step(sceneDT, q)
	if len(collisions(q)) != 1 {
		t.Fatal("setup contact not reported")
	}

	// Bounce response: ball leaves the table, latch clears
	s.Ball().Pos.Y = cfg.TableTop() + 0.05
	s.Ball().Vel = vmath.Vec3{Y: 1}
	s.Step(sceneDT, q)
	if reps := collisions(q); len(reps) != 0 {
		t.Fatalf("separated ball reported contact: %v", reps)
	}

	// Second fall produces a fresh onset
	s.Ball().Pos.Y = cfg.TableTop() + 0.01
	s.Ball().Vel = vmath.Vec3{Y: -1}
	s.Step(sceneDT, q)
	if reps := collisions(q); len(reps) != 1 {
		t.Errorf("re-contact reports = %v, want one", reps)
	}
}

func TestSceneWallContact(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	front := cfg.WallPos.Z + cfg.WallSize.Z/2
	s.Ball().Pos = vmath.Vec3{X: cfg.WallPos.X, Y: cfg.WallPos.Y, Z: front + cfg.BallRadius}
	s.Ball().Vel = vmath.Vec3{Z: -1}

	s.Step(sceneDT, q)

	reps := collisions(q)
	if len(reps) != 1 || reps[0].Counterpart != core.KindWall {
		t.Errorf("reports = %v, want one wall contact", reps)
	}
}

func TestSceneWallIgnoresRecedingBall(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	// Inside the wall slab but moving back toward the player
	s.Ball().Pos = vmath.Vec3{X: cfg.WallPos.X, Y: cfg.WallPos.Y, Z: cfg.WallPos.Z}
	s.Ball().Vel = vmath.Vec3{Z: 2}

	s.Step(sceneDT, q)

	if reps := collisions(q); len(reps) != 0 {
		t.Errorf("receding ball reported wall contact: %v", reps)
	}
}

func TestSceneRacketContactCarriesRacketVelocity(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	racketVel := vmath.Vec3{Y: 0.5, Z: -2}
	s.SetRacket(s.Ball().Pos, racketVel)

	s.Step(sceneDT, q)

	reps := collisions(q)
	if len(reps) != 1 || reps[0].Counterpart != core.KindRacket {
		t.Fatalf("reports = %v, want one racket contact", reps)
	}
	if reps[0].IncomingVel != racketVel {
		t.Errorf("incoming velocity = %v, want %v", reps[0].IncomingVel, racketVel)
	}
}

func TestSceneGroundContact(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	// Off the table, just above the floor, falling; racket out of reach
	s.SetRacket(vmath.Vec3{X: 5}, vmath.Vec3{})
	s.Ball().Pos = vmath.Vec3{Y: cfg.BallRadius + 0.001}
	s.Ball().Vel = vmath.Vec3{Y: -1}

	s.Step(sceneDT, q)

	reps := collisions(q)
	if len(reps) != 1 || reps[0].Counterpart != core.KindGround {
		t.Errorf("reports = %v, want one ground contact", reps)
	}
}

func TestSceneGravityIntegration(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	start := s.Ball().Pos
	s.Step(sceneDT, q)

	if s.Ball().Vel.Y >= 0 {
		t.Errorf("gravity did not pull the ball: vel %v", s.Ball().Vel)
	}
	if s.Ball().Pos.Y >= start.Y {
		t.Errorf("ball did not fall: %v -> %v", start, s.Ball().Pos)
	}
}

func TestSceneResetBallClearsLatches(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewScene(cfg)
	q := event.NewQueue()

	s.SetRacket(s.Ball().Pos, vmath.Vec3{})
	s.Step(sceneDT, q)
	if len(collisions(q)) != 1 {
		t.Fatal("setup racket contact not reported")
	}

	s.ResetBall()
	s.SetRacket(s.Ball().Pos, vmath.Vec3{})
	s.Step(sceneDT, q)

	if reps := collisions(q); len(reps) != 1 {
		t.Errorf("contact after reset reports = %v, want one", reps)
	}
	if s.Ball().Pos == (vmath.Vec3{}) {
		t.Error("reset did not place the ball at the start pose")
	}
}
