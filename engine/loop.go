package engine

import (
	"arpong/core"
	"arpong/event"
	"arpong/game"
	"arpong/physics"
	"arpong/tracking"
)

// Loop is the single-writer execution context. All mutation of the
// session, ball kinematics, and tracking flags happens inside Frame;
// asynchronous producers reach it only through the event queue.
type Loop struct {
	cfg        *core.Config
	session    *game.Session
	scene      *Scene
	dispatcher *Dispatcher
	bridge     *tracking.Bridge
	queue      *event.Queue
	monitor    *physics.Monitor
}

func NewLoop(cfg *core.Config, session *game.Session, scene *Scene, dispatcher *Dispatcher, bridge *tracking.Bridge, queue *event.Queue) *Loop {
	return &Loop{
		cfg:        cfg,
		session:    session,
		scene:      scene,
		dispatcher: dispatcher,
		bridge:     bridge,
		queue:      queue,
		monitor:    physics.NewMonitor(cfg),
	}
}

func (l *Loop) Session() *game.Session { return l.session }

func (l *Loop) Scene() *Scene { return l.scene }

func (l *Loop) Bridge() *tracking.Bridge { return l.bridge }

func (l *Loop) Queue() *event.Queue { return l.queue }

func (l *Loop) Monitor() *physics.Monitor { return l.monitor }

// Frame advances one frame: drain marshaled events, step the simulation
// while playing, then run the defensive boundary and clamp pass. The
// final pass is idempotent, so a skipped frame has no correctness
// impact.
func (l *Loop) Frame(dt float64) {
	for _, ev := range l.queue.Consume() {
		switch ev.Kind {
		case event.KindCollision:
			l.dispatcher.Dispatch(l.scene.Ball(), ev.Report)
		case event.KindTrackingLost:
			l.bridge.HandleLost()
		case event.KindTrackingRestored:
			l.bridge.HandleRestored()
		}
	}

	if l.session.State() == game.StatePlaying {
		l.scene.Step(dt, l.queue)
	}

	ball := l.scene.Ball()
	l.monitor.Reposition(ball)
	ball.Vel = physics.ClampSpeed(ball.Vel, l.cfg.MaxBallSpeed)
}
