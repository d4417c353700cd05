// rally-sandbox is a terminal side-view harness for the collision core:
// the development scene stands in for the AR physics engine and a
// synthetic anchor source stands in for the hand-tracking provider.
//
// Keys: w/s or arrows move the racket, space swings, g starts, r resets,
// t toggles tracking loss, m toggles audio, q quits.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"arpong/audio"
	"arpong/core"
	"arpong/engine"
	"arpong/event"
	"arpong/game"
	"arpong/parameter"
	"arpong/tracking"
	"arpong/vmath"
)

// simSource is a channel-backed tracking provider for the sandbox
type simSource struct {
	ch chan tracking.AnchorEvent
}

func newSimSource() *simSource {
	return &simSource{ch: make(chan tracking.AnchorEvent, 16)}
}

func (s *simSource) Events() <-chan tracking.AnchorEvent { return s.ch }

func (s *simSource) Close() error {
	close(s.ch)
	return nil
}

func (s *simSource) emit(phase tracking.AnchorPhase, pos vmath.Vec3) {
	select {
	case s.ch <- tracking.AnchorEvent{Phase: phase, Pos: pos}:
	default:
	}
}

// World window mapped onto the terminal: Z left-right (wall at the
// left), Y bottom-up
const (
	viewMinZ = -1.55
	viewMaxZ = -0.45
	viewMinY = 0.0
	viewMaxY = 1.60
)

const swingDuration = 150 * time.Millisecond

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	cfg := core.DefaultConfig()
	session := game.NewSession()
	queue := event.NewQueue()
	scene := engine.NewScene(cfg)

	player := audio.NewEngine(audio.DefaultConfig(), cfg)
	player.Start()
	defer player.Stop()

	dispatcher := engine.NewDispatcher(cfg, session, player)
	bridge := tracking.NewBridge(session)
	loop := engine.NewLoop(cfg, session, scene, dispatcher, bridge, queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := newSimSource()
	go tracking.Pump(ctx, source, queue)

	// Dedicated input goroutine
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	racketPos := vmath.Vec3{X: cfg.TablePos.X, Y: cfg.TableTop() + 0.15, Z: cfg.TablePos.Z + cfg.TableSize.Z/2 + 0.05}
	racketVel := vmath.Vec3{}
	swingUntil := time.Time{}
	trackingOn := true
	source.emit(tracking.AnchorAdded, racketPos)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	dt := parameter.FrameInterval.Seconds()

	for {
		// Handle all pending input
	inputLoop:
		for {
			select {
			case ev := <-eventCh:
				switch tev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
				case *tcell.EventKey:
					switch {
					case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC ||
						(tev.Key() == tcell.KeyRune && tev.Rune() == 'q'):
						return
					case tev.Key() == tcell.KeyUp || (tev.Key() == tcell.KeyRune && tev.Rune() == 'w'):
						racketPos.Y += 0.05
					case tev.Key() == tcell.KeyDown || (tev.Key() == tcell.KeyRune && tev.Rune() == 's'):
						racketPos.Y -= 0.05
					case tev.Key() == tcell.KeyRune && tev.Rune() == ' ':
						swingUntil = time.Now().Add(swingDuration)
					case tev.Key() == tcell.KeyRune && tev.Rune() == 'g':
						session.Start()
						scene.ResetBall()
					case tev.Key() == tcell.KeyRune && tev.Rune() == 'r':
						session.Reset()
						scene.ResetBall()
					case tev.Key() == tcell.KeyRune && tev.Rune() == 't':
						trackingOn = !trackingOn
						if trackingOn {
							source.emit(tracking.AnchorUpdated, racketPos)
						} else {
							source.emit(tracking.AnchorRemoved, racketPos)
						}
					case tev.Key() == tcell.KeyRune && tev.Rune() == 'm':
						player.ToggleMute()
					}
				}
			default:
				break inputLoop
			}
		}

		<-ticker.C

		if time.Now().Before(swingUntil) {
			racketVel = vmath.Vec3{Y: 1.0, Z: -2.5}
		} else {
			racketVel = vmath.Vec3{}
		}
		if trackingOn {
			scene.SetRacket(racketPos, racketVel)
			source.emit(tracking.AnchorUpdated, racketPos)
		}

		loop.Frame(dt)
		draw(screen, cfg, session, bridge, scene, player, racketPos)
	}
}

func draw(screen tcell.Screen, cfg *core.Config, session *game.Session, bridge *tracking.Bridge, scene *engine.Scene, player *audio.Engine, racketPos vmath.Vec3) {
	screen.Clear()
	width, height := screen.Size()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	bright := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	accent := tcell.StyleDefault.Foreground(tcell.ColorAqua)

	toCol := func(z float64) int {
		return int((z - viewMinZ) / (viewMaxZ - viewMinZ) * float64(width-1))
	}
	toRow := func(y float64) int {
		return height - 2 - int((y-viewMinY)/(viewMaxY-viewMinY)*float64(height-3))
	}

	// Ground
	groundRow := toRow(cfg.GroundLevel)
	for col := 0; col < width; col++ {
		screen.SetContent(col, groundRow, '─', nil, dim)
	}

	// Table slab
	tableRow := toRow(cfg.TableTop())
	for col := toCol(cfg.TablePos.Z - cfg.TableSize.Z/2); col <= toCol(cfg.TablePos.Z+cfg.TableSize.Z/2); col++ {
		if col >= 0 && col < width {
			screen.SetContent(col, tableRow, '═', nil, bright)
		}
	}

	// Wall
	wallCol := toCol(cfg.WallPos.Z)
	for row := toRow(cfg.WallPos.Y + cfg.WallSize.Y/2); row <= toRow(cfg.WallPos.Y-cfg.WallSize.Y/2); row++ {
		if row >= 0 && row < height {
			screen.SetContent(wallCol, row, '║', nil, bright)
		}
	}

	// Racket and ball
	screen.SetContent(toCol(racketPos.Z), toRow(racketPos.Y), '▐', nil, accent)
	ball := scene.Ball()
	screen.SetContent(toCol(ball.Pos.Z), toRow(ball.Pos.Y), 'o', nil, bright)

	// Status line
	trackState := "active"
	if bridge.Lost() {
		trackState = "lost"
	} else if !bridge.Active() {
		trackState = "off"
	}
	audioState := "on"
	if player.IsMuted() || player.IsDisabled() {
		audioState = "off"
	}
	status := fmt.Sprintf(" %s | score %d | streak %d | tracking %s | audio %s | g:start r:reset t:tracking q:quit",
		session.State(), session.Score(), session.ConsecutiveHits(), trackState, audioState)
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, dim)
	}

	screen.Show()
}
