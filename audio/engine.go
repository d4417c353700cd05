package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"arpong/core"
	"arpong/parameter"
	"arpong/vmath"
)

// Engine synthesizes collision cues and plays them through the system
// speaker, panning each cue from its world position. Degrades gracefully:
// if no audio device is available the engine stays disabled and Play
// reports false, never an error.
type Engine struct {
	cfg   *Config
	geo   *core.Config
	mixer *beep.Mixer

	running  atomic.Bool
	muted    atomic.Bool
	disabled atomic.Bool
}

// NewEngine creates a cue engine. geo supplies the table geometry used
// for stereo placement.
func NewEngine(cfg *Config, geo *core.Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		cfg:   cfg,
		geo:   geo,
		mixer: &beep.Mixer{},
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start initializes the speaker and attaches the mixer. A backend
// failure switches the engine to disabled silently.
func (e *Engine) Start() error {
	if e.running.Load() {
		return nil
	}

	rate := beep.SampleRate(e.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(e.cfg.BufferLen)); err != nil {
		e.disabled.Store(true)
		e.running.Store(true)
		return nil // Silent mode, not an error
	}

	speaker.Play(e.mixer)
	e.running.Store(true)
	return nil
}

// Stop detaches all pending cues
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.disabled.Load() {
		return
	}
	speaker.Clear()
}

// Play queues the cue for st, panned from the world position at.
// Implements Player.
func (e *Engine) Play(st core.SoundType, at vmath.Vec3) bool {
	if !e.running.Load() || e.muted.Load() || e.disabled.Load() {
		return false
	}

	s := GetCue(st, e.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	e.mixer.Add(newPan(s, e.panFor(at)))
	speaker.Unlock()
	return true
}

// panFor maps a world X position onto the stereo field: cue at the table
// edge pans fully to that side
func (e *Engine) panFor(at vmath.Vec3) float64 {
	halfWidth := e.geo.TableSize.X / 2
	if halfWidth == 0 {
		return 0
	}
	return (at.X - e.geo.TablePos.X) / halfWidth * parameter.PanSpan
}

// ToggleMute toggles mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning returns true if the engine started (even when disabled)
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// IsDisabled returns true if no audio backend is available
func (e *Engine) IsDisabled() bool {
	return e.disabled.Load()
}
