package audio

import (
	"arpong/core"
	"arpong/vmath"
)

// Player is the minimal cue interface the dispatcher consumes. Cues are
// fire-and-forget; Play reports whether a cue was actually queued.
type Player interface {
	Play(st core.SoundType, at vmath.Vec3) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// NopPlayer discards all cues. Used headless and in tests.
type NopPlayer struct{}

func (NopPlayer) Play(core.SoundType, vmath.Vec3) bool { return false }
func (NopPlayer) ToggleMute() bool                     { return false }
func (NopPlayer) IsMuted() bool                        { return true }
func (NopPlayer) IsRunning() bool                      { return false }
