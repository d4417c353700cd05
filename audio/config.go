package audio

import (
	"time"

	"arpong/core"
	"arpong/parameter"
)

// Config holds audio engine settings
type Config struct {
	SampleRate   int
	BufferLen    time.Duration
	MasterVolume float64
	CueVolumes   [core.SoundTypeCount]float64
	Enabled      bool
}

// DefaultConfig returns the standard cue configuration
func DefaultConfig() *Config {
	cfg := &Config{
		SampleRate:   parameter.AudioSampleRate,
		BufferLen:    parameter.AudioBufferLen,
		MasterVolume: parameter.MasterVolume,
		Enabled:      true,
	}
	cfg.CueVolumes[core.SoundTableBounce] = parameter.TableBounceVolume
	cfg.CueVolumes[core.SoundWallBounce] = parameter.WallBounceVolume
	cfg.CueVolumes[core.SoundBallHit] = parameter.BallHitVolume
	cfg.CueVolumes[core.SoundGameOver] = parameter.GameOverVolume
	return cfg
}
