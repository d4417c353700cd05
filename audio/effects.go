package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"arpong/core"
	"arpong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveNoise
)

// oscillator generates raw non-sine waves; pure sines come from
// generators.SineTone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sineTone returns a pure sine streamer at freq, silent on invalid input
func sineTone(rate beep.SampleRate, freq float64) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a simplified attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so 0 volume becomes silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newPan places s in the stereo field, pan clamped to [-1, 1]
func newPan(s beep.Streamer, pan float64) beep.Streamer {
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	return &effects.Pan{Streamer: s, Pan: pan}
}

// Cue generators

// CreateTableBounceCue generates a short low thump for a table bounce
func CreateTableBounceCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := sineTone(rate, parameter.TableBounceFreq)
	shaped := NewEnvelope(tone, parameter.TableBounceDuration, parameter.TableBounceAttack, parameter.TableBounceRelease, rate)

	vol := cfg.CueVolumes[core.SoundTableBounce] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateWallBounceCue generates a harder knock for a wall rebound
func CreateWallBounceCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.WallBounceFreq, parameter.WallBounceDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.WallBounceDuration, parameter.WallBounceAttack, parameter.WallBounceRelease, rate)

	vol := cfg.CueVolumes[core.SoundWallBounce] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateBallHitCue generates a bright click with an overtone for racket
// contact
func CreateBallHitCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := sineTone(rate, parameter.BallHitFreq)
	fundShaped := NewEnvelope(fund, parameter.BallHitDuration, parameter.BallHitAttack, parameter.BallHitRelease, rate)

	over := sineTone(rate, parameter.BallHitOvertoneFreq)
	overShaped := NewEnvelope(over, parameter.BallHitDuration, parameter.BallHitAttack, parameter.BallHitRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.CueVolumes[core.SoundBallHit] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateGameOverCue generates a descending two-note fall for a lost ball
func CreateGameOverCue(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.GameOverNote1Freq, parameter.GameOverNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.GameOverNoteDuration, parameter.GameOverNoteAttack, parameter.GameOverNoteRelease, rate)

	n2 := NewOscillator(parameter.GameOverNote2Freq, parameter.GameOverNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.GameOverNoteDuration, parameter.GameOverNoteAttack, parameter.GameOverNoteRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.CueVolumes[core.SoundGameOver] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// GetCue returns the streamer for the given cue type
func GetCue(soundType core.SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case core.SoundTableBounce:
		return CreateTableBounceCue(cfg)
	case core.SoundWallBounce:
		return CreateWallBounceCue(cfg)
	case core.SoundBallHit:
		return CreateBallHitCue(cfg)
	case core.SoundGameOver:
		return CreateGameOverCue(cfg)
	default:
		return nil
	}
}
