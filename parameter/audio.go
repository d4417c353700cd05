package parameter

import "time"

// Audio engine
const (
	AudioSampleRate = 48000
	AudioBufferLen  = 100 * time.Millisecond
	MasterVolume    = 0.8
)

// Table bounce: short low thump
const (
	TableBounceFreq     = 180.0
	TableBounceDuration = 90 * time.Millisecond
	TableBounceAttack   = 2 * time.Millisecond
	TableBounceRelease  = 70 * time.Millisecond
	TableBounceVolume   = 0.6
)

// Wall bounce: harder knock, slightly higher
const (
	WallBounceFreq     = 320.0
	WallBounceDuration = 70 * time.Millisecond
	WallBounceAttack   = 1 * time.Millisecond
	WallBounceRelease  = 50 * time.Millisecond
	WallBounceVolume   = 0.55
)

// Ball hit: bright click with an overtone
const (
	BallHitFreq         = 880.0
	BallHitOvertoneFreq = 1760.0
	BallHitDuration     = 60 * time.Millisecond
	BallHitAttack       = 1 * time.Millisecond
	BallHitRelease      = 40 * time.Millisecond
	BallHitVolume       = 0.7
)

// Game over: descending two-note fall
const (
	GameOverNote1Freq    = 392.0
	GameOverNote2Freq    = 261.63
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverNoteAttack   = 5 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
	GameOverVolume       = 0.65
)

// Stereo pan span: cue at the table edge pans fully to that side
const (
	PanSpan = 1.0
)
