package core

// SoundType represents the collision cue set
type SoundType int

const (
	SoundTableBounce SoundType = iota // Ball lands on the table
	SoundWallBounce                   // Ball rebounds off the wall
	SoundBallHit                      // Racket contact
	SoundGameOver                     // Ball lost to the ground
	SoundTypeCount
)
