package game

import (
	"github.com/google/uuid"
)

// State is the session lifecycle state
type State uint8

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session tracks one play session's lifecycle and scoring.
//
// Scoring operations (RecordHit, HandleGroundCollision) are hard-guarded
// on StatePlaying; pause/resume are soft-guarded and silently ignored
// from inapplicable states. Invalid calls never error, they are
// observable only as unchanged state.
//
// Session carries no locks: all mutation is confined to the game loop
// goroutine and must not be called from multiple execution contexts
// concurrently.
type Session struct {
	id              string
	state           State
	score           int
	consecutiveHits int
}

// NewSession creates a session in StateIdle with zero score
func NewSession() *Session {
	return &Session{
		id:    uuid.NewString(),
		state: StateIdle,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) ConsecutiveHits() int {
	return s.consecutiveHits
}

// Start transitions to StatePlaying from any state
func (s *Session) Start() {
	s.state = StatePlaying
}

// Pause transitions Playing -> Paused; no-op otherwise
func (s *Session) Pause() {
	if s.state == StatePlaying {
		s.state = StatePaused
	}
}

// Resume transitions Paused -> Playing; no-op otherwise
func (s *Session) Resume() {
	if s.state == StatePaused {
		s.state = StatePlaying
	}
}

// End transitions to StateGameOver from any state. GameOver is
// re-enterable via Reset then Start.
func (s *Session) End() {
	s.state = StateGameOver
}

// Reset returns to StateIdle and zeroes score and streak together
func (s *Session) Reset() {
	s.state = StateIdle
	s.score = 0
	s.consecutiveHits = 0
}

// RecordHit extends the rally streak. Effective only while Playing;
// score tracks the streak value of the most recent successful hit.
func (s *Session) RecordHit() {
	if s.state != StatePlaying {
		return
	}
	s.consecutiveHits++
	s.score = s.consecutiveHits
}

// HandleGroundCollision ends the rally. Effective only while Playing:
// the streak resets, the score is retained, and the session moves to
// StateGameOver.
func (s *Session) HandleGroundCollision() {
	if s.state != StatePlaying {
		return
	}
	s.consecutiveHits = 0
	s.state = StateGameOver
}
