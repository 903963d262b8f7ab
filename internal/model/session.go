package model

import "time"

// DeckID names a collection of challenge strings
type DeckID string

// SessionState represents the current phase of a challenge session
type SessionState string

const (
	SessionStateAwaitingSelection  SessionState = "awaiting_selection"  // No challenge shown yet
	SessionStateChallengePresented SessionState = "challenge_presented" // Challenge and point value rolled
	SessionStateRoundResolved      SessionState = "round_resolved"      // At least one round action recorded
	SessionStateFinished           SessionState = "finished"            // A player reached the point limit
)

// Session is the turn-based challenge state machine record.
// Sessions are ephemeral: one per process, lost on restart.
type Session struct {
	State SessionState

	// Decks enabled for the challenge draw
	Decks []DeckID

	// Current round
	Challenge   string
	RoundPoints int

	// Round action flags, cleared on turn advance
	CompletedChallenge bool
	HasDrunk           bool

	// End-of-session summary, set when State is finished
	WinnerID     PlayerID
	TopDrinkerID PlayerID

	StartedAt time.Time
	UpdatedAt time.Time
}

// RoundPoints bounds for the per-round point roll
const (
	MinRoundPoints = 2
	MaxRoundPoints = 10
)

// HasAction reports whether any round action has been recorded
func (s *Session) HasAction() bool {
	return s.CompletedChallenge || s.HasDrunk
}

// SessionSummary is the end-of-session report
type SessionSummary struct {
	Winner     Player
	TopDrinker Player
	FinishedAt time.Time
}
