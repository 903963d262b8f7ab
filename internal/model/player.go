package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// PointKind distinguishes how a player earned points
type PointKind string

const (
	PointKindChallenge PointKind = "challenge"
	PointKindDrink     PointKind = "drink"
	// PointKindTransfer covers point moves not tied to a round action,
	// e.g. redistribution after a player leaves
	PointKindTransfer PointKind = "transfer"
)

// Player represents a participant in the current party session
type Player struct {
	ID   PlayerID
	Name string

	Points int

	// IsActive marks the player whose turn it is; exactly one player is
	// active at a time on a non-empty roster
	IsActive bool

	ChallengesCompleted int
	DrinksCompleted     int

	CreatedAt time.Time
}

// GameSettings holds session-wide configurable values
type GameSettings struct {
	// MaxPoints ends the session when any player reaches it (10-1000)
	MaxPoints int

	// CurrentPlayerID references the active player, empty when the
	// roster is empty
	CurrentPlayerID PlayerID
}

// Settings bounds
const (
	MinMaxPoints     = 10
	MaxMaxPoints     = 1000
	DefaultMaxPoints = 50
)

// DefaultGameSettings returns the settings a fresh roster starts with
func DefaultGameSettings() GameSettings {
	return GameSettings{
		MaxPoints: DefaultMaxPoints,
	}
}
