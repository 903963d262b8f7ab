package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyName      = errors.New("player name must not be empty")
	ErrNoPlayers      = errors.New("no players in the roster")

	// Settings errors
	ErrInvalidMaxPoints = errors.New("max points must be between 10 and 1000")

	// Session errors
	ErrSessionNotFound   = errors.New("no session in progress")
	ErrSessionFinished   = errors.New("session is already finished")
	ErrNoChallenge       = errors.New("no challenge has been presented")
	ErrNoActionSelected  = errors.New("no round action selected")
	ErrSessionInProgress = errors.New("session already in progress")

	// Catalog errors
	ErrGameNotFound = errors.New("game not found")
	ErrDeckNotFound = errors.New("deck not found")
	ErrNoDecks      = errors.New("no decks selected")
)
