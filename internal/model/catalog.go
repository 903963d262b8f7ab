package model

// GameID identifies a game variant in the catalog
type GameID string

// Game is a playable variant in the compiled-in catalog
type Game struct {
	ID          GameID
	Name        string
	Description string
	Route       string
}

// GameMetadata is static per-game reference data used for scoring.
// It is never created or destroyed at runtime.
type GameMetadata struct {
	ID              GameID
	Tags            []string
	MinPlayers      int
	MaxPlayers      int
	AverageDuration int // minutes
	AlcoholLevel    int // 0-10
	SocialLevel     int // 0-10
}

// HasTag reports whether the metadata carries the given tag
func (m GameMetadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Deck is a named collection of challenge strings for the classic-mode draw
type Deck struct {
	ID         DeckID
	Name       string
	Challenges []string
}

// UserProfile is the externally sourced profile consumed read-only by the
// recommendation engine
type UserProfile struct {
	Gender                string
	FavoriteSocialNetwork string
	FavoriteDrinks        []string
}

// HasDrink reports whether the profile lists the given drink
func (p UserProfile) HasDrink(drink string) bool {
	for _, d := range p.FavoriteDrinks {
		if d == drink {
			return true
		}
	}
	return false
}

// GameRecommendation is a derived, ephemeral ranking entry; recomputed on
// every request, never persisted
type GameRecommendation struct {
	ID            GameID
	Name          string
	Description   string
	Route         string
	MatchScore    int // 0-100
	Tags          []string
	ReasonsToPlay []string
}
