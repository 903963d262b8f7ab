package response

import (
	"time"

	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/services/session"
)

// Player represents a player in API responses
type Player struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Points              int    `json:"points"`
	IsActive            bool   `json:"is_active"`
	ChallengesCompleted int    `json:"challenges_completed"`
	DrinksCompleted     int    `json:"drinks_completed"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:                  string(p.ID),
		Name:                p.Name,
		Points:              p.Points,
		IsActive:            p.IsActive,
		ChallengesCompleted: p.ChallengesCompleted,
		DrinksCompleted:     p.DrinksCompleted,
	}
}

// PlayersFromModel converts a player slice
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Settings represents game settings
type Settings struct {
	MaxPoints       int     `json:"max_points"`
	CurrentPlayerID *string `json:"current_player_id"`
}

// SettingsFromModel converts model.GameSettings
func SettingsFromModel(s model.GameSettings) Settings {
	var current *string
	if s.CurrentPlayerID != "" {
		id := string(s.CurrentPlayerID)
		current = &id
	}
	return Settings{
		MaxPoints:       s.MaxPoints,
		CurrentPlayerID: current,
	}
}

// Session represents the session state machine in API responses
type Session struct {
	State              string   `json:"state"`
	Decks              []string `json:"decks"`
	Challenge          string   `json:"challenge,omitempty"`
	RoundPoints        int      `json:"round_points,omitempty"`
	CompletedChallenge bool     `json:"completed_challenge"`
	HasDrunk           bool     `json:"has_drunk"`
	Winner             *string  `json:"winner,omitempty"`
	TopDrinker         *string  `json:"top_drinker,omitempty"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s *model.Session) Session {
	decks := make([]string, len(s.Decks))
	for i, d := range s.Decks {
		decks[i] = string(d)
	}

	var winner, topDrinker *string
	if s.WinnerID != "" {
		w := string(s.WinnerID)
		winner = &w
	}
	if s.TopDrinkerID != "" {
		t := string(s.TopDrinkerID)
		topDrinker = &t
	}

	return Session{
		State:              string(s.State),
		Decks:              decks,
		Challenge:          s.Challenge,
		RoundPoints:        s.RoundPoints,
		CompletedChallenge: s.CompletedChallenge,
		HasDrunk:           s.HasDrunk,
		Winner:             winner,
		TopDrinker:         topDrinker,
	}
}

// AdvanceResult reports the outcome of a turn advance
type AdvanceResult struct {
	Finished      bool    `json:"finished"`
	PointsAwarded int     `json:"points_awarded"`
	AwardedPlayer *Player `json:"awarded_player,omitempty"`
	NextPlayer    *Player `json:"next_player,omitempty"`
}

// AdvanceResultFromModel converts a session.AdvanceResult
func AdvanceResultFromModel(r *session.AdvanceResult) AdvanceResult {
	out := AdvanceResult{
		Finished:      r.Finished,
		PointsAwarded: r.PointsAwarded,
	}
	if r.AwardedPlayer != nil {
		p := PlayerFromModel(r.AwardedPlayer)
		out.AwardedPlayer = &p
	}
	if r.NextPlayer != nil {
		p := PlayerFromModel(r.NextPlayer)
		out.NextPlayer = &p
	}
	return out
}

// SessionSummary is the end-of-session report
type SessionSummary struct {
	Winner     Player    `json:"winner"`
	TopDrinker Player    `json:"top_drinker"`
	FinishedAt time.Time `json:"finished_at"`
}

// SessionSummaryFromModel converts model.SessionSummary
func SessionSummaryFromModel(s *model.SessionSummary) SessionSummary {
	return SessionSummary{
		Winner:     PlayerFromModel(&s.Winner),
		TopDrinker: PlayerFromModel(&s.TopDrinker),
		FinishedAt: s.FinishedAt,
	}
}

// Game represents a catalog game
type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Route       string `json:"route"`
}

// GameFromModel converts model.Game
func GameFromModel(g model.Game) Game {
	return Game{
		ID:          string(g.ID),
		Name:        g.Name,
		Description: g.Description,
		Route:       g.Route,
	}
}

// Deck represents a challenge deck
type Deck struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Challenges int    `json:"challenges"`
}

// DeckFromModel converts model.Deck; only the challenge count is exposed
func DeckFromModel(d model.Deck) Deck {
	return Deck{
		ID:         string(d.ID),
		Name:       d.Name,
		Challenges: len(d.Challenges),
	}
}

// Recommendation represents a ranked catalog entry
type Recommendation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Route         string   `json:"route"`
	MatchScore    int      `json:"match_score"`
	Tags          []string `json:"tags"`
	ReasonsToPlay []string `json:"reasons_to_play"`
}

// RecommendationFromModel converts model.GameRecommendation
func RecommendationFromModel(r model.GameRecommendation) Recommendation {
	return Recommendation{
		ID:            string(r.ID),
		Name:          r.Name,
		Description:   r.Description,
		Route:         r.Route,
		MatchScore:    r.MatchScore,
		Tags:          r.Tags,
		ReasonsToPlay: r.ReasonsToPlay,
	}
}

// RecommendationsFromModel converts a recommendation slice
func RecommendationsFromModel(recs []model.GameRecommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	for i, r := range recs {
		out[i] = RecommendationFromModel(r)
	}
	return out
}
