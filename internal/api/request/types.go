package request

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// UpdatePointsRequest is the request body for awarding points
type UpdatePointsRequest struct {
	Kind   string `json:"kind"` // "challenge" or "drink"
	Points int    `json:"points"`
}

// UpdateSettingsRequest is the request body for updating game settings
type UpdateSettingsRequest struct {
	MaxPoints int `json:"max_points"`
}

// StartSessionRequest is the request body for starting a session
type StartSessionRequest struct {
	Decks []string `json:"decks,omitempty"`
}

// MarkActionsRequest is the request body for recording round actions
type MarkActionsRequest struct {
	CompletedChallenge bool `json:"completed_challenge"`
	Drank              bool `json:"drank"`
}

// Profile is the externally sourced user profile carried in
// recommendation requests
type Profile struct {
	Gender                string   `json:"gender"`
	FavoriteSocialNetwork string   `json:"favorite_social_network"`
	FavoriteDrinks        []string `json:"favorite_drinks"`
}

// RecommendationsRequest is the request body for recommendation queries
type RecommendationsRequest struct {
	Profile Profile `json:"profile"`
}
