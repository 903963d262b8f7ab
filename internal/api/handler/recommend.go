package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rmaffei/partygames-go/internal/api/request"
	"github.com/rmaffei/partygames-go/internal/api/response"
	"github.com/rmaffei/partygames-go/internal/catalog"
	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/services/recommend"
)

// RecommendHandler handles catalog and recommendation endpoints
type RecommendHandler struct {
	catalog   *catalog.Catalog
	recommend recommend.ServiceInterface
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(catalog *catalog.Catalog, recommend recommend.ServiceInterface) *RecommendHandler {
	return &RecommendHandler{
		catalog:   catalog,
		recommend: recommend,
	}
}

// Games handles GET /api/v1/games
func (h *RecommendHandler) Games(w http.ResponseWriter, r *http.Request) {
	games := h.catalog.Games()
	out := make([]response.Game, len(games))
	for i, g := range games {
		out[i] = response.GameFromModel(g)
	}
	response.JSON(w, http.StatusOK, out)
}

// Decks handles GET /api/v1/decks
func (h *RecommendHandler) Decks(w http.ResponseWriter, r *http.Request) {
	decks := h.catalog.Decks()
	out := make([]response.Deck, len(decks))
	for i, d := range decks {
		out[i] = response.DeckFromModel(d)
	}
	response.JSON(w, http.StatusOK, out)
}

// Recommendations handles POST /api/v1/recommendations.
// The profile travels in the body since it is owned by an external
// identity backend, not by this service. ?top=N limits the result.
func (h *RecommendHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	profile, err := decodeProfile(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var recs []model.GameRecommendation
	if topParam := r.URL.Query().Get("top"); topParam != "" {
		top, err := strconv.Atoi(topParam)
		if err != nil || top < 1 {
			WriteError(w, NewInvalidRequestError("top must be a positive integer"))
			return
		}
		recs = h.recommend.TopRecommendations(profile, top)
	} else {
		recs = h.recommend.GenerateRecommendations(profile)
	}

	response.JSON(w, http.StatusOK, response.RecommendationsFromModel(recs))
}

// GameRecommendation handles POST /api/v1/recommendations/{game_id}
func (h *RecommendHandler) GameRecommendation(w http.ResponseWriter, r *http.Request) {
	profile, err := decodeProfile(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	id := model.GameID(mux.Vars(r)["game_id"])
	rec := h.recommend.GameRecommendation(id, profile)
	if rec == nil {
		WriteError(w, model.ErrGameNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.RecommendationFromModel(*rec))
}

func decodeProfile(r *http.Request) (model.UserProfile, error) {
	var req request.RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return model.UserProfile{}, NewInvalidRequestError("invalid request body")
	}
	return model.UserProfile{
		Gender:                req.Profile.Gender,
		FavoriteSocialNetwork: req.Profile.FavoriteSocialNetwork,
		FavoriteDrinks:        req.Profile.FavoriteDrinks,
	}, nil
}
