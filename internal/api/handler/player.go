package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rmaffei/partygames-go/internal/api/request"
	"github.com/rmaffei/partygames-go/internal/api/response"
	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/services/roster"
	"github.com/rmaffei/partygames-go/internal/services/session"
)

// PlayerHandler handles roster and settings endpoints
type PlayerHandler struct {
	roster  roster.ServiceInterface
	session session.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster roster.ServiceInterface, session session.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{
		roster:  roster,
		session: session,
	}
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.AddPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Current handles GET /api/v1/players/current
func (h *PlayerHandler) Current(w http.ResponseWriter, r *http.Request) {
	player, err := h.roster.CurrentPlayer(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// SetFirst handles POST /api/v1/players/first
func (h *PlayerHandler) SetFirst(w http.ResponseWriter, r *http.Request) {
	player, err := h.roster.SetFirstPlayer(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// SetNext handles POST /api/v1/players/next
func (h *PlayerHandler) SetNext(w http.ResponseWriter, r *http.Request) {
	player, err := h.roster.SetNextPlayer(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// UpdatePoints handles POST /api/v1/players/{id}/points
func (h *PlayerHandler) UpdatePoints(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	kind := model.PointKind(req.Kind)
	switch kind {
	case model.PointKindChallenge, model.PointKindDrink:
	default:
		WriteError(w, NewInvalidRequestError("kind must be 'challenge' or 'drink'"))
		return
	}

	if req.Points < 0 {
		WriteError(w, NewInvalidRequestError("points must not be negative"))
		return
	}

	player, err := h.roster.UpdatePoints(r.Context(), id, kind, req.Points)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/players/{id}
// Removal goes through the session controller so a mid-session removal
// keeps the state machine consistent.
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.session.RemovePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RemoveAll handles DELETE /api/v1/players
func (h *PlayerHandler) RemoveAll(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.RemoveAllPlayers(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// ResetPoints handles POST /api/v1/players/reset-points
func (h *PlayerHandler) ResetPoints(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.ResetPoints(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// GetSettings handles GET /api/v1/settings
func (h *PlayerHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.roster.Settings(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SettingsFromModel(settings))
}

// UpdateSettings handles PATCH /api/v1/settings
func (h *PlayerHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	settings, err := h.roster.UpdateSettings(r.Context(), req.MaxPoints)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettingsFromModel(settings))
}
