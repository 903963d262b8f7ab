package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rmaffei/partygames-go/internal/api/request"
	"github.com/rmaffei/partygames-go/internal/api/response"
	"github.com/rmaffei/partygames-go/internal/model"
	"github.com/rmaffei/partygames-go/internal/services/session"
)

// SessionHandler handles the challenge session endpoints
type SessionHandler struct {
	session session.ControllerInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session session.ControllerInterface) *SessionHandler {
	return &SessionHandler{session: session}
}

// Start handles POST /api/v1/session
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	decks := make([]model.DeckID, len(req.Decks))
	for i, d := range req.Decks {
		decks[i] = model.DeckID(d)
	}

	sess, err := h.session.Start(r.Context(), decks)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(sess))
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Challenge handles POST /api/v1/session/challenge
func (h *SessionHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session.GenerateChallenge(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Actions handles POST /api/v1/session/actions
func (h *SessionHandler) Actions(w http.ResponseWriter, r *http.Request) {
	var req request.MarkActionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	sess, err := h.session.MarkActions(r.Context(), req.CompletedChallenge, req.Drank)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// Advance handles POST /api/v1/session/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	result, err := h.session.AdvanceTurn(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.AdvanceResultFromModel(result))
}

// Summary handles GET /api/v1/session/summary
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.session.Summary(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionSummaryFromModel(summary))
}

// End handles DELETE /api/v1/session
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.session.End(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
