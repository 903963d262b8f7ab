package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmaffei/partygames-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeEmptyName         = "EMPTY_NAME"
	CodeInvalidMaxPoints  = "INVALID_MAX_POINTS"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeNoPlayers         = "NO_PLAYERS"
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeSessionFinished   = "SESSION_FINISHED"
	CodeSessionInProgress = "SESSION_IN_PROGRESS"
	CodeNoChallenge       = "NO_CHALLENGE"
	CodeNoActionSelected  = "NO_ACTION_SELECTED"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeDeckNotFound      = "DECK_NOT_FOUND"
	CodeNoDecks           = "NO_DECKS"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusConflict, APIError{CodeNoPlayers, "No players in the roster"}}
	case errors.Is(err, model.ErrInvalidMaxPoints):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMaxPoints, "Max points must be between 10 and 1000"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "No session in progress"}}
	case errors.Is(err, model.ErrSessionFinished):
		return &httpError{http.StatusConflict, APIError{CodeSessionFinished, "Session is already finished"}}
	case errors.Is(err, model.ErrSessionInProgress):
		return &httpError{http.StatusConflict, APIError{CodeSessionInProgress, "Session already in progress"}}
	case errors.Is(err, model.ErrNoChallenge):
		return &httpError{http.StatusConflict, APIError{CodeNoChallenge, "No challenge has been presented"}}
	case errors.Is(err, model.ErrNoActionSelected):
		return &httpError{http.StatusConflict, APIError{CodeNoActionSelected, "Select at least one action before advancing"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrDeckNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeDeckNotFound, "Deck not found"}}
	case errors.Is(err, model.ErrNoDecks):
		return &httpError{http.StatusBadRequest, APIError{CodeNoDecks, "At least one deck must be selected"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
