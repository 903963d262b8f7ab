package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rmaffei/partygames-go/internal/api/handler"
	"github.com/rmaffei/partygames-go/internal/api/middleware"
	"github.com/rmaffei/partygames-go/internal/catalog"
	basemw "github.com/rmaffei/partygames-go/internal/middleware"
	"github.com/rmaffei/partygames-go/internal/services/recommend"
	"github.com/rmaffei/partygames-go/internal/services/roster"
	"github.com/rmaffei/partygames-go/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	Catalog           *catalog.Catalog
	RosterService     *roster.Service
	SessionController *session.Controller
	RecommendService  *recommend.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.RosterService, cfg.SessionController)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	recommendHandler := handler.NewRecommendHandler(cfg.Catalog, cfg.RecommendService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Identity())
	api.Use(basemw.Logging(cfg.Logger))

	// Player roster
	api.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.RemoveAll).Methods(http.MethodDelete)
	api.HandleFunc("/players/current", playerHandler.Current).Methods(http.MethodGet)
	api.HandleFunc("/players/first", playerHandler.SetFirst).Methods(http.MethodPost)
	api.HandleFunc("/players/next", playerHandler.SetNext).Methods(http.MethodPost)
	api.HandleFunc("/players/reset-points", playerHandler.ResetPoints).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/points", playerHandler.UpdatePoints).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Remove).Methods(http.MethodDelete)

	// Settings
	api.HandleFunc("/settings", playerHandler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", playerHandler.UpdateSettings).Methods(http.MethodPatch)

	// Challenge session
	api.HandleFunc("/session", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.End).Methods(http.MethodDelete)
	api.HandleFunc("/session/challenge", sessionHandler.Challenge).Methods(http.MethodPost)
	api.HandleFunc("/session/actions", sessionHandler.Actions).Methods(http.MethodPost)
	api.HandleFunc("/session/advance", sessionHandler.Advance).Methods(http.MethodPost)
	api.HandleFunc("/session/summary", sessionHandler.Summary).Methods(http.MethodGet)

	// Catalog and recommendations
	api.HandleFunc("/games", recommendHandler.Games).Methods(http.MethodGet)
	api.HandleFunc("/decks", recommendHandler.Decks).Methods(http.MethodGet)
	api.HandleFunc("/recommendations", recommendHandler.Recommendations).Methods(http.MethodPost)
	api.HandleFunc("/recommendations/{game_id}", recommendHandler.GameRecommendation).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
