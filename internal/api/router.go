package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garrastaldea/bolilla/internal/api/handler"
	"github.com/garrastaldea/bolilla/internal/api/middleware"
	"github.com/garrastaldea/bolilla/internal/dependencies/clock"
	"github.com/garrastaldea/bolilla/internal/services/auth"
	"github.com/garrastaldea/bolilla/internal/services/leaderboard"
	"github.com/garrastaldea/bolilla/internal/services/match"
	"github.com/garrastaldea/bolilla/internal/services/prediction"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Clock              clock.Clock
	AuthService        *auth.Service
	MatchController    *match.Controller
	PredictionService  *prediction.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.PredictionService, cfg.Clock)
	predictionHandler := handler.NewPredictionHandler(cfg.PredictionService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	userHandler := handler.NewUserHandler(cfg.AuthService, cfg.LeaderboardService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	adminMiddleware := middleware.Admin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for registering/logging in)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/change-password", authHandler.ChangePassword).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)

	// Match routes (reads require auth)
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("", matchHandler.List).Methods(http.MethodGet)
	matches.HandleFunc("/upcoming", matchHandler.ListUpcoming).Methods(http.MethodGet)
	matches.HandleFunc("/{matchId}", matchHandler.Get).Methods(http.MethodGet)

	// Match management routes (admin only)
	matchAdmin := api.PathPrefix("/matches").Subrouter()
	matchAdmin.Use(authMiddleware)
	matchAdmin.Use(adminMiddleware)
	matchAdmin.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matchAdmin.HandleFunc("/{matchId}", matchHandler.Edit).Methods(http.MethodPut)
	matchAdmin.HandleFunc("/{matchId}", matchHandler.Delete).Methods(http.MethodDelete)
	matchAdmin.HandleFunc("/{matchId}/result", matchHandler.Result).Methods(http.MethodPost)
	matchAdmin.HandleFunc("/{matchId}/predictions", matchHandler.Predictions).Methods(http.MethodGet)

	// Prediction routes (all require auth)
	predictions := api.PathPrefix("/predictions").Subrouter()
	predictions.Use(authMiddleware)
	predictions.HandleFunc("", predictionHandler.Submit).Methods(http.MethodPost)
	predictions.HandleFunc("", predictionHandler.History).Methods(http.MethodGet)

	// Leaderboard (requires auth)
	board := api.PathPrefix("/leaderboard").Subrouter()
	board.Use(authMiddleware)
	board.HandleFunc("", leaderboardHandler.Get).Methods(http.MethodGet)

	// Admin user management
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware)
	admin.Use(adminMiddleware)
	admin.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}/reset-password", userHandler.ResetPassword).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
