package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garrastaldea/bolilla/internal/api/response"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/services/auth"
	"github.com/garrastaldea/bolilla/internal/services/leaderboard"
)

// UserHandler handles admin user management endpoints
type UserHandler struct {
	authService        *auth.Service
	leaderboardService *leaderboard.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, leaderboardService *leaderboard.Service) *UserHandler {
	return &UserHandler{
		authService:        authService,
		leaderboardService: leaderboardService,
	}
}

// List handles GET /api/v1/admin/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.leaderboardService.AllUsers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.AdminUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, response.AdminUser{
			User:             response.UserFromModel(row.User),
			TotalPoints:      row.TotalPoints,
			ExactPredictions: row.ExactCount,
		})
	}
	response.JSON(w, http.StatusOK, out)
}

// ResetPassword handles POST /api/v1/admin/users/{userId}/reset-password.
// The new password is derived from the username and returned so the admin
// can pass it on.
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	userID := model.UserID(mux.Vars(r)["userId"])

	newPassword, err := h.authService.ResetPassword(r.Context(), userID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ResetPasswordResponse{NewPassword: newPassword})
}
