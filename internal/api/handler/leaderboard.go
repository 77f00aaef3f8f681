package handler

import (
	"net/http"

	"github.com/garrastaldea/bolilla/internal/api/response"
	"github.com/garrastaldea/bolilla/internal/services/leaderboard"
)

// LeaderboardHandler handles the standings endpoint
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	standings, err := h.leaderboardService.Standings(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Standing, 0, len(standings))
	for _, s := range standings {
		out = append(out, response.StandingFromService(s))
	}
	response.JSON(w, http.StatusOK, out)
}
