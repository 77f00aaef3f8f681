package handler

import (
	"encoding/json"
	"net/http"

	"github.com/garrastaldea/bolilla/internal/api/middleware"
	"github.com/garrastaldea/bolilla/internal/api/request"
	"github.com/garrastaldea/bolilla/internal/api/response"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/services/prediction"
)

// PredictionHandler handles prediction submission and history endpoints
type PredictionHandler struct {
	predictionService *prediction.Service
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService *prediction.Service) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// Submit handles POST /api/v1/predictions. Submitting again for the same
// match replaces the previous prediction.
func (h *PredictionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.MatchID == "" {
		WriteError(w, NewInvalidRequestError("match_id is required"))
		return
	}
	if req.HomeGoals == nil || req.AwayGoals == nil {
		WriteError(w, NewInvalidRequestError("home_goals and away_goals are required"))
		return
	}

	pred, err := h.predictionService.Submit(r.Context(), user.ID, model.MatchID(req.MatchID), *req.HomeGoals, *req.AwayGoals)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PredictionFromModel(pred))
}

// History handles GET /api/v1/predictions. Returns the caller's predictions
// joined with their matches, most recent kickoff first.
func (h *PredictionHandler) History(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	entries, err := h.predictionService.HistoryForUser(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, response.HistoryEntryFromService(e))
	}
	response.JSON(w, http.StatusOK, out)
}
