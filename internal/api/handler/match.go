package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garrastaldea/bolilla/internal/api/middleware"
	"github.com/garrastaldea/bolilla/internal/api/request"
	"github.com/garrastaldea/bolilla/internal/api/response"
	"github.com/garrastaldea/bolilla/internal/dependencies/clock"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/services/match"
	"github.com/garrastaldea/bolilla/internal/services/prediction"
)

// MatchHandler handles match lifecycle endpoints
type MatchHandler struct {
	matchController   *match.Controller
	predictionService *prediction.Service
	clock             clock.Clock
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchController *match.Controller, predictionService *prediction.Service, clock clock.Clock) *MatchHandler {
	return &MatchHandler{
		matchController:   matchController,
		predictionService: predictionService,
		clock:             clock,
	}
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchController.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, response.MatchFromModel(m))
	}
	response.JSON(w, http.StatusOK, out)
}

// ListUpcoming handles GET /api/v1/matches/upcoming. Each match carries the
// caller's own prediction, if any, and whether submissions are still open.
func (h *MatchHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	matches, err := h.matchController.ListUpcoming(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	now := h.clock.Now()
	out := make([]response.UpcomingMatch, 0, len(matches))
	for _, m := range matches {
		entry := response.UpcomingMatch{
			Match:      response.MatchFromModel(m),
			CanPredict: m.AcceptsPredictionsAt(now),
		}

		pred, err := h.predictionService.GetForUserAndMatch(r.Context(), user.ID, m.ID)
		if err != nil && !errors.Is(err, model.ErrPredictionNotFound) {
			WriteError(w, err)
			return
		}
		if pred != nil {
			p := response.PredictionFromModel(pred)
			entry.UserPrediction = &p
		}

		out = append(out, entry)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/matches/{matchId}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	m, err := h.matchController.Get(r.Context(), matchID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Create handles POST /api/v1/matches (admin)
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.KickoffAt.IsZero() || req.Deadline.IsZero() {
		WriteError(w, NewInvalidRequestError("kickoff_at and deadline are required"))
		return
	}

	m, err := h.matchController.Create(r.Context(), req.Team, req.Opponent, req.IsHome, req.KickoffAt, req.Deadline)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// Edit handles PUT /api/v1/matches/{matchId} (admin)
func (h *MatchHandler) Edit(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	var req request.EditMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.KickoffAt.IsZero() || req.Deadline.IsZero() {
		WriteError(w, NewInvalidRequestError("kickoff_at and deadline are required"))
		return
	}

	m, err := h.matchController.Edit(r.Context(), matchID, req.KickoffAt, req.Deadline)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Result handles POST /api/v1/matches/{matchId}/result (admin). Recording a
// result closes the match and scores every prediction against it; posting a
// corrected result rescores them.
func (h *MatchHandler) Result(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	var req request.MatchResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.HomeGoals == nil || req.AwayGoals == nil {
		WriteError(w, NewInvalidRequestError("home_goals and away_goals are required"))
		return
	}

	m, err := h.matchController.Finish(r.Context(), matchID, *req.HomeGoals, *req.AwayGoals)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Delete handles DELETE /api/v1/matches/{matchId} (admin)
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	if err := h.matchController.Delete(r.Context(), matchID); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Predictions handles GET /api/v1/matches/{matchId}/predictions (admin).
// Returns every submitted prediction for the match plus the users still
// missing one.
func (h *MatchHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	view, err := h.predictionService.ForMatch(r.Context(), matchID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.MatchPredictionsFromService(view))
}
