package response

import (
	"time"

	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/services/auth"
	"github.com/garrastaldea/bolilla/internal/services/leaderboard"
	"github.com/garrastaldea/bolilla/internal/services/prediction"
)

// User represents a user in API responses
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:          string(u.ID),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Match represents a match in API responses
type Match struct {
	ID        string    `json:"id"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	IsHome    bool      `json:"is_home"`
	KickoffAt time.Time `json:"kickoff_at"`
	Deadline  time.Time `json:"deadline"`
	HomeGoals *int      `json:"home_goals"`
	AwayGoals *int      `json:"away_goals"`
	Finished  bool      `json:"is_finished"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchFromModel converts a model.Match to a response Match
func MatchFromModel(m *model.Match) Match {
	return Match{
		ID:        string(m.ID),
		Team:      m.Team,
		Opponent:  m.Opponent,
		IsHome:    m.IsHome,
		KickoffAt: m.KickoffAt,
		Deadline:  m.Deadline,
		HomeGoals: m.HomeGoals,
		AwayGoals: m.AwayGoals,
		Finished:  m.Finished,
		CreatedAt: m.CreatedAt,
	}
}

// Prediction represents a prediction in API responses
type Prediction struct {
	ID        string `json:"id"`
	MatchID   string `json:"match_id"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
	Points    *int   `json:"points"`
}

// PredictionFromModel converts a model.Prediction to a response Prediction
func PredictionFromModel(p *model.Prediction) Prediction {
	return Prediction{
		ID:        string(p.ID),
		MatchID:   string(p.MatchID),
		HomeGoals: p.HomeGoals,
		AwayGoals: p.AwayGoals,
		Points:    p.Points,
	}
}

// UpcomingMatch is a match with the caller's own prediction attached
type UpcomingMatch struct {
	Match
	UserPrediction *Prediction `json:"user_prediction"`
	CanPredict     bool        `json:"can_predict"`
}

// HistoryEntry is one row of a user's prediction history
type HistoryEntry struct {
	Prediction
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	IsHome    bool      `json:"is_home"`
	KickoffAt time.Time `json:"kickoff_at"`
	RealHome  *int      `json:"real_home"`
	RealAway  *int      `json:"real_away"`
	Finished  bool      `json:"is_finished"`
}

// HistoryEntryFromService converts a joined history entry
func HistoryEntryFromService(e prediction.HistoryEntry) HistoryEntry {
	return HistoryEntry{
		Prediction: PredictionFromModel(e.Prediction),
		Team:       e.Match.Team,
		Opponent:   e.Match.Opponent,
		IsHome:     e.Match.IsHome,
		KickoffAt:  e.Match.KickoffAt,
		RealHome:   e.Match.HomeGoals,
		RealAway:   e.Match.AwayGoals,
		Finished:   e.Match.Finished,
	}
}

// MatchPrediction is a prediction with its owner, for the admin view
type MatchPrediction struct {
	Prediction
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// MissingUser is a user who has not submitted a prediction for a match
type MissingUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// MatchPredictions is the admin view of a match's predictions
type MatchPredictions struct {
	Predictions []MatchPrediction `json:"predictions"`
	Missing     []MissingUser     `json:"missing"`
}

// MatchPredictionsFromService converts the service-level match view
func MatchPredictionsFromService(v *prediction.MatchView) MatchPredictions {
	out := MatchPredictions{
		Predictions: make([]MatchPrediction, 0, len(v.Entries)),
		Missing:     make([]MissingUser, 0, len(v.Missing)),
	}
	for _, e := range v.Entries {
		out.Predictions = append(out.Predictions, MatchPrediction{
			Prediction:  PredictionFromModel(e.Prediction),
			UserID:      string(e.User.ID),
			DisplayName: e.User.DisplayName,
		})
	}
	for _, u := range v.Missing {
		out.Missing = append(out.Missing, MissingUser{
			ID:          string(u.ID),
			DisplayName: u.DisplayName,
		})
	}
	return out
}

// Standing is one leaderboard row
type Standing struct {
	UserID           string `json:"user_id"`
	DisplayName      string `json:"display_name"`
	TotalPoints      int    `json:"total_points"`
	ExactPredictions int    `json:"exact_predictions"`
	TotalPredictions int    `json:"total_predictions"`
}

// StandingFromService converts a leaderboard row
func StandingFromService(s leaderboard.Standing) Standing {
	return Standing{
		UserID:           string(s.User.ID),
		DisplayName:      s.User.DisplayName,
		TotalPoints:      s.TotalPoints,
		ExactPredictions: s.ExactCount,
		TotalPredictions: s.ScoredCount,
	}
}

// AdminUser is one row of the admin user listing
type AdminUser struct {
	User
	TotalPoints      int `json:"total_points"`
	ExactPredictions int `json:"exact_predictions"`
}

// ResetPasswordResponse reports the password a user was reset to
type ResetPasswordResponse struct {
	NewPassword string `json:"new_password"`
}
