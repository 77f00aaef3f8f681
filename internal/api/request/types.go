package request

import "time"

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the request body for changing the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateMatchRequest is the request body for creating a match
type CreateMatchRequest struct {
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	IsHome    bool      `json:"is_home"`
	KickoffAt time.Time `json:"kickoff_at"`
	Deadline  time.Time `json:"deadline"`
}

// EditMatchRequest is the request body for editing a match's schedule
type EditMatchRequest struct {
	KickoffAt time.Time `json:"kickoff_at"`
	Deadline  time.Time `json:"deadline"`
}

// MatchResultRequest is the request body for recording a match result
type MatchResultRequest struct {
	HomeGoals *int `json:"home_goals"`
	AwayGoals *int `json:"away_goals"`
}

// SubmitPredictionRequest is the request body for submitting a prediction
type SubmitPredictionRequest struct {
	MatchID   string `json:"match_id"`
	HomeGoals *int   `json:"home_goals"`
	AwayGoals *int   `json:"away_goals"`
}
