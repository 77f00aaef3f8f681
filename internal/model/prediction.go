package model

import "time"

// PredictionID uniquely identifies a prediction row
type PredictionID string

// Goal count bounds accepted for predictions and results
const (
	MinGoals = 0
	MaxGoals = 20
)

// Prediction is a user's guessed scoreline for one match.
// At most one exists per (user, match); resubmission before the deadline
// overwrites the goals in place. Points stays nil until the match finishes.
type Prediction struct {
	ID        PredictionID
	UserID    UserID
	MatchID   MatchID
	HomeGoals int
	AwayGoals int
	Points    *int
	CreatedAt time.Time
}

// ValidGoals reports whether a goal count is within the accepted range
func ValidGoals(goals int) bool {
	return goals >= MinGoals && goals <= MaxGoals
}
