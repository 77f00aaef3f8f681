package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Match errors
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchFinished = errors.New("match already finished")
	ErrMissingResult = errors.New("match has no result")
	ErrInvalidGoals  = errors.New("goals must be between 0 and 20")
	ErrMissingFields = errors.New("missing required fields")

	// Prediction errors
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrDeadlinePassed     = errors.New("prediction deadline has passed")
)
