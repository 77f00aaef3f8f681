package storage

import (
	"context"

	"github.com/garrastaldea/bolilla/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Credential operations
	SaveCredentials(ctx context.Context, creds *model.Credentials) error
	GetCredentials(ctx context.Context, userID model.UserID) (*model.Credentials, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	ListMatches(ctx context.Context) ([]*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error

	// Prediction operations
	// SavePrediction upserts on (user, match): saving an existing pair
	// replaces the stored row rather than adding a new one.
	SavePrediction(ctx context.Context, pred *model.Prediction) error
	GetPrediction(ctx context.Context, userID model.UserID, matchID model.MatchID) (*model.Prediction, error)
	GetPredictionsForMatch(ctx context.Context, matchID model.MatchID) ([]*model.Prediction, error)
	GetPredictionsForUser(ctx context.Context, userID model.UserID) ([]*model.Prediction, error)
	DeletePredictionsForMatch(ctx context.Context, matchID model.MatchID) error
}
