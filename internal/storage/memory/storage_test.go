package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/garrastaldea/bolilla/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:          "user-1",
		Username:    "alice",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{
		ID:       "user-1",
		Username: "alice",
	}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsers() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "alice"}))
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{ID: "user-2", Username: "bob"}))

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)
}

// Credentials tests

func (s *StorageSuite) TestSaveAndGetCredentials() {
	creds := &model.Credentials{
		UserID:       "user-1",
		Username:     "alice",
		PasswordHash: "hashed",
	}

	err := s.storage.SaveCredentials(s.ctx, creds)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCredentials(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("hashed", retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetCredentialsNotFound() {
	_, err := s.storage.GetCredentials(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := &model.Match{
		ID:        "match-1",
		Team:      "Garras",
		Opponent:  "Rivals",
		IsHome:    true,
		KickoffAt: time.Date(2026, 9, 13, 17, 0, 0, 0, time.UTC),
		Deadline:  time.Date(2026, 9, 13, 16, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.Team, retrieved.Team)
	s.False(retrieved.Finished)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestListMatches() {
	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1"}))
	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-2"}))

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Len(matches, 2)
}

func (s *StorageSuite) TestDeleteMatch() {
	s.Require().NoError(s.storage.SaveMatch(s.ctx, &model.Match{ID: "match-1"}))

	err := s.storage.DeleteMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestDeleteMatchNotFound() {
	err := s.storage.DeleteMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Prediction tests

func (s *StorageSuite) TestSaveAndGetPrediction() {
	pred := &model.Prediction{
		ID:        "pred-1",
		UserID:    "user-1",
		MatchID:   "match-1",
		HomeGoals: 2,
		AwayGoals: 1,
	}

	err := s.storage.SavePrediction(s.ctx, pred)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPrediction(s.ctx, "user-1", "match-1")
	s.Require().NoError(err)
	s.Equal(2, retrieved.HomeGoals)
	s.Equal(1, retrieved.AwayGoals)
	s.Nil(retrieved.Points)
}

func (s *StorageSuite) TestGetPredictionNotFound() {
	_, err := s.storage.GetPrediction(s.ctx, "user-1", "match-1")
	s.ErrorIs(err, model.ErrPredictionNotFound)
}

func (s *StorageSuite) TestSavePredictionOverwritesSameUserAndMatch() {
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: "match-1", HomeGoals: 2, AwayGoals: 1,
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: "match-1", HomeGoals: 0, AwayGoals: 0,
	}))

	retrieved, err := s.storage.GetPrediction(s.ctx, "user-1", "match-1")
	s.Require().NoError(err)
	s.Equal(0, retrieved.HomeGoals)

	preds, err := s.storage.GetPredictionsForMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Len(preds, 1)
}

func (s *StorageSuite) TestGetPredictionsForMatch() {
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: "match-1",
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-2", UserID: "user-2", MatchID: "match-1",
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-3", UserID: "user-1", MatchID: "match-2",
	}))

	preds, err := s.storage.GetPredictionsForMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Len(preds, 2)
}

func (s *StorageSuite) TestGetPredictionsForUser() {
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: "match-1",
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-2", UserID: "user-1", MatchID: "match-2",
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-3", UserID: "user-2", MatchID: "match-1",
	}))

	preds, err := s.storage.GetPredictionsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(preds, 2)
}

func (s *StorageSuite) TestDeletePredictionsForMatch() {
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: "match-1",
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-2", UserID: "user-1", MatchID: "match-2",
	}))

	err := s.storage.DeletePredictionsForMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPrediction(s.ctx, "user-1", "match-1")
	s.ErrorIs(err, model.ErrPredictionNotFound)

	// Other matches untouched
	preds, err := s.storage.GetPredictionsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(preds, 1)
}
