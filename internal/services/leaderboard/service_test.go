package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, Config{})
	s.ctx = context.Background()
}

func (s *ServiceSuite) addUser(id model.UserID, name string, isAdmin bool) {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
		ID:          id,
		Username:    string(id),
		DisplayName: name,
		IsAdmin:     isAdmin,
	}))
}

func (s *ServiceSuite) addScoredPrediction(id model.PredictionID, userID model.UserID, matchID model.MatchID, points int) {
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID:      id,
		UserID:  userID,
		MatchID: matchID,
		Points:  &points,
	}))
}

func (s *ServiceSuite) TestStandingsSumPoints() {
	s.addUser("user-1", "Alice", false)
	s.addScoredPrediction("pred-1", "user-1", "match-1", 5)
	s.addScoredPrediction("pred-2", "user-1", "match-2", 3)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 1)
	s.Equal(8, standings[0].TotalPoints)
	s.Equal(1, standings[0].ExactCount)
	s.Equal(2, standings[0].ScoredCount)
}

func (s *ServiceSuite) TestStandingsIgnoreUnscoredPredictions() {
	s.addUser("user-1", "Alice", false)
	s.addScoredPrediction("pred-1", "user-1", "match-1", 5)
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-2", UserID: "user-1", MatchID: "match-2",
	}))

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 1)
	s.Equal(5, standings[0].TotalPoints)
	s.Equal(1, standings[0].ScoredCount)
}

func (s *ServiceSuite) TestStandingsIncludeUsersWithNothingScored() {
	s.addUser("user-1", "Alice", false)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 1)
	s.Equal(0, standings[0].TotalPoints)
	s.Equal(0, standings[0].ScoredCount)
}

func (s *ServiceSuite) TestStandingsOrderByPointsDescending() {
	s.addUser("user-1", "Alice", false)
	s.addUser("user-2", "Bob", false)
	s.addScoredPrediction("pred-1", "user-1", "match-1", 1)
	s.addScoredPrediction("pred-2", "user-2", "match-1", 3)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.Equal("Bob", standings[0].User.DisplayName)
	s.Equal("Alice", standings[1].User.DisplayName)
}

func (s *ServiceSuite) TestStandingsBreakTiesByExactCount() {
	s.addUser("user-1", "Alice", false)
	s.addUser("user-2", "Bob", false)

	// Both on 5 points, but Bob's came from an exact hit
	s.addScoredPrediction("pred-1", "user-1", "match-1", 3)
	s.addScoredPrediction("pred-2", "user-1", "match-2", 2)
	s.addScoredPrediction("pred-3", "user-2", "match-1", 5)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.Equal("Bob", standings[0].User.DisplayName)
}

func (s *ServiceSuite) TestStandingsFullTieKeepsDisplayNameOrder() {
	s.addUser("user-2", "Zoe", false)
	s.addUser("user-1", "Alice", false)
	s.addScoredPrediction("pred-1", "user-1", "match-1", 3)
	s.addScoredPrediction("pred-2", "user-2", "match-1", 3)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.Equal("Alice", standings[0].User.DisplayName)
	s.Equal("Zoe", standings[1].User.DisplayName)
}

func (s *ServiceSuite) TestStandingsExcludeAdminsByDefault() {
	s.addUser("user-1", "Alice", false)
	s.addUser("user-2", "Boss", true)
	s.addScoredPrediction("pred-1", "user-2", "match-1", 5)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 1)
	s.Equal("Alice", standings[0].User.DisplayName)
}

func (s *ServiceSuite) TestStandingsIncludeAdminsWhenConfigured() {
	s.service = New(s.storage, Config{IncludeAdmins: true})
	s.addUser("user-1", "Alice", false)
	s.addUser("user-2", "Boss", true)

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Len(standings, 2)
}

func (s *ServiceSuite) TestStandingsReflectDeletedMatchImmediately() {
	s.addUser("user-1", "Alice", false)
	s.addScoredPrediction("pred-1", "user-1", "match-1", 5)
	s.addScoredPrediction("pred-2", "user-1", "match-2", 3)

	s.Require().NoError(s.storage.DeletePredictionsForMatch(s.ctx, "match-1"))

	standings, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(standings, 1)
	s.Equal(3, standings[0].TotalPoints)
	s.Equal(0, standings[0].ExactCount)
}

func (s *ServiceSuite) TestAllUsersIncludesAdminsOrderedByDisplayName() {
	s.addUser("user-1", "Zoe", false)
	s.addUser("user-2", "Boss", true)
	s.addUser("user-3", "Alice", false)
	s.addScoredPrediction("pred-1", "user-1", "match-1", 5)

	rows, err := s.service.AllUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("Alice", rows[0].User.DisplayName)
	s.Equal("Boss", rows[1].User.DisplayName)
	s.Equal("Zoe", rows[2].User.DisplayName)
	s.Equal(5, rows[2].TotalPoints)
}
