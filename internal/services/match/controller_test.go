package match

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/garrastaldea/bolilla/internal/dependencies/mocks"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/storage/memory"
	"github.com/garrastaldea/bolilla/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) createMatch(kickoff time.Time) *model.Match {
	match, err := s.controller.Create(s.ctx, "Garras", "Rivals", true, kickoff, kickoff.Add(-time.Hour))
	s.Require().NoError(err)
	return match
}

// Create tests

func (s *ControllerSuite) TestCreateSucceeds() {
	kickoff := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)
	deadline := kickoff.Add(-time.Hour)

	match, err := s.controller.Create(s.ctx, "Garras", "Rivals", true, kickoff, deadline)
	s.Require().NoError(err)

	s.NotEmpty(match.ID)
	s.Equal("Garras", match.Team)
	s.Equal("Rivals", match.Opponent)
	s.True(match.IsHome)
	s.False(match.Finished)
	s.Nil(match.HomeGoals)
	s.Nil(match.AwayGoals)
}

func (s *ControllerSuite) TestCreatePersistsMatch() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	retrieved, err := s.storage.GetMatch(s.ctx, match.ID)
	s.Require().NoError(err)
	s.Equal(match.Team, retrieved.Team)
}

func (s *ControllerSuite) TestCreateFailsOnMissingFields() {
	kickoff := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)

	_, err := s.controller.Create(s.ctx, "", "Rivals", true, kickoff, kickoff)
	s.ErrorIs(err, model.ErrMissingFields)

	_, err = s.controller.Create(s.ctx, "Garras", "Rivals", true, time.Time{}, kickoff)
	s.ErrorIs(err, model.ErrMissingFields)
}

func (s *ControllerSuite) TestCreateAllowsDeadlineAfterKickoff() {
	kickoff := time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC)

	// Deadline ordering is deliberately not enforced
	match, err := s.controller.Create(s.ctx, "Garras", "Rivals", true, kickoff, kickoff.Add(time.Hour))
	s.Require().NoError(err)
	s.True(match.Deadline.After(match.KickoffAt))
}

// List tests

func (s *ControllerSuite) TestListOrdersByKickoffDescending() {
	early := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))
	late := s.createMatch(time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))

	matches, err := s.controller.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(late.ID, matches[0].ID)
	s.Equal(early.ID, matches[1].ID)
}

func (s *ControllerSuite) TestListUpcomingExcludesFinished() {
	finished := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))
	upcoming := s.createMatch(time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))

	_, err := s.controller.Finish(s.ctx, finished.ID, 2, 1)
	s.Require().NoError(err)

	matches, err := s.controller.ListUpcoming(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal(upcoming.ID, matches[0].ID)
}

func (s *ControllerSuite) TestListUpcomingOrdersByKickoffAscending() {
	late := s.createMatch(time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))
	early := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	matches, err := s.controller.ListUpcoming(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(early.ID, matches[0].ID)
	s.Equal(late.ID, matches[1].ID)
}

// Edit tests

func (s *ControllerSuite) TestEditReschedules() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	newKickoff := time.Date(2024, 2, 2, 19, 0, 0, 0, time.UTC)
	newDeadline := newKickoff.Add(-2 * time.Hour)

	edited, err := s.controller.Edit(s.ctx, match.ID, newKickoff, newDeadline)
	s.Require().NoError(err)
	s.True(edited.KickoffAt.Equal(newKickoff))
	s.True(edited.Deadline.Equal(newDeadline))
}

func (s *ControllerSuite) TestEditFailsWhenFinished() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))
	_, err := s.controller.Finish(s.ctx, match.ID, 1, 0)
	s.Require().NoError(err)

	_, err = s.controller.Edit(s.ctx, match.ID, time.Now(), time.Now())
	s.ErrorIs(err, model.ErrMatchFinished)
}

func (s *ControllerSuite) TestEditFailsWhenNotFound() {
	_, err := s.controller.Edit(s.ctx, "nonexistent", time.Now(), time.Now())
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Finish tests

func (s *ControllerSuite) TestFinishRecordsResult() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	finished, err := s.controller.Finish(s.ctx, match.ID, 3, 1)
	s.Require().NoError(err)

	s.True(finished.Finished)
	s.Require().NotNil(finished.HomeGoals)
	s.Require().NotNil(finished.AwayGoals)
	s.Equal(3, *finished.HomeGoals)
	s.Equal(1, *finished.AwayGoals)
}

func (s *ControllerSuite) TestFinishScoresPredictions() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-exact", UserID: "user-1", MatchID: match.ID, HomeGoals: 2, AwayGoals: 1,
	}))
	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-miss", UserID: "user-2", MatchID: match.ID, HomeGoals: 0, AwayGoals: 3,
	}))

	_, err := s.controller.Finish(s.ctx, match.ID, 2, 1)
	s.Require().NoError(err)

	exact, err := s.storage.GetPrediction(s.ctx, "user-1", match.ID)
	s.Require().NoError(err)
	s.Require().NotNil(exact.Points)
	s.Equal(5, *exact.Points)

	miss, err := s.storage.GetPrediction(s.ctx, "user-2", match.ID)
	s.Require().NoError(err)
	s.Require().NotNil(miss.Points)
	s.Equal(0, *miss.Points)
}

func (s *ControllerSuite) TestFinishDoesNotScoreOtherMatches() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))
	other := s.createMatch(time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC))

	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-other", UserID: "user-1", MatchID: other.ID, HomeGoals: 2, AwayGoals: 1,
	}))

	_, err := s.controller.Finish(s.ctx, match.ID, 2, 1)
	s.Require().NoError(err)

	pred, err := s.storage.GetPrediction(s.ctx, "user-1", other.ID)
	s.Require().NoError(err)
	s.Nil(pred.Points)
}

func (s *ControllerSuite) TestFinishIsReentrant() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: match.ID, HomeGoals: 2, AwayGoals: 1,
	}))

	_, err := s.controller.Finish(s.ctx, match.ID, 0, 0)
	s.Require().NoError(err)

	pred, _ := s.storage.GetPrediction(s.ctx, "user-1", match.ID)
	s.Require().NotNil(pred.Points)
	s.Equal(0, *pred.Points)

	// Correct the result; points recomputed from scratch
	_, err = s.controller.Finish(s.ctx, match.ID, 2, 1)
	s.Require().NoError(err)

	pred, _ = s.storage.GetPrediction(s.ctx, "user-1", match.ID)
	s.Require().NotNil(pred.Points)
	s.Equal(5, *pred.Points)
}

func (s *ControllerSuite) TestFinishFailsOnInvalidGoals() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	_, err := s.controller.Finish(s.ctx, match.ID, -1, 0)
	s.ErrorIs(err, model.ErrInvalidGoals)

	_, err = s.controller.Finish(s.ctx, match.ID, 0, 21)
	s.ErrorIs(err, model.ErrInvalidGoals)
}

func (s *ControllerSuite) TestFinishFailsWhenNotFound() {
	_, err := s.controller.Finish(s.ctx, "nonexistent", 1, 0)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Delete tests

func (s *ControllerSuite) TestDeleteRemovesMatchAndPredictions() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))

	s.Require().NoError(s.storage.SavePrediction(s.ctx, &model.Prediction{
		ID: "pred-1", UserID: "user-1", MatchID: match.ID, HomeGoals: 2, AwayGoals: 1,
	}))

	err := s.controller.Delete(s.ctx, match.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, match.ID)
	s.ErrorIs(err, model.ErrMatchNotFound)

	_, err = s.storage.GetPrediction(s.ctx, "user-1", match.ID)
	s.ErrorIs(err, model.ErrPredictionNotFound)
}

func (s *ControllerSuite) TestDeleteFinishedMatch() {
	match := s.createMatch(time.Date(2024, 2, 1, 17, 0, 0, 0, time.UTC))
	_, err := s.controller.Finish(s.ctx, match.ID, 1, 0)
	s.Require().NoError(err)

	err = s.controller.Delete(s.ctx, match.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, match.ID)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *ControllerSuite) TestDeleteFailsWhenNotFound() {
	err := s.controller.Delete(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}
