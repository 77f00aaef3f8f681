package prediction

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/garrastaldea/bolilla/internal/dependencies/clock"
	"github.com/garrastaldea/bolilla/internal/dependencies/random"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service handles prediction submission and reads
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new prediction Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Submit records a user's prediction for a match. Resubmitting before the
// deadline overwrites the previous guess in place: same row, same identity.
// Points are never touched here; only a match finish writes them.
func (s *Service) Submit(ctx context.Context, userID model.UserID, matchID model.MatchID, homeGoals, awayGoals int) (*model.Prediction, error) {
	if !model.ValidGoals(homeGoals) || !model.ValidGoals(awayGoals) {
		return nil, model.ErrInvalidGoals
	}

	match, err := s.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.Finished {
		return nil, model.ErrMatchFinished
	}

	now := s.clock.Now()
	if now.After(match.Deadline) {
		return nil, model.ErrDeadlinePassed
	}

	pred, err := s.storage.GetPrediction(ctx, userID, matchID)
	switch {
	case err == nil:
		// Overwrite the existing guess, keeping identity and creation time
		pred.HomeGoals = homeGoals
		pred.AwayGoals = awayGoals
	case errors.Is(err, model.ErrPredictionNotFound):
		pred = &model.Prediction{
			ID:        model.PredictionID(s.random.String(16, idAlphabet)),
			UserID:    userID,
			MatchID:   matchID,
			HomeGoals: homeGoals,
			AwayGoals: awayGoals,
			CreatedAt: now,
		}
	default:
		return nil, err
	}

	if err := s.storage.SavePrediction(ctx, pred); err != nil {
		s.logger.Error("failed to save prediction",
			slog.String("user_id", string(userID)),
			slog.String("match_id", string(matchID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("prediction saved",
		slog.String("user_id", string(userID)),
		slog.String("match_id", string(matchID)),
		slog.Int("home_goals", homeGoals),
		slog.Int("away_goals", awayGoals),
	)

	return pred, nil
}

// GetForUserAndMatch returns the user's prediction for a match, if any
func (s *Service) GetForUserAndMatch(ctx context.Context, userID model.UserID, matchID model.MatchID) (*model.Prediction, error) {
	return s.storage.GetPrediction(ctx, userID, matchID)
}

// HistoryEntry is a prediction joined with its match
type HistoryEntry struct {
	Prediction *model.Prediction
	Match      *model.Match
}

// HistoryForUser returns the user's predictions with their matches attached,
// most recent kickoff first. Predictions whose match has been deleted out
// from under them are skipped.
func (s *Service) HistoryForUser(ctx context.Context, userID model.UserID) ([]HistoryEntry, error) {
	preds, err := s.storage.GetPredictionsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(preds))
	for _, pred := range preds {
		match, err := s.storage.GetMatch(ctx, pred.MatchID)
		if err != nil {
			if errors.Is(err, model.ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		entries = append(entries, HistoryEntry{Prediction: pred, Match: match})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Match.KickoffAt.After(entries[j].Match.KickoffAt)
	})

	return entries, nil
}

// MatchEntry is a prediction joined with its owner, for the admin view
type MatchEntry struct {
	Prediction *model.Prediction
	User       *model.User
}

// MatchView lists a match's predictions with their owners, plus the
// non-admin users who have not submitted one
type MatchView struct {
	Entries []MatchEntry
	Missing []*model.User
}

// ForMatch returns the admin view of a match's predictions
func (s *Service) ForMatch(ctx context.Context, matchID model.MatchID) (*MatchView, error) {
	if _, err := s.storage.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}

	preds, err := s.storage.GetPredictionsForMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	submitted := make(map[model.UserID]bool, len(preds))
	entries := make([]MatchEntry, 0, len(preds))
	for _, pred := range preds {
		user, err := s.storage.GetUser(ctx, pred.UserID)
		if err != nil {
			if errors.Is(err, model.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		submitted[pred.UserID] = true
		entries = append(entries, MatchEntry{Prediction: pred, User: user})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].User.DisplayName < entries[j].User.DisplayName
	})

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	var missing []*model.User
	for _, user := range users {
		if !user.IsAdmin && !submitted[user.ID] {
			missing = append(missing, user)
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].DisplayName < missing[j].DisplayName
	})

	return &MatchView{Entries: entries, Missing: missing}, nil
}
