package leaderboard

import (
	"context"
	"sort"

	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/services/scoring"
	"github.com/garrastaldea/bolilla/internal/storage"
)

// Standing is one user's row in the leaderboard
type Standing struct {
	User        *model.User
	TotalPoints int
	ExactCount  int
	ScoredCount int
}

// Config holds leaderboard policy settings
type Config struct {
	// IncludeAdmins controls whether admin users appear in standings.
	// The pool historically hides them.
	IncludeAdmins bool
}

// Service computes ranked standings from scored predictions
type Service struct {
	storage storage.Storage
	cfg     Config
}

// New creates a new leaderboard Service
func New(storage storage.Storage, cfg Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// Standings recomputes the full leaderboard from scratch. Every eligible
// user appears, including those with nothing scored yet. Ordering is total
// points descending, then exact predictions descending; beyond that the
// order is stable but otherwise unspecified.
func (s *Service) Standings(ctx context.Context) ([]Standing, error) {
	standings, err := s.collect(ctx, s.cfg.IncludeAdmins)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].ExactCount > standings[j].ExactCount
	})

	return standings, nil
}

// AllUsers returns a row per registered user, admins included, ordered by
// display name rather than rank. Used for the admin user listing.
func (s *Service) AllUsers(ctx context.Context) ([]Standing, error) {
	return s.collect(ctx, true)
}

func (s *Service) collect(ctx context.Context, includeAdmins bool) ([]Standing, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].DisplayName < users[j].DisplayName
	})

	standings := make([]Standing, 0, len(users))
	for _, user := range users {
		if user.IsAdmin && !includeAdmins {
			continue
		}

		preds, err := s.storage.GetPredictionsForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		row := Standing{User: user}
		for _, pred := range preds {
			if pred.Points == nil {
				continue
			}
			row.TotalPoints += *pred.Points
			row.ScoredCount++
			if *pred.Points == scoring.PointsExact {
				row.ExactCount++
			}
		}

		standings = append(standings, row)
	}

	return standings, nil
}
