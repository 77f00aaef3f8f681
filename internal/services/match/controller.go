package match

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/garrastaldea/bolilla/internal/dependencies/clock"
	"github.com/garrastaldea/bolilla/internal/dependencies/random"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/services/scoring"
	"github.com/garrastaldea/bolilla/internal/storage"
)

// Alphabet used for generated match IDs
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages the match lifecycle and result-driven scoring
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create registers a new fixture. The deadline is stored as given: no
// ordering against the kickoff time is enforced.
func (c *Controller) Create(ctx context.Context, team, opponent string, isHome bool, kickoffAt, deadline time.Time) (*model.Match, error) {
	if team == "" || opponent == "" || kickoffAt.IsZero() || deadline.IsZero() {
		return nil, model.ErrMissingFields
	}

	match := &model.Match{
		ID:        model.MatchID(c.random.String(12, idAlphabet)),
		Team:      team,
		Opponent:  opponent,
		IsHome:    isHome,
		KickoffAt: kickoffAt,
		Deadline:  deadline,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(match.ID)),
		slog.String("team", team),
		slog.String("opponent", opponent),
		slog.Time("kickoff_at", kickoffAt),
		slog.Time("deadline", deadline),
	)

	return match, nil
}

// Get retrieves a match by ID
func (c *Controller) Get(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// List returns all matches, most recent kickoff first
func (c *Controller) List(ctx context.Context) ([]*model.Match, error) {
	matches, err := c.storage.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].KickoffAt.After(matches[j].KickoffAt)
	})

	return matches, nil
}

// ListUpcoming returns unfinished matches, earliest kickoff first
func (c *Controller) ListUpcoming(ctx context.Context) ([]*model.Match, error) {
	matches, err := c.storage.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := make([]*model.Match, 0, len(matches))
	for _, m := range matches {
		if !m.Finished {
			upcoming = append(upcoming, m)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].KickoffAt.Before(upcoming[j].KickoffAt)
	})

	return upcoming, nil
}

// Edit updates a match's kickoff time and deadline. Only unfinished matches
// may be edited.
func (c *Controller) Edit(ctx context.Context, id model.MatchID, kickoffAt, deadline time.Time) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if match.Finished {
		return nil, model.ErrMatchFinished
	}

	if kickoffAt.IsZero() || deadline.IsZero() {
		return nil, model.ErrMissingFields
	}

	match.KickoffAt = kickoffAt
	match.Deadline = deadline

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match edited",
		slog.String("match_id", string(id)),
		slog.Time("kickoff_at", kickoffAt),
		slog.Time("deadline", deadline),
	)

	return match, nil
}

// Finish records the final result and scores every prediction for the match.
// It is re-entrant: calling it again overwrites the result and recomputes all
// points from scratch, so correcting a result is safe.
func (c *Controller) Finish(ctx context.Context, id model.MatchID, homeGoals, awayGoals int) (*model.Match, error) {
	if !model.ValidGoals(homeGoals) || !model.ValidGoals(awayGoals) {
		return nil, model.ErrInvalidGoals
	}

	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	match.HomeGoals = &homeGoals
	match.AwayGoals = &awayGoals
	match.Finished = true

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	if err := c.recomputePoints(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match finished",
		slog.String("match_id", string(id)),
		slog.Int("home_goals", homeGoals),
		slog.Int("away_goals", awayGoals),
	)

	return match, nil
}

// recomputePoints rescores every prediction for the match. Rows are updated
// one at a time; an error mid-batch leaves earlier rows updated, but a retry
// of Finish recomputes everything so no row is left permanently stale.
func (c *Controller) recomputePoints(ctx context.Context, match *model.Match) error {
	if match.HomeGoals == nil || match.AwayGoals == nil {
		return model.ErrMissingResult
	}

	preds, err := c.storage.GetPredictionsForMatch(ctx, match.ID)
	if err != nil {
		return err
	}

	for _, pred := range preds {
		points := scoring.Score(pred.HomeGoals, pred.AwayGoals, *match.HomeGoals, *match.AwayGoals)
		pred.Points = &points
		if err := c.storage.SavePrediction(ctx, pred); err != nil {
			return err
		}
	}

	c.logger.Info("points recomputed",
		slog.String("match_id", string(match.ID)),
		slog.Int("prediction_count", len(preds)),
	)

	return nil
}

// Delete removes a match in any state. All predictions referencing the match
// are deleted first so no orphans remain.
func (c *Controller) Delete(ctx context.Context, id model.MatchID) error {
	if _, err := c.storage.GetMatch(ctx, id); err != nil {
		return err
	}

	if err := c.storage.DeletePredictionsForMatch(ctx, id); err != nil {
		return err
	}

	if err := c.storage.DeleteMatch(ctx, id); err != nil {
		return err
	}

	c.logger.Info("match deleted", slog.String("match_id", string(id)))
	return nil
}
