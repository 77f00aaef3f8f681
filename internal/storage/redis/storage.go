package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Pool data is durable: no TTLs are applied to any entity.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := userKey(user.ID)

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	pipe.SAdd(ctx, usersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	userIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userIDStr))
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	userKeys, err := s.client.SMembers(ctx, usersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(userKeys) == 0 {
		return []*model.User{}, nil
	}

	values, err := s.client.MGet(ctx, userKeys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue // Skip invalid data
		}
		users = append(users, &user)
	}

	return users, nil
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, credentialsKey(creds.UserID), data, 0).Err()
}

func (s *Storage) GetCredentials(ctx context.Context, userID model.UserID) (*model.Credentials, error) {
	data, err := s.client.Get(ctx, credentialsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	key := matchKey(match.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, matchesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	matchKeys, err := s.client.SMembers(ctx, matchesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(matchKeys) == 0 {
		return []*model.Match{}, nil
	}

	values, err := s.client.MGet(ctx, matchKeys...).Result()
	if err != nil {
		return nil, err
	}

	matches := make([]*model.Match, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var match model.Match
		if err := json.Unmarshal([]byte(val.(string)), &match); err != nil {
			continue // Skip invalid data
		}
		matches = append(matches, &match)
	}

	return matches, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	key := matchKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, matchesIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Prediction operations

func (s *Storage) SavePrediction(ctx context.Context, pred *model.Prediction) error {
	data, err := json.Marshal(pred)
	if err != nil {
		return err
	}

	pKey := predictionKey(pred.UserID, pred.MatchID)

	// The key is derived from (user, match), so saving an existing pair
	// overwrites the stored row: this is the upsert the submit path relies on.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, pKey, data, 0)
	pipe.SAdd(ctx, predictionsForMatchIndexKey(pred.MatchID), pKey)
	pipe.SAdd(ctx, predictionsForUserIndexKey(pred.UserID), pKey)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPrediction(ctx context.Context, userID model.UserID, matchID model.MatchID) (*model.Prediction, error) {
	data, err := s.client.Get(ctx, predictionKey(userID, matchID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPredictionNotFound
		}
		return nil, err
	}

	var pred model.Prediction
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil, err
	}
	return &pred, nil
}

func (s *Storage) GetPredictionsForMatch(ctx context.Context, matchID model.MatchID) ([]*model.Prediction, error) {
	return s.predictionsByIndex(ctx, predictionsForMatchIndexKey(matchID))
}

func (s *Storage) GetPredictionsForUser(ctx context.Context, userID model.UserID) ([]*model.Prediction, error) {
	return s.predictionsByIndex(ctx, predictionsForUserIndexKey(userID))
}

func (s *Storage) predictionsByIndex(ctx context.Context, indexKey string) ([]*model.Prediction, error) {
	predKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(predKeys) == 0 {
		return []*model.Prediction{}, nil
	}

	values, err := s.client.MGet(ctx, predKeys...).Result()
	if err != nil {
		return nil, err
	}

	preds := make([]*model.Prediction, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var pred model.Prediction
		if err := json.Unmarshal([]byte(val.(string)), &pred); err != nil {
			continue // Skip invalid data
		}
		preds = append(preds, &pred)
	}

	return preds, nil
}

func (s *Storage) DeletePredictionsForMatch(ctx context.Context, matchID model.MatchID) error {
	// Fetch first so the per-user index sets can be cleaned too
	preds, err := s.GetPredictionsForMatch(ctx, matchID)
	if err != nil {
		return err
	}

	indexKey := predictionsForMatchIndexKey(matchID)

	pipe := s.client.Pipeline()
	for _, pred := range preds {
		pKey := predictionKey(pred.UserID, pred.MatchID)
		pipe.Del(ctx, pKey)
		pipe.SRem(ctx, predictionsForUserIndexKey(pred.UserID), pKey)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}
