package memory

import (
	"context"
	"sync"

	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	credentials   map[model.UserID]*model.Credentials
	usernameIndex map[string]model.UserID
	matches       map[model.MatchID]*model.Match
	predictions   map[predictionKey]*model.Prediction
}

type predictionKey struct {
	userID  model.UserID
	matchID model.MatchID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		credentials:   make(map[model.UserID]*model.Credentials),
		usernameIndex: make(map[string]model.UserID),
		matches:       make(map[model.MatchID]*model.Match),
		predictions:   make(map[predictionKey]*model.Prediction),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[creds.UserID] = creds
	return nil
}

func (s *Storage) GetCredentials(ctx context.Context, userID model.UserID) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds, ok := s.credentials[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return creds, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]*model.Match, 0, len(s.matches))
	for _, match := range s.matches {
		matches = append(matches, match)
	}
	return matches, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

// Prediction operations

func (s *Storage) SavePrediction(ctx context.Context, pred *model.Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := predictionKey{userID: pred.UserID, matchID: pred.MatchID}
	s.predictions[key] = pred
	return nil
}

func (s *Storage) GetPrediction(ctx context.Context, userID model.UserID, matchID model.MatchID) (*model.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := predictionKey{userID: userID, matchID: matchID}
	pred, ok := s.predictions[key]
	if !ok {
		return nil, model.ErrPredictionNotFound
	}
	return pred, nil
}

func (s *Storage) GetPredictionsForMatch(ctx context.Context, matchID model.MatchID) ([]*model.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var preds []*model.Prediction
	for key, pred := range s.predictions {
		if key.matchID == matchID {
			preds = append(preds, pred)
		}
	}
	return preds, nil
}

func (s *Storage) GetPredictionsForUser(ctx context.Context, userID model.UserID) ([]*model.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var preds []*model.Prediction
	for key, pred := range s.predictions {
		if key.userID == userID {
			preds = append(preds, pred)
		}
	}
	return preds, nil
}

func (s *Storage) DeletePredictionsForMatch(ctx context.Context, matchID model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.predictions {
		if key.matchID == matchID {
			delete(s.predictions, key)
		}
	}
	return nil
}
