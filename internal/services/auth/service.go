package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/garrastaldea/bolilla/internal/dependencies/clock"
	"github.com/garrastaldea/bolilla/internal/model"
	"github.com/garrastaldea/bolilla/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUsernameExists     = errors.New("username already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 4

// Session represents an authenticated session
type Session struct {
	Token     string
	UserID    model.UserID
	User      model.User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration

	// AdminUsernames seeds the admin flag at registration time only.
	// The persisted IsAdmin flag is the single source of truth afterwards.
	AdminUsernames []string
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// Service handles registration, authentication and session management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
	adminUsernames  map[string]bool
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}

	admins := make(map[string]bool, len(cfg.AdminUsernames))
	for _, name := range cfg.AdminUsernames {
		admins[strings.ToLower(name)] = true
	}

	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
		adminUsernames:  admins,
	}
}

// Register creates a user account and session. The admin flag is seeded from
// the configured allowlist; it is never re-derived at request time.
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*Session, error) {
	if username == "" || password == "" || displayName == "" {
		return nil, model.ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := model.UserID(generateID("u_"))
	now := s.clock.Now()

	user := &model.User{
		ID:          userID,
		Username:    username,
		DisplayName: displayName,
		IsAdmin:     s.adminUsernames[strings.ToLower(username)],
		CreatedAt:   now,
	}

	creds := &model.Credentials{
		UserID:       userID,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.storage.SaveCredentials(ctx, creds); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", string(userID)),
		slog.String("username", username),
		slog.Bool("is_admin", user.IsAdmin),
	)

	return s.createSession(user), nil
}

// Login authenticates a user and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	creds, err := s.storage.GetCredentials(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(user), nil
}

// ChangePassword updates a user's password after verifying the current one
func (s *Service) ChangePassword(ctx context.Context, userID model.UserID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return model.ErrMissingFields
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	creds, err := s.storage.GetCredentials(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	creds.PasswordHash = string(hash)
	creds.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveCredentials(ctx, creds); err != nil {
		return err
	}

	s.logger.Info("password changed", slog.String("user_id", string(userID)))
	return nil
}

// ResetPassword resets a user's password to a normalized form of their
// username and returns the new password. Admin-gated at the API layer.
func (s *Service) ResetPassword(ctx context.Context, userID model.UserID) (string, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}

	creds, err := s.storage.GetCredentials(ctx, userID)
	if err != nil {
		return "", err
	}

	newPassword := normalizeUsername(user.Username)

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	creds.PasswordHash = string(hash)
	creds.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveCredentials(ctx, creds); err != nil {
		return "", err
	}

	s.logger.Info("password reset", slog.String("user_id", string(userID)))
	return newPassword, nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// createSession creates a new session for a user
func (s *Service) createSession(user *model.User) *Session {
	token := generateID("sess_")
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		UserID:    user.ID,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// generateID generates a random ID with a prefix
func generateID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}

// normalizeUsername lowercases a username and strips spaces and dots,
// matching the historical reset rule
func normalizeUsername(username string) string {
	lowered := strings.ToLower(username)
	lowered = strings.ReplaceAll(lowered, " ", "")
	return strings.ReplaceAll(lowered, ".", "")
}
