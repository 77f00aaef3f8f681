package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a pool participant
type User struct {
	ID          UserID
	Username    string // login username (immutable, unique)
	DisplayName string
	IsAdmin     bool
	CreatedAt   time.Time
}

// Credentials holds a user's authentication data
// Stored separately so password hashes never travel with session data
type Credentials struct {
	UserID       UserID
	Username     string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
