package redis

import (
	"fmt"

	"github.com/garrastaldea/bolilla/internal/model"
)

// Key prefix for all pool data
const keyPrefix = "bolilla"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// credentialsKey returns the Redis key for a user's Credentials
func credentialsKey(userID model.UserID) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, userID)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// usersIndexKey returns the Redis key for the SET of all user keys
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesIndexKey returns the Redis key for the SET of all match keys
func matchesIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}

// predictionKey returns the Redis key for a Prediction.
// Keyed on (user, match) so a resubmission overwrites the same entry.
func predictionKey(userID model.UserID, matchID model.MatchID) string {
	return fmt.Sprintf("%s:prediction:%s:%s", keyPrefix, userID, matchID)
}

// predictionsForMatchIndexKey returns the Redis key for the SET of prediction keys for a match
func predictionsForMatchIndexKey(matchID model.MatchID) string {
	return fmt.Sprintf("%s:idx:predictions_for_match:%s", keyPrefix, matchID)
}

// predictionsForUserIndexKey returns the Redis key for the SET of prediction keys for a user
func predictionsForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:predictions_for_user:%s", keyPrefix, userID)
}
