package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Match is a fixture users predict against.
// HomeGoals/AwayGoals are both nil until the match is finished, then both set.
// Finished is a one-way flag: a match is never un-finished, though an admin
// may overwrite the result of a finished match (which triggers a recompute).
type Match struct {
	ID        MatchID
	Team      string
	Opponent  string
	IsHome    bool
	KickoffAt time.Time
	Deadline  time.Time // prediction cutoff; not validated against KickoffAt
	HomeGoals *int
	AwayGoals *int
	Finished  bool
	CreatedAt time.Time
}

// AcceptsPredictionsAt reports whether a prediction may be submitted at the
// given instant. Submission exactly at the deadline is still allowed.
func (m *Match) AcceptsPredictionsAt(now time.Time) bool {
	return !m.Finished && !now.After(m.Deadline)
}
