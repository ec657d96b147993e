// Package snapshot holds cached upstream payloads so dashboard reads stay
// off the rate-limited fantasy API between refreshes.
package snapshot

import "time"

// Data types a snapshot row can hold. Week is meaningful for scoreboards
// only; the others store week 0.
const (
	DataTypeStandings    = "standings"
	DataTypeScoreboard   = "scoreboard"
	DataTypeLeagueInfo   = "league_info"
	DataTypeTransactions = "transactions"
)

// Snapshot is one normalized payload keyed by league, week and data type.
type Snapshot struct {
	LeagueKey string
	Week      int
	DataType  string
	Payload   any
	FetchedAt time.Time
}

// Age reports how long ago the snapshot was fetched.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// Fresh reports whether the snapshot is still within ttl.
func (s Snapshot) Fresh(now time.Time, ttl time.Duration) bool {
	return s.Age(now) < ttl
}
