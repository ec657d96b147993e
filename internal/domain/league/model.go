// Package league models the fantasy basketball leagues the dashboard
// serves: the header parsed out of upstream payloads and the persisted
// directory of leagues the account belongs to.
package league

import (
	"fmt"
	"time"
)

// Info is the normalized league header shared by standings, scoreboard and
// transaction payloads. Field names double as the wire shape for stored
// snapshots.
type Info struct {
	LeagueKey   string `json:"league_key"`
	LeagueID    string `json:"league_id"`
	Name        string `json:"name"`
	NumTeams    int    `json:"num_teams"`
	CurrentWeek int    `json:"current_week"`
	StartWeek   int    `json:"start_week"`
	EndWeek     int    `json:"end_week"`
	Season      string `json:"season"`
	ScoringType string `json:"scoring_type"`
}

// League is a directory row for a league the account has synced.
type League struct {
	LeagueKey    string
	LeagueID     string
	Name         string
	NumTeams     int
	CurrentWeek  int
	StartWeek    int
	EndWeek      int
	Season       string
	ScoringType  string
	LastSyncedAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (l League) Validate() error {
	if l.LeagueKey == "" {
		return fmt.Errorf("league key is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

// FromInfo builds a directory row from a parsed header.
func FromInfo(info Info, syncedAt time.Time) League {
	return League{
		LeagueKey:    info.LeagueKey,
		LeagueID:     info.LeagueID,
		Name:         info.Name,
		NumTeams:     info.NumTeams,
		CurrentWeek:  info.CurrentWeek,
		StartWeek:    info.StartWeek,
		EndWeek:      info.EndWeek,
		Season:       info.Season,
		ScoringType:  info.ScoringType,
		LastSyncedAt: syncedAt,
	}
}

// HeaderInfo converts a directory row back to the payload header shape.
func (l League) HeaderInfo() Info {
	return Info{
		LeagueKey:   l.LeagueKey,
		LeagueID:    l.LeagueID,
		Name:        l.Name,
		NumTeams:    l.NumTeams,
		CurrentWeek: l.CurrentWeek,
		StartWeek:   l.StartWeek,
		EndWeek:     l.EndWeek,
		Season:      l.Season,
		ScoringType: l.ScoringType,
	}
}
