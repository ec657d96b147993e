package postgres

import "time"

type leagueTableModel struct {
	ID           int64     `db:"id"`
	LeagueKey    string    `db:"league_key"`
	LeagueID     string    `db:"league_id"`
	Name         string    `db:"name"`
	NumTeams     int       `db:"num_teams"`
	CurrentWeek  int       `db:"current_week"`
	StartWeek    int       `db:"start_week"`
	EndWeek      int       `db:"end_week"`
	Season       string    `db:"season"`
	ScoringType  string    `db:"scoring_type"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type leagueInsertModel struct {
	LeagueKey    string    `db:"league_key"`
	LeagueID     string    `db:"league_id"`
	Name         string    `db:"name"`
	NumTeams     int       `db:"num_teams"`
	CurrentWeek  int       `db:"current_week"`
	StartWeek    int       `db:"start_week"`
	EndWeek      int       `db:"end_week"`
	Season       string    `db:"season"`
	ScoringType  string    `db:"scoring_type"`
	LastSyncedAt time.Time `db:"last_synced_at"`
}
