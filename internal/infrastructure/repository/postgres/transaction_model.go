package postgres

import (
	"database/sql"
	"time"
)

type transactionTableModel struct {
	ID            int64          `db:"id"`
	TransactionID string         `db:"transaction_id"`
	LeagueKey     string         `db:"league_key"`
	Type          string         `db:"type"`
	Status        string         `db:"status"`
	UnixTimestamp int64          `db:"unix_timestamp"`
	OccurredAt    time.Time      `db:"occurred_at"`
	TraderTeamKey sql.NullString `db:"trader_team_key"`
	TradeeTeamKey sql.NullString `db:"tradee_team_key"`
	CreatedAt     time.Time      `db:"created_at"`
}

type transactionInsertModel struct {
	TransactionID string    `db:"transaction_id"`
	LeagueKey     string    `db:"league_key"`
	Type          string    `db:"type"`
	Status        string    `db:"status"`
	UnixTimestamp int64     `db:"unix_timestamp"`
	OccurredAt    time.Time `db:"occurred_at"`
	TraderTeamKey *string   `db:"trader_team_key"`
	TradeeTeamKey *string   `db:"tradee_team_key"`
}

type transactionPlayerTableModel struct {
	ID                  int64          `db:"id"`
	TransactionRowID    int64          `db:"transaction_row_id"`
	Ordinal             int            `db:"ordinal"`
	PlayerID            string         `db:"player_id"`
	PlayerName          string         `db:"player_name"`
	NBATeam             sql.NullString `db:"nba_team"`
	Position            sql.NullString `db:"position"`
	MovementType        string         `db:"movement_type"`
	SourceType          sql.NullString `db:"source_type"`
	SourceTeamKey       sql.NullString `db:"source_team_key"`
	SourceTeamName      sql.NullString `db:"source_team_name"`
	DestinationType     sql.NullString `db:"destination_type"`
	DestinationTeamKey  sql.NullString `db:"destination_team_key"`
	DestinationTeamName sql.NullString `db:"destination_team_name"`
}

type transactionPlayerInsertModel struct {
	TransactionRowID    int64   `db:"transaction_row_id"`
	Ordinal             int     `db:"ordinal"`
	PlayerID            string  `db:"player_id"`
	PlayerName          string  `db:"player_name"`
	NBATeam             *string `db:"nba_team"`
	Position            *string `db:"position"`
	MovementType        string  `db:"movement_type"`
	SourceType          *string `db:"source_type"`
	SourceTeamKey       *string `db:"source_team_key"`
	SourceTeamName      *string `db:"source_team_name"`
	DestinationType     *string `db:"destination_type"`
	DestinationTeamKey  *string `db:"destination_team_key"`
	DestinationTeamName *string `db:"destination_team_name"`
}
