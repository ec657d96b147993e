package postgres

import "time"

type snapshotTableModel struct {
	ID        int64     `db:"id"`
	LeagueKey string    `db:"league_key"`
	Week      int       `db:"week"`
	DataType  string    `db:"data_type"`
	Payload   []byte    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type snapshotInsertModel struct {
	LeagueKey string    `db:"league_key"`
	Week      int       `db:"week"`
	DataType  string    `db:"data_type"`
	Payload   string    `db:"payload"`
	FetchedAt time.Time `db:"fetched_at"`
}
