package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/league"
	qb "github.com/riskibarqy/fantasy-hoops/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("league_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByKey(ctx context.Context, leagueKey string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("league_key", leagueKey)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by key query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by key: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, l league.League) error {
	insertModel := leagueInsertModel{
		LeagueKey:    l.LeagueKey,
		LeagueID:     l.LeagueID,
		Name:         l.Name,
		NumTeams:     l.NumTeams,
		CurrentWeek:  l.CurrentWeek,
		StartWeek:    l.StartWeek,
		EndWeek:      l.EndWeek,
		Season:       l.Season,
		ScoringType:  l.ScoringType,
		LastSyncedAt: l.LastSyncedAt.UTC(),
	}

	query, args, err := qb.InsertModel("leagues", insertModel, `ON CONFLICT (league_key)
DO UPDATE SET
    league_id = EXCLUDED.league_id,
    name = EXCLUDED.name,
    num_teams = EXCLUDED.num_teams,
    current_week = EXCLUDED.current_week,
    start_week = EXCLUDED.start_week,
    end_week = EXCLUDED.end_week,
    season = EXCLUDED.season,
    scoring_type = EXCLUDED.scoring_type,
    last_synced_at = EXCLUDED.last_synced_at,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league league_key=%s: %w", l.LeagueKey, err)
	}

	return nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		LeagueKey:    row.LeagueKey,
		LeagueID:     row.LeagueID,
		Name:         row.Name,
		NumTeams:     row.NumTeams,
		CurrentWeek:  row.CurrentWeek,
		StartWeek:    row.StartWeek,
		EndWeek:      row.EndWeek,
		Season:       row.Season,
		ScoringType:  row.ScoringType,
		LastSyncedAt: row.LastSyncedAt,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
