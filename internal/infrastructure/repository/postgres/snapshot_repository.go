package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/fantasy-hoops/internal/domain/snapshot"
	qb "github.com/riskibarqy/fantasy-hoops/internal/platform/querybuilder"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Get(ctx context.Context, leagueKey string, week int, dataType string) (snapshot.Snapshot, bool, error) {
	query, args, err := snapshotBaseSelectBuilder().
		Where(
			qb.Eq("league_key", leagueKey),
			qb.Eq("week", week),
			qb.Eq("data_type", dataType),
		).
		ToSQL()
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("build get snapshot query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getSingleParam(ctx, leagueKey, week, dataType)
		}
		if isNotFound(err) {
			return snapshot.Snapshot{}, false, nil
		}
		return snapshot.Snapshot{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	snap, err := snapshotFromRow(row)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *SnapshotRepository) getSingleParam(ctx context.Context, leagueKey string, week int, dataType string) (snapshot.Snapshot, bool, error) {
	query, _, err := snapshotBaseSelectBuilder().
		Where(
			qb.Expr("league_key = ($1::text[])[1]"),
			qb.Expr("week = (($1::text[])[2])::int"),
			qb.Expr("data_type = ($1::text[])[3]"),
		).
		ToSQL()
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("build get snapshot single param fallback query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, pq.Array([]string{leagueKey, strconv.Itoa(week), dataType})); err != nil {
		if isUnnamedPreparedStatementMissing(err) {
			return r.getLiteral(ctx, leagueKey, week, dataType)
		}
		if isNotFound(err) {
			return snapshot.Snapshot{}, false, nil
		}
		return snapshot.Snapshot{}, false, fmt.Errorf("get snapshot fallback: %w", err)
	}

	snap, err := snapshotFromRow(row)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *SnapshotRepository) getLiteral(ctx context.Context, leagueKey string, week int, dataType string) (snapshot.Snapshot, bool, error) {
	query, args, err := snapshotBaseSelectBuilder().
		Where(
			qb.EqLiteral("league_key", leagueKey),
			qb.Expr(fmt.Sprintf("week = %d", week)),
			qb.EqLiteral("data_type", dataType),
		).
		ToSQL()
	if err != nil {
		return snapshot.Snapshot{}, false, fmt.Errorf("build get snapshot literal fallback query: %w", err)
	}

	var row snapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return snapshot.Snapshot{}, false, nil
		}
		return snapshot.Snapshot{}, false, fmt.Errorf("get snapshot literal fallback: %w", err)
	}

	snap, err := snapshotFromRow(row)
	if err != nil {
		return snapshot.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (r *SnapshotRepository) Upsert(ctx context.Context, snap snapshot.Snapshot) error {
	payloadJSON, err := sonic.Marshal(snap.Payload)
	if err != nil {
		return fmt.Errorf("encode snapshot payload: %w", err)
	}

	insertModel := snapshotInsertModel{
		LeagueKey: snap.LeagueKey,
		Week:      snap.Week,
		DataType:  snap.DataType,
		Payload:   string(payloadJSON),
		FetchedAt: snap.FetchedAt.UTC(),
	}

	query, args, err := qb.InsertModel("snapshots", insertModel, `ON CONFLICT (league_key, week, data_type)
DO UPDATE SET
    payload = EXCLUDED.payload,
    fetched_at = EXCLUDED.fetched_at,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert snapshot query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert snapshot league_key=%s data_type=%s: %w", snap.LeagueKey, snap.DataType, err)
	}

	return nil
}

func snapshotFromRow(row snapshotTableModel) (snapshot.Snapshot, error) {
	var payload any
	if len(row.Payload) > 0 {
		if err := sonic.Unmarshal(row.Payload, &payload); err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("decode snapshot payload league_key=%s data_type=%s: %w", row.LeagueKey, row.DataType, err)
		}
	}

	return snapshot.Snapshot{
		LeagueKey: row.LeagueKey,
		Week:      row.Week,
		DataType:  row.DataType,
		Payload:   payload,
		FetchedAt: row.FetchedAt,
	}, nil
}

func snapshotBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("*").From("snapshots")
}
